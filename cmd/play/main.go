package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordhint/internal/config"
	"github.com/robalobadob/wordhint/internal/words"
)

var (
	sourceKind string
	apiURL     string
	wordsFile  string
	logFile    string
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the word-guessing game in the terminal",
	Long: `Guess the hidden five-letter word in five attempts.

Keys:
  Enter   submit the guess
  Ctrl+T  show / hide the hint
  Ctrl+R  start over with a new word
  Esc     quit

Word sources:
  static     random pick from the built-in list (or --words)
  remote     GET <url>/api/word from a running wordhint server
  generated  ask Gemini directly (needs GEMINI_API_KEY)`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&sourceKind, "source", "", "word source: static | remote | generated (default from WORD_SOURCE)")
	rootCmd.Flags().StringVar(&apiURL, "url", "", "word-fetch endpoint base address (default from WORD_API_URL)")
	rootCmd.Flags().StringVar(&wordsFile, "words", "", "word list file for the static source")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (logging is off otherwise)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "word fetch timeout (default from WORD_FETCH_TIMEOUT)")
}

func run(cmd *cobra.Command, _ []string) error {
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	kind := cfg.Words.Source
	if sourceKind != "" {
		kind = sourceKind
	}
	opts := cfg.WordOptions(kind)
	if apiURL != "" {
		opts.RemoteURL = apiURL
	}
	if wordsFile != "" {
		opts.WordsFile = wordsFile
	}
	if timeout > 0 {
		opts.Timeout = timeout
	}

	src, err := words.New(cmd.Context(), opts)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(newModel(src, opts.Timeout)).Run()
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
