package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordhint/internal/llm"
	"github.com/robalobadob/wordhint/internal/words"
)

type Config struct {
	LogLevel       string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Port           string        `yaml:"port" env:"PORT" env-default:"3001"`
	ClientOrigins  []string      `yaml:"client-origins" env:"CLIENT_ORIGINS" env-default:"http://localhost:3000,http://localhost:5173"`
	HandlerTimeout time.Duration `yaml:"handler-timeout" env:"HANDLER_TIMEOUT" env-default:"30s"`
	Words          Words         `yaml:"words"`
	GenAI          GenAI         `yaml:"genai"`
}

type Words struct {
	Source       string        `yaml:"source" env:"WORD_SOURCE" env-default:"static"`
	Length       int           `yaml:"length" env:"WORD_LENGTH" env-default:"5"`
	File         string        `yaml:"file" env:"WORDS_FILE"`
	APIURL       string        `yaml:"api-url" env:"WORD_API_URL" env-default:"http://localhost:3001"`
	FetchTimeout time.Duration `yaml:"fetch-timeout" env:"WORD_FETCH_TIMEOUT" env-default:"20s"`
}

type GenAI struct {
	APIKey      string  `yaml:"api-key" env:"GEMINI_API_KEY"`
	Model       string  `yaml:"model" env:"GEMINI_MODEL" env-default:"gemini-2.0-flash"`
	Temperature float32 `yaml:"temperature" env:"GEMINI_TEMPERATURE" env-default:"1"`
}

// Load reads .env (if present), then the YAML file named by CONFIG_PATH
// (if set), then the environment. Environment values win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}
	return cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// WordOptions maps the config onto words.New options for the given strategy.
func (c *Config) WordOptions(kind string) words.Options {
	return words.Options{
		Kind:      kind,
		Length:    c.Words.Length,
		WordsFile: c.Words.File,
		RemoteURL: c.Words.APIURL,
		Timeout:   c.Words.FetchTimeout,
		GenAI: llm.Config{
			APIKey:      c.GenAI.APIKey,
			Model:       c.GenAI.Model,
			Temperature: c.GenAI.Temperature,
		},
	}
}

// Addr is the listen address.
func (c *Config) Addr() string { return ":" + c.Port }
