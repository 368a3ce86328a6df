package main

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordhint/internal/display"
	"github.com/robalobadob/wordhint/internal/game"
	"github.com/robalobadob/wordhint/internal/play"
	"github.com/robalobadob/wordhint/internal/words"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
)

// wordMsg carries a fetched entry back into the update loop.
type wordMsg words.Entry

// model is the terminal presentation of one game. It owns the State and
// replaces it through the engine's transitions.
type model struct {
	src      words.Source
	timeout  time.Duration
	state    game.State
	loading  bool
	notice   string
	showHint bool
	input    textinput.Model
}

func newModel(src words.Source, timeout time.Duration) model {
	ti := textinput.New()
	ti.Placeholder = "Enter 5 letters"
	ti.CharLimit = words.DefaultLength
	ti.Focus()
	return model{src: src, timeout: timeout, loading: true, input: ti}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.fetch())
}

// fetch loads a word; it never fails because of the fallback entry.
func (m model) fetch() tea.Cmd {
	src, timeout := m.src, m.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return wordMsg(words.FetchOrDefault(ctx, src))
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case wordMsg:
		m.state = game.Reset(m.state, msg.Word, msg.Hint)
		m.loading = false
		m.showHint = false
		m.notice = ""
		if msg.Fallback {
			m.notice = play.FallbackNotice
		}
		n := utf8.RuneCountInString(m.state.Word)
		m.input.CharLimit = n
		m.input.Placeholder = "Enter " + strconv.Itoa(n) + " letters"
		m.input.Reset()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
		if m.loading {
			return m, nil
		}
		switch msg.Type {
		case tea.KeyCtrlT:
			m.showHint = !m.showHint
			return m, nil
		case tea.KeyCtrlR:
			m.loading = true
			return m, m.fetch()
		case tea.KeyEnter:
			if m.state.Status.Terminal() {
				return m, nil
			}
			next, err := game.ApplyGuess(m.state, m.input.Value())
			m.state = next
			if err == nil {
				m.input.Reset()
			}
			return m, nil
		}
		if m.state.Status.Terminal() {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Word Guessing Game"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice) + "\n")
	}
	if m.showHint && m.state.Hint != "" {
		b.WriteString(hintStyle.Render("Hint: "+m.state.Hint) + "\n")
	}
	if m.state.Message != "" {
		b.WriteString(m.state.Message + "\n")
	}
	b.WriteString("Tries Remaining: " + strconv.Itoa(m.state.Attempts) + "\n\n")

	b.WriteString(display.Preview(utf8.RuneCountInString(m.state.Word)) + "\n")
	for _, rec := range m.state.History {
		b.WriteString(display.Row(rec) + "\n")
	}
	b.WriteString("\n")

	if m.state.Status.Terminal() {
		b.WriteString(mutedStyle.Render("Ctrl+R play again • Esc quit") + "\n")
	} else {
		b.WriteString(m.input.View() + "\n")
		b.WriteString(mutedStyle.Render("Enter guess • Ctrl+T hint • Ctrl+R new word • Esc quit") + "\n")
	}
	return b.String()
}
