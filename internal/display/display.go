// Package display maps feedback statuses to how they are shown. It is a
// pure lookup kept outside the game engine.
package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordhint/internal/game"
)

var (
	tileBase = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			MarginRight(1)

	tileCorrect       = tileBase.Background(lipgloss.Color("#22C55E")).Foreground(lipgloss.Color("#FFFFFF"))
	tileWrongPosition = tileBase.Background(lipgloss.Color("#EAB308")).Foreground(lipgloss.Color("#FFFFFF"))
	tileIncorrect     = tileBase.Background(lipgloss.Color("#D1D5DB")).Foreground(lipgloss.Color("#374151"))
	tileEmpty         = tileBase.Foreground(lipgloss.Color("#9CA3AF"))
)

// TileStyle returns the terminal style of a tile.
func TileStyle(s game.FeedbackStatus) lipgloss.Style {
	switch s {
	case game.StatusCorrect:
		return tileCorrect
	case game.StatusWrongPosition:
		return tileWrongPosition
	case game.StatusIncorrect:
		return tileIncorrect
	}
	return tileEmpty
}

// CSSClass returns the utility classes used by the web client for a tile.
func CSSClass(s game.FeedbackStatus) string {
	switch s {
	case game.StatusCorrect:
		return "bg-green-500 text-white"
	case game.StatusWrongPosition:
		return "bg-yellow-500 text-white"
	}
	return "bg-gray-300 text-gray-700"
}

// Glyph is a one-character plain-text rendering for logs and non-color output.
func Glyph(s game.FeedbackStatus) string {
	switch s {
	case game.StatusCorrect:
		return "G"
	case game.StatusWrongPosition:
		return "Y"
	}
	return "-"
}

// Row renders one guess record as a row of tiles.
func Row(r game.GuessRecord) string {
	tiles := make([]string, len(r.Feedback))
	for i, f := range r.Feedback {
		tiles[i] = TileStyle(f.Status).Render(f.Letter)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// Preview renders an empty row of n placeholder tiles.
func Preview(n int) string {
	tiles := make([]string, n)
	for i := range tiles {
		tiles[i] = tileEmpty.Render("_")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// Pattern renders a record as glyphs, e.g. "GY---".
func Pattern(r game.GuessRecord) string {
	var b strings.Builder
	for _, f := range r.Feedback {
		b.WriteString(Glyph(f.Status))
	}
	return b.String()
}
