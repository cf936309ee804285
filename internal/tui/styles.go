// Package tui provides the interactive punch editor.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/timecard/internal/tui/theme"
)

// Styles holds all lipgloss styles for the editor, derived from a theme.
type Styles struct {
	palette *theme.Palette

	TitleStyle  lipgloss.Style
	DateStyle   lipgloss.Style
	MarkerStyle lipgloss.Style

	HeaderCellStyle lipgloss.Style
	BorderStyle     lipgloss.Style

	// Punch rows
	CellStyle     lipgloss.Style
	InStyle       lipgloss.Style
	OutStyle      lipgloss.Style
	OpenStyle     lipgloss.Style
	RoundedStyle  lipgloss.Style
	SelectedStyle lipgloss.Style
	EmptyStyle    lipgloss.Style

	// Span column, tinted by what the span is
	WorkedSpanStyle lipgloss.Style
	BreakSpanStyle  lipgloss.Style

	// Totals
	WorkedStyle   lipgloss.Style
	BreakStyle    lipgloss.Style
	DeductedStyle lipgloss.Style
	NetStyle      lipgloss.Style
	LabelStyle    lipgloss.Style

	NoteStyle   lipgloss.Style
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style
	PromptStyle lipgloss.Style
}

// NewStyles creates editor styles from a theme.
func NewStyles(t *theme.Theme) Styles {
	p := theme.NewPalette(t)
	cell := lipgloss.NewStyle().Padding(0, 1).Foreground(p.Fg)

	return Styles{
		palette: p,

		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.TextOnAccent).
			Background(p.Accent).
			Padding(0, 1),
		DateStyle: lipgloss.NewStyle().
			Foreground(p.Fg).
			Background(p.BgHighlight).
			Padding(0, 1),
		MarkerStyle: lipgloss.NewStyle().
			Foreground(p.TextOnWarning).
			Background(p.Warning).
			Padding(0, 1),

		HeaderCellStyle: lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(p.Accent),
		BorderStyle:     lipgloss.NewStyle().Foreground(p.FgMuted),

		CellStyle:     cell,
		InStyle:       cell.Foreground(p.Worked),
		OutStyle:      cell.Foreground(p.Break),
		OpenStyle:     cell.Foreground(p.Open).Bold(true),
		RoundedStyle:  cell.Foreground(p.FgMuted),
		SelectedStyle: cell.Background(p.BgSelection).Bold(true),
		EmptyStyle:    lipgloss.NewStyle().Foreground(p.FgMuted).Italic(true),

		WorkedSpanStyle: cell.Background(p.WorkedBg),
		BreakSpanStyle:  cell.Background(p.BreakBg),

		WorkedStyle:   lipgloss.NewStyle().Foreground(p.Worked).Bold(true),
		BreakStyle:    lipgloss.NewStyle().Foreground(p.Break),
		DeductedStyle: lipgloss.NewStyle().Foreground(p.Warning),
		NetStyle:      lipgloss.NewStyle().Foreground(p.TextOnWorked).Background(p.Worked).Bold(true).Padding(0, 1),
		LabelStyle:    lipgloss.NewStyle().Foreground(p.FgMuted),

		NoteStyle:   lipgloss.NewStyle().Foreground(p.Fg).Italic(true),
		StatusStyle: lipgloss.NewStyle().Foreground(p.Accent),
		ErrorStyle:  lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		HelpStyle:   lipgloss.NewStyle().Foreground(p.FgMuted),
		PromptStyle: lipgloss.NewStyle().Foreground(p.Fg).Background(p.BgHighlight),
	}
}

// Palette returns the colors the styles were built from.
func (s Styles) Palette() *theme.Palette {
	return s.palette
}
