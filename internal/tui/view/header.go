package view

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// HeaderModel holds the title bar content.
type HeaderModel struct {
	InnerW      int
	Title       string
	DateLabel   string
	Marker      string // shown at the right edge, e.g. "modified"
	TitleStyle  lipgloss.Style
	DateStyle   lipgloss.Style
	MarkerStyle lipgloss.Style
	Bg          lipgloss.Color
}

// RenderHeader renders the one-line title bar.
func RenderHeader(h HeaderModel) string {
	left := h.TitleStyle.Render(h.Title) + h.DateStyle.Render(h.DateLabel)
	right := ""
	if h.Marker != "" {
		right = h.MarkerStyle.Render(h.Marker)
	}

	gap := h.InnerW - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		right = ""
		gap = max(h.InnerW-lipgloss.Width(left), 0)
	}
	spacer := lipgloss.NewStyle().Background(h.Bg).Render(strings.Repeat(" ", gap))
	return footerLine(h.InnerW, lipgloss.NewStyle(), left+spacer+right)
}

// DayLabel formats a day for the title bar.
func DayLabel(date time.Time, today time.Time) string {
	label := date.Format("Monday, January 2, 2006")
	if sameDay(date, today) {
		label += " (today)"
	}
	return label
}

func sameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}
