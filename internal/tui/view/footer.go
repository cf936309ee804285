package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterModel contains content and styles for rendering the footer.
type FooterModel struct {
	InnerW      int
	FooterH     int
	TotalsLine  string // pre-styled
	NoteText    string
	StatusText  string
	HelpText    string
	PromptLines []string
	ShowPrompt  bool
	NoteStyle   lipgloss.Style
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	PromptStyle lipgloss.Style
	Bg          lipgloss.Color
}

// RenderFooter builds the totals, note, prompt, status and help lines.
// The prompt replaces the note while it is open.
func RenderFooter(model FooterModel) string {
	if model.FooterH <= 0 {
		return ""
	}

	lines := []string{footerLine(model.InnerW, lipgloss.NewStyle(), model.TotalsLine)}
	if model.ShowPrompt {
		lines = append(lines, RenderPrompt(model.InnerW, model.PromptStyle, model.PromptLines))
	} else {
		lines = append(lines, footerLine(model.InnerW, model.NoteStyle, model.NoteText))
	}
	lines = append(lines,
		footerLine(model.InnerW, model.StatusStyle, model.StatusText),
		footerLine(model.InnerW, model.HelpStyle, model.HelpText),
	)

	return PlaceBox(model.InnerW, model.FooterH, lipgloss.Bottom, strings.Join(lines, "\n"), model.Bg)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := max(width-frameW, 0)
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Render(content)
}
