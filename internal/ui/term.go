package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Worked time: bold green
	colorWorked = color.New(color.FgGreen, color.Bold)

	// Breaks: yellow
	colorBreak = color.New(color.FgYellow)

	// Deducted break: red so it is noticed
	colorDeducted = color.New(color.FgRed)

	// Open pair, still clocked in
	colorOpen = color.New(color.FgCyan)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatWorked(s string) string {
	return colorWorked.Sprint(s)
}

func formatBreak(s string) string {
	return colorBreak.Sprint(s)
}

func formatDeducted(s string) string {
	return colorDeducted.Sprint(s)
}

func formatOpen(s string) string {
	return colorOpen.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
