package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// PunchHeaders are the column titles of the punch table.
var PunchHeaders = []string{"#", "Punch", "Rounded", "", "Span"}

// PunchRow is one punch as shown in the editor table.
type PunchRow struct {
	Time    string
	Rounded string
	Kind    string // "in" or "out"
	Span    string // time until the next punch, empty for the last one
}

// Cells returns the row's table cells; index is 1-based.
func (r PunchRow) Cells(index string) []string {
	return []string{index, r.Time, r.Rounded, r.Kind, r.Span}
}

// TableContent contains table rows and cell styles.
type TableContent struct {
	Rows       [][]string
	CellStyles [][]lipgloss.Style
}

// TableViewState holds data needed to render the punch table.
type TableViewState struct {
	InnerW       int
	GridH        int
	Headers      []string
	HeaderStyles []lipgloss.Style
	Content      TableContent
	Offset       int // first visible row
	BorderStyle  lipgloss.Style
	VAlign       lipgloss.Position
	Bg           lipgloss.Color
	Empty        string // shown instead of the table when there are no rows
}

// RenderTable renders the punch table using a lipgloss table.
func RenderTable(state TableViewState) string {
	if state.GridH <= 0 {
		return ""
	}
	if len(state.Content.Rows) == 0 {
		return PlaceBox(state.InnerW, state.GridH, lipgloss.Center, lipgloss.PlaceHorizontal(state.InnerW, lipgloss.Center, state.Empty), state.Bg)
	}

	t := table.New().
		Headers(state.Headers...).
		Width(max(state.InnerW-2, 0)).
		Height(state.GridH).
		Offset(state.Offset).
		Border(lipgloss.RoundedBorder()).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		BorderStyle(state.BorderStyle).
		Rows(state.Content.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if col >= 0 && col < len(state.HeaderStyles) {
					return state.HeaderStyles[col]
				}
				return lipgloss.NewStyle()
			}
			if row < 0 || row >= len(state.Content.CellStyles) || col < 0 || col >= len(state.Content.CellStyles[row]) {
				return lipgloss.NewStyle()
			}
			return state.Content.CellStyles[row][col]
		})

	return PlaceBox(state.InnerW, state.GridH, state.VAlign, t.Render(), state.Bg)
}
