package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/timecard/internal/clock"
	"github.com/javiermolinar/timecard/internal/tui/view"
)

const (
	helpNormal = "a add · n now · d delete · j/k move · h/l day · t today · / command · s save · u revert · y copy · q quit"
	helpAdd    = "enter add · esc cancel"
	helpPrompt = "tab complete · enter run · esc cancel"
)

// tableChrome is the number of table lines that are not punch rows:
// top border, header, header rule and bottom border.
const tableChrome = 4

// View renders the editor.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	promptLines := m.promptLines()
	footerH := 3 + max(len(promptLines), 1)
	gridH := max(m.height-1-footerH, 0)

	header := view.RenderHeader(view.HeaderModel{
		InnerW:      m.width,
		Title:       "timecard",
		DateLabel:   view.DayLabel(m.date, m.now()),
		Marker:      m.headerMarker(),
		TitleStyle:  m.styles.TitleStyle,
		DateStyle:   m.styles.DateStyle,
		MarkerStyle: m.styles.MarkerStyle,
		Bg:          m.styles.Palette().Bg,
	})

	headerStyles := make([]lipgloss.Style, len(view.PunchHeaders))
	for i := range headerStyles {
		headerStyles[i] = m.styles.HeaderCellStyle
	}

	empty := "No punches yet. Press a to add one or n to punch now."
	if !m.loaded {
		empty = "Loading..."
	}

	grid := view.RenderTable(view.TableViewState{
		InnerW:       m.width,
		GridH:        gridH,
		Headers:      view.PunchHeaders,
		HeaderStyles: headerStyles,
		Content:      m.tableContent(),
		Offset:       m.tableOffset(gridH),
		BorderStyle:  m.styles.BorderStyle,
		VAlign:       lipgloss.Top,
		Bg:           m.styles.Palette().Bg,
		Empty:        m.styles.EmptyStyle.Render(empty),
	})

	statusStyle := m.styles.StatusStyle
	if m.statusErr {
		statusStyle = m.styles.ErrorStyle
	}

	footer := view.RenderFooter(view.FooterModel{
		InnerW:      m.width,
		FooterH:     footerH,
		TotalsLine:  m.totalsLine(),
		NoteText:    m.noteText(),
		StatusText:  m.statusMsg,
		HelpText:    m.helpText(),
		PromptLines: promptLines,
		ShowPrompt:  m.mode != ModeNormal,
		NoteStyle:   m.styles.NoteStyle,
		StatusStyle: statusStyle,
		HelpStyle:   m.styles.HelpStyle,
		PromptStyle: m.styles.PromptStyle,
		Bg:          m.styles.Palette().Bg,
	})

	return lipgloss.JoinVertical(lipgloss.Left, header, grid, footer)
}

func (m Model) headerMarker() string {
	if m.dirty {
		return "modified"
	}
	return ""
}

// tableOffset scrolls the table so the cursor stays visible.
func (m Model) tableOffset(gridH int) int {
	visible := gridH - tableChrome
	if visible <= 0 {
		return m.cursor
	}
	return max(m.cursor-visible+1, 0)
}

func (m Model) tableContent() view.TableContent {
	n := m.punchCount()
	content := view.TableContent{
		Rows:       make([][]string, 0, n),
		CellStyles: make([][]lipgloss.Style, 0, n),
	}

	for i, p := range m.day.Punches {
		row, styles := m.punchRow(i, p)
		if i == m.cursor {
			for j := range styles {
				styles[j] = styles[j].Background(m.styles.Palette().BgSelection).Bold(true)
			}
		}
		content.Rows = append(content.Rows, row.Cells(strconv.Itoa(i+1)))
		content.CellStyles = append(content.CellStyles, styles)
	}
	return content
}

// punchRow describes punch i. Even punches clock in, odd ones clock out.
// Spans use rounded times so they add up to the totals below.
func (m Model) punchRow(i int, p clock.TimeOfDay) (view.PunchRow, []lipgloss.Style) {
	factor := m.opts.RoundingFactor
	rounded := p.Round(factor)
	clockIn := i%2 == 0
	last := i == m.punchCount()-1

	row := view.PunchRow{
		Time:    view.FormatClock(p, m.use24h),
		Rounded: view.FormatClock(rounded, m.use24h),
		Kind:    "out",
	}
	timeStyle := m.styles.OutStyle
	spanStyle := m.styles.BreakSpanStyle
	if clockIn {
		row.Kind = "in"
		timeStyle = m.styles.InStyle
		spanStyle = m.styles.WorkedSpanStyle
	}

	switch {
	case !last:
		row.Span = view.FormatDuration(m.day.Punches[i+1].Round(factor).Sub(rounded))
	case clockIn:
		timeStyle = m.styles.OpenStyle
		row.Span = "open"
		if m.isToday() {
			if elapsed := clock.FromTime(m.now()).Sub(p); elapsed > 0 {
				row.Span = "open " + view.FormatDuration(elapsed)
			}
		}
	default:
		spanStyle = m.styles.CellStyle
	}

	return row, []lipgloss.Style{
		m.styles.RoundedStyle,
		timeStyle,
		m.styles.RoundedStyle,
		timeStyle,
		spanStyle,
	}
}

func (m Model) totalsLine() string {
	s := m.styles
	if m.stats.Err != nil {
		return s.ErrorStyle.Render("Invalid punches: " + m.stats.Err.Error())
	}

	parts := []string{
		s.LabelStyle.Render("Worked ") + s.WorkedStyle.Render(view.FormatDuration(m.stats.Worked)),
		s.LabelStyle.Render("Break ") + s.BreakStyle.Render(view.FormatDuration(m.stats.Break)),
	}
	if m.stats.Deducted > 0 {
		parts = append(parts, s.LabelStyle.Render("Deducted ")+s.DeductedStyle.Render(view.FormatDuration(m.stats.Deducted)))
	}
	parts = append(parts, s.NetStyle.Render("Net "+view.FormatDuration(m.stats.Net)))

	line := strings.Join(parts, s.LabelStyle.Render(" · "))
	if hint := m.deductionHint(); hint != "" {
		line += s.LabelStyle.Render("  " + hint)
	}
	if m.stats.Open {
		line += s.LabelStyle.Render("  ") + s.OpenStyle.UnsetPadding().Render("clocked in")
	}
	return line
}

// deductionHint warns when a short break would be deducted but the rule is off.
func (m Model) deductionHint() string {
	if m.stats.Deducted > 0 || m.opts.DeductBreak || m.punchCount() == 0 {
		return ""
	}
	s, err := m.day.Series(m.opts)
	if err != nil || !s.BreakDeductionRequired() {
		return ""
	}
	return fmt.Sprintf("(break under %s)", view.FormatDuration(m.opts.DeductedBreak))
}

func (m Model) noteText() string {
	if m.day.Note == "" {
		return m.styles.EmptyStyle.Render("No note. /note adds one.")
	}
	return "Note: " + m.day.Note
}

func (m Model) helpText() string {
	switch m.mode {
	case ModeAdd:
		return helpAdd
	case ModePrompt:
		return helpPrompt
	default:
		return helpNormal
	}
}

func (m Model) promptLines() []string {
	if m.mode == ModeNormal {
		return nil
	}

	state := view.PromptState{
		Label:      "> ",
		Value:      m.prompt.Value(),
		Cursor:     "█",
		ModePrompt: m.mode == ModePrompt,
	}
	if m.mode == ModeAdd {
		state.Label = "+ "
		if state.Value == "" {
			state.Value = m.prompt.Placeholder
			state.Cursor = ""
		}
	}

	frameW, _ := m.styles.PromptStyle.GetFrameSize()
	lines := view.PromptLines(state, max(m.width-frameW, 0), promptCommands)
	return view.ClampPromptLines(lines, 6, m.width)
}
