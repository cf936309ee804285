package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/timecard/internal/summary"
)

func (a *App) weekCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show this week's punches and totals",
		Long: `Display Monday through Sunday of the ISO week containing --date
(default: today) in a table with the worked, break, deducted and net time
of every day, followed by the week totals.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			day, err := resolveDate(date)
			if err != nil {
				return err
			}

			weekSummary, err := summary.BuildWeekSummary(context.Background(), a.repo, day, a.config.SeriesOptions())
			if err != nil {
				return fmt.Errorf("building week summary: %w", err)
			}

			out := cmd.OutOrStdout()
			if weekSummary.DaysWorked() == 0 {
				_, _ = fmt.Fprintln(out, "No punches recorded this week.")
				return nil
			}

			header := fmt.Sprintf("WEEK: %s - %s", weekSummary.Start.Format("Mon Jan 2"), weekSummary.End.Format("Mon Jan 2, 2006"))
			_, _ = fmt.Fprintf(out, "\n  %s\n", formatHeader(header))
			_, _ = fmt.Fprintln(out, renderWeekTable(weekSummary, a.config.Uses24h(), termWidth()))
			printWeekTotals(out, weekSummary)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any day of the week to show (default: today)")
	return cmd
}

// weekTableFixedWidth is the width of every column except the note, borders included.
const weekTableFixedWidth = 78

func renderWeekTable(w *summary.WeekSummary, use24h bool, width int) string {
	noteWidth := max(width-weekTableFixedWidth, 8)

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	mutedStyle := cellStyle.Faint(true)
	deductedStyle := cellStyle.Foreground(lipgloss.Color("1"))
	openStyle := cellStyle.Foreground(lipgloss.Color("6"))

	rows := make([][]string, 0, len(w.Days))
	for _, d := range w.Days {
		row := []string{d.Date.Format("Mon Jan 2"), "-", "", "", "", "", ""}
		if d.Day != nil {
			row[6] = ansi.Truncate(d.Day.Note, noteWidth, "…")
		}
		switch {
		case d.Err != nil:
			row[1] = "invalid punches"
		case d.Recorded():
			row[1] = FormatPunches(d.Day.Punches, use24h)
			row[2] = FormatDuration(d.Worked)
			row[3] = FormatDuration(d.Break)
			if d.Deducted > 0 {
				row[4] = FormatDuration(d.Deducted)
			}
			row[5] = FormatDuration(d.Net)
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderRow(false).
		Headers("Day", "Punches", "Worked", "Break", "Deducted", "Net", "Note").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(w.Days) {
				return cellStyle
			}
			d := w.Days[row]
			switch {
			case !d.Recorded():
				return mutedStyle
			case col == 1 && d.Open:
				return openStyle
			case col == 4:
				return deductedStyle
			case col == 6:
				return mutedStyle
			}
			return cellStyle
		})

	return t.Render()
}

func printWeekTotals(out io.Writer, w *summary.WeekSummary) {
	parts := []string{
		formatWorked("Worked: " + FormatDuration(w.TotalWorked())),
		formatBreak("Break: " + FormatDuration(w.TotalBreak())),
	}
	if deducted := w.TotalDeducted(); deducted > 0 {
		parts = append(parts, formatDeducted("Deducted: "+FormatDuration(deducted)))
	}
	parts = append(parts, formatHeader("Net: "+FormatDuration(w.TotalNet())))

	_, _ = fmt.Fprintf(out, "  %s\n", strings.Join(parts, "  |  "))
	_, _ = fmt.Fprintf(out, "  Days worked: %d  |  Average: %s\n", w.DaysWorked(), FormatDuration(w.AverageNet()))

	for _, d := range w.Days {
		if d.Err != nil {
			_, _ = fmt.Fprintf(out, "  %s\n", formatDeducted(fmt.Sprintf("%s: %v", d.Date.Format("Mon Jan 2"), d.Err)))
		}
	}
	_, _ = fmt.Fprintln(out)
}
