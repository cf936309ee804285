package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/timecard/internal/clock"
	"github.com/javiermolinar/timecard/internal/series"
	"github.com/javiermolinar/timecard/internal/summary"
	"github.com/javiermolinar/timecard/internal/timesheet"
)

// PrintOpts configures day printing behavior.
type PrintOpts struct {
	Series  series.Options
	Use24h  bool // 15:04 instead of 3:04 PM
	Verbose bool // show rounded times next to raw punches
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%s%dm", sign, mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%s%dh", sign, hours)
	}
	return fmt.Sprintf("%s%dh%dm", sign, hours, mins)
}

// FormatClock renders t on a 12 or 24-hour clock.
func FormatClock(t clock.TimeOfDay, use24h bool) string {
	if use24h {
		return t.Format24()
	}
	return t.String()
}

// FormatPunches renders punches as a compact "08:00-12:00 12:30-…" list.
func FormatPunches(punches []clock.TimeOfDay, use24h bool) string {
	parts := make([]string, 0, (len(punches)+1)/2)
	for i := 0; i < len(punches); i += 2 {
		start := FormatClock(punches[i], use24h)
		end := "…"
		if i+1 < len(punches) {
			end = FormatClock(punches[i+1], use24h)
		}
		parts = append(parts, start+"-"+end)
	}
	return strings.Join(parts, " ")
}

// WorkBar draws the share of worked time against breaks.
func WorkBar(worked, breaks, width int) string {
	total := worked + breaks
	if total <= 0 || width <= 0 {
		return "[" + strings.Repeat("░", max(width, 0)) + "]"
	}

	filled := (worked * width) / total
	bar := formatWorked(strings.Repeat("█", filled)) + formatBreak(strings.Repeat("░", width-filled))
	return fmt.Sprintf("[%s] %d%% worked", bar, (worked*100)/total)
}

// padRight pads s with spaces to width display columns, ignoring ANSI codes.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// truncateText shortens plain text to width display columns.
func truncateText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// PrintDay prints the punches of a day as clock-in/clock-out pairs followed
// by its totals.
func PrintDay(w io.Writer, day *timesheet.Day, opts PrintOpts) error {
	s, err := day.Series(opts.Series)
	if err != nil {
		return err
	}

	for i, p := range s.Pairs() {
		in := FormatClock(p.Start, opts.Use24h)
		if opts.Verbose {
			in += formatMuted(" (" + FormatClock(p.Start.Round(opts.Series.RoundingFactor), opts.Use24h) + ")")
		}

		if !p.Closed {
			_, _ = fmt.Fprintf(w, "  %d  %s  %s\n", i+1, padRight(in, 24), formatOpen("clocked in"))
			continue
		}

		out := FormatClock(p.End, opts.Use24h)
		if opts.Verbose {
			out += formatMuted(" (" + FormatClock(p.End.Round(opts.Series.RoundingFactor), opts.Use24h) + ")")
		}
		_, _ = fmt.Fprintf(w, "  %d  %s  %s  %s\n", i+1, padRight(in, 24), padRight(out, 24),
			formatMuted(FormatDuration(p.Minutes())))
	}

	if day.Note != "" {
		_, _ = fmt.Fprintf(w, "\n  %s\n", formatMuted(truncateText(day.Note, termWidth()-4)))
	}

	_, _ = fmt.Fprintln(w)
	PrintTotals(w, summary.Summarize(day, opts.Series))
	return nil
}

// PrintTotals prints the worked, break, deduction and net line for a day.
func PrintTotals(w io.Writer, stats summary.DayStats) {
	parts := []string{
		formatWorked("Worked: " + FormatDuration(stats.Worked)),
		formatBreak("Break: " + FormatDuration(stats.Break)),
	}
	if stats.Deducted > 0 {
		parts = append(parts, formatDeducted("Deducted: "+FormatDuration(stats.Deducted)))
	}
	parts = append(parts, formatHeader("Net: "+FormatDuration(stats.Net)))

	_, _ = fmt.Fprintf(w, "%s\n", strings.Join(parts, " | "))
	if stats.Worked+stats.Break > 0 {
		_, _ = fmt.Fprintf(w, "%s\n", WorkBar(stats.Worked, stats.Break, 20))
	}
}
