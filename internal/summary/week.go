// Package summary aggregates recorded days into week totals.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/javiermolinar/timecard/internal/dateutil"
	"github.com/javiermolinar/timecard/internal/series"
	"github.com/javiermolinar/timecard/internal/timesheet"
)

// DayStats holds the computed minutes for one day.
type DayStats struct {
	Date     time.Time
	Day      *timesheet.Day // nil when nothing was recorded
	Worked   int            // rounded clock-in to clock-out minutes
	Break    int            // rounded minutes between pairs
	Deducted int            // automatic break deduction, 0 when not applied
	Net      int            // Worked - Deducted
	Open     bool           // last punch has no clock-out
	Err      error          // punches that could not form a series
}

// Recorded reports whether any punch exists for the day.
func (d DayStats) Recorded() bool {
	return d.Day != nil && len(d.Day.Punches) > 0
}

// WeekSummary holds aggregated week data.
type WeekSummary struct {
	Start time.Time
	End   time.Time
	Days  [7]DayStats // Monday (0) through Sunday (6)
}

// TotalWorked returns the sum of worked minutes.
func (w *WeekSummary) TotalWorked() int {
	return w.sum(func(d DayStats) int { return d.Worked })
}

// TotalBreak returns the sum of break minutes.
func (w *WeekSummary) TotalBreak() int {
	return w.sum(func(d DayStats) int { return d.Break })
}

// TotalDeducted returns the sum of deducted minutes.
func (w *WeekSummary) TotalDeducted() int {
	return w.sum(func(d DayStats) int { return d.Deducted })
}

// TotalNet returns the sum of net minutes.
func (w *WeekSummary) TotalNet() int {
	return w.sum(func(d DayStats) int { return d.Net })
}

// DaysWorked returns the number of days with at least one punch.
func (w *WeekSummary) DaysWorked() int {
	n := 0
	for _, d := range w.Days {
		if d.Recorded() {
			n++
		}
	}
	return n
}

// AverageNet returns the mean net minutes over the days worked.
func (w *WeekSummary) AverageNet() int {
	n := w.DaysWorked()
	if n == 0 {
		return 0
	}
	return w.TotalNet() / n
}

func (w *WeekSummary) sum(f func(DayStats) int) int {
	total := 0
	for _, d := range w.Days {
		total += f(d)
	}
	return total
}

// Summarize computes the stats for a single day under opts.
func Summarize(d *timesheet.Day, opts series.Options) DayStats {
	stats := DayStats{Date: d.Date, Day: d, Open: d.IsOpen()}

	s, err := d.Series(opts)
	if err != nil {
		stats.Err = err
		return stats
	}

	fillMinutes(&stats, s)
	return stats
}

// SeriesStats computes the stats of a series that is not tied to a stored day.
func SeriesStats(s *series.Series) DayStats {
	stats := DayStats{Open: s.IsOdd()}
	fillMinutes(&stats, s)
	return stats
}

func fillMinutes(stats *DayStats, s *series.Series) {
	stats.Worked = s.IntervalTime()
	stats.Break = s.GapTime()
	stats.Net = s.Minutes()
	stats.Deducted = stats.Worked - stats.Net
}

// SummarizeWeek builds the week containing weekStart from days. Days outside
// that week are ignored.
func SummarizeWeek(weekStart time.Time, days []*timesheet.Day, opts series.Options) *WeekSummary {
	start, end := dateutil.WeekRange(weekStart)
	w := &WeekSummary{Start: start, End: end}

	for i := range w.Days {
		w.Days[i].Date = start.AddDate(0, 0, i)
	}

	for _, d := range days {
		date := dateutil.TruncateToDay(d.Date)
		for i := range w.Days {
			if w.Days[i].Date.Equal(date) {
				w.Days[i] = Summarize(d, opts)
				w.Days[i].Date = date
				break
			}
		}
	}

	return w
}

// BuildWeekSummary loads the days of the week containing weekStart and
// summarizes them. A zero weekStart means the current week.
func BuildWeekSummary(ctx context.Context, repo timesheet.Repository, weekStart time.Time, opts series.Options) (*WeekSummary, error) {
	if weekStart.IsZero() {
		weekStart = time.Now()
	}

	start, end := dateutil.WeekRange(weekStart)
	days, err := repo.ListDaysByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetching days: %w", err)
	}

	return SummarizeWeek(start, days, opts), nil
}
