package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/timecard/internal/clock"
	"github.com/javiermolinar/timecard/internal/dateutil"
	"github.com/javiermolinar/timecard/internal/timesheet"
)

// nowFunc returns the current time. Tests override it.
var nowFunc = time.Now

// resolveDate turns a --date flag into a day, looking backwards from today.
func resolveDate(s string) (time.Time, error) {
	date, err := dateutil.ParseRelativeDate(s, nowFunc())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return date, nil
}

// loadDay returns the stored day for date, or a new empty day.
func (a *App) loadDay(ctx context.Context, date time.Time) (*timesheet.Day, error) {
	day, err := a.repo.GetDay(ctx, date)
	if errors.Is(err, timesheet.ErrDayNotFound) {
		return timesheet.NewDay(date), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading day: %w", err)
	}
	return day, nil
}

// parseTime parses a time given on the command line. Quoted arguments may
// carry stray whitespace.
func parseTime(arg string) (clock.TimeOfDay, error) {
	return clock.ParseStrict(strings.TrimSpace(arg))
}

// parseTimes parses every argument strictly.
func parseTimes(args []string) ([]clock.TimeOfDay, error) {
	times := make([]clock.TimeOfDay, 0, len(args))
	for _, arg := range args {
		t, err := parseTime(arg)
		if err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, nil
}

func isToday(date time.Time) bool {
	return dateutil.TruncateToDay(nowFunc()).Equal(dateutil.TruncateToDay(date))
}
