// Package timesheet defines the stored unit of work tracking: one day of
// clock punches.
package timesheet

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/javiermolinar/timecard/internal/clock"
	"github.com/javiermolinar/timecard/internal/dateutil"
	"github.com/javiermolinar/timecard/internal/series"
)

// Domain errors.
var (
	ErrDayNotFound    = errors.New("day not found")
	ErrMissingDate    = errors.New("day must have a date")
	ErrDuplicatePunch = errors.New("punch already recorded")
	ErrPunchPastDay   = errors.New("punch must fall within the day")
)

// lastMinute is the total of 23:59, the latest punch a day can store.
var lastMinute = clock.EndOfDay().TotalMinutes()

// Day holds the punches recorded on a single date. Punches alternate between
// clock-in and clock-out and are kept in non-decreasing order.
type Day struct {
	ID        int64
	Date      time.Time
	Punches   []clock.TimeOfDay
	Note      string
	UpdatedAt time.Time
}

// NewDay creates an empty Day for date.
func NewDay(date time.Time) *Day {
	return &Day{Date: dateutil.TruncateToDay(date)}
}

// Series builds the punch series for the day under opts.
func (d *Day) Series(opts series.Options) (*series.Series, error) {
	return series.FromOrderedList(d.Punches, opts)
}

// AddPunch inserts t in order. A time already on the day is rejected with
// ErrDuplicatePunch.
func (d *Day) AddPunch(t clock.TimeOfDay) error {
	if t.TotalMinutes() > lastMinute {
		return fmt.Errorf("%w: %d minutes", ErrPunchPastDay, t.TotalMinutes())
	}
	i, found := slices.BinarySearchFunc(d.Punches, t, clock.TimeOfDay.Compare)
	if found {
		return fmt.Errorf("%w: %s", ErrDuplicatePunch, t)
	}
	d.Punches = slices.Insert(d.Punches, i, t)
	return nil
}

// RemovePunch removes t from the day and reports whether it was there.
func (d *Day) RemovePunch(t clock.TimeOfDay) bool {
	i, found := slices.BinarySearchFunc(d.Punches, t, clock.TimeOfDay.Compare)
	if !found {
		return false
	}
	d.Punches = slices.Delete(d.Punches, i, i+1)
	return true
}

// IsOpen reports whether the last punch is a clock-in without a clock-out.
func (d *Day) IsOpen() bool {
	return len(d.Punches)%2 == 1
}

// Validate checks the day can be stored.
func (d *Day) Validate() error {
	if d.Date.IsZero() {
		return ErrMissingDate
	}
	for _, p := range d.Punches {
		if p.TotalMinutes() > lastMinute {
			return fmt.Errorf("punches for %s: %w: %d minutes", d.Date.Format(dateutil.DateLayout), ErrPunchPastDay, p.TotalMinutes())
		}
	}
	if _, err := series.FromOrderedList(d.Punches, series.DefaultOptions()); err != nil {
		return fmt.Errorf("punches for %s: %w", d.Date.Format(dateutil.DateLayout), err)
	}
	return nil
}
