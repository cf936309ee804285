// Package dateutil provides date parsing helpers for timesheet days.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
	ErrDateInFuture      = errors.New("cannot record time in the future")
)

// DateLayout is the storage and flag format for days.
const DateLayout = "2006-01-02"

var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseDate parses a YYYY-MM-DD date in the local time zone. Empty means
// today.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (monday, sunday time.Time) {
	t = TruncateToDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday = t.AddDate(0, 0, -(weekday - 1))
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// TruncateToDay returns t with its clock set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseRelativeDate resolves a day looking backwards from relativeTo:
//   - "" or "today"
//   - "yesterday"
//   - a weekday name: the most recent such day, today included
//   - "last-<weekday>": the one before that, never today
//   - "last-week": seven days ago
//   - "YYYY-MM-DD"
//
// Input is case-insensitive. Dates after relativeTo's day are rejected with
// ErrDateInFuture, since punches are recorded after the fact.
func ParseRelativeDate(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "last-week":
		return today.AddDate(0, 0, -7), nil
	}

	if name, ok := strings.CutPrefix(input, "last-"); ok {
		target, ok := weekdayMap[name]
		if !ok {
			return time.Time{}, ErrInvalidDateFormat
		}
		return previousWeekday(today.AddDate(0, 0, -1), target), nil
	}

	if target, ok := weekdayMap[input]; ok {
		return previousWeekday(today, target), nil
	}

	result, err := time.ParseInLocation(DateLayout, input, relativeTo.Location())
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	if result.After(today) {
		return time.Time{}, ErrDateInFuture
	}
	return result, nil
}

// previousWeekday returns the latest day on or before from that falls on
// target.
func previousWeekday(from time.Time, target time.Weekday) time.Time {
	back := int(from.Weekday()) - int(target)
	if back < 0 {
		back += 7
	}
	return from.AddDate(0, 0, -back)
}
