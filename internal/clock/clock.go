// Package clock defines TimeOfDay, a wall-clock time without a date.
package clock

import (
	"cmp"
	"errors"
	"fmt"
	"time"
)

// Error kinds. Call sites wrap these with context; check with errors.Is.
var (
	ErrParse        = errors.New("unrecognized time of day")
	ErrValidation   = errors.New("invalid time of day")
	ErrTypeCoercion = errors.New("cannot coerce value into a time of day")
	ErrStructural   = errors.New("operation not allowed on a terminal interval")
)

// DefaultRoundingFactor is the minute granularity used by Round when no
// factor is given.
const DefaultRoundingFactor = 15

const (
	minutesPerHour = 60
	hoursPerDay    = 24
)

// Clock is anything exposing an hour and a minute, such as time.Time.
type Clock interface {
	Hour() int
	Minute() int
}

// TimeOfDay is an immutable hour/minute pair.
//
// The zero value is midnight. Hour 24 is accepted on construction and folded
// to 0, but the unfolded total is kept so that 24:00 still measures 1440
// minutes when subtracted from another time.
type TimeOfDay struct {
	hour   int
	minute int
	total  int
}

var (
	beginningOfDay = TimeOfDay{}
	endOfDay       = TimeOfDay{hour: 23, minute: 59, total: 23*minutesPerHour + 59}
)

// BeginningOfDay returns 0:00.
func BeginningOfDay() TimeOfDay { return beginningOfDay }

// EndOfDay returns 23:59.
func EndOfDay() TimeOfDay { return endOfDay }

// New creates a TimeOfDay. hour must be in [0, 24] and minute in [0, 60).
func New(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > hoursPerDay {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d out of range [0, 24]", ErrValidation, hour)
	}
	if minute < 0 || minute >= minutesPerHour {
		return TimeOfDay{}, fmt.Errorf("%w: minute %d out of range [0, 60)", ErrValidation, minute)
	}
	total := hour*minutesPerHour + minute
	if hour == hoursPerDay {
		hour = 0
	}
	return TimeOfDay{hour: hour, minute: minute, total: total}, nil
}

// MustNew is like New but panics on invalid input. Intended for tests and
// package-level values.
func MustNew(hour, minute int) TimeOfDay {
	t, err := New(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// FromMinutes converts a number of minutes since midnight into a TimeOfDay.
func FromMinutes(total int) (TimeOfDay, error) {
	hour := floorDiv(total, minutesPerHour)
	return New(hour, total-hour*minutesPerHour)
}

// FromClock extracts the hour and minute of c.
func FromClock(c Clock) (TimeOfDay, error) {
	return New(c.Hour(), c.Minute())
}

// nowFunc is swapped in tests.
var nowFunc = time.Now

// Now returns the current wall-clock time of day.
func Now() TimeOfDay {
	return FromTime(nowFunc())
}

// FromTime returns the wall-clock time of day of t, dropping seconds.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{hour: t.Hour(), minute: t.Minute(), total: t.Hour()*minutesPerHour + t.Minute()}
}

// Hour returns the hour in [0, 24).
func (t TimeOfDay) Hour() int { return t.hour }

// Minute returns the minute in [0, 60).
func (t TimeOfDay) Minute() int { return t.minute }

// TotalMinutes returns the number of minutes since midnight.
func (t TimeOfDay) TotalMinutes() int { return t.total }

// Add returns t moved forward by minutes. The carry spans at most one hour:
// offsets that would cross a second hour boundary are rejected.
func (t TimeOfDay) Add(minutes int) (TimeOfDay, error) {
	if minutes < 0 {
		return t.SubMinutes(-minutes)
	}
	m := t.minute + minutes
	if m < minutesPerHour {
		return New(t.hour, m)
	}
	if m >= 2*minutesPerHour {
		return TimeOfDay{}, fmt.Errorf("%w: adding %d minutes to %s crosses more than one hour", ErrValidation, minutes, t)
	}
	return New(t.hour+1, m-minutesPerHour)
}

// SubMinutes returns t moved backward by minutes, with the same single-hour
// borrow restriction as Add.
func (t TimeOfDay) SubMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 {
		return t.Add(-minutes)
	}
	m := t.minute - minutes
	if m >= 0 {
		return New(t.hour, m)
	}
	if m < -minutesPerHour {
		return TimeOfDay{}, fmt.Errorf("%w: subtracting %d minutes from %s crosses more than one hour", ErrValidation, minutes, t)
	}
	return New(t.hour-1, m+minutesPerHour)
}

// Sub returns the signed number of minutes between t and other.
func (t TimeOfDay) Sub(other TimeOfDay) int {
	return t.total - other.total
}

// Round snaps t to the nearest multiple of factor minutes. Halves round away
// from zero. A factor below 1 leaves t unchanged. Results past the end of the
// day are clamped to 24:00.
func (t TimeOfDay) Round(factor int) TimeOfDay {
	if factor < 1 {
		return t
	}
	snapped := min(roundHalfAway(t.total, factor)*factor, max(t.total, hoursPerDay*minutesPerHour))
	r, err := FromMinutes(snapped)
	if err != nil {
		return t
	}
	return r
}

// RoundDefault rounds to DefaultRoundingFactor.
func (t TimeOfDay) RoundDefault() TimeOfDay {
	return t.Round(DefaultRoundingFactor)
}

// Succ returns the next step after t on a grid of step minutes.
func (t TimeOfDay) Succ(step int) (TimeOfDay, error) {
	return t.Round(step).Add(step)
}

// Compare orders by hour, then minute. It returns -1, 0 or +1.
func (t TimeOfDay) Compare(other TimeOfDay) int {
	if c := cmp.Compare(t.hour, other.hour); c != 0 {
		return c
	}
	return cmp.Compare(t.minute, other.minute)
}

// Before reports whether t is earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool { return t.Compare(other) < 0 }

// After reports whether t is later than other.
func (t TimeOfDay) After(other TimeOfDay) bool { return t.Compare(other) > 0 }

// Equal reports whether t and other show the same hour and minute.
func (t TimeOfDay) Equal(other TimeOfDay) bool { return t.Compare(other) == 0 }

// MatchesClock reports whether c shows the same hour and minute as t,
// whatever its concrete type.
func (t TimeOfDay) MatchesClock(c Clock) bool {
	return c != nil && t.hour == c.Hour() && t.minute == c.Minute()
}

// IsPM reports whether t is at or after noon.
func (t TimeOfDay) IsPM() bool { return t.hour >= 12 }

// IsAM reports whether t is before noon.
func (t TimeOfDay) IsAM() bool { return !t.IsPM() }

// String formats t as "H:MM AM" or "H:MM PM".
func (t TimeOfDay) String() string {
	meridiem := "AM"
	if t.IsPM() {
		meridiem = "PM"
	}
	h := t.hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, t.minute, meridiem)
}

// Format24 formats t as "HH:MM".
func (t TimeOfDay) Format24() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

func roundHalfAway(n, d int) int {
	if n < 0 {
		return -roundHalfAway(-n, d)
	}
	return (2*n + d) / (2 * d)
}

func floorDiv(n, d int) int {
	q := n / d
	if (n%d != 0) && ((n < 0) != (d < 0)) {
		q--
	}
	return q
}
