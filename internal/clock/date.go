package clock

import (
	"fmt"
	"time"
)

// On returns t on the calendar day of date, in date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, t.total, 0, 0, date.Location())
}

// Today returns t on the current day.
func (t TimeOfDay) Today() time.Time { return t.On(nowFunc()) }

// Yesterday returns t on the previous day.
func (t TimeOfDay) Yesterday() time.Time { return t.On(nowFunc().AddDate(0, 0, -1)) }

// Tomorrow returns t on the next day.
func (t TimeOfDay) Tomorrow() time.Time { return t.On(nowFunc().AddDate(0, 0, 1)) }

// Slots enumerates the grid of step-minute times from from.Round(step) up to
// and including to, e.g. every quarter hour across a day.
func Slots(from, to TimeOfDay, step int) ([]TimeOfDay, error) {
	if step < 1 || step >= minutesPerHour {
		return nil, fmt.Errorf("%w: step %d must be in [1, 60)", ErrValidation, step)
	}
	var slots []TimeOfDay
	for cur := from.Round(step); cur.total <= to.total; {
		slots = append(slots, cur)
		next, err := cur.Succ(step)
		if err != nil {
			return nil, err
		}
		if next.total <= cur.total {
			break
		}
		cur = next
	}
	return slots, nil
}
