// Package view provides rendering helpers for the punch editor.
package view

import (
	"fmt"

	"github.com/javiermolinar/timecard/internal/clock"
)

// FormatDuration formats minutes as "Xh Ym".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		return "-" + FormatDuration(-minutes)
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatClock renders t on a 12 or 24-hour clock.
func FormatClock(t clock.TimeOfDay, use24h bool) string {
	if use24h {
		return t.Format24()
	}
	return t.String()
}
