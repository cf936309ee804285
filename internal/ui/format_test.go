package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/timecard/internal/clock"
	"github.com/javiermolinar/timecard/internal/series"
	"github.com/javiermolinar/timecard/internal/summary"
	"github.com/javiermolinar/timecard/internal/timesheet"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{30, "30m"},
		{60, "1h"},
		{510, "8h30m"},
		{-45, "-45m"},
		{-90, "-1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDuration(tt.minutes); got != tt.want {
				t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tm := clock.MustNew(17, 5)

	if got := FormatClock(tm, false); got != "5:05 PM" {
		t.Errorf("12h = %q, want %q", got, "5:05 PM")
	}
	if got := FormatClock(tm, true); got != "17:05" {
		t.Errorf("24h = %q, want %q", got, "17:05")
	}
}

func TestFormatPunches(t *testing.T) {
	punches := []clock.TimeOfDay{
		clock.MustNew(8, 0),
		clock.MustNew(12, 0),
		clock.MustNew(12, 30),
	}

	tests := []struct {
		name    string
		punches []clock.TimeOfDay
		use24h  bool
		want    string
	}{
		{name: "empty", want: ""},
		{name: "open pair 24h", punches: punches, use24h: true, want: "08:00-12:00 12:30-…"},
		{name: "closed pair 12h", punches: punches[:2], want: "8:00 AM-12:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPunches(tt.punches, tt.use24h); got != tt.want {
				t.Errorf("FormatPunches() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWorkBar(t *testing.T) {
	DisableColor()

	tests := []struct {
		name   string
		worked int
		breaks int
		want   string
	}{
		{name: "nothing", want: "[░░░░░░░░░░]"},
		{name: "no breaks", worked: 480, want: "[██████████] 100% worked"},
		{name: "three quarters", worked: 90, breaks: 30, want: "[███████░░░] 75% worked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WorkBar(tt.worked, tt.breaks, 10); got != tt.want {
				t.Errorf("WorkBar() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	colored := "\x1b[1mNet\x1b[0m"

	if got := padRight(colored, 6); got != colored+"   " {
		t.Errorf("padRight(colored) = %q", got)
	}
	if got := padRight("8:00 AM", 4); got != "8:00 AM" {
		t.Errorf("padRight should not cut, got %q", got)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("dentist appointment", 10); got != "dentist a…" {
		t.Errorf("truncateText() = %q", got)
	}
	if got := truncateText("short", 10); got != "short" {
		t.Errorf("truncateText() = %q", got)
	}
	if got := truncateText("anything", 0); got != "" {
		t.Errorf("truncateText() = %q", got)
	}
}

func TestPrintTotals_Deducted(t *testing.T) {
	DisableColor()

	var buf bytes.Buffer
	PrintTotals(&buf, summary.DayStats{Worked: 515, Break: 25, Deducted: 30, Net: 485})

	want := "Worked: 8h35m | Break: 25m | Deducted: 30m | Net: 8h5m"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("PrintTotals() = %q, want it to contain %q", buf.String(), want)
	}
}

func TestPrintDay_Invalid(t *testing.T) {
	day := &timesheet.Day{
		Date:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local),
		Punches: []clock.TimeOfDay{clock.MustNew(17, 0), clock.MustNew(8, 0)},
	}

	var buf bytes.Buffer
	if err := PrintDay(&buf, day, PrintOpts{Series: series.DefaultOptions()}); err == nil {
		t.Error("expected error for inverted punches")
	}
}
