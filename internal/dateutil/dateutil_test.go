package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2025-01-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ParseDate("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		today := TruncateToDay(time.Now())
		if !got.Equal(today) {
			t.Errorf("got %v, want %v", got, today)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("01-15-2025")
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name       string
		input      time.Time
		wantMonday time.Time
		wantSunday time.Time
	}{
		{
			name:       "wednesday",
			input:      time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC),
			wantMonday: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "monday",
			input:      time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
			wantMonday: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "sunday belongs to the previous monday",
			input:      time.Date(2025, 1, 19, 23, 59, 0, 0, time.UTC),
			wantMonday: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monday, sunday := WeekRange(tt.input)
			if !monday.Equal(tt.wantMonday) {
				t.Errorf("monday = %v, want %v", monday, tt.wantMonday)
			}
			if !sunday.Equal(tt.wantSunday) {
				t.Errorf("sunday = %v, want %v", sunday, tt.wantSunday)
			}
		})
	}
}

func TestParseRelativeDate(t *testing.T) {
	// Wednesday
	ref := time.Date(2025, 1, 15, 16, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		input string
		want  time.Time
	}{
		{input: "", want: day(15)},
		{input: "today", want: day(15)},
		{input: "Yesterday", want: day(14)},
		{input: "last-week", want: day(8)},
		{input: "wednesday", want: day(15)},
		{input: "monday", want: day(13)},
		{input: "thursday", want: day(9)},
		{input: "last-wednesday", want: day(8)},
		{input: "last-tuesday", want: day(14)},
		{input: "2025-01-02", want: day(2)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRelativeDate(tt.input, ref)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseRelativeDate_Errors(t *testing.T) {
	ref := time.Date(2025, 1, 15, 16, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  error
	}{
		{input: "tomorrow", want: ErrInvalidDateFormat},
		{input: "last-someday", want: ErrInvalidDateFormat},
		{input: "15/01/2025", want: ErrInvalidDateFormat},
		{input: "2025-01-16", want: ErrDateInFuture},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseRelativeDate(tt.input, ref)
			if !errors.Is(err, tt.want) {
				t.Errorf("got error %v, want %v", err, tt.want)
			}
		})
	}
}
