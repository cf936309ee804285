package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/timecard/internal/clock"
	"github.com/javiermolinar/timecard/internal/timesheet"
)

func punches(texts ...string) []clock.TimeOfDay {
	out := make([]clock.TimeOfDay, len(texts))
	for i, s := range texts {
		out[i] = clock.MustParse(s)
	}
	return out
}

func TestSaveDay(t *testing.T) {
	repo := newTestRepo(t)

	day := &timesheet.Day{
		Date:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local),
		Punches: punches("8:00", "12:00", "12:30", "17:00"),
		Note:    "release day",
	}

	if err := repo.SaveDay(context.Background(), day); err != nil {
		t.Fatalf("SaveDay failed: %v", err)
	}

	if day.ID == 0 {
		t.Error("expected ID to be set after insert")
	}
	if day.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
}

func TestSaveDay_Upsert(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)

	first := &timesheet.Day{Date: date, Punches: punches("8:00")}
	if err := repo.SaveDay(ctx, first); err != nil {
		t.Fatalf("SaveDay failed: %v", err)
	}

	second := &timesheet.Day{Date: date, Punches: punches("8:00", "16:30"), Note: "left early"}
	if err := repo.SaveDay(ctx, second); err != nil {
		t.Fatalf("SaveDay failed: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected upsert to keep ID %d, got %d", first.ID, second.ID)
	}

	got, err := repo.GetDay(ctx, date)
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if len(got.Punches) != 2 {
		t.Errorf("expected 2 punches after upsert, got %d", len(got.Punches))
	}
	if got.Note != "left early" {
		t.Errorf("expected note %q, got %q", "left early", got.Note)
	}
}

func TestSaveDay_InvalidPunches(t *testing.T) {
	repo := newTestRepo(t)

	day := &timesheet.Day{
		Date:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local),
		Punches: punches("17:00", "8:00"),
	}

	err := repo.SaveDay(context.Background(), day)
	if !errors.Is(err, clock.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestSaveDay_PunchPastMidnight(t *testing.T) {
	repo := newTestRepo(t)

	late, err := clock.FromMinutes(24*60 + 15)
	if err != nil {
		t.Fatalf("FromMinutes: %v", err)
	}
	day := &timesheet.Day{
		Date:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local),
		Punches: []clock.TimeOfDay{clock.MustNew(22, 0), late},
	}

	if err := repo.SaveDay(context.Background(), day); !errors.Is(err, timesheet.ErrPunchPastDay) {
		t.Errorf("expected ErrPunchPastDay, got %v", err)
	}
}

func TestGetDay(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)

	day := &timesheet.Day{
		Date:    date,
		Punches: punches("7:45 AM", "11:58 AM", "12:29 PM", "4:02 PM"),
		Note:    "on call",
	}
	if err := repo.SaveDay(ctx, day); err != nil {
		t.Fatalf("SaveDay failed: %v", err)
	}

	got, err := repo.GetDay(ctx, date)
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}

	if got.ID != day.ID {
		t.Errorf("ID = %d, want %d", got.ID, day.ID)
	}
	if !got.Date.Equal(date) {
		t.Errorf("Date = %v, want %v", got.Date, date)
	}
	if got.Note != "on call" {
		t.Errorf("Note = %q, want %q", got.Note, "on call")
	}
	if len(got.Punches) != len(day.Punches) {
		t.Fatalf("got %d punches, want %d", len(got.Punches), len(day.Punches))
	}
	for i := range day.Punches {
		if !got.Punches[i].Equal(day.Punches[i]) {
			t.Errorf("punch %d = %s, want %s", i, got.Punches[i], day.Punches[i])
		}
	}
}

func TestGetDay_NoPunches(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)

	if err := repo.SaveDay(ctx, &timesheet.Day{Date: date, Note: "sick"}); err != nil {
		t.Fatalf("SaveDay failed: %v", err)
	}

	got, err := repo.GetDay(ctx, date)
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if len(got.Punches) != 0 {
		t.Errorf("expected no punches, got %v", got.Punches)
	}
}

func TestGetDay_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetDay(context.Background(), time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local))
	if !errors.Is(err, timesheet.ErrDayNotFound) {
		t.Errorf("expected ErrDayNotFound, got %v", err)
	}
}

func TestListDaysByDateRange(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, d := range []int{16, 13, 20, 14} {
		day := &timesheet.Day{
			Date:    time.Date(2025, 1, d, 0, 0, 0, 0, time.Local),
			Punches: punches("9:00", "17:00"),
		}
		if err := repo.SaveDay(ctx, day); err != nil {
			t.Fatalf("SaveDay failed: %v", err)
		}
	}

	start := time.Date(2025, 1, 13, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 1, 19, 0, 0, 0, 0, time.Local)

	days, err := repo.ListDaysByDateRange(ctx, start, end)
	if err != nil {
		t.Fatalf("ListDaysByDateRange failed: %v", err)
	}

	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}

	wantDays := []int{13, 14, 16}
	for i, d := range days {
		if d.Date.Day() != wantDays[i] {
			t.Errorf("day %d = %v, want Jan %d", i, d.Date, wantDays[i])
		}
	}
}

func TestListDaysByDateRange_Empty(t *testing.T) {
	repo := newTestRepo(t)

	days, err := repo.ListDaysByDateRange(context.Background(),
		time.Date(2025, 1, 13, 0, 0, 0, 0, time.Local),
		time.Date(2025, 1, 19, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("ListDaysByDateRange failed: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("expected no days, got %d", len(days))
	}
}

func TestDeleteDay(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)

	if err := repo.SaveDay(ctx, &timesheet.Day{Date: date, Punches: punches("9:00")}); err != nil {
		t.Fatalf("SaveDay failed: %v", err)
	}

	if err := repo.DeleteDay(ctx, date); err != nil {
		t.Fatalf("DeleteDay failed: %v", err)
	}

	if _, err := repo.GetDay(ctx, date); !errors.Is(err, timesheet.ErrDayNotFound) {
		t.Errorf("expected ErrDayNotFound after delete, got %v", err)
	}

	if err := repo.DeleteDay(ctx, date); !errors.Is(err, timesheet.ErrDayNotFound) {
		t.Errorf("expected ErrDayNotFound on second delete, got %v", err)
	}
}

func TestPunchEncoding(t *testing.T) {
	in := punches("7:05 AM", "12 PM", "23:59")

	encoded := encodePunches(in)
	if encoded != "07:05,12:00,23:59" {
		t.Errorf("encodePunches() = %q", encoded)
	}

	out, err := decodePunches(encoded)
	if err != nil {
		t.Fatalf("decodePunches failed: %v", err)
	}
	for i := range in {
		if !out[i].Equal(in[i]) {
			t.Errorf("punch %d = %s, want %s", i, out[i], in[i])
		}
	}

	if _, err := decodePunches("07:05,lunch"); !errors.Is(err, clock.ErrParse) {
		t.Errorf("expected ErrParse for corrupt punches, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2025-01-15", time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)},
		{"2025-01-15T00:00:00Z", time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)},
		{"2025-01-15T10:30:00Z", time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"2025-01-15 10:30:00", time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDate(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := parseDate("yesterday"); err == nil {
		t.Error("expected error for unrecognized date")
	}
}

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}
