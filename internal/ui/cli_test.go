package ui

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/javiermolinar/timecard/internal/config"
	"github.com/javiermolinar/timecard/internal/db"
	"github.com/javiermolinar/timecard/internal/timesheet"
)

// Wednesday
var testNow = time.Date(2025, 1, 15, 10, 30, 0, 0, time.Local)

func newTestApp(t *testing.T) *App {
	t.Helper()

	restore := nowFunc
	nowFunc = func() time.Time { return testNow }
	t.Cleanup(func() { nowFunc = restore })
	DisableColor()

	cfg := config.Default()
	cfg.Storage.DBPath = filepath.Join(t.TempDir(), "test.db")

	repo, err := db.New(cfg.Storage.DBPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	app := NewApp(repo, cfg)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func run(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	resetFlags(app.Root())

	var buf bytes.Buffer
	app.Root().SetOut(&buf)
	app.Root().SetErr(&buf)
	app.SetArgs(args)
	err := app.Execute()
	return buf.String(), err
}

// resetFlags restores flag defaults, since cobra keeps values between
// executions of the same command tree.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func mustRun(t *testing.T, app *App, args ...string) string {
	t.Helper()

	out, err := run(t, app, args...)
	if err != nil {
		t.Fatalf("timecard %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	app := newTestApp(t)

	out := mustRun(t, app, "version")
	assertContains(t, out, "timecard dev")
}

func TestPunchCmd(t *testing.T) {
	app := newTestApp(t)

	out := mustRun(t, app, "punch", "8:00", "12:00", "12:30", "17:00", "--date=2025-01-14", "--note=release")
	assertContains(t, out,
		"Recorded 8:00 AM, 12:00 PM, 12:30 PM, 5:00 PM on Tue Jan 14 (clocked out)",
		"Worked: 8h30m",
		"Break: 30m",
		"Net: 8h30m",
		"release",
	)
}

func TestPunchCmd_Now(t *testing.T) {
	app := newTestApp(t)

	out := mustRun(t, app, "punch")
	assertContains(t, out, "Recorded 10:30 AM on Wed Jan 15 (clocked in)", "clocked in")
}

func TestPunchCmd_NowOnPastDay(t *testing.T) {
	app := newTestApp(t)

	if _, err := run(t, app, "punch", "--date=yesterday"); err == nil {
		t.Error("expected error when punching a past day without a time")
	}
}

func TestPunchCmd_Incremental(t *testing.T) {
	app := newTestApp(t)

	mustRun(t, app, "punch", "8:00", "12:00")
	out := mustRun(t, app, "punch", "12:30 PM")
	assertContains(t, out, "(clocked in)")

	_, err := run(t, app, "punch", "8 AM")
	if !errors.Is(err, timesheet.ErrDuplicatePunch) {
		t.Errorf("expected ErrDuplicatePunch, got %v", err)
	}
}

func TestPunchCmd_InvalidTime(t *testing.T) {
	app := newTestApp(t)

	if _, err := run(t, app, "punch", "25:00"); err == nil {
		t.Error("expected parse error")
	}
}

func TestPunchCmd_QuotedTimes(t *testing.T) {
	app := newTestApp(t)

	out := mustRun(t, app, "punch", " 8:00 AM", "12:00 PM ", "--date=2025-01-14")
	assertContains(t, out, "Recorded 8:00 AM, 12:00 PM on Tue Jan 14 (clocked out)")
}

func TestShowCmd(t *testing.T) {
	app := newTestApp(t)

	out := mustRun(t, app, "show")
	assertContains(t, out, "No punches recorded for Wednesday, January 15, 2025.")

	mustRun(t, app, "punch", "7:53", "12:02", "12:29", "16:58")
	out = mustRun(t, app, "show", "--verbose")
	assertContains(t, out,
		"=== Wednesday, January 15, 2025 ===",
		"7:53 AM (8:00 AM)",
		"4:58 PM (5:00 PM)",
		"Net: 8h30m",
	)
}

func TestCalcCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "default rounding",
			args: []string{"8:00", "12:00", "12:30", "17:00"},
			want: []string{"(8:00 AM => 12:00 PM, 12:30 PM => 5:00 PM)", "Worked: 8h30m", "Net: 8h30m"},
		},
		{
			name: "deduction applied without rounding",
			args: []string{"8:00", "12:00", "12:25", "17:00", "--deduct-break", "--round=1"},
			want: []string{"Worked: 8h35m", "Break: 25m", "Deducted: 30m", "Net: 8h5m"},
		},
		{
			name: "deduction required but disabled",
			args: []string{"8:00", "12:00", "12:10", "17:00"},
			want: []string{"Net: 8h45m", "--deduct-break would deduct it"},
		},
		{
			name: "custom limit",
			args: []string{"8:00", "12:00", "12:10", "13:00", "--deduct-break", "--limit=300", "--break=15"},
			want: []string{"Worked: 4h45m", "Net: 4h45m"},
		},
		{
			name: "open series",
			args: []string{"8:00", "12:00", "12:30"},
			want: []string{"(8:00 AM, 12:00 PM, 12:30 PM)", "Last punch has no clock-out."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			out := mustRun(t, app, append([]string{"calc"}, tt.args...)...)
			assertContains(t, out, tt.want...)
		})
	}
}

func TestCalcCmd_Inverted(t *testing.T) {
	app := newTestApp(t)

	if _, err := run(t, app, "calc", "17:00", "8:00"); err == nil {
		t.Error("expected validation error for inverted punches")
	}
}

func TestRoundCmd(t *testing.T) {
	app := newTestApp(t)

	out := mustRun(t, app, "round", "7:52", "7:53")
	assertContains(t, out, "7:52 AM   →  7:45 AM", "7:53 AM   →  8:00 AM")

	out = mustRun(t, app, "round", "7:52", "--factor=5")
	assertContains(t, out, "→  7:50 AM")
}

func TestSlotsCmd(t *testing.T) {
	app := newTestApp(t)

	out := mustRun(t, app, "slots", "--from=8AM", "--to=9AM", "--step=30")
	assertContains(t, out, "8:00 AM", "8:30 AM", "9:00 AM", "3 slots")

	out = mustRun(t, app, "slots")
	assertContains(t, out, "96 slots")
}

func TestWeekCmd(t *testing.T) {
	app := newTestApp(t)

	out := mustRun(t, app, "week")
	assertContains(t, out, "No punches recorded this week.")

	mustRun(t, app, "punch", "8:00", "12:00", "12:30", "17:00", "--date=monday")
	mustRun(t, app, "punch", "9:00", "13:00")

	out = mustRun(t, app, "week")
	assertContains(t, out,
		"WEEK: Mon Jan 13 - Sun Jan 19, 2025",
		"Mon Jan 13",
		"8:00 AM-12:00 PM 12:30 PM-5:00 PM",
		"Days worked: 2",
		"Net: 12h30m",
	)
}

func TestDeleteCmd(t *testing.T) {
	app := newTestApp(t)

	mustRun(t, app, "punch", "8:00", "12:00", "12:30", "--date=yesterday")

	out := mustRun(t, app, "delete", "--date=yesterday", "--punch=12:30 PM")
	assertContains(t, out, "Removed 12:30 PM from Tue Jan 14")

	out = mustRun(t, app, "show", "--date=yesterday")
	assertContains(t, out, "Net: 4h")

	if _, err := run(t, app, "delete", "--date=yesterday", "--punch=3 PM"); err == nil {
		t.Error("expected error removing a missing punch")
	}

	out = mustRun(t, app, "delete", "--date=yesterday")
	assertContains(t, out, "Deleted Tue Jan 14, 2025")

	_, err := run(t, app, "delete", "--date=yesterday")
	if !errors.Is(err, timesheet.ErrDayNotFound) {
		t.Errorf("expected ErrDayNotFound, got %v", err)
	}
}

func TestDeleteCmd_RequiresDate(t *testing.T) {
	app := newTestApp(t)

	if _, err := run(t, app, "delete"); err == nil {
		t.Error("expected error without --date")
	}
}

func TestUse24hClock(t *testing.T) {
	app := newTestApp(t)
	app.config.UI.Clock = config.Clock24h

	out := mustRun(t, app, "punch", "8:00", "17:30")
	assertContains(t, out, "Recorded 08:00, 17:30")
}
