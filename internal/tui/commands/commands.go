// Package commands provides editor command constructors and message types.
package commands

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/timecard/internal/timesheet"
)

// StatusTTL is how long a status message stays in the footer.
const StatusTTL = 3 * time.Second

// DayLoadedMsg is sent when a day has been read from the repository.
// Days with no record arrive as an empty Day.
type DayLoadedMsg struct {
	Day *timesheet.Day
}

// DaySavedMsg is sent after a day was written.
type DaySavedMsg struct {
	Day *timesheet.Day
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsg is sent for temporary status messages.
type StatusMsg struct {
	Msg string
}

// ClearStatusMsg is sent to clear status message ID. A newer message is
// left alone.
type ClearStatusMsg struct {
	ID int
}

// LoadDay reads the punches recorded on date.
func LoadDay(repo timesheet.Repository, date time.Time) tea.Cmd {
	return func() tea.Msg {
		day, err := repo.GetDay(context.Background(), date)
		if errors.Is(err, timesheet.ErrDayNotFound) {
			return DayLoadedMsg{Day: timesheet.NewDay(date)}
		}
		if err != nil {
			return ErrMsg{Err: err}
		}
		return DayLoadedMsg{Day: day}
	}
}

// SaveDay writes a copy of day so later edits do not race the write.
func SaveDay(repo timesheet.Repository, day *timesheet.Day) tea.Cmd {
	snapshot := *day
	snapshot.Punches = append(snapshot.Punches[:0:0], day.Punches...)

	return func() tea.Msg {
		if err := repo.SaveDay(context.Background(), &snapshot); err != nil {
			return ErrMsg{Err: err}
		}
		return DaySavedMsg{Day: &snapshot}
	}
}

// CopyText places text on the clipboard using copyFn.
func CopyText(copyFn func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return ErrMsg{Err: err}
		}
		return StatusMsg{Msg: "Copied day summary"}
	}
}

// ClearStatusAfter clears status message id after d.
func ClearStatusAfter(d time.Duration, id int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}
