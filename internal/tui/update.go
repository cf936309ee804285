package tui

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/timecard/internal/clock"
	"github.com/javiermolinar/timecard/internal/dateutil"
	"github.com/javiermolinar/timecard/internal/timesheet"
	"github.com/javiermolinar/timecard/internal/tui/commands"
	"github.com/javiermolinar/timecard/internal/tui/input"
)

const unsavedHint = "Unsaved changes: s saves, u reverts"

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.Width = max(msg.Width-6, 10)
		return m, nil

	case commands.DayLoadedMsg:
		if !msg.Day.Date.Equal(m.date) {
			// the user already moved on
			return m, nil
		}
		m.day = cloneDay(msg.Day)
		m.loaded = true
		m.dirty = false
		m.confirmQuit = false
		m.cursor = m.punchCount() - 1
		m.recompute()
		m.logEvent("day_loaded", zap.Int("punches", m.punchCount()))
		return m, nil

	case commands.DaySavedMsg:
		if !msg.Day.Date.Equal(m.date) {
			return m.setStatus("Saved " + msg.Day.Date.Format("Mon Jan 2"))
		}
		m.day.ID = msg.Day.ID
		m.day.UpdatedAt = msg.Day.UpdatedAt
		if sameContent(msg.Day, m.day) {
			m.dirty = false
		}
		m.logEvent("day_saved", zap.Int64("id", msg.Day.ID))
		return m.setStatus("Saved " + m.date.Format("Mon Jan 2"))

	case commands.ErrMsg:
		m.logEvent("error", zap.Error(msg.Err))
		return m.setError(msg.Err.Error())

	case commands.StatusMsg:
		return m.setStatus(msg.Msg)

	case commands.ClearStatusMsg:
		if msg.ID == m.statusID {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		m.logKey(msg)
		if m.mode == ModeNormal {
			return m.handleNormalKey(msg)
		}
		return m.handleInputKey(msg)
	}

	return m, nil
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key != "q" {
		m.confirmQuit = false
	}

	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		return m.quit()
	case "j", "down":
		if m.cursor < m.punchCount()-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = max(m.punchCount()-1, 0)
	case "a", "i":
		return m.openInput(ModeAdd)
	case "/", ":":
		return m.openInput(ModePrompt)
	case "n":
		return m.punchNow()
	case "d", "x", "delete", "backspace":
		return m.deleteSelected()
	case "h", "left":
		return m.moveDay(-1)
	case "l", "right":
		return m.moveDay(1)
	case "t":
		return m.gotoDate(m.now())
	case "u":
		return m.revert()
	case "s", "ctrl+s":
		return m.save()
	case "y":
		return m.copySummary()
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeInput()
		return m, nil
	case tea.KeyTab:
		if m.mode == ModePrompt {
			if value, ok := input.PromptAutocomplete(m.prompt.Value(), promptCommands); ok {
				m.prompt.SetValue(value)
				m.prompt.CursorEnd()
			}
		}
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.prompt.Value())
		mode := m.mode
		m.closeInput()
		if value == "" {
			return m, nil
		}
		if mode == ModeAdd {
			return m.addTyped(value)
		}
		return m.runCommand(value)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) openInput(mode Mode) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.prompt.Reset()
	switch mode {
	case ModeAdd:
		m.prompt.Placeholder = "8:30, 1:15 PM, 17:45"
	case ModePrompt:
		m.prompt.Placeholder = ""
		m.prompt.SetValue("/")
		m.prompt.CursorEnd()
	}
	return m, m.prompt.Focus()
}

func (m *Model) closeInput() {
	m.mode = ModeNormal
	m.prompt.Blur()
	m.prompt.Reset()
}

func (m Model) runCommand(value string) (tea.Model, tea.Cmd) {
	name, arg, ok := input.ParseCommand(value)
	if !ok {
		// a bare time typed at the prompt adds a punch
		return m.addTyped(value)
	}

	m.logEvent("command", zap.String("name", name))
	switch name {
	case "/note":
		m.day.Note = arg
		m.dirty = true
		if arg == "" {
			return m.setStatus("Note cleared")
		}
		return m.setStatus("Note updated")
	case "/goto":
		date, err := dateutil.ParseRelativeDate(arg, m.now())
		if err != nil {
			return m.setError(fmt.Sprintf("%q: %v", arg, err))
		}
		return m.gotoDate(date)
	case "/now":
		return m.punchNow()
	case "/copy":
		return m.copySummary()
	case "/save":
		return m.save()
	case "/revert":
		return m.revert()
	case "/quit":
		return m, tea.Quit
	}
	return m.setError("Unknown command " + name)
}

func (m Model) addTyped(value string) (tea.Model, tea.Cmd) {
	t, err := clock.ParseStrict(value)
	if err != nil {
		return m.setError(fmt.Sprintf("%q is not a time of day", value))
	}
	return m.addPunch(t)
}

func (m Model) punchNow() (tea.Model, tea.Cmd) {
	if !m.isToday() {
		return m.setError("Punching now only works on today; press a to add a time")
	}
	return m.addPunch(clock.FromTime(m.now()))
}

func (m Model) addPunch(t clock.TimeOfDay) (tea.Model, tea.Cmd) {
	if !m.loaded {
		return m.setError("Still loading")
	}
	m.day = cloneDay(m.day)
	if err := m.day.AddPunch(t); err != nil {
		if errors.Is(err, timesheet.ErrDuplicatePunch) {
			return m.setError(fmt.Sprintf("%s is already recorded", t))
		}
		return m.setError(err.Error())
	}

	m.dirty = true
	m.cursor = slices.IndexFunc(m.day.Punches, t.Equal)
	m.recompute()
	m.logEvent("punch_added", zap.String("time", t.Format24()))
	return m.setStatus("Added " + t.String())
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	if m.punchCount() == 0 {
		return m, nil
	}

	t := m.day.Punches[m.cursor]
	m.day = cloneDay(m.day)
	m.day.RemovePunch(t)
	m.dirty = true
	m.recompute()
	m.logEvent("punch_removed", zap.String("time", t.Format24()))
	return m.setStatus("Removed " + t.String())
}

func (m Model) moveDay(delta int) (tea.Model, tea.Cmd) {
	return m.gotoDate(m.date.AddDate(0, 0, delta))
}

func (m Model) gotoDate(date time.Time) (tea.Model, tea.Cmd) {
	date = dateutil.TruncateToDay(date)
	if date.Equal(m.date) {
		return m, nil
	}
	if m.dirty {
		return m.setError(unsavedHint)
	}
	if date.After(dateutil.TruncateToDay(m.now())) {
		return m.setError("Cannot open a day in the future")
	}

	m.date = date
	m.day = timesheet.NewDay(date)
	m.loaded = false
	m.cursor = 0
	m.recompute()
	m.logEvent("goto")
	return m, commands.LoadDay(m.repo, date)
}

func (m Model) revert() (tea.Model, tea.Cmd) {
	if !m.dirty {
		return m, nil
	}
	m.dirty = false
	m.loaded = false
	m.statusMsg = "Reverted"
	m.statusErr = false
	return m, commands.LoadDay(m.repo, m.date)
}

func (m Model) save() (tea.Model, tea.Cmd) {
	if !m.dirty {
		return m.setStatus("Nothing to save")
	}
	if m.stats.Err != nil {
		return m.setError("Cannot save: " + m.stats.Err.Error())
	}
	return m, commands.SaveDay(m.repo, m.day)
}

func (m Model) copySummary() (tea.Model, tea.Cmd) {
	return m, commands.CopyText(m.clipboard, m.summaryText())
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.dirty && !m.confirmQuit {
		m.confirmQuit = true
		return m.setError("Unsaved changes: s saves, q again quits without saving")
	}
	return m, tea.Quit
}

func (m Model) setStatus(msg string) (tea.Model, tea.Cmd) {
	m.statusID++
	m.statusMsg = msg
	m.statusErr = false
	return m, commands.ClearStatusAfter(commands.StatusTTL, m.statusID)
}

func (m Model) setError(msg string) (tea.Model, tea.Cmd) {
	m.statusID++
	m.statusMsg = msg
	m.statusErr = true
	return m, commands.ClearStatusAfter(commands.StatusTTL, m.statusID)
}

// cloneDay copies d so edits never reach a day shared with the repository.
func cloneDay(d *timesheet.Day) *timesheet.Day {
	c := *d
	c.Punches = slices.Clone(d.Punches)
	return &c
}

func sameContent(a, b *timesheet.Day) bool {
	return a.Note == b.Note && slices.EqualFunc(a.Punches, b.Punches, clock.TimeOfDay.Equal)
}
