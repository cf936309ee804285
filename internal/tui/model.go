package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/timecard/internal/config"
	"github.com/javiermolinar/timecard/internal/dateutil"
	"github.com/javiermolinar/timecard/internal/series"
	"github.com/javiermolinar/timecard/internal/summary"
	"github.com/javiermolinar/timecard/internal/timesheet"
	"github.com/javiermolinar/timecard/internal/tui/commands"
	"github.com/javiermolinar/timecard/internal/tui/input"
	"github.com/javiermolinar/timecard/internal/tui/theme"
	"github.com/javiermolinar/timecard/internal/tui/view"
)

// Mode represents the current input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeAdd         // typing a punch time
	ModePrompt      // typing a slash command
)

func (m Mode) String() string {
	switch m {
	case ModeAdd:
		return "add"
	case ModePrompt:
		return "prompt"
	default:
		return "normal"
	}
}

var promptCommands = []input.PromptCommand{
	{Name: "/note", Description: "Set the day note (empty clears it)"},
	{Name: "/goto", Description: "Open a day: yesterday, monday, last-friday, 2025-01-13"},
	{Name: "/now", Description: "Punch the current time"},
	{Name: "/copy", Description: "Copy the day summary"},
	{Name: "/save", Description: "Save changes"},
	{Name: "/revert", Description: "Discard unsaved changes"},
	{Name: "/quit", Description: "Quit without saving"},
}

// Model is the editor state for one day of punches.
type Model struct {
	repo   timesheet.Repository
	config *config.Config
	opts   series.Options
	use24h bool
	theme  *theme.Theme
	styles Styles
	logger *zap.Logger

	date   time.Time
	day    *timesheet.Day
	stats  summary.DayStats
	cursor int // index of the selected punch

	loaded      bool
	dirty       bool
	confirmQuit bool

	mode   Mode
	prompt textinput.Model

	width  int
	height int

	statusMsg string
	statusErr bool
	statusID  int

	now       func() time.Time
	clipboard func(string) error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithLogger sets the debug logger.
func WithLogger(l *zap.Logger) ModelOption {
	return func(m *Model) {
		m.logger = l
	}
}

// WithClock replaces time.Now, for punching "now".
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) ModelOption {
	return func(m *Model) {
		m.clipboard = write
	}
}

// New creates an editor model opened on date.
func New(repo timesheet.Repository, cfg *config.Config, date time.Time, opts ...ModelOption) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}

	m := &Model{
		repo:      repo,
		config:    cfg,
		opts:      cfg.SeriesOptions(),
		use24h:    cfg.Uses24h(),
		theme:     t,
		styles:    NewStyles(t),
		logger:    zap.NewNop(),
		date:      dateutil.TruncateToDay(date),
		day:       timesheet.NewDay(date),
		mode:      ModeNormal,
		prompt:    ti,
		now:       time.Now,
		clipboard: clipboard.WriteAll,
	}

	for _, opt := range opts {
		opt(m)
	}
	m.recompute()

	return m
}

// Init loads the opening day.
func (m Model) Init() tea.Cmd {
	return commands.LoadDay(m.repo, m.date)
}

// recompute refreshes the totals after the punches changed.
func (m *Model) recompute() {
	m.stats = summary.Summarize(m.day, m.opts)
	m.cursor = max(0, min(m.cursor, m.punchCount()-1))
}

func (m Model) punchCount() int {
	if m.day == nil {
		return 0
	}
	return len(m.day.Punches)
}

func (m Model) isToday() bool {
	return m.date.Equal(dateutil.TruncateToDay(m.now()))
}

// summaryText is the one-line day summary placed on the clipboard.
func (m Model) summaryText() string {
	var b strings.Builder
	b.WriteString(m.date.Format("Mon Jan 2, 2006"))
	b.WriteString(": ")

	if m.punchCount() == 0 {
		b.WriteString("no punches")
		return b.String()
	}

	s, err := m.day.Series(m.opts)
	if err != nil {
		fmt.Fprintf(&b, "invalid punches (%v)", err)
		return b.String()
	}

	pairs := make([]string, 0, len(s.Pairs()))
	for _, p := range s.Pairs() {
		end := "…"
		if p.Closed {
			end = view.FormatClock(p.End, m.use24h)
		}
		pairs = append(pairs, view.FormatClock(p.Start, m.use24h)+"-"+end)
	}
	b.WriteString(strings.Join(pairs, ", "))

	fmt.Fprintf(&b, " | worked %s, break %s", view.FormatDuration(m.stats.Worked), view.FormatDuration(m.stats.Break))
	if m.stats.Deducted > 0 {
		fmt.Fprintf(&b, ", deducted %s", view.FormatDuration(m.stats.Deducted))
	}
	fmt.Fprintf(&b, ", net %s", view.FormatDuration(m.stats.Net))

	if m.day.Note != "" {
		b.WriteString(" | " + m.day.Note)
	}
	return b.String()
}

// Run starts the editor.
func Run(repo timesheet.Repository, cfg *config.Config, date time.Time) error {
	return RunWithDebug(repo, cfg, date, false)
}

// RunWithDebug starts the editor with optional debug logging to DebugLogPath.
func RunWithDebug(repo timesheet.Repository, cfg *config.Config, date time.Time, debug bool) error {
	logger, err := NewDebugLogger(debug, DebugLogPath)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	model := New(repo, cfg, date, WithLogger(logger))
	model.logEvent("start", zap.String("theme", model.theme.Name))

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	if m, ok := finalModel.(Model); ok {
		m.logEvent("quit", zap.Bool("dirty", m.dirty))
	}
	return nil
}
