package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugLogPath is the fixed path for debug logs.
const DebugLogPath = "timecard-debug.log"

// NewDebugLogger returns a JSON-lines logger writing to path, or a no-op
// logger when debugging is off.
func NewDebugLogger(enabled bool, path string) (*zap.Logger, error) {
	if !enabled {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Sampling = nil
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("creating debug log: %w", err)
	}
	return logger, nil
}

// logKey records a keystroke with the state it arrived in.
func (m Model) logKey(msg tea.KeyMsg) {
	m.logger.Debug("key",
		zap.String("key", msg.String()),
		zap.Stringer("mode", m.mode),
		zap.Int("cursor", m.cursor),
		zap.Int("punches", m.punchCount()),
		zap.Bool("dirty", m.dirty),
	)
}

// logEvent records a state change.
func (m Model) logEvent(event string, fields ...zap.Field) {
	fields = append(fields, zap.String("date", m.date.Format("2006-01-02")))
	m.logger.Debug(event, fields...)
}
