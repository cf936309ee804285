// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/timecard/internal/clock"
	"github.com/javiermolinar/timecard/internal/dateutil"
	"github.com/javiermolinar/timecard/internal/timesheet"
)

// SQLite implements timesheet.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

var _ timesheet.Repository = (*SQLite)(nil)

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// SaveDay inserts the day or replaces the one already stored for its date.
func (s *SQLite) SaveDay(ctx context.Context, d *timesheet.Day) error {
	if err := d.Validate(); err != nil {
		return err
	}

	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = time.Now()
	}

	query := `
		INSERT INTO days (date, punches, note, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			punches    = excluded.punches,
			note       = excluded.note,
			updated_at = excluded.updated_at
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		d.Date.Format(dateutil.DateLayout),
		encodePunches(d.Punches),
		d.Note,
		d.UpdatedAt.Format(time.RFC3339),
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("saving day: %w", err)
	}

	return nil
}

// GetDay retrieves the day recorded for date.
func (s *SQLite) GetDay(ctx context.Context, date time.Time) (*timesheet.Day, error) {
	query := `
		SELECT id, date, punches, note, updated_at
		FROM days
		WHERE date = ?
	`

	d, err := scanDay(s.db.QueryRowContext(ctx, query, date.Format(dateutil.DateLayout)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", timesheet.ErrDayNotFound, date.Format(dateutil.DateLayout))
	}
	if err != nil {
		return nil, fmt.Errorf("querying day: %w", err)
	}

	return d, nil
}

// ListDaysByDateRange returns all days recorded within the date range (inclusive).
func (s *SQLite) ListDaysByDateRange(ctx context.Context, start, end time.Time) ([]*timesheet.Day, error) {
	query := `
		SELECT id, date, punches, note, updated_at
		FROM days
		WHERE date >= ? AND date <= ?
		ORDER BY date
	`

	rows, err := s.db.QueryContext(ctx, query, start.Format(dateutil.DateLayout), end.Format(dateutil.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("querying days: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var days []*timesheet.Day
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning day: %w", err)
		}
		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating days: %w", err)
	}

	return days, nil
}

// DeleteDay removes the day recorded for date.
func (s *SQLite) DeleteDay(ctx context.Context, date time.Time) error {
	query := `DELETE FROM days WHERE date = ?`

	result, err := s.db.ExecContext(ctx, query, date.Format(dateutil.DateLayout))
	if err != nil {
		return fmt.Errorf("deleting day: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", timesheet.ErrDayNotFound, date.Format(dateutil.DateLayout))
	}

	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDay(row rowScanner) (*timesheet.Day, error) {
	var (
		d         timesheet.Day
		date      string
		punches   string
		updatedAt sql.NullString
	)

	if err := row.Scan(&d.ID, &date, &punches, &d.Note, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	d.Date, err = parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}

	d.Punches, err = decodePunches(punches)
	if err != nil {
		return nil, fmt.Errorf("parsing punches for %s: %w", date, err)
	}

	if updatedAt.Valid {
		d.UpdatedAt, err = parseDate(updatedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parsing updated at: %w", err)
		}
	}

	return &d, nil
}

// encodePunches stores punches as a comma separated "HH:MM" list.
func encodePunches(punches []clock.TimeOfDay) string {
	parts := make([]string, len(punches))
	for i, p := range punches {
		parts[i] = p.Format24()
	}
	return strings.Join(parts, ",")
}

func decodePunches(s string) ([]clock.TimeOfDay, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	punches := make([]clock.TimeOfDay, 0, len(parts))
	for _, p := range parts {
		t, err := clock.ParseStrict(p)
		if err != nil {
			return nil, err
		}
		punches = append(punches, t)
	}
	return punches, nil
}

// parseDate parses a date string in various formats SQLite might return.
// Date-only values (midnight) are parsed in local timezone to match time.Now() behavior.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(dateutil.DateLayout, s, time.Local); err == nil {
		return t, nil
	}

	// SQLite returns DATE columns as "2006-01-02T00:00:00Z" - extract date and parse as local
	if len(s) == 20 && s[10] == 'T' && s[19] == 'Z' && s[11:19] == "00:00:00" {
		if t, err := time.ParseInLocation(dateutil.DateLayout, s[:10], time.Local); err == nil {
			return t, nil
		}
	}

	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}
