package timesheet

import (
	"context"
	"time"
)

// Repository defines the storage interface for days.
type Repository interface {
	// SaveDay inserts or replaces the day stored for d.Date and sets d.ID.
	SaveDay(ctx context.Context, d *Day) error

	// GetDay retrieves the day for date. Returns ErrDayNotFound if nothing
	// was recorded.
	GetDay(ctx context.Context, date time.Time) (*Day, error)

	// ListDaysByDateRange returns all recorded days within the date range (inclusive).
	ListDaysByDateRange(ctx context.Context, start, end time.Time) ([]*Day, error)

	// DeleteDay removes the day for date. Returns ErrDayNotFound if nothing
	// was recorded.
	DeleteDay(ctx context.Context, date time.Time) error

	// Close releases any resources held by the repository.
	Close() error
}
