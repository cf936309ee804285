package series

import (
	"errors"
	"fmt"

	"github.com/javiermolinar/timecard/internal/clock"
)

// Options control how a Series turns punches into durations.
type Options struct {
	// DeductBreak enables the automatic break deduction.
	DeductBreak bool
	// DeductionLimit is the worked time, in minutes, from which a short break
	// is deducted (default 375, i.e. 6h15m).
	DeductionLimit int
	// DeductedBreak is both the minimum break expected, in minutes, and the
	// amount deducted when it was not taken (default 30).
	DeductedBreak int
	// RoundingFactor is the minute grid every punch is snapped to before any
	// duration is computed (default 15).
	RoundingFactor int
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		DeductBreak:    false,
		DeductionLimit: 375,
		DeductedBreak:  30,
		RoundingFactor: clock.DefaultRoundingFactor,
	}
}

// Validate checks that every threshold is usable.
func (o Options) Validate() error {
	if o.DeductionLimit < 0 {
		return fmt.Errorf("deduction limit must not be negative, got %d", o.DeductionLimit)
	}
	if o.DeductedBreak < 0 {
		return fmt.Errorf("deducted break must not be negative, got %d", o.DeductedBreak)
	}
	if o.RoundingFactor < 1 {
		return errors.New("rounding factor must be at least 1 minute")
	}
	return nil
}
