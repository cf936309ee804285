package series

import (
	"fmt"
	"time"

	"github.com/javiermolinar/timecard/internal/clock"
)

// From builds a series from v:
//
//   - nil: Empty
//   - *Series: returned as is
//   - a slice of anything clock.Coerce accepts: FromOrderedList
//   - a single value clock.Coerce accepts: a one-element series
//
// Other kinds fail with clock.ErrTypeCoercion.
func From(v any, opts Options) (*Series, error) {
	var (
		times []clock.TimeOfDay
		err   error
	)
	switch x := v.(type) {
	case nil:
		return empty, nil
	case *Series:
		return x, nil
	case []clock.TimeOfDay:
		times = x
	case []string:
		times, err = clock.CoerceAll(x)
	case []int:
		times, err = clock.CoerceAll(x)
	case []float64:
		times, err = clock.CoerceAll(x)
	case []time.Time:
		times, err = clock.CoerceAll(x)
	case []any:
		times, err = clock.CoerceAll(x)
	default:
		var t clock.TimeOfDay
		t, err = clock.Coerce(v)
		times = []clock.TimeOfDay{t}
	}
	if err != nil {
		return nil, fmt.Errorf("building series: %w", err)
	}
	return FromOrderedList(times, opts)
}

// Between builds the terminal interval from start to end.
func Between(start, end any, opts Options) (*Series, error) {
	s, err := clock.Coerce(start)
	if err != nil {
		return nil, fmt.Errorf("interval start: %w", err)
	}
	e, err := clock.Coerce(end)
	if err != nil {
		return nil, fmt.Errorf("interval end: %w", err)
	}
	return FromOrderedList([]clock.TimeOfDay{s, e}, opts)
}
