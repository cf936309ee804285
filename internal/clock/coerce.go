package clock

import (
	"fmt"
	"math"
	"time"
)

// Coerce builds a TimeOfDay from one of the accepted input kinds:
//
//   - TimeOfDay: returned as is
//   - string: parsed with DefaultRegistry
//   - any integer or float kind: minutes since midnight; floats must be whole
//   - Clock (time.Time included): hour and minute extracted
//   - nil: the current time of day
//
// Any other kind fails with ErrTypeCoercion.
func Coerce(v any) (TimeOfDay, error) {
	switch x := v.(type) {
	case nil:
		return Now(), nil
	case TimeOfDay:
		return x, nil
	case *TimeOfDay:
		if x == nil {
			return Now(), nil
		}
		return *x, nil
	case string:
		return ParseStrict(x)
	case int:
		return FromMinutes(x)
	case int8:
		return FromMinutes(int(x))
	case int16:
		return FromMinutes(int(x))
	case int32:
		return FromMinutes(int(x))
	case int64:
		return fromInt64(x)
	case uint:
		return fromUint64(uint64(x))
	case uint8:
		return FromMinutes(int(x))
	case uint16:
		return FromMinutes(int(x))
	case uint32:
		return fromUint64(uint64(x))
	case uint64:
		return fromUint64(x)
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case time.Time:
		return FromClock(x)
	case Clock:
		return FromClock(x)
	default:
		return TimeOfDay{}, fmt.Errorf("%w: %v (%T)", ErrTypeCoercion, v, v)
	}
}

func fromInt64(n int64) (TimeOfDay, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return TimeOfDay{}, fmt.Errorf("%w: %d minutes out of range", ErrValidation, n)
	}
	return FromMinutes(int(n))
}

func fromUint64(n uint64) (TimeOfDay, error) {
	if n > math.MaxInt32 {
		return TimeOfDay{}, fmt.Errorf("%w: %d minutes out of range", ErrValidation, n)
	}
	return FromMinutes(int(n))
}

// fromFloat accepts whole minute counts only.
func fromFloat(f float64) (TimeOfDay, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return TimeOfDay{}, fmt.Errorf("%w: %v is not a whole number of minutes", ErrValidation, f)
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return TimeOfDay{}, fmt.Errorf("%w: %v minutes out of range", ErrValidation, f)
	}
	return FromMinutes(int(f))
}

// CoerceAll coerces every element of values, stopping at the first failure.
func CoerceAll[T any](values []T) ([]TimeOfDay, error) {
	out := make([]TimeOfDay, 0, len(values))
	for i, v := range values {
		t, err := Coerce(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}
