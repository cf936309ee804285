// Package series models a day's clock punches as an immutable, ordered chain
// of times alternating between clock-in and clock-out.
//
// A Series has one of three shapes, chosen by its element count:
//
//	Empty     count 0, the shared canonical empty series
//	Interval  count 2, a terminal (start, end) pair
//	Node      count 1 or > 2, a start time followed by the rest of the chain
//
// Elements at even indexes start work, elements at odd indexes end it. Worked
// time is the sum of the (0,1), (2,3), ... pairs; break time is the sum of
// the gaps between them.
package series

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/javiermolinar/timecard/internal/clock"
)

type kind uint8

const (
	kindEmpty kind = iota
	kindInterval
	kindNode
)

// Series is an immutable chain of times. Use Empty, Of, FromOrderedList or
// From to build one; the zero value is not usable.
type Series struct {
	kind  kind
	start clock.TimeOfDay
	end   clock.TimeOfDay // kindInterval only
	rest  *Series         // kindNode only
	count int
	opts  Options
}

var empty = &Series{kind: kindEmpty, opts: DefaultOptions()}

// Empty returns the shared empty series. It carries DefaultOptions.
func Empty() *Series { return empty }

// Of builds a series from times with DefaultOptions.
func Of(times ...clock.TimeOfDay) (*Series, error) {
	return FromOrderedList(times, DefaultOptions())
}

// FromOrderedList builds a series from times, which must be in
// non-decreasing order. An empty list yields Empty.
func FromOrderedList(times []clock.TimeOfDay, opts Options) (*Series, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", clock.ErrValidation, err)
	}
	if len(times) == 0 {
		return empty, nil
	}

	acc := empty
	for i := len(times) - 1; i >= 0; i-- {
		next, err := link(times[i], acc, opts)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		acc = next
	}
	return acc, nil
}

// link puts start in front of rest, picking the shape from the new count.
func link(start clock.TimeOfDay, rest *Series, opts Options) (*Series, error) {
	switch {
	case rest.kind == kindEmpty:
		return &Series{kind: kindNode, start: start, rest: empty, count: 1, opts: opts}, nil
	case rest.kind == kindNode && rest.count == 1:
		if rest.start.Before(start) {
			return nil, fmt.Errorf("%w: interval ends at %s before it starts at %s", clock.ErrValidation, rest.start, start)
		}
		return &Series{kind: kindInterval, start: start, end: rest.start, count: 2, opts: opts}, nil
	default:
		if rest.start.Before(start) {
			return nil, fmt.Errorf("%w: %s is followed by earlier %s", clock.ErrValidation, start, rest.start)
		}
		return &Series{kind: kindNode, start: start, rest: rest, count: rest.count + 1, opts: opts}, nil
	}
}

// Count returns the number of times in s.
func (s *Series) Count() int { return s.count }

// Options returns the options s computes durations with.
func (s *Series) Options() Options { return s.opts }

// IsEmpty reports whether s holds no times.
func (s *Series) IsEmpty() bool { return s.kind == kindEmpty }

// IsInterval reports whether s is a terminal (start, end) pair.
func (s *Series) IsInterval() bool { return s.kind == kindInterval }

// IsSeries reports whether s is empty or a start followed by another series.
// A one-element series is a series; a two-element one is an interval.
func (s *Series) IsSeries() bool { return s.kind != kindInterval }

// IsEven reports whether s holds an even number of times, i.e. every
// clock-in has its clock-out.
func (s *Series) IsEven() bool { return s.count%2 == 0 }

// IsOdd reports whether the last clock-in is still open.
func (s *Series) IsOdd() bool { return !s.IsEven() }

// First returns the first time, if any.
func (s *Series) First() (clock.TimeOfDay, bool) { return s.At(0) }

// Last returns the last time, if any.
func (s *Series) Last() (clock.TimeOfDay, bool) { return s.At(s.count - 1) }

// At returns the time at index i (0-based).
func (s *Series) At(i int) (clock.TimeOfDay, bool) {
	if i < 0 {
		return clock.TimeOfDay{}, false
	}
	for cur := s; cur.kind != kindEmpty; cur = cur.rest {
		if i == 0 {
			return cur.start, true
		}
		if cur.kind == kindInterval {
			if i == 1 {
				return cur.end, true
			}
			break
		}
		i--
	}
	return clock.TimeOfDay{}, false
}

// Rounded returns the time at index i snapped to the rounding factor.
func (s *Series) Rounded(i int) (clock.TimeOfDay, bool) {
	t, ok := s.At(i)
	if !ok {
		return clock.TimeOfDay{}, false
	}
	return t.Round(s.opts.RoundingFactor), true
}

// All yields every time in order. Iteration walks the chain in a loop, so
// long series do not grow the stack.
func (s *Series) All() iter.Seq[clock.TimeOfDay] {
	return func(yield func(clock.TimeOfDay) bool) {
		for cur := s; cur.kind != kindEmpty; cur = cur.rest {
			if !yield(cur.start) {
				return
			}
			if cur.kind == kindInterval {
				yield(cur.end)
				return
			}
		}
	}
}

// Times returns the times of s as a new slice.
func (s *Series) Times() []clock.TimeOfDay {
	return slices.Collect(s.All())
}

func (s *Series) rounded() []clock.TimeOfDay {
	out := make([]clock.TimeOfDay, 0, s.count)
	for t := range s.All() {
		out = append(out, t.Round(s.opts.RoundingFactor))
	}
	return out
}

// sumSteps adds rounded[i] - rounded[i-1] for i = from, from+2, ...
func (s *Series) sumSteps(from int) int {
	r := s.rounded()
	sum := 0
	for i := from; i < len(r); i += 2 {
		sum += r[i].Sub(r[i-1])
	}
	return sum
}

// IntervalTime returns the worked minutes: the sum of every clock-in to
// clock-out pair, on rounded times.
func (s *Series) IntervalTime() int { return s.sumSteps(1) }

// IntervalHours returns IntervalTime in whole hours.
func (s *Series) IntervalHours() int { return s.IntervalTime() / 60 }

// IntervalSeconds returns IntervalTime in seconds.
func (s *Series) IntervalSeconds() int { return s.IntervalTime() * 60 }

// GapTime returns the break minutes: the sum of every clock-out to next
// clock-in gap, on rounded times.
func (s *Series) GapTime() int { return s.sumSteps(2) }

// GapHours returns GapTime in whole hours.
func (s *Series) GapHours() int { return s.GapTime() / 60 }

// GapSeconds returns GapTime in seconds.
func (s *Series) GapSeconds() int { return s.GapTime() * 60 }

// BreakDeductionRequired reports whether the recorded break is shorter than
// the expected one while the worked time reaches the deduction limit.
func (s *Series) BreakDeductionRequired() bool {
	return s.GapTime() < s.opts.DeductedBreak && s.IntervalTime() >= s.opts.DeductionLimit
}

// BreakDeductionApplied reports whether the deduction is both enabled and
// required.
func (s *Series) BreakDeductionApplied() bool {
	return s.opts.DeductBreak && s.BreakDeductionRequired()
}

// Minutes returns the net worked minutes, after any break deduction.
func (s *Series) Minutes() int {
	worked := s.IntervalTime()
	if s.BreakDeductionApplied() {
		return worked - s.opts.DeductedBreak
	}
	return worked
}

// Hours returns Minutes in whole hours.
func (s *Series) Hours() int { return s.Minutes() / 60 }

// Seconds returns Minutes in seconds.
func (s *Series) Seconds() int { return s.Minutes() * 60 }

// Duration returns Minutes as a time.Duration.
func (s *Series) Duration() time.Duration {
	return time.Duration(s.Minutes()) * time.Minute
}

// Prepend returns a new series with t in front of s. Terminal intervals
// cannot be extended.
func (s *Series) Prepend(t clock.TimeOfDay) (*Series, error) {
	if s.kind == kindInterval {
		return nil, fmt.Errorf("%w: cannot prepend %s to %s", clock.ErrStructural, t, s)
	}
	return link(t, s, s.opts)
}

// Append returns a new series with t after the last time of s. Terminal
// intervals cannot be extended.
func (s *Series) Append(t clock.TimeOfDay) (*Series, error) {
	if s.kind == kindInterval {
		return nil, fmt.Errorf("%w: cannot append %s to %s", clock.ErrStructural, t, s)
	}
	times := make([]clock.TimeOfDay, 0, s.count+1)
	times = append(times, s.Times()...)
	times = append(times, t)
	return FromOrderedList(times, s.opts)
}

// WithOptions rebuilds s with opts.
func (s *Series) WithOptions(opts Options) (*Series, error) {
	return FromOrderedList(s.Times(), opts)
}

// WithBreakDeducting rebuilds s with opts and the break deduction enabled.
func (s *Series) WithBreakDeducting(opts Options) (*Series, error) {
	opts.DeductBreak = true
	return s.WithOptions(opts)
}

// WithoutBreakDeducting rebuilds s with the break deduction disabled.
func (s *Series) WithoutBreakDeducting() (*Series, error) {
	opts := s.opts
	opts.DeductBreak = false
	return s.WithOptions(opts)
}

// Range returns the bounds of a terminal interval.
func (s *Series) Range() (start, end clock.TimeOfDay, ok bool) {
	if s.kind != kindInterval {
		return clock.TimeOfDay{}, clock.TimeOfDay{}, false
	}
	return s.start, s.end, true
}

// Pair is one clock-in with its clock-out. Closed is false for a trailing
// clock-in that has no clock-out yet.
type Pair struct {
	Start  clock.TimeOfDay
	End    clock.TimeOfDay
	Closed bool
}

// Minutes returns the raw, unrounded length of a closed pair.
func (p Pair) Minutes() int {
	if !p.Closed {
		return 0
	}
	return p.End.Sub(p.Start)
}

// Pairs groups the times of s two by two.
func (s *Series) Pairs() []Pair {
	times := s.Times()
	pairs := make([]Pair, 0, (len(times)+1)/2)
	for i := 0; i < len(times); i += 2 {
		p := Pair{Start: times[i]}
		if i+1 < len(times) {
			p.End = times[i+1]
			p.Closed = true
		}
		pairs = append(pairs, p)
	}
	return pairs
}

// String renders s as "(8:00 AM => 12:00 PM, 12:30 PM => 5:00 PM)" when
// every pair is closed, or as a plain list "(8:00 AM, 12:00 PM, 12:30 PM)"
// otherwise.
func (s *Series) String() string {
	var parts []string
	if s.IsOdd() {
		for t := range s.All() {
			parts = append(parts, t.String())
		}
	} else {
		for _, p := range s.Pairs() {
			parts = append(parts, p.Start.String()+" => "+p.End.String())
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
