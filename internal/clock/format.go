package clock

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Format pairs a pattern recognizing an input shape with the time.Parse
// layout that decomposes it.
type Format struct {
	Pattern *regexp.Regexp
	Layout  string
}

// Registry is an ordered list of formats. Registration order is priority
// order: the first matching pattern wins. A Registry is never modified in
// place; With returns an extended copy.
type Registry struct {
	formats []Format
}

// DefaultRegistry recognizes, in order:
//
//	"8:23 AM"  "8:23AM"  "8 AM"  "8AM"  "8:23"  "8"
//
// Meridiem markers are case-insensitive.
var DefaultRegistry = NewRegistry(
	Format{regexp.MustCompile(`(?i)^\d{1,2}:\d\d (AM|PM)$`), "3:04 PM"},
	Format{regexp.MustCompile(`(?i)^\d{1,2}:\d\d(AM|PM)$`), "3:04PM"},
	Format{regexp.MustCompile(`(?i)^\d{1,2} (AM|PM)$`), "3 PM"},
	Format{regexp.MustCompile(`(?i)^\d{1,2}(AM|PM)$`), "3PM"},
	Format{regexp.MustCompile(`^\d{1,2}:\d\d$`), "15:04"},
	Format{regexp.MustCompile(`^\d{1,2}$`), "15"},
)

// NewRegistry creates a registry from formats, highest priority first.
func NewRegistry(formats ...Format) *Registry {
	return &Registry{formats: append([]Format(nil), formats...)}
}

// With returns a copy of r with an extra lowest-priority format.
func (r *Registry) With(pattern, layout string) (*Registry, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}
	formats := make([]Format, 0, len(r.formats)+1)
	formats = append(formats, r.formats...)
	formats = append(formats, Format{Pattern: re, Layout: layout})
	return &Registry{formats: formats}, nil
}

// Formats returns a copy of the registered formats in priority order.
func (r *Registry) Formats() []Format {
	return append([]Format(nil), r.formats...)
}

// Format returns the layout of the first pattern matching text.
func (r *Registry) Format(text string) (string, bool) {
	for _, f := range r.formats {
		if f.Pattern.MatchString(text) {
			return f.Layout, true
		}
	}
	return "", false
}

// Parse returns the TimeOfDay described by text, or false when text is empty,
// matches no format, or does not decompose into a valid hour and minute.
func (r *Registry) Parse(text string) (TimeOfDay, bool) {
	t, err := r.ParseStrict(text)
	return t, err == nil
}

// ParseStrict is like Parse but reports failures as ErrParse.
func (r *Registry) ParseStrict(text string) (TimeOfDay, error) {
	if text == "" {
		return TimeOfDay{}, fmt.Errorf("%w: empty input", ErrParse)
	}
	layout, ok := r.Format(text)
	if !ok {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrParse, text)
	}
	// time.Parse only accepts upper-case meridiem markers.
	parsed, err := time.Parse(layout, strings.ToUpper(text))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q does not fit %q", ErrParse, text, layout)
	}
	return FromClock(parsed)
}

// Parse parses text with DefaultRegistry.
func Parse(text string) (TimeOfDay, bool) {
	return DefaultRegistry.Parse(text)
}

// ParseStrict parses text with DefaultRegistry, returning ErrParse on failure.
func ParseStrict(text string) (TimeOfDay, error) {
	return DefaultRegistry.ParseStrict(text)
}

// MustParse is like ParseStrict but panics on failure.
func MustParse(text string) TimeOfDay {
	t, err := ParseStrict(text)
	if err != nil {
		panic(err)
	}
	return t
}
