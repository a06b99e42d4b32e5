package timezone

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout     = "Jan 02, 2006"
	TimeLayout     = "3:04 PM"
	DateTimeLayout = DateLayout + " " + TimeLayout

	// InvalidDate is returned for inputs that cannot be read as an instant.
	InvalidDate = "Invalid Date"
)

// naive layouts carry no offset and are read as UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Formatters renders instants in one zone. Inputs may be ISO strings,
// time.Time or *time.Time; they are read as UTC and then projected.
type Formatters struct {
	zone string
	loc  *time.Location
	now  func() time.Time
}

// NewFormatters binds a formatter set to zone. now defaults to time.Now.
func NewFormatters(zone string, now func() time.Time) (*Formatters, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load zone %q: %w", zone, err)
	}
	if now == nil {
		now = time.Now
	}
	return &Formatters{zone: zone, loc: loc, now: now}, nil
}

func (f *Formatters) Zone() string {
	return f.zone
}

func (f *Formatters) Location() *time.Location {
	return f.loc
}

// In projects v into the bound zone.
func (f *Formatters) In(v any) (time.Time, bool) {
	t, ok := ParseInstant(v)
	if !ok {
		return time.Time{}, false
	}
	return t.In(f.loc), true
}

func (f *Formatters) Date(v any) string {
	return f.format(v, DateLayout)
}

func (f *Formatters) Time(v any) string {
	return f.format(v, TimeLayout)
}

func (f *Formatters) DateTime(v any) string {
	return f.format(v, DateTimeLayout)
}

// DateTimeWithTz appends the zone abbreviation in effect at that instant.
func (f *Formatters) DateTimeWithTz(v any) string {
	return f.format(v, DateTimeLayout+" MST")
}

// Relative renders v relative to the current instant ("in 3 hours").
func (f *Formatters) Relative(v any) string {
	t, ok := f.In(v)
	if !ok {
		return InvalidDate
	}
	return relativePhrase(t, f.now().In(f.loc))
}

// TimezoneAbbr returns the abbreviation at v, or at the current instant
// when v is nil.
func (f *Formatters) TimezoneAbbr(v any) string {
	if v == nil {
		return f.now().In(f.loc).Format("MST")
	}
	return f.format(v, "MST")
}

// DisplayName describes the zone at the current instant, for example
// "Africa/Cairo (EET, UTC+02:00)".
func (f *Formatters) DisplayName() string {
	now := f.now().In(f.loc)
	return fmt.Sprintf("%s (%s, UTC%s)", f.zone, now.Format("MST"), now.Format("-07:00"))
}

func (f *Formatters) format(v any, layout string) string {
	t, ok := f.In(v)
	if !ok {
		return InvalidDate
	}
	return t.Format(layout)
}

// ParseInstant reads v as an instant. Strings without an offset are UTC.
func ParseInstant(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		if x.IsZero() {
			return time.Time{}, false
		}
		return x.UTC(), true
	case *time.Time:
		if x == nil || x.IsZero() {
			return time.Time{}, false
		}
		return x.UTC(), true
	case string:
		return parseISO(x)
	default:
		return time.Time{}, false
	}
}

func parseISO(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), true
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
