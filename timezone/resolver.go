package timezone

import (
	"strings"
	"time"

	"github.com/meinhoongagan/pharmacy-portal/config"
	"github.com/meinhoongagan/pharmacy-portal/models"
)

// Resolver maps free-text locations and nationalities to IANA zones.
// It never fails: anything it cannot match resolves to the default zone.
//
// Matching is first-match-wins in table order, so an input that contains
// several keys ("Indiana, USA" contains "india") resolves to whichever key
// the table lists first.
type Resolver struct {
	defaultZone string
}

// NewResolver returns a Resolver falling back to defaultZone. An empty or
// unloadable zone falls back to config.DefaultTimezone.
func NewResolver(defaultZone string) *Resolver {
	defaultZone = strings.TrimSpace(defaultZone)
	if defaultZone == "" {
		defaultZone = config.DefaultTimezone
	}
	if _, err := time.LoadLocation(defaultZone); err != nil {
		defaultZone = config.DefaultTimezone
	}
	return &Resolver{defaultZone: defaultZone}
}

// Default returns the fallback zone.
func (r *Resolver) Default() string {
	return r.defaultZone
}

// Resolve returns the zone for a location such as "Cairo, Egypt".
func (r *Resolver) Resolve(location string) string {
	return r.lookup(locationZones, location, true)
}

// ResolveNationality returns the zone for a nationality such as "Egyptian".
func (r *Resolver) ResolveNationality(nationality string) string {
	return r.lookup(nationalityZones, nationality, false)
}

// ResolvePharmacy resolves a profile's location; a nil profile (not
// loaded yet) yields the default zone.
func (r *Resolver) ResolvePharmacy(p *models.Pharmacy) string {
	if p == nil {
		return r.defaultZone
	}
	return r.Resolve(p.Location)
}

func (r *Resolver) lookup(table []zoneEntry, input string, withTokens bool) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return r.defaultZone
	}

	for _, e := range table {
		if e.key == input {
			return e.zone
		}
	}

	for _, e := range table {
		if strings.Contains(input, e.key) || strings.Contains(e.key, input) {
			return e.zone
		}
	}

	if withTokens {
		inputTokens := tokens(input)
		for _, e := range table {
			for kt := range tokens(e.key) {
				if _, ok := inputTokens[kt]; ok {
					return e.zone
				}
			}
		}
	}

	return r.defaultZone
}

// tokens splits on whitespace, commas, periods and hyphens and keeps
// tokens of at least three characters.
func tokens(s string) map[string]struct{} {
	fields := strings.FieldsFunc(s, func(c rune) bool {
		switch c {
		case ' ', '\t', '\n', '\r', ',', '.', '-':
			return true
		}
		return false
	})

	out := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if len([]rune(f)) >= 3 {
			out[f] = struct{}{}
		}
	}
	return out
}
