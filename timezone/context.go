package timezone

import (
	"sync"
	"time"

	"github.com/meinhoongagan/pharmacy-portal/models"
)

// Context is the resolved zone for one profile location.
type Context struct {
	Location   string
	Zone       string
	Formatters *Formatters
}

// Memo keeps one Formatters per resolved zone. Keys are zones, never the
// free-text location, so the map is bounded by the zone tables.
type Memo struct {
	resolver *Resolver
	now      func() time.Time

	mu    sync.RWMutex
	zones map[string]*Formatters
}

func NewMemo(resolver *Resolver, now func() time.Time) *Memo {
	if now == nil {
		now = time.Now
	}
	return &Memo{
		resolver: resolver,
		now:      now,
		zones:    make(map[string]*Formatters),
	}
}

// For returns the Context for a profile; nil profiles use the default zone.
func (m *Memo) For(p *models.Pharmacy) *Context {
	location := ""
	if p != nil {
		location = p.Location
	}

	zone, f := m.formatters(m.resolver.ResolvePharmacy(p))
	return &Context{Location: location, Zone: zone, Formatters: f}
}

// Len returns the number of memoized zones.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.zones)
}

func (m *Memo) formatters(zone string) (string, *Formatters) {
	m.mu.RLock()
	f, ok := m.zones[zone]
	m.mu.RUnlock()
	if ok {
		return zone, f
	}

	f, err := NewFormatters(zone, m.now)
	if err != nil {
		zone = m.resolver.Default()
		f, err = NewFormatters(zone, m.now)
		if err != nil {
			// The default was validated by NewResolver; UTC is the last resort.
			zone = "UTC"
			f, _ = NewFormatters(zone, m.now)
		}
	}

	m.mu.Lock()
	if existing, ok := m.zones[zone]; ok {
		f = existing
	} else {
		m.zones[zone] = f
	}
	m.mu.Unlock()
	return zone, f
}
