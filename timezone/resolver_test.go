package timezone

import (
	"testing"
	"time"

	"github.com/meinhoongagan/pharmacy-portal/models"
)

func TestResolve(t *testing.T) {
	r := NewResolver("Africa/Cairo")

	tests := []struct {
		name     string
		location string
		want     string
	}{
		{"empty", "", "Africa/Cairo"},
		{"blank", "   ", "Africa/Cairo"},
		{"exact", "Dubai", "Asia/Dubai"},
		{"exact case insensitive", "  RIYADH ", "Asia/Riyadh"},
		{"input contains key", "Cairo, Egypt", "Africa/Cairo"},
		{"key contains input", "abu", "Asia/Dubai"},
		{"city before country", "Alexandria, Egypt", "Africa/Cairo"},
		{"token match", "Arabia Felix", "Asia/Riyadh"},
		{"unknown", "Lake Tahoe", "Africa/Cairo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.location); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.location, got, tt.want)
			}
		})
	}
}

func TestResolveTokenPhase(t *testing.T) {
	r := NewResolver("UTC")

	tests := []struct {
		location string
		want     string
	}{
		// No key is a substring of these and none of them is a substring
		// of a key, so only a shared token can match.
		{"Arabia Felix", "Asia/Riyadh"},
		{"Abu Simbel", "Asia/Dubai"},
		{"Sharm-Resort", "Africa/Cairo"},
		// "el" is a token of "sharm el sheikh" but too short to count.
		{"El Xy", "UTC"},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.location); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.location, got, tt.want)
		}
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	r := NewResolver("")

	// "indiana, usa" contains both "india" and "usa"; "india" is listed
	// first, so it wins. Known ambiguity, kept on purpose.
	if got := r.Resolve("Indiana, USA"); got != "Asia/Kolkata" {
		t.Errorf("Resolve(Indiana, USA) = %q, want Asia/Kolkata", got)
	}
}

func TestResolveNationality(t *testing.T) {
	r := NewResolver("Africa/Cairo")

	tests := map[string]string{
		"Egyptian":      "Africa/Cairo",
		"saudi":         "Asia/Riyadh",
		"Saudi Arabian": "Asia/Riyadh",
		"":              "Africa/Cairo",
		"Martian":       "Africa/Cairo",
	}
	for in, want := range tests {
		if got := r.ResolveNationality(in); got != want {
			t.Errorf("ResolveNationality(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolvePharmacyNil(t *testing.T) {
	r := NewResolver("Africa/Cairo")
	if got := r.ResolvePharmacy(nil); got != "Africa/Cairo" {
		t.Errorf("ResolvePharmacy(nil) = %q", got)
	}
	if got := r.ResolvePharmacy(&models.Pharmacy{Location: "Doha"}); got != "Asia/Qatar" {
		t.Errorf("ResolvePharmacy(Doha) = %q", got)
	}
}

func TestNewResolverDefault(t *testing.T) {
	if got := NewResolver("Not/AZone").Default(); got != "Africa/Cairo" {
		t.Errorf("invalid default zone should fall back, got %q", got)
	}
	if got := NewResolver("Asia/Dubai").Resolve(""); got != "Asia/Dubai" {
		t.Errorf("configured default not used, got %q", got)
	}
}

func TestTablesLoad(t *testing.T) {
	for _, table := range [][]zoneEntry{locationZones, nationalityZones} {
		for _, e := range table {
			if _, err := time.LoadLocation(e.zone); err != nil {
				t.Errorf("%q maps to unloadable zone %q: %v", e.key, e.zone, err)
			}
		}
	}
}

func TestMemoReusesFormatters(t *testing.T) {
	m := NewMemo(NewResolver("Africa/Cairo"), nil)

	a := m.For(&models.Pharmacy{Location: "Dubai"})
	b := m.For(&models.Pharmacy{Location: "Dubai"})
	if a.Formatters != b.Formatters {
		t.Error("same location should reuse the memoized formatters")
	}
	if a.Zone != "Asia/Dubai" {
		t.Errorf("Zone = %q", a.Zone)
	}

	c := m.For(nil)
	if c.Zone != "Africa/Cairo" {
		t.Errorf("nil profile zone = %q", c.Zone)
	}
}

func TestMemoBoundedByZone(t *testing.T) {
	m := NewMemo(NewResolver("Africa/Cairo"), nil)

	locations := []string{"Dubai", "Dubai Marina", "dubai, uae", "Abu Dhabi", "Cairo", "Giza", "Nowhere 1", "Nowhere 2"}
	for _, loc := range locations {
		c := m.For(&models.Pharmacy{Location: loc})
		if c.Location != loc {
			t.Errorf("Location = %q, want %q", c.Location, loc)
		}
	}

	if n := m.Len(); n != 2 {
		t.Errorf("memoized %d zones for %d locations, want 2", n, len(locations))
	}
}
