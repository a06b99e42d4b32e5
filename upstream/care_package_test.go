package upstream

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/meinhoongagan/pharmacy-portal/models"
)

func TestNormalizeCarePackage(t *testing.T) {
	cairo, _ := time.LoadLocation("Africa/Cairo")
	rec := models.CarePackageRecord{
		ID:                  5,
		ProviderID:          2,
		AppointmentDatetime: "2024-01-15T14:30:00Z",
		PackageID:           77,
	}

	a, err := NormalizeCarePackage(rec, cairo, 60*time.Minute)
	if err != nil {
		t.Fatalf("NormalizeCarePackage: %v", err)
	}

	if !a.IsBooked || !a.IsCarePackage {
		t.Errorf("IsBooked=%v IsCarePackage=%v, want both true", a.IsBooked, a.IsCarePackage)
	}
	if d := a.EndTime.Sub(a.StartTime); d != 60*time.Minute {
		t.Errorf("duration = %s, want 60m", d)
	}
	if !a.StartTime.Equal(time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)) {
		t.Errorf("StartTime = %s, instant changed", a.StartTime)
	}
	if a.StartTime.Location() != cairo || a.StartTime.Hour() != 16 {
		t.Errorf("StartTime not projected into Cairo: %s", a.StartTime)
	}
	if a.CarePackageID == nil || *a.CarePackageID != 77 {
		t.Errorf("CarePackageID = %v", a.CarePackageID)
	}
	if a.CarePackageName != "Package 77" {
		t.Errorf("CarePackageName = %q, want synthesized label", a.CarePackageName)
	}
}

func TestNormalizeCarePackageKeepsName(t *testing.T) {
	a, err := NormalizeCarePackage(models.CarePackageRecord{
		AppointmentDatetime: "2024-01-15T14:30:00Z",
		PackageID:           1,
		CarePackageName:     "Diabetes follow-up",
	}, time.UTC, 45*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if a.CarePackageName != "Diabetes follow-up" {
		t.Errorf("CarePackageName = %q", a.CarePackageName)
	}
	if a.EndTime.Sub(a.StartTime) != 45*time.Minute {
		t.Error("configured duration not applied")
	}
}

func TestNormalizeCarePackageRejectsBadInput(t *testing.T) {
	if _, err := NormalizeCarePackage(models.CarePackageRecord{AppointmentDatetime: "soon"}, time.UTC, time.Hour); err == nil {
		t.Error("expected error for unparseable datetime")
	}
	if _, err := NormalizeCarePackage(models.CarePackageRecord{AppointmentDatetime: "2024-01-15T14:30:00Z"}, time.UTC, 0); err == nil {
		t.Error("expected error for zero duration")
	}
}

func TestFetchCarePackageAppointments(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/care-packages/appointments/doctor/2" {
			t.Errorf("path = %q", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, []models.CarePackageRecord{
			{ID: 1, ProviderID: 2, AppointmentDatetime: "2024-01-15T14:30:00Z", PackageID: 9, RoomID: "r1"},
		})
	})

	got, err := c.FetchCarePackageAppointments(context.Background(), "tok", 2, time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !got[0].IsCarePackage || got[0].RoomID != "r1" {
		t.Errorf("got %+v", got)
	}
}
