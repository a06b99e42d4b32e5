package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/meinhoongagan/pharmacy-portal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, Timeout: 5 * time.Second, Attempts: 3})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestFetchAvailabilityMapsRecords(t *testing.T) {
	var gotAuth, gotPath, gotOnly string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotOnly = r.URL.Query().Get("onlyAvailable")
		writeJSON(w, http.StatusOK, []models.AvailabilityRecord{
			{ID: 1, ProviderID: 9, StartTime: "2024-01-15T10:00:00Z", EndTime: "2024-01-15T10:30:00Z", IsBooked: true, UserEmail: "p@x.io", RoomID: "room-1"},
			{ID: 2, ProviderID: 9, StartTime: "garbage", EndTime: "2024-01-15T11:30:00Z"},
			{ID: 3, ProviderID: 9, StartTime: "2024-01-15T12:00:00Z", EndTime: "2024-01-15T12:30:00Z"},
		})
	})

	from := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	got, err := c.FetchAvailability(context.Background(), "tok", 9, from, from.AddDate(1, 0, 0), true)
	if err != nil {
		t.Fatalf("FetchAvailability: %v", err)
	}

	if gotAuth != "Bearer tok" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotPath != "/availability/9" {
		t.Errorf("path = %q", gotPath)
	}
	if gotOnly != "true" {
		t.Errorf("onlyAvailable = %q", gotOnly)
	}
	if len(got) != 2 {
		t.Fatalf("got %d appointments, want 2 (malformed record skipped)", len(got))
	}
	if got[0].IsCarePackage || !got[0].IsBooked || got[0].RoomID != "room-1" {
		t.Errorf("first appointment mapped wrong: %+v", got[0])
	}
}

func TestFetchErrorCarriesBackendMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]string{"message": "Provider suspended"})
	})

	_, err := c.FetchAvailability(context.Background(), "tok", 1, time.Now(), time.Now(), false)

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *FetchError", err)
	}
	if fe.Message != "Provider suspended" || fe.Status != http.StatusForbidden {
		t.Errorf("FetchError = %+v", fe)
	}
}

func TestFetchErrorDefaultMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	c.attempts = 1

	_, err := c.FetchAvailability(context.Background(), "tok", 1, time.Now(), time.Now(), false)

	var fe *FetchError
	if !errors.As(err, &fe) || fe.Message != "Failed to fetch availability" {
		t.Fatalf("err = %v, want default message", err)
	}
}

func TestReadsRetryTransientFailures(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, []models.AvailabilityRecord{})
	})

	got, err := c.FetchAvailability(context.Background(), "tok", 1, time.Now(), time.Now(), false)
	if err != nil {
		t.Fatalf("FetchAvailability: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestReadsDoNotRetryUnauthorized(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.FetchCarePackageAppointments(context.Background(), "tok", 1, time.UTC)
	var fe *FetchError
	if !errors.As(err, &fe) || !fe.Unauthorized() {
		t.Fatalf("err = %v, want unauthorized FetchError", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestWritesAreNotRetried(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := c.DeleteAvailability(context.Background(), "tok", 5)
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Message != "Failed to delete availability" {
		t.Fatalf("err = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestCreateAvailabilitySendsUTC(t *testing.T) {
	var body availabilityPayload
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/availability" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		writeJSON(w, http.StatusCreated, models.AvailabilityRecord{
			ID: 11, ProviderID: body.ProviderID, StartTime: body.StartTime, EndTime: body.EndTime,
		})
	})

	cairo, _ := time.LoadLocation("Africa/Cairo")
	start := time.Date(2024, 1, 15, 16, 30, 0, 0, cairo)
	got, err := c.CreateAvailability(context.Background(), "tok", 4, models.AvailabilityInput{
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
	})
	if err != nil {
		t.Fatalf("CreateAvailability: %v", err)
	}
	if body.StartTime != "2024-01-15T14:30:00Z" {
		t.Errorf("sent startTime %q, want UTC", body.StartTime)
	}
	if got.ID != 11 || got.ProviderID != 4 {
		t.Errorf("created = %+v", got)
	}
}

func TestLoginDecodesByKind(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pharmacy/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"token":    "upstream-token",
			"pharmacy": map[string]any{"id": 3, "name": "Nile Pharmacy", "email": "nile@x.io"},
		})
	})

	resp, err := c.Login(context.Background(), models.KindPharmacy, "nile@x.io", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token != "upstream-token" || resp.Account.ID != 3 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestDefaultRange(t *testing.T) {
	cairo, _ := time.LoadLocation("Africa/Cairo")
	// 23:30 UTC on Jan 14 is already Jan 15 in Cairo.
	now := time.Date(2024, 1, 14, 23, 30, 0, 0, time.UTC)

	from, to := DefaultRange(now, cairo)

	if want := time.Date(2024, 1, 15, 0, 0, 0, 0, cairo); !from.Equal(want) {
		t.Errorf("from = %s, want %s", from, want)
	}
	if to.Year() != 2025 || to.Month() != time.January || to.Day() != 15 || to.Hour() != 23 || to.Minute() != 59 {
		t.Errorf("to = %s, want end of Jan 15 2025", to)
	}
}
