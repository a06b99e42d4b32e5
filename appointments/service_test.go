package appointments

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/meinhoongagan/pharmacy-portal/cache"
	"github.com/meinhoongagan/pharmacy-portal/models"
	"github.com/meinhoongagan/pharmacy-portal/timezone"
	"github.com/meinhoongagan/pharmacy-portal/upstream"
)

type fakeSources struct {
	mu         sync.Mutex
	regular    []models.Appointment
	care       []models.Appointment
	regularErr error
	careErr    error
	calls      map[string]int
	created    []models.AvailabilityInput
}

func (f *fakeSources) count(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[op]++
}

func (f *fakeSources) callCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeSources) FetchAvailability(_ context.Context, _ string, _ int, _, _ time.Time, _ bool) ([]models.Appointment, error) {
	f.count("availability")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.regular, f.regularErr
}

func (f *fakeSources) FetchCarePackageAppointments(_ context.Context, _ string, _ int, _ *time.Location) ([]models.Appointment, error) {
	f.count("care")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.care, f.careErr
}

func (f *fakeSources) CreateAvailability(_ context.Context, _ string, providerID int, in models.AvailabilityInput) (models.Appointment, error) {
	f.count("create")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, in)
	return models.Appointment{ID: 99, ProviderID: providerID, StartTime: in.StartTime, EndTime: in.EndTime}, nil
}

func (f *fakeSources) UpdateAvailability(_ context.Context, _ string, id int, in models.AvailabilityInput) (models.Appointment, error) {
	f.count("update")
	return models.Appointment{ID: id, StartTime: in.StartTime, EndTime: in.EndTime}, nil
}

func (f *fakeSources) DeleteAvailability(_ context.Context, _ string, _ int) error {
	f.count("delete")
	return nil
}

type utcZones struct{ memo *timezone.Memo }

func (z utcZones) Timezone(_ context.Context, _ *models.Session) (*timezone.Context, *models.Pharmacy) {
	return z.memo.For(nil), nil
}

func newTestService(src *fakeSources, now time.Time) *Service {
	clock := func() time.Time { return now }
	q := cache.NewQuery(cache.NewMemoryStore(clock), cache.QueryConfig{
		StaleTime: 5 * time.Minute,
		GCTime:    10 * time.Minute,
		Now:       clock,
	})
	zones := utcZones{memo: timezone.NewMemo(timezone.NewResolver("UTC"), clock)}
	return NewService(src, zones, q, clock, nil)
}

var testSession = &models.Session{ID: "s1", Kind: models.KindDoctor, AccountID: 7, UpstreamToken: "tok"}

func TestLoadMergesSources(t *testing.T) {
	src := &fakeSources{
		regular: []models.Appointment{slot(1, at(17, 12), false), slot(2, at(16, 9), true)},
		care:    []models.Appointment{carePackage(3, at(16, 10))},
	}
	s := newTestService(src, at(16, 8))

	d := s.Load(context.Background(), testSession)
	if d.IsError {
		t.Fatalf("unexpected error: %s", d.Error)
	}
	if len(d.Appointments) != 3 || len(d.BookedAppointments) != 2 || len(d.AvailableSlots) != 1 {
		t.Errorf("counts all=%d booked=%d available=%d", len(d.Appointments), len(d.BookedAppointments), len(d.AvailableSlots))
	}
	if d.Timezone != "UTC" {
		t.Errorf("Timezone = %q", d.Timezone)
	}
}

func TestLoadKeepsPartialData(t *testing.T) {
	src := &fakeSources{
		regular: []models.Appointment{slot(1, at(16, 9), false)},
		careErr: &upstream.FetchError{Op: "care", Status: 500, Message: "Failed to fetch care package appointments"},
	}
	s := newTestService(src, at(16, 8))

	d := s.Load(context.Background(), testSession)
	if !d.IsError || d.Errors.CarePackages == "" {
		t.Fatalf("care-package failure not reported: %+v", d)
	}
	if d.Errors.Availability != "" {
		t.Errorf("availability error = %q, want none", d.Errors.Availability)
	}
	if len(d.Appointments) != 1 || d.Appointments[0].ID != 1 {
		t.Errorf("regular data lost: %+v", d.Appointments)
	}
	var fe *upstream.FetchError
	if !errors.As(d.CarePackageErr, &fe) {
		t.Errorf("CarePackageErr = %v, want *FetchError", d.CarePackageErr)
	}
}

func TestLoadServesCacheWhileFresh(t *testing.T) {
	src := &fakeSources{regular: []models.Appointment{slot(1, at(16, 9), false)}}
	s := newTestService(src, at(16, 8))

	s.Load(context.Background(), testSession)
	s.Load(context.Background(), testSession)

	if n := src.callCount("availability"); n != 1 {
		t.Errorf("availability fetched %d times, want 1", n)
	}
	if n := src.callCount("care"); n != 1 {
		t.Errorf("care packages fetched %d times, want 1", n)
	}
}

func TestCreateAvailabilityInvalidatesCache(t *testing.T) {
	src := &fakeSources{}
	s := newTestService(src, at(16, 8))
	ctx := context.Background()

	s.Load(ctx, testSession)
	if _, err := s.CreateAvailability(ctx, testSession, models.AvailabilityInput{StartTime: at(18, 9), EndTime: at(18, 10)}); err != nil {
		t.Fatal(err)
	}
	s.Load(ctx, testSession)

	if n := src.callCount("availability"); n != 2 {
		t.Errorf("availability fetched %d times, want refetch after create", n)
	}
	if n := src.callCount("care"); n != 2 {
		t.Errorf("care packages fetched %d times, want refetch after create", n)
	}
}

func TestCreateAvailabilityRejectsBeforeCalling(t *testing.T) {
	src := &fakeSources{}
	s := newTestService(src, at(16, 8))

	_, err := s.CreateAvailability(context.Background(), testSession, models.AvailabilityInput{StartTime: at(18, 10), EndTime: at(18, 9)})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if n := src.callCount("create"); n != 0 {
		t.Errorf("backend called %d times for invalid input", n)
	}
}
