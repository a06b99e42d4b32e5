package appointments

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/meinhoongagan/pharmacy-portal/cache"
	"github.com/meinhoongagan/pharmacy-portal/models"
	"github.com/meinhoongagan/pharmacy-portal/timezone"
	"github.com/meinhoongagan/pharmacy-portal/upstream"
)

// Sources are the two backend appointment sources plus slot mutations.
type Sources interface {
	FetchAvailability(ctx context.Context, token string, providerID int, from, to time.Time, onlyAvailable bool) ([]models.Appointment, error)
	FetchCarePackageAppointments(ctx context.Context, token string, providerID int, loc *time.Location) ([]models.Appointment, error)
	CreateAvailability(ctx context.Context, token string, providerID int, in models.AvailabilityInput) (models.Appointment, error)
	UpdateAvailability(ctx context.Context, token string, id int, in models.AvailabilityInput) (models.Appointment, error)
	DeleteAvailability(ctx context.Context, token string, id int) error
}

// ZoneProvider resolves the timezone for a session.
type ZoneProvider interface {
	Timezone(ctx context.Context, sess *models.Session) (*timezone.Context, *models.Pharmacy)
}

// Data is the dashboard's appointment payload.
type Data struct {
	Appointments       []models.Appointment `json:"appointments"`
	BookedAppointments []models.Appointment `json:"bookedAppointments"`
	AvailableSlots     []models.Appointment `json:"availableSlots"`
	WeeklyAppointments []models.Appointment `json:"weeklyAppointments"`
	Timezone           string               `json:"timezone"`
	Error              string               `json:"error,omitempty"`
	IsError            bool                 `json:"isError"`
	IsLoading          bool                 `json:"isLoading"`
	Errors             SourceErrors         `json:"errors"`

	AvailabilityErr error `json:"-"`
	CarePackageErr  error `json:"-"`
}

// SourceErrors holds per-source error messages.
type SourceErrors struct {
	Availability string `json:"availability,omitempty"`
	CarePackages string `json:"carePackages,omitempty"`
}

// Service loads and mutates a provider's appointments.
type Service struct {
	sources Sources
	zones   ZoneProvider
	query   *cache.Query
	now     func() time.Time
	log     *zap.Logger
}

func NewService(sources Sources, zones ZoneProvider, query *cache.Query, now func() time.Time, log *zap.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{sources: sources, zones: zones, query: query, now: now, log: log}
}

// Now returns the service clock.
func (s *Service) Now() time.Time {
	return s.now()
}

func availabilityPrefix(providerID int) string {
	return "availability:" + strconv.Itoa(providerID) + ":"
}

func carePackagePrefix(providerID int) string {
	return "care:" + strconv.Itoa(providerID) + ":"
}

// Load fetches both sources concurrently and aggregates whatever arrived.
// A failing source does not hold back the other; its error is reported
// in Data and its retained cache entry, if any, is still used.
func (s *Service) Load(ctx context.Context, sess *models.Session) *Data {
	tz, _ := s.zones.Timezone(ctx, sess)
	loc := tz.Formatters.Location()
	now := s.now()
	from, to := upstream.DefaultRange(now, loc)

	var (
		regular, care       []models.Appointment
		regularErr, careErr error
		g                   errgroup.Group
	)

	g.Go(func() error {
		key := availabilityPrefix(sess.AccountID) + from.Format("2006-01-02")
		regular, regularErr = cache.Fetch(ctx, s.query, key, func(ctx context.Context) ([]models.Appointment, error) {
			return s.sources.FetchAvailability(ctx, sess.UpstreamToken, sess.AccountID, from, to, false)
		})
		return regularErr
	})
	g.Go(func() error {
		key := carePackagePrefix(sess.AccountID) + tz.Zone
		care, careErr = cache.Fetch(ctx, s.query, key, func(ctx context.Context) ([]models.Appointment, error) {
			return s.sources.FetchCarePackageAppointments(ctx, sess.UpstreamToken, sess.AccountID, loc)
		})
		return careErr
	})
	_ = g.Wait()

	if regularErr != nil {
		s.log.Error("availability fetch failed",
			zap.Int("provider_id", sess.AccountID),
			zap.Int("retained", len(regular)),
			zap.Error(regularErr),
		)
	}
	if careErr != nil {
		s.log.Error("care package fetch failed",
			zap.Int("provider_id", sess.AccountID),
			zap.Int("retained", len(care)),
			zap.Error(careErr),
		)
	}

	p := Aggregate(regular, care, now, loc)
	d := &Data{
		Appointments:       p.All,
		BookedAppointments: p.Booked,
		AvailableSlots:     p.Available,
		WeeklyAppointments: p.Weekly,
		Timezone:           tz.Zone,
		AvailabilityErr:    regularErr,
		CarePackageErr:     careErr,
	}
	if regularErr != nil {
		d.Errors.Availability = regularErr.Error()
	}
	if careErr != nil {
		d.Errors.CarePackages = careErr.Error()
	}
	switch {
	case regularErr != nil:
		d.IsError, d.Error = true, regularErr.Error()
	case careErr != nil:
		d.IsError, d.Error = true, careErr.Error()
	}
	return d
}

// Booked returns the session's booked appointments, ascending.
func (s *Service) Booked(ctx context.Context, sess *models.Session) []models.Appointment {
	return s.Load(ctx, sess).BookedAppointments
}

// CreateAvailability validates and creates a slot, then invalidates the
// provider's cached appointments.
func (s *Service) CreateAvailability(ctx context.Context, sess *models.Session, in models.AvailabilityInput) (models.Appointment, error) {
	if err := ValidateAvailability(in); err != nil {
		return models.Appointment{}, err
	}
	a, err := s.sources.CreateAvailability(ctx, sess.UpstreamToken, sess.AccountID, in)
	if err != nil {
		s.log.Error("create availability failed", zap.Int("provider_id", sess.AccountID), zap.Error(err))
		return models.Appointment{}, err
	}
	s.invalidate(ctx, sess.AccountID)
	return a, nil
}

// UpdateAvailability validates and edits a slot.
func (s *Service) UpdateAvailability(ctx context.Context, sess *models.Session, id int, in models.AvailabilityInput) (models.Appointment, error) {
	if err := ValidateAvailability(in); err != nil {
		return models.Appointment{}, err
	}
	a, err := s.sources.UpdateAvailability(ctx, sess.UpstreamToken, id, in)
	if err != nil {
		s.log.Error("update availability failed", zap.Int("provider_id", sess.AccountID), zap.Int("id", id), zap.Error(err))
		return models.Appointment{}, err
	}
	s.invalidate(ctx, sess.AccountID)
	return a, nil
}

// DeleteAvailability removes a slot.
func (s *Service) DeleteAvailability(ctx context.Context, sess *models.Session, id int) error {
	if err := s.sources.DeleteAvailability(ctx, sess.UpstreamToken, id); err != nil {
		s.log.Error("delete availability failed", zap.Int("provider_id", sess.AccountID), zap.Int("id", id), zap.Error(err))
		return err
	}
	s.invalidate(ctx, sess.AccountID)
	return nil
}

// invalidate drops both sources so a booking made against a slot is
// reflected on the next load.
func (s *Service) invalidate(ctx context.Context, providerID int) {
	for _, prefix := range []string{availabilityPrefix(providerID), carePackagePrefix(providerID)} {
		if err := s.query.Invalidate(ctx, prefix); err != nil {
			s.log.Warn("appointment cache invalidation failed",
				zap.Int("provider_id", providerID),
				zap.String("prefix", prefix),
				zap.Error(err),
			)
		}
	}
}
