package upstream

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/meinhoongagan/pharmacy-portal/models"
	"github.com/meinhoongagan/pharmacy-portal/timezone"
)

const msgFetchCarePackages = "Failed to fetch care package appointments"

// FetchCarePackageAppointments lists a provider's confirmed care-package
// sessions, normalized into Appointments in loc.
func (c *Client) FetchCarePackageAppointments(ctx context.Context, token string, providerID int, loc *time.Location) ([]models.Appointment, error) {
	var records []models.CarePackageRecord
	err := c.do(ctx, call{
		method: fiber.MethodGet,
		path:   "/care-packages/appointments/doctor/" + strconv.Itoa(providerID),
		token:  token,
		op:     msgFetchCarePackages,
	}, &records)
	if err != nil {
		return nil, err
	}

	out := make([]models.Appointment, 0, len(records))
	for _, rec := range records {
		a, err := NormalizeCarePackage(rec, loc, c.carePackageDuration)
		if err != nil {
			c.log.Warn("skipping malformed care package appointment",
				zap.Int("id", rec.ID),
				zap.Int("provider_id", providerID),
				zap.Error(err),
			)
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// NormalizeCarePackage turns a care-package record into an Appointment.
// The source has no end time, so the session is given a fixed duration.
func NormalizeCarePackage(rec models.CarePackageRecord, loc *time.Location, duration time.Duration) (models.Appointment, error) {
	start, ok := timezone.ParseInstant(rec.AppointmentDatetime)
	if !ok {
		return models.Appointment{}, fmt.Errorf("invalid appointmentDatetime %q", rec.AppointmentDatetime)
	}
	if duration <= 0 {
		return models.Appointment{}, fmt.Errorf("care package duration must be positive, got %s", duration)
	}
	if loc == nil {
		loc = time.UTC
	}
	start = start.In(loc)

	name := rec.CarePackageName
	if name == "" {
		name = "Package " + strconv.Itoa(rec.PackageID)
	}
	packageID := rec.PackageID

	return models.Appointment{
		ID:              rec.ID,
		ProviderID:      rec.ProviderID,
		StartTime:       start,
		EndTime:         start.Add(duration),
		IsBooked:        true,
		UserEmail:       rec.UserEmail,
		RoomID:          rec.RoomID,
		IsCarePackage:   true,
		CarePackageID:   &packageID,
		CarePackageName: name,
		UserNote:        rec.UserNote,
		DoctorNote:      rec.DoctorNote,
	}, nil
}
