package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/meinhoongagan/pharmacy-portal/models"
	"github.com/meinhoongagan/pharmacy-portal/timezone"
)

const (
	msgFetchAvailability  = "Failed to fetch availability"
	msgCreateAvailability = "Failed to create availability"
	msgUpdateAvailability = "Failed to update availability"
	msgDeleteAvailability = "Failed to delete availability"
)

// DefaultRange is the window used for dashboard reads: from the start of
// today in loc to the end of the same day one year later.
func DefaultRange(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	from := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	next := from.AddDate(1, 0, 0)
	to := time.Date(next.Year(), next.Month(), next.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), loc)
	return from, to
}

// FetchAvailability lists a provider's regular slots in [from, to].
func (c *Client) FetchAvailability(ctx context.Context, token string, providerID int, from, to time.Time, onlyAvailable bool) ([]models.Appointment, error) {
	q := url.Values{}
	q.Set("from", from.UTC().Format(time.RFC3339))
	q.Set("to", to.UTC().Format(time.RFC3339))
	if onlyAvailable {
		q.Set("onlyAvailable", "true")
	}

	var records []models.AvailabilityRecord
	err := c.do(ctx, call{
		method: fiber.MethodGet,
		path:   "/availability/" + strconv.Itoa(providerID),
		query:  q,
		token:  token,
		op:     msgFetchAvailability,
	}, &records)
	if err != nil {
		return nil, err
	}

	out := make([]models.Appointment, 0, len(records))
	for _, rec := range records {
		a, err := FromAvailabilityRecord(rec)
		if err != nil {
			c.log.Warn("skipping malformed availability record",
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

// FromAvailabilityRecord maps a backend slot 1:1 onto an Appointment.
func FromAvailabilityRecord(rec models.AvailabilityRecord) (models.Appointment, error) {
	start, ok := timezone.ParseInstant(rec.StartTime)
	if !ok {
		return models.Appointment{}, fmt.Errorf("invalid startTime %q", rec.StartTime)
	}
	end, ok := timezone.ParseInstant(rec.EndTime)
	if !ok {
		return models.Appointment{}, fmt.Errorf("invalid endTime %q", rec.EndTime)
	}
	if !start.Before(end) {
		return models.Appointment{}, fmt.Errorf("startTime %s is not before endTime %s", rec.StartTime, rec.EndTime)
	}

	return models.Appointment{
		ID:            rec.ID,
		ProviderID:    rec.ProviderID,
		StartTime:     start,
		EndTime:       end,
		IsBooked:      rec.IsBooked,
		UserEmail:     rec.UserEmail,
		RoomID:        rec.RoomID,
		IsCarePackage: false,
		UserNote:      rec.UserNote,
		DoctorNote:    rec.DoctorNote,
	}, nil
}

type availabilityPayload struct {
	ProviderID int    `json:"providerId,omitempty"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	DoctorNote string `json:"doctorNote,omitempty"`
}

func payloadFor(providerID int, in models.AvailabilityInput) availabilityPayload {
	return availabilityPayload{
		ProviderID: providerID,
		StartTime:  in.StartTime.UTC().Format(time.RFC3339),
		EndTime:    in.EndTime.UTC().Format(time.RFC3339),
		DoctorNote: in.DoctorNote,
	}
}

// CreateAvailability defines a new open slot for the provider.
func (c *Client) CreateAvailability(ctx context.Context, token string, providerID int, in models.AvailabilityInput) (models.Appointment, error) {
	var rec models.AvailabilityRecord
	err := c.do(ctx, call{
		method: fiber.MethodPost,
		path:   "/availability",
		token:  token,
		body:   payloadFor(providerID, in),
		op:     msgCreateAvailability,
	}, &rec)
	if err != nil {
		return models.Appointment{}, err
	}
	return c.decodeWritten(rec, msgCreateAvailability)
}

// UpdateAvailability edits an existing slot.
func (c *Client) UpdateAvailability(ctx context.Context, token string, id int, in models.AvailabilityInput) (models.Appointment, error) {
	var rec models.AvailabilityRecord
	err := c.do(ctx, call{
		method: fiber.MethodPatch,
		path:   "/availability/" + strconv.Itoa(id),
		token:  token,
		body:   payloadFor(0, in),
		op:     msgUpdateAvailability,
	}, &rec)
	if err != nil {
		return models.Appointment{}, err
	}
	return c.decodeWritten(rec, msgUpdateAvailability)
}

// DeleteAvailability removes a slot.
func (c *Client) DeleteAvailability(ctx context.Context, token string, id int) error {
	return c.do(ctx, call{
		method: fiber.MethodDelete,
		path:   "/availability/" + strconv.Itoa(id),
		token:  token,
		op:     msgDeleteAvailability,
	}, nil)
}

func (c *Client) decodeWritten(rec models.AvailabilityRecord, op string) (models.Appointment, error) {
	a, err := FromAvailabilityRecord(rec)
	if err != nil {
		return models.Appointment{}, &FetchError{Op: op, Message: op, Err: err}
	}
	return a, nil
}
