package controllers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/meinhoongagan/pharmacy-portal/appointments"
	"github.com/meinhoongagan/pharmacy-portal/meetings"
	"github.com/meinhoongagan/pharmacy-portal/models"
	"github.com/meinhoongagan/pharmacy-portal/profile"
	"github.com/meinhoongagan/pharmacy-portal/session"
	"github.com/meinhoongagan/pharmacy-portal/upstream"
	"github.com/meinhoongagan/pharmacy-portal/utils"
)

// ReviewSource lists patient reviews for a provider.
type ReviewSource interface {
	FetchReviews(ctx context.Context, token string, providerID int) ([]models.Review, error)
}

// Handler carries the services behind the HTTP routes.
type Handler struct {
	Sessions     *session.Manager
	Appointments *appointments.Service
	Meetings     *meetings.Service
	Profiles     *profile.Service
	Reviews      ReviewSource
	Log          *zap.Logger
}

// fail maps service errors onto HTTP responses.
func (h *Handler) fail(c *fiber.Ctx, err error, message string) error {
	var (
		verr *appointments.ValidationError
		ferr *upstream.FetchError
	)
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: verr.Message,
			Field:   verr.Field,
		})
	case errors.As(err, &ferr):
		status := fiber.StatusBadGateway
		if ferr.Unauthorized() {
			status = ferr.Status
		}
		return c.Status(status).JSON(utils.ErrorResponse{
			Message: ferr.Message,
			Error:   ferr.Error(),
		})
	case errors.Is(err, meetings.ErrMeetingNotFound):
		return utils.Fail(c, fiber.StatusNotFound, "Meeting not found", err)
	case errors.Is(err, meetings.ErrNoRoom),
		errors.Is(err, meetings.ErrNotJoinable),
		errors.Is(err, meetings.ErrNotJoined):
		return utils.Fail(c, fiber.StatusConflict, message, err)
	case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrInvalidToken):
		return utils.Fail(c, fiber.StatusUnauthorized, "Unauthorized", err)
	case errors.Is(err, models.ErrMissingToken):
		return utils.Fail(c, fiber.StatusBadGateway, message, err)
	case errors.Is(err, profile.ErrUploadsDisabled):
		return utils.Fail(c, fiber.StatusServiceUnavailable, message, err)
	}

	h.Log.Error(message, zap.String("path", c.Path()), zap.Error(err))
	return utils.Fail(c, fiber.StatusInternalServerError, message, err)
}
