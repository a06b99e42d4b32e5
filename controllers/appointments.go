package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/pharmacy-portal/appointments"
	"github.com/meinhoongagan/pharmacy-portal/middleware"
	"github.com/meinhoongagan/pharmacy-portal/models"
	"github.com/meinhoongagan/pharmacy-portal/timezone"
	"github.com/meinhoongagan/pharmacy-portal/utils"
)

const timeFormat = time.RFC3339

// GetAppointments godoc
// @Summary Merged regular and care-package appointments
// @Description Sorted appointments with booked, available and weekly partitions. A failing source is reported in errors while the other source's data is still returned.
// @Tags appointments
// @Produce json
// @Success 200 {object} appointments.Data
// @Router /appointments [get]
func (h *Handler) GetAppointments(c *fiber.Ctx) error {
	return c.JSON(h.Appointments.Load(c.UserContext(), middleware.CurrentSession(c)))
}

type availabilityRequest struct {
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	DoctorNote string `json:"doctorNote"`
}

func (r availabilityRequest) input() (models.AvailabilityInput, error) {
	in := models.AvailabilityInput{DoctorNote: r.DoctorNote}
	if r.StartTime != "" {
		t, ok := timezone.ParseInstant(r.StartTime)
		if !ok {
			return in, &appointments.ValidationError{Field: "startTime", Message: "Start time is not a valid date"}
		}
		in.StartTime = t
	}
	if r.EndTime != "" {
		t, ok := timezone.ParseInstant(r.EndTime)
		if !ok {
			return in, &appointments.ValidationError{Field: "endTime", Message: "End time is not a valid date"}
		}
		in.EndTime = t
	}
	return in, nil
}

func (h *Handler) parseAvailability(c *fiber.Ctx) (models.AvailabilityInput, error) {
	req := new(availabilityRequest)
	if err := c.BodyParser(req); err != nil {
		return models.AvailabilityInput{}, err
	}
	return req.input()
}

// CreateAvailability godoc
// @Summary Create an availability slot
// @Tags availability
// @Accept json
// @Produce json
// @Success 201 {object} models.Appointment
// @Failure 422 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /availability [post]
func (h *Handler) CreateAvailability(c *fiber.Ctx) error {
	in, err := h.parseAvailability(c)
	if err != nil {
		return h.badInput(c, err)
	}

	a, err := h.Appointments.CreateAvailability(c.UserContext(), middleware.CurrentSession(c), in)
	if err != nil {
		return h.fail(c, err, "Failed to create availability")
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

// UpdateAvailability godoc
// @Summary Edit an availability slot
// @Tags availability
// @Accept json
// @Produce json
// @Param id path int true "Slot ID"
// @Success 200 {object} models.Appointment
// @Failure 422 {object} utils.ErrorResponse
// @Router /availability/{id} [patch]
func (h *Handler) UpdateAvailability(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid availability ID", err)
	}
	in, err := h.parseAvailability(c)
	if err != nil {
		return h.badInput(c, err)
	}

	a, err := h.Appointments.UpdateAvailability(c.UserContext(), middleware.CurrentSession(c), id, in)
	if err != nil {
		return h.fail(c, err, "Failed to update availability")
	}
	return c.JSON(a)
}

// DeleteAvailability godoc
// @Summary Delete an availability slot
// @Tags availability
// @Param id path int true "Slot ID"
// @Success 204
// @Router /availability/{id} [delete]
func (h *Handler) DeleteAvailability(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid availability ID", err)
	}

	if err := h.Appointments.DeleteAvailability(c.UserContext(), middleware.CurrentSession(c), id); err != nil {
		return h.fail(c, err, "Failed to delete availability")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) badInput(c *fiber.Ctx, err error) error {
	if _, ok := err.(*appointments.ValidationError); ok {
		return h.fail(c, err, "Invalid availability")
	}
	return utils.Fail(c, fiber.StatusBadRequest, "Failed to parse request body", err)
}
