package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/pharmacy-portal/middleware"
)

// GetMeetings godoc
// @Summary Current, next and upcoming meetings with join eligibility
// @Tags meetings
// @Produce json
// @Success 200 {object} meetings.Overview
// @Router /meetings [get]
func (h *Handler) GetMeetings(c *fiber.Ctx) error {
	return c.JSON(h.Meetings.Overview(c.UserContext(), middleware.CurrentSession(c)))
}

// JoinMeeting godoc
// @Summary Join a meeting's video room
// @Tags meetings
// @Produce json
// @Param id path string true "Appointment key, e.g. care:12"
// @Success 200 {object} meetings.JoinResult
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /meetings/{id}/join [post]
func (h *Handler) JoinMeeting(c *fiber.Ctx) error {
	res, err := h.Meetings.Join(c.UserContext(), middleware.CurrentSession(c), c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Cannot join meeting")
	}
	return c.JSON(res)
}

// LeaveMeeting godoc
// @Summary Leave a meeting
// @Tags meetings
// @Param id path string true "Appointment key"
// @Success 200 {object} models.MeetingAttendance
// @Failure 409 {object} utils.ErrorResponse
// @Router /meetings/{id}/leave [post]
func (h *Handler) LeaveMeeting(c *fiber.Ctx) error {
	att, err := h.Meetings.Leave(c.UserContext(), middleware.CurrentSession(c), c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Cannot leave meeting")
	}
	return c.JSON(att)
}
