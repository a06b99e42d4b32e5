package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/pharmacy-portal/controllers"
)

// SetupMeetingRoutes configures the meeting routes
func SetupMeetingRoutes(app *fiber.App, h *controllers.Handler, protected fiber.Handler) {
	meeting := app.Group("/meetings", protected)
	meeting.Get("/", h.GetMeetings)
	meeting.Post("/:id/join", h.JoinMeeting)
	meeting.Post("/:id/leave", h.LeaveMeeting)
}
