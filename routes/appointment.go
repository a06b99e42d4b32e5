package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/pharmacy-portal/controllers"
	"github.com/meinhoongagan/pharmacy-portal/middleware"
	"github.com/meinhoongagan/pharmacy-portal/models"
)

// SetupAppointmentRoutes configures the appointment and availability routes
func SetupAppointmentRoutes(app *fiber.App, h *controllers.Handler, protected fiber.Handler) {
	app.Get("/appointments", protected, h.GetAppointments)

	// Hospitals and branches are organizations without slots of their own.
	availability := app.Group("/availability", protected, middleware.RequireKind(models.KindPharmacy, models.KindDoctor))
	availability.Post("/", h.CreateAvailability)
	availability.Patch("/:id", h.UpdateAvailability)
	availability.Delete("/:id", h.DeleteAvailability)
}
