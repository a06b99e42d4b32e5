package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/pharmacy-portal/controllers"
)

// SetupProfileRoutes configures the timezone, reviews and profile routes
func SetupProfileRoutes(app *fiber.App, h *controllers.Handler, protected fiber.Handler) {
	app.Get("/timezone", protected, h.GetTimezone)
	app.Get("/reviews", protected, h.GetReviews)
	app.Post("/profile/insurance-document", protected, h.UploadInsuranceDocument)
}
