package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/pharmacy-portal/controllers"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, h *controllers.Handler, protected fiber.Handler) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/login/:kind", h.Login)
	auth.Post("/refresh", h.RefreshToken)

	// Protected routes
	auth.Get("/me", protected, h.Me)
	auth.Post("/logout", protected, h.Logout)
}
