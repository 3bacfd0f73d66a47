package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skycast-io/skycast/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Post("/register", auth.Register)
	v1.Post("/login", auth.Login)
	v1.Post("/logout", auth.Logout)

	// Identity lookup for the dashboard client
	v1.Get("/", authMW, auth.Identity)
}
