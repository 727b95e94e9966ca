package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campushub/clubevents/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. Paths match the portal
// front-end, so no version prefix.
func Register(app *fiber.App, auth *handlers.AuthHandler, events *handlers.EventsHandler, reg *handlers.RegistrationHandler, health *handlers.HealthHandler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Clubs Events API!")
	})

	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	app.Post("/signup", auth.Signup)
	app.Post("/login", auth.Login)

	app.Get("/events", events.List)

	app.Post("/register-event", reg.Register)
	app.Get("/myevents-ids/:userId", reg.MyEventIDs)
	app.Get("/myevents/:userId", reg.MyEvents)
}
