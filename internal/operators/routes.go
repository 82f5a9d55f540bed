// Package operators exposes login for the accounts that administer the service.
package operators

import "github.com/gofiber/fiber/v3"

// Routes wires the operator endpoints under /_badge/operators.
func Routes(app fiber.Router) {
	operators := app.Group("/operators")

	operators.Get("/ping", func(c fiber.Ctx) error {
		return c.SendString("PONG")
	})

	operators.Post("/login", loginHandler)
}
