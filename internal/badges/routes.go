// Package badges serves the SVG badge for GET /{owner}/{repo}.
package badges

import (
	"time"

	"badgeofshame/internal/resolver"

	"github.com/gofiber/fiber/v3"
)

// ReservedOwner prefixes the operational routes and is never a repository owner.
const ReservedOwner = "_badge"

// Routes wires the badge endpoint. Register it after the /_badge group.
func Routes(app fiber.Router, r *resolver.Resolver, requestTimeout time.Duration) {
	h := &handler{resolver: r, timeout: requestTimeout}

	app.Get("/:owner/:repo", h.badge)
}

// NotFound answers every unmatched path or method with an empty 404.
func NotFound(c fiber.Ctx) error {
	c.Status(fiber.StatusNotFound)
	return nil
}
