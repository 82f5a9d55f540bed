// Package cacheadmin lets operators inspect and purge cached badges.
package cacheadmin

import (
	"badgeofshame/internal/cache"
	"badgeofshame/internal/models"

	"github.com/gofiber/fiber/v3"
)

func Routes(app fiber.Router, store cache.Store) {
	h := &handler{store: store}

	entries := app.Group("/cache", models.OperatorMiddleware)

	entries.Get("/:owner/:repo", h.get)
	entries.Delete("/:owner/:repo", h.purge)
}
