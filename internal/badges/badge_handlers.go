package badges

import (
	"context"
	"strings"
	"time"

	"badgeofshame/internal/badge"
	"badgeofshame/internal/events"
	"badgeofshame/internal/resolver"

	"github.com/gofiber/fiber/v3"
)

type handler struct {
	resolver *resolver.Resolver
	timeout  time.Duration
}

// badge renders the badge for the repository's most recent failing commit.
// @Summary Repository badge
// @Description Always 200: the fault badge while the build is broken, a 1x1 SVG otherwise.
// @Tags Badges
// @Produce image/svg+xml
// @Param owner path string true "repository owner"
// @Param repo path string true "repository name"
// @Success 200 {string} string "SVG document"
// @Router /{owner}/{repo} [get]
func (h *handler) badge(c fiber.Ctx) error {
	owner := strings.TrimSpace(c.Params("owner"))
	repo := strings.TrimSpace(c.Params("repo"))
	if owner == "" || repo == "" || owner == ReservedOwner || strings.HasSuffix(c.Path(), "/") {
		return NotFound(c)
	}

	slug := owner + "/" + repo

	ctx := c.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	res := h.resolver.Resolve(ctx, slug)

	diagnostic := ""
	if res.Err != nil {
		diagnostic = res.Err.Error()
	}
	events.Em.BadgeResolved(slug, string(res.Outcome), res.BuildID, res.Login, diagnostic)

	c.Set(fiber.HeaderContentType, badge.ContentType)
	c.Set(fiber.HeaderCacheControl, "no-cache")

	return c.Status(fiber.StatusOK).SendString(res.Body)
}
