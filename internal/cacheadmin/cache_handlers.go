package cacheadmin

import (
	"context"
	"strings"

	"badgeofshame/internal/cache"
	"badgeofshame/internal/errmsg"
	"badgeofshame/internal/events"
	"badgeofshame/internal/models"
	"badgeofshame/internal/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

type handler struct {
	store cache.Store
}

func slugParam(c fiber.Ctx) string {
	return strings.TrimSpace(c.Params("owner")) + "/" + strings.TrimSpace(c.Params("repo"))
}

// get returns the cached entry for a repository.
// @Summary Show cached badge state
// @Tags Badge Cache
// @Security OperatorAuth
// @Produce json
// @Param owner path string true "repository owner"
// @Param repo path string true "repository name"
// @Success 200 {object} cache.Entry
// @Failure 401 {object} errmsg._OperatorNoToken
// @Failure 404 {object} errmsg._CacheEntryNotFound
// @Router /_badge/cache/{owner}/{repo} [get]
func (h *handler) get(c fiber.Ctx) error {
	slug := slugParam(c)

	entry, ok, err := h.store.Get(context.Background(), slug)
	if err != nil {
		logrus.WithError(err).WithField("repo", slug).Warn("cache lookup failed")
		return utils.StatusError(c, errmsg.CacheUnavailable)
	}
	if !ok {
		return utils.StatusError(c, errmsg.CacheEntryNotFound)
	}

	return c.JSON(entry)
}

// purge drops the cached entry so the next badge request goes upstream.
// @Summary Purge cached badge state
// @Tags Badge Cache
// @Security OperatorAuth
// @Param owner path string true "repository owner"
// @Param repo path string true "repository name"
// @Success 204
// @Failure 401 {object} errmsg._OperatorNoToken
// @Router /_badge/cache/{owner}/{repo} [delete]
func (h *handler) purge(c fiber.Ctx) error {
	slug := slugParam(c)

	if err := h.store.Delete(context.Background(), slug); err != nil {
		logrus.WithError(err).WithField("repo", slug).Warn("cache purge failed")
		return utils.StatusError(c, errmsg.CacheUnavailable)
	}

	operator, _ := utils.GetLocals[models.Operator](c, "operator")
	events.Em.CacheEntryPurged(operator.Username, slug)

	return c.SendStatus(fiber.StatusNoContent)
}
