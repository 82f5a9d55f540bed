// Package ws streams live audit events to operators over WebSockets.
package ws

import (
	"context"

	"badgeofshame/internal/events"
	"badgeofshame/internal/models"

	"github.com/gofiber/fiber/v3"
)

// Routes wires GET /_badge/ws/events.
func Routes(app fiber.Router) {
	group := app.Group("/ws", models.OperatorWebSocketMiddleware)

	group.Get("/events", eventsHandler)
}

// eventsHandler tails badge and operator events.
// @Summary Live event tail
// @Tags Badge Operators
// @Security OperatorAuth
// @Param authorization query string false "operator token for browsers"
// @Success 101 {string} string "switching protocols"
// @Failure 401 {object} errmsg._OperatorNoToken
// @Router /_badge/ws/events [get]
func eventsHandler(c fiber.Ctx) error {
	em := events.Em
	if em == nil {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return StreamWebSocket(c, func(ctx context.Context, writer *EventWriter) error {
		ch, cancel := em.Subscribe()
		defer cancel()

		return TailEvents(ctx, ch, writer)
	})
}
