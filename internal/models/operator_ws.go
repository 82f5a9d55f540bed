package models

import (
	"strings"

	"badgeofshame/internal/errmsg"
	"badgeofshame/internal/utils"

	"github.com/gofiber/fiber/v3"
)

// OperatorWebSocketMiddleware extracts the Authorization token from query parameters
// for WebSocket connections, since browsers don't allow custom headers in WebSocket upgrades.
// Expected query parameter: ?authorization=<token>
func OperatorWebSocketMiddleware(c fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		token = strings.TrimSpace(c.Query("authorization"))
	}

	if token == "" {
		return utils.StatusError(c, errmsg.OperatorNoToken)
	}

	var operator Operator
	if err := operator.ParseToken(token); err != nil || operator.Username == "" {
		return utils.StatusError(c, errmsg.OperatorNoToken)
	}

	utils.SetLocals(c, "operator", operator)

	return c.Next()
}
