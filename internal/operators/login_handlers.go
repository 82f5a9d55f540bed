package operators

import (
	"encoding/json"
	"strings"

	"badgeofshame/internal/errmsg"
	"badgeofshame/internal/events"
	"badgeofshame/internal/models"
	"badgeofshame/internal/utils"

	"github.com/gofiber/fiber/v3"
)

// findOperator loads an operator by username; tests replace it.
var findOperator = func(username string) (models.Operator, errmsg.StatusError) {
	op := models.Operator{}
	serr := op.Get(username)
	return op, serr
}

// loginHandler exchanges operator credentials for a bearer token.
// @Summary Operator login
// @Tags Badge Operators
// @Accept json
// @Produce json
// @Param body body models.Operator true "credentials"
// @Success 200 {object} map[string]any
// @Failure 400 {object} errmsg._OperatorInvalidPayload
// @Failure 401 {object} errmsg._OperatorWrongPassword
// @Failure 404 {object} errmsg._OperatorNotExists
// @Router /_badge/operators/login [post]
func loginHandler(c fiber.Ctx) error {
	var body models.Operator
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return utils.StatusError(c, errmsg.OperatorInvalidPayload)
	}

	body.Username = strings.TrimSpace(body.Username)
	body.Password = strings.TrimSpace(body.Password)
	if body.Username == "" || body.Password == "" {
		return utils.StatusError(c, errmsg.OperatorInvalidPayload)
	}

	op, serr := findOperator(body.Username)
	if !serr.IsEmpty() {
		return utils.StatusError(c, serr)
	}

	if !op.CheckPassword(body.Password) {
		return utils.StatusError(c, errmsg.OperatorWrongPassword)
	}

	token := op.GenToken()

	events.Em.OperatorLogin(op.Username)

	op.Password = ""

	return c.JSON(fiber.Map{
		"token":    token,
		"operator": op,
	})
}
