package models

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"badgeofshame/internal/errmsg"
	"badgeofshame/internal/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	op := Operator{Username: "ops", Password: "hash-never-in-token"}
	token := op.GenToken()
	require.NotEmpty(t, token)

	var parsed Operator
	require.NoError(t, parsed.ParseToken(token))
	require.Equal(t, "ops", parsed.Username)
	require.Empty(t, parsed.Password)
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	SetJWTSecret("one")
	token := (&Operator{Username: "ops"}).GenToken()

	SetJWTSecret("two")
	var parsed Operator
	require.Error(t, parsed.ParseToken(token))
	require.Empty(t, parsed.Username)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	op := Operator{Username: "ops", Password: hash}
	require.True(t, op.CheckPassword("s3cret"))
	require.False(t, op.CheckPassword("wrong"))
}

func TestGetWithoutDatabase(t *testing.T) {
	var op Operator
	require.Equal(t, errmsg.OperatorsUnavailable, op.Get("ops"))
}

func newProtectedApp(middleware fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/protected", middleware, func(c fiber.Ctx) error {
		op, ok := utils.GetLocals[Operator](c, "operator")
		if !ok {
			return c.SendStatus(http.StatusInternalServerError)
		}
		return c.SendString(op.Username)
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path string, token string) (int, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestOperatorMiddleware(t *testing.T) {
	SetJWTSecret("test-secret")
	app := newProtectedApp(OperatorMiddleware)

	status, body := doRequest(t, app, "/protected", (&Operator{Username: "ops"}).GenToken())
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ops", body)

	status, body = doRequest(t, app, "/protected", "")
	require.Equal(t, http.StatusUnauthorized, status)

	var payload struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.Equal(t, errmsg.OperatorNoToken.Message, payload.Message)

	status, _ = doRequest(t, app, "/protected", "garbage")
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestOperatorWebSocketMiddlewareAcceptsQueryToken(t *testing.T) {
	SetJWTSecret("test-secret")
	app := newProtectedApp(OperatorWebSocketMiddleware)

	token := (&Operator{Username: "ops"}).GenToken()

	status, body := doRequest(t, app, "/protected?authorization="+token, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ops", body)

	status, _ = doRequest(t, app, "/protected?authorization=nope", "")
	require.Equal(t, http.StatusUnauthorized, status)
}
