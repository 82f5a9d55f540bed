// Package testhelpers drives Fiber apps from package tests.
package testhelpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"badgeofshame/internal/errmsg"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

func RequestRunner(
	t *testing.T,
	app *fiber.App,
	method string,
	path string,
	sendBytes []byte,
	token *string,
) (bodyBytes []byte, statusCode int) {
	t.Helper()

	body, resp := Do(t, app, method, path, sendBytes, token)
	return body, resp.StatusCode
}

// Do sends one request through app.Test and returns the body with the response.
func Do(
	t *testing.T,
	app *fiber.App,
	method string,
	path string,
	sendBytes []byte,
	token *string,
) ([]byte, *http.Response) {
	t.Helper()

	req, err := http.NewRequest(
		method,
		path,
		bytes.NewBuffer(sendBytes),
	)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}

	res, err := app.Test(req, fiber.TestConfig{Timeout: 30 * time.Second})
	require.NoError(t, err)
	defer res.Body.Close()

	bodyBytes, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return bodyBytes, res
}

func ResponseErrorCheck(
	t *testing.T,
	serr errmsg.StatusError,
	bodyBytes []byte,
	statusCode int,
) {
	t.Helper()

	require.Equal(t, serr.StatusCode, statusCode)

	var body struct {
		Message string `json:"message"`
	}
	err := json.Unmarshal(bodyBytes, &body)
	require.NoError(t, err)

	require.Equal(t, serr.Message, body.Message)
}
