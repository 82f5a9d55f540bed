package cacheadmin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"badgeofshame/internal/cache"
	"badgeofshame/internal/errmsg"
	"badgeofshame/internal/models"
	"badgeofshame/internal/testhelpers"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

const testSlug = "octo/widget"

type downStore struct{}

func (downStore) Get(context.Context, string) (cache.Entry, bool, error) {
	return cache.Entry{}, false, errors.New("dial tcp: connection refused")
}

func (downStore) Set(context.Context, string, cache.Entry) error {
	return errors.New("dial tcp: connection refused")
}

func (downStore) Delete(context.Context, string) error {
	return errors.New("dial tcp: connection refused")
}

func newTestApp(store cache.Store) (*fiber.App, string) {
	models.SetJWTSecret("cache-admin-secret")

	app := fiber.New()
	Routes(app.Group("/_badge"), store)

	return app, (&models.Operator{Username: "ops"}).GenToken()
}

func TestGetCachedEntry(t *testing.T) {
	store := cache.NewMemoryStore()
	want := cache.Entry{LastBuildID: 7, LastLogin: "dev", LastURL: "https://github.com/octo/widget/commit/abc"}
	require.NoError(t, store.Set(context.Background(), testSlug, want))

	app, token := newTestApp(store)

	body, statusCode := testhelpers.RequestRunner(t, app, http.MethodGet, "/_badge/cache/octo/widget", nil, &token)
	require.Equal(t, http.StatusOK, statusCode)

	var got cache.Entry
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, want, got)
}

func TestGetMissingEntry(t *testing.T) {
	app, token := newTestApp(cache.NewMemoryStore())

	body, statusCode := testhelpers.RequestRunner(t, app, http.MethodGet, "/_badge/cache/octo/widget", nil, &token)
	testhelpers.ResponseErrorCheck(t, errmsg.CacheEntryNotFound, body, statusCode)
}

func TestPurgeEntry(t *testing.T) {
	store := cache.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), testSlug, cache.Entry{LastBuildID: 7, LastBuildSuccess: true}))

	app, token := newTestApp(store)

	_, statusCode := testhelpers.RequestRunner(t, app, http.MethodDelete, "/_badge/cache/octo/widget", nil, &token)
	require.Equal(t, http.StatusNoContent, statusCode)
	require.Equal(t, 0, store.Len())

	// Purging again is not an error.
	_, statusCode = testhelpers.RequestRunner(t, app, http.MethodDelete, "/_badge/cache/octo/widget", nil, &token)
	require.Equal(t, http.StatusNoContent, statusCode)
}

func TestCacheRoutesRequireToken(t *testing.T) {
	app, _ := newTestApp(cache.NewMemoryStore())

	body, statusCode := testhelpers.RequestRunner(t, app, http.MethodGet, "/_badge/cache/octo/widget", nil, nil)
	testhelpers.ResponseErrorCheck(t, errmsg.OperatorNoToken, body, statusCode)

	bad := "not-a-token"
	_, statusCode = testhelpers.RequestRunner(t, app, http.MethodDelete, "/_badge/cache/octo/widget", nil, &bad)
	require.Equal(t, http.StatusUnauthorized, statusCode)
}

func TestCacheUnavailable(t *testing.T) {
	app, token := newTestApp(downStore{})

	body, statusCode := testhelpers.RequestRunner(t, app, http.MethodGet, "/_badge/cache/octo/widget", nil, &token)
	testhelpers.ResponseErrorCheck(t, errmsg.CacheUnavailable, body, statusCode)

	body, statusCode = testhelpers.RequestRunner(t, app, http.MethodDelete, "/_badge/cache/octo/widget", nil, &token)
	testhelpers.ResponseErrorCheck(t, errmsg.CacheUnavailable, body, statusCode)
}
