package errmsg

import "net/http"

// Cache admin StatusError helpers.
var (
	CacheEntryNotFound = NewStatusError(http.StatusNotFound, "no cached badge for this repository")
	CacheUnavailable   = NewStatusError(http.StatusServiceUnavailable, "badge cache is unavailable")
)

type _CacheEntryNotFound struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"no cached badge for this repository"`
}
