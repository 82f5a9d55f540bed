// Package cache stores the last resolved badge per repository.
package cache

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

const keyPrefix = "BADGE:"

// Entry is the cached outcome for one repository. It is only valid while
// LastBuildID matches the repository's current last build.
type Entry struct {
	LastBuildID      int64  `json:"last_build_id"`
	LastBuildSuccess bool   `json:"last_build_success"`
	LastLogin        string `json:"last_login,omitempty"`
	LastURL          string `json:"last_url,omitempty"`
}

// Store is a single-key get/set store shared by all requests.
type Store interface {
	Get(ctx context.Context, slug string) (Entry, bool, error)
	Set(ctx context.Context, slug string, entry Entry) error
	Delete(ctx context.Context, slug string) error
}

// Key returns the storage key for slug.
func Key(slug string) string {
	return keyPrefix + slug
}

func encode(entry Entry) ([]byte, error) {
	return json.Marshal(entry)
}

func decode(data []byte) (Entry, error) {
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, errors.Wrap(err, "decoding cache entry")
	}
	return entry, nil
}
