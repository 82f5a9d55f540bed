// Package upstream holds the failure kinds shared by the Travis and GitHub clients.
package upstream

import (
	"errors"
	"fmt"
)

// UserAgent is sent on every outbound request.
const UserAgent = "Badge Of Shame v1.0"

var (
	ErrInvalidJSON = errors.New("invalid JSON")
	ErrMissingData = errors.New("missing data")
)

// StatusError reports a response whose status was not 200.
type StatusError struct {
	Status int
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.Status, e.URL)
}
