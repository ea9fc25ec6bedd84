package humanize

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyText is returned when the form text is empty after trimming.
// It is detected locally; no request is made.
var ErrEmptyText = errors.New("text is empty")

// TransportError covers everything that can go wrong once the request
// leaves the client: network failures, non-2xx statuses and bodies that
// are not a JSON object.
type TransportError struct {
	// Endpoint is the URL the request was posted to.
	Endpoint string

	// StatusCode is zero when no response was received.
	StatusCode int

	Err error
}

func (e *TransportError) Error() string {
	prefix := "humanize"
	if e.Endpoint != "" {
		prefix += " " + e.Endpoint
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", prefix, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", prefix, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
