// Package remote is the client for the itinerary service. It translates
// store mutations into HTTP calls and API responses back into trip data.
package remote

import (
	"errors"
	"fmt"
)

// ErrUnauthorized means the session is missing or expired; callers should
// route the user back through login.
var ErrUnauthorized = errors.New("remote: not logged in")

// NetworkError wraps a transport failure: the call never completed and the
// server state is unknown.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("remote: network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RejectionError means the call completed but the server reported failure.
type RejectionError struct {
	Status  int
	Message string
}

func (e *RejectionError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote: server rejected request (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("remote: server rejected request (%d)", e.Status)
}

// IsNetwork reports whether err is a transport-level failure.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
