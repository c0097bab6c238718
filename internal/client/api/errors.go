package api

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	// ErrUnavailable means the backend could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized maps HTTP 401: the credentials or token are invalid.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrSubscriptionRequired maps HTTP 403 on subscription-gated
	// endpoints. It is the single "upgrade required" signal; no other code
	// path may produce it.
	ErrSubscriptionRequired = errors.New("subscription required")
)

// APIError is a non-2xx response outside the sentinel statuses. Message is
// taken from the response body's "error" field when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// errorMessage pulls a human-readable message out of an error body. The
// backend convention is {"error": "..."}, but bodies of unknown shape or
// invalid JSON fall back to a generic message.
func errorMessage(body []byte) string {
	if m := gjson.GetBytes(body, "error"); m.Exists() && m.String() != "" {
		return m.String()
	}
	return "request failed"
}
