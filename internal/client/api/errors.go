package api

import (
	"fmt"

	"github.com/dmitrijs2005/socli/internal/common"
)

// APIError describes a call that reached the backend and was answered with a
// non-success status. Message is the backend's message field when present,
// else a generic phrase keyed to the status class.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Unwrap maps the status onto the shared sentinels so callers can use
// errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == 401 || e.Status == 403:
		return common.ErrorUnauthorized
	case e.Status == 404:
		return common.ErrorNotFound
	case e.Status >= 500:
		return common.ErrorUnavailable
	default:
		return nil
	}
}

// fallbackMessage is used when the response body carries no message field.
func fallbackMessage(status int) string {
	if status >= 500 {
		return "server error"
	}
	return "request rejected"
}
