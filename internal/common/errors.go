// Package common defines shared constants and sentinel errors used across
// socli layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Generic flow-control errors.
	ErrorNotFound = errors.New("not found")
	ErrorInternal = errors.New("internal error")

	// Auth errors (rejected credentials or missing/expired token).
	ErrorUnauthorized = errors.New("unauthorized")

	// Transport errors (server unreachable or answering 5xx).
	ErrorUnavailable = errors.New("server unavailable")

	// Local pre-network validation failures. These never reach the network.
	ErrorValidation = errors.New("validation error")
)
