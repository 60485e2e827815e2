// Package common contains shared constants and sentinel errors used across
// socli components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName is the HTTP header carrying the client-generated
// request id.
const RequestIDHeaderName = "X-Request-Id"

// Keys under which the session is persisted in the local key/value store.
// Both are written and cleared together; a session is only restorable when
// both are present.
const (
	StorageKeyToken = "token"
	StorageKeyUser  = "user"
)
