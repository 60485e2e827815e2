// Package api contains the gateway client for the socli backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     every backend operation: auth (Register/Login), posts (ListFeed/
//     CreatePost/GetPost/DeletePost/LikePost/UnlikePost), comments
//     (ListComments/CreateComment/DeleteComment), and users (GetProfile/
//     Follow/Unfollow).
//  2. A concrete REST/JSON implementation (see HTTPClient) that attaches the
//     bearer token from an injected TokenSource to every request, tags each
//     request with a generated request id, and maps non-2xx responses to
//     *APIError values carrying the backend's message when one is present.
//
// # Error Handling
//
// Failed calls return *APIError. Its error chain unwraps to sentinel errors
// in internal/common, so callers can match conditions with errors.Is:
// common.ErrorUnauthorized (401/403), common.ErrorNotFound (404),
// common.ErrorUnavailable (5xx and transport failures).
//
// Every call is a single attempt: no retries, no backoff. Callers decide
// whether an operation is worth repeating.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation/deadlines.
package api
