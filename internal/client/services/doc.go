// Package services contains the application services behind the socli CLI:
// the session store and the feed, comments, and profile controllers.
//
// Each controller owns exactly one list or record and reconciles it against
// the results of gateway calls. Mutating calls are single attempts; a failed
// call records a human-readable LastError and leaves the owned state exactly
// as it was. Loads are single-flight per controller: a duplicate concurrent
// load coalesces into a no-op, and a comment load superseded by re-binding
// to another post discards its result instead of clobbering the new list.
//
// All state accessors return copies; controllers are safe for concurrent use.
package services
