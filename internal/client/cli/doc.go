// Package cli provides the interactive socli command-line client.
//
// It wires configuration, local session storage, the REST API client, and an
// interactive REPL over the feed, comments, profile, and session controllers.
// Typical flow: restore any persisted session, then execute user commands.
//
// Key features:
//   - Register / Login / Logout with a locally persisted session
//   - Paginated feed browsing with create, delete, and like/unlike
//   - Comment listing, creation, and deletion per post
//   - Profile viewing with follow/unfollow
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
