// Package models defines client-side data models used by the socli CLI.
package models

// User is the authenticated account's public identity as returned by the
// auth endpoints and embedded in posts and comments.
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Bio            string `json:"bio,omitempty"`
}

// Profile is a user's public profile page payload.
//
// Following reflects whether the current user follows this profile. The
// backend does not always report it; when the field is absent it decodes to
// false and the profile controller treats that as "not following".
type Profile struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Bio            string `json:"bio,omitempty"`
	FollowersCount int    `json:"followersCount"`
	FollowingCount int    `json:"followingCount"`
	Following      bool   `json:"following,omitempty"`
}
