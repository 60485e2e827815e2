package models

import "time"

// PrivacyLevel classifies who may see a post.
type PrivacyLevel string

const (
	PrivacyPublic  PrivacyLevel = "PUBLIC"
	PrivacyFriends PrivacyLevel = "FRIENDS"
	PrivacyPrivate PrivacyLevel = "PRIVATE"
)

// Post is a single feed item.
//
// Posts are only ever replaced whole with the server's returned
// representation (after like/unlike), never field-patched locally.
type Post struct {
	// ID is the server-assigned unique identifier.
	ID int64 `json:"id"`

	// Content is the post body text.
	Content string `json:"content"`

	// MediaURLs is an ordered sequence of attached media references.
	MediaURLs []string `json:"mediaUrls,omitempty"`

	// PrivacyLevel controls post visibility.
	PrivacyLevel PrivacyLevel `json:"privacyLevel"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"createdAt"`

	// User is the post author.
	User User `json:"user"`

	// LikesCount is the server-derived like total.
	LikesCount int `json:"likesCount"`

	// CommentsCount is the server-derived comment total.
	CommentsCount int `json:"commentsCount"`

	// LikedByCurrentUser reports whether the requesting user liked the post.
	LikedByCurrentUser bool `json:"likedByCurrentUser"`
}
