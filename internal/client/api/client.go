package api

import (
	"context"

	"github.com/dmitrijs2005/socli/internal/client/models"
)

// TokenSource supplies the current bearer token, or "" when no session is
// active. The session service implements it.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc adapts a plain function to the TokenSource interface.
type TokenSourceFunc func() string

func (f TokenSourceFunc) Token() string { return f() }

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio,omitempty"`
}

// CreatePostRequest is the payload for post creation. Base64Images carries
// locally read files as data URLs for server-side upload.
type CreatePostRequest struct {
	Content      string              `json:"content"`
	PrivacyLevel models.PrivacyLevel `json:"privacyLevel"`
	MediaURLs    []string            `json:"mediaUrls"`
	Base64Images []string            `json:"base64Images,omitempty"`
}

// AuthResponse is returned by both auth endpoints.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// FeedPage is one page of the reverse-chronological feed. Last reports that
// no further pages exist.
type FeedPage struct {
	Items []models.Post
	Last  bool
}

type Client interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, username, password string) (*AuthResponse, error)

	ListFeed(ctx context.Context, page, size int) (*FeedPage, error)
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID int64) (*models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
	LikePost(ctx context.Context, postID int64) (*models.Post, error)
	UnlikePost(ctx context.Context, postID int64) (*models.Post, error)

	ListComments(ctx context.Context, postID int64, page, size int) ([]models.Comment, error)
	CreateComment(ctx context.Context, postID int64, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID int64) error

	GetProfile(ctx context.Context, userID int64) (*models.Profile, error)
	Follow(ctx context.Context, userID int64) error
	Unfollow(ctx context.Context, userID int64) error
}
