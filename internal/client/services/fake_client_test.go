package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/socli/internal/client/api"
	"github.com/dmitrijs2005/socli/internal/client/models"
)

// fakeClient implements api.Client for unit tests. Each method returns the
// configured result, optionally delegating to a hook, and counts its calls.
type fakeClient struct {
	mu    sync.Mutex
	calls map[string]int

	LoginRet    *api.AuthResponse
	LoginErr    error
	RegisterRet *api.AuthResponse
	RegisterErr error

	ListFeedFn   func(page, size int) (*api.FeedPage, error)
	CreatePostFn func(req api.CreatePostRequest) (*models.Post, error)
	GetPostRet   *models.Post
	GetPostErr   error
	DeleteErr    error

	LikeFn   func(postID int64) (*models.Post, error)
	UnlikeFn func(postID int64) (*models.Post, error)

	ListCommentsFn   func(postID int64, page, size int) ([]models.Comment, error)
	CreateCommentFn  func(postID int64, content string) (*models.Comment, error)
	DeleteCommentErr error

	GetProfileFn func(userID int64) (*models.Profile, error)
	FollowErr    error
	UnfollowErr  error
}

func newFakeClient() *fakeClient {
	return &fakeClient{calls: make(map[string]int)}
}

func (f *fakeClient) count(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeClient) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeClient) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	f.count("Register")
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*api.AuthResponse, error) {
	f.count("Login")
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) ListFeed(ctx context.Context, page, size int) (*api.FeedPage, error) {
	f.count("ListFeed")
	if f.ListFeedFn != nil {
		return f.ListFeedFn(page, size)
	}
	return &api.FeedPage{Last: true}, nil
}

func (f *fakeClient) CreatePost(ctx context.Context, req api.CreatePostRequest) (*models.Post, error) {
	f.count("CreatePost")
	if f.CreatePostFn != nil {
		return f.CreatePostFn(req)
	}
	return &models.Post{}, nil
}

func (f *fakeClient) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	f.count("GetPost")
	return f.GetPostRet, f.GetPostErr
}

func (f *fakeClient) DeletePost(ctx context.Context, postID int64) error {
	f.count("DeletePost")
	return f.DeleteErr
}

func (f *fakeClient) LikePost(ctx context.Context, postID int64) (*models.Post, error) {
	f.count("LikePost")
	if f.LikeFn != nil {
		return f.LikeFn(postID)
	}
	return &models.Post{ID: postID, LikedByCurrentUser: true}, nil
}

func (f *fakeClient) UnlikePost(ctx context.Context, postID int64) (*models.Post, error) {
	f.count("UnlikePost")
	if f.UnlikeFn != nil {
		return f.UnlikeFn(postID)
	}
	return &models.Post{ID: postID}, nil
}

func (f *fakeClient) ListComments(ctx context.Context, postID int64, page, size int) ([]models.Comment, error) {
	f.count("ListComments")
	if f.ListCommentsFn != nil {
		return f.ListCommentsFn(postID, page, size)
	}
	return nil, nil
}

func (f *fakeClient) CreateComment(ctx context.Context, postID int64, content string) (*models.Comment, error) {
	f.count("CreateComment")
	if f.CreateCommentFn != nil {
		return f.CreateCommentFn(postID, content)
	}
	return &models.Comment{Content: content}, nil
}

func (f *fakeClient) DeleteComment(ctx context.Context, postID, commentID int64) error {
	f.count("DeleteComment")
	return f.DeleteCommentErr
}

func (f *fakeClient) GetProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	f.count("GetProfile")
	if f.GetProfileFn != nil {
		return f.GetProfileFn(userID)
	}
	return &models.Profile{ID: userID}, nil
}

func (f *fakeClient) Follow(ctx context.Context, userID int64) error {
	f.count("Follow")
	return f.FollowErr
}

func (f *fakeClient) Unfollow(ctx context.Context, userID int64) error {
	f.count("Unfollow")
	return f.UnfollowErr
}
