package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/socli/internal/client/api"
	"github.com/dmitrijs2005/socli/internal/client/models"
	"github.com/dmitrijs2005/socli/internal/common"
	"github.com/dmitrijs2005/socli/internal/logging"
)

// CommentsState is a snapshot of the comment list for the currently bound
// post.
type CommentsState struct {
	PostID    int64
	Comments  []models.Comment
	IsLoading bool
	LastError string
}

// CommentsService owns the comment list for exactly one post at a time.
// Re-binding to another post invalidates the previous list; a stale load's
// result is discarded rather than bleeding across posts.
type CommentsService struct {
	client   api.Client
	log      logging.Logger
	pageSize int

	mu        sync.Mutex
	postID    int64
	comments  []models.Comment
	isLoading bool
	lastError string
	loadGen   uuid.UUID
}

func NewCommentsService(client api.Client, pageSize int, log logging.Logger) *CommentsService {
	return &CommentsService{client: client, log: log, pageSize: pageSize}
}

// Load binds the controller to postID and replaces the list with the first
// page of its comments, newest first. A duplicate load for the same post
// while one is in flight coalesces into a no-op; a load for a different
// post proceeds and the superseded result is discarded.
func (s *CommentsService) Load(ctx context.Context, postID int64) error {
	s.mu.Lock()
	if s.isLoading && s.postID == postID {
		s.mu.Unlock()
		return nil
	}
	if s.postID != postID {
		// re-bound: the old list must not survive under the new id
		s.postID = postID
		s.comments = nil
	}
	s.isLoading = true
	s.lastError = ""
	gen := uuid.New()
	s.loadGen = gen
	s.mu.Unlock()

	comments, err := s.client.ListComments(ctx, postID, 0, s.pageSize)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadGen != gen || s.postID != postID {
		return nil
	}
	s.isLoading = false

	if err != nil {
		s.lastError = userMessage(err)
		s.log.Error(ctx, "comments load failed", "post", postID, "error", err)
		return err
	}

	s.comments = append([]models.Comment(nil), comments...)
	return nil
}

// Create submits a comment and prepends the server's representation. Empty
// trimmed content fails with a validation error before any network call.
func (s *CommentsService) Create(ctx context.Context, postID int64, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: comment content cannot be empty", common.ErrorValidation)
	}

	comment, err := s.client.CreateComment(ctx, postID, content)
	if err != nil {
		s.setLastError(err)
		return nil, err
	}

	s.mu.Lock()
	if s.postID == postID {
		s.comments = append([]models.Comment{*comment}, s.comments...)
	}
	s.mu.Unlock()
	return comment, nil
}

// Remove deletes a comment remotely first and drops it from the list only
// on success; a failure leaves the list untouched.
func (s *CommentsService) Remove(ctx context.Context, postID, commentID int64) error {
	if err := s.client.DeleteComment(ctx, postID, commentID); err != nil {
		s.setLastError(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.postID != postID {
		return nil
	}
	for i, c := range s.comments {
		if c.ID == commentID {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			return nil
		}
	}
	return nil
}

// State returns a snapshot of the controller's state.
func (s *CommentsService) State() CommentsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CommentsState{
		PostID:    s.postID,
		Comments:  append([]models.Comment(nil), s.comments...),
		IsLoading: s.isLoading,
		LastError: s.lastError,
	}
}

func (s *CommentsService) setLastError(err error) {
	s.mu.Lock()
	s.lastError = userMessage(err)
	s.mu.Unlock()
}
