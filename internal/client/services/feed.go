package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/socli/internal/client/api"
	"github.com/dmitrijs2005/socli/internal/client/models"
	"github.com/dmitrijs2005/socli/internal/common"
	"github.com/dmitrijs2005/socli/internal/logging"
)

// FeedState is a snapshot of the feed controller's state. Items is a copy;
// mutating it does not affect the controller.
type FeedState struct {
	Items     []models.Post
	PageIndex int
	HasMore   bool
	IsLoading bool
	LastError string
}

// FeedService owns the in-memory ordered feed of posts.
//
// Items are newest-first as sorted by the server. The list is only mutated
// by replacing whole posts with server representations or by local
// insert/remove, never by field-patching. Loads are single-flight: a load
// issued while another is in flight is a no-op and the in-flight call stays
// authoritative.
type FeedService struct {
	client   api.Client
	log      logging.Logger
	pageSize int

	mu        sync.Mutex
	items     []models.Post
	pageIndex int
	hasMore   bool
	isLoading bool
	lastError string

	// likesInFlight tracks independent per-post like toggles so one
	// in-flight toggle cannot block or cancel another.
	likesInFlight map[int64]bool
}

func NewFeedService(client api.Client, pageSize int, log logging.Logger) *FeedService {
	return &FeedService{
		client:        client,
		log:           log,
		pageSize:      pageSize,
		hasMore:       true,
		likesInFlight: make(map[int64]bool),
	}
}

// LoadInitial replaces the feed with page zero. A call made while another
// load is in flight coalesces into a no-op. On failure the previous items
// stay untouched and LastError is set.
func (s *FeedService) LoadInitial(ctx context.Context) error {
	s.mu.Lock()
	if s.isLoading {
		s.mu.Unlock()
		return nil
	}
	s.isLoading = true
	s.lastError = ""
	s.mu.Unlock()

	page, err := s.client.ListFeed(ctx, 0, s.pageSize)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false

	if err != nil {
		s.lastError = userMessage(err)
		s.log.Error(ctx, "feed load failed", "error", err)
		return err
	}

	s.items = append([]models.Post(nil), page.Items...)
	s.pageIndex = 0
	s.hasMore = !page.Last
	s.log.Info(ctx, "feed loaded", "items", len(s.items), "hasMore", s.hasMore)
	return nil
}

// LoadMore appends the next page. It is a no-op while a load is in flight
// or once HasMore is false. Incoming items whose id is already present are
// dropped before appending; the rest keep their arrival order.
func (s *FeedService) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if s.isLoading || !s.hasMore {
		s.mu.Unlock()
		return nil
	}
	s.isLoading = true
	s.lastError = ""
	next := s.pageIndex + 1
	s.mu.Unlock()

	page, err := s.client.ListFeed(ctx, next, s.pageSize)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false

	if err != nil {
		s.lastError = userMessage(err)
		s.log.Error(ctx, "feed page load failed", "page", next, "error", err)
		return err
	}

	seen := make(map[int64]struct{}, len(s.items))
	for _, p := range s.items {
		seen[p.ID] = struct{}{}
	}
	for _, p := range page.Items {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		s.items = append(s.items, p)
	}
	s.pageIndex = next
	s.hasMore = !page.Last
	return nil
}

// InsertCreated prepends a newly created post, giving the author immediate
// feedback regardless of server-side feed ranking.
func (s *FeedService) InsertCreated(post models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]models.Post{post}, s.items...)
}

// RemoveByID removes the post with the given id; absent id is a no-op.
func (s *FeedService) RemoveByID(postID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.items {
		if p.ID == postID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// ReplaceByID swaps in the server's representation of a post. An absent id
// (the post scrolled out of the loaded window) is a no-op.
func (s *FeedService) ReplaceByID(updated models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.items {
		if p.ID == updated.ID {
			s.items[i] = updated
			return
		}
	}
}

// Create validates and submits a new post, then prepends the server's
// representation. Empty trimmed content fails before any network call.
func (s *FeedService) Create(ctx context.Context, req api.CreatePostRequest) (*models.Post, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: post content cannot be empty", common.ErrorValidation)
	}

	post, err := s.client.CreatePost(ctx, req)
	if err != nil {
		s.setLastError(err)
		return nil, err
	}

	s.InsertCreated(*post)
	return post, nil
}

// Delete removes a post remotely first, then locally. A failed delete
// leaves the list untouched.
func (s *FeedService) Delete(ctx context.Context, postID int64) error {
	if err := s.client.DeletePost(ctx, postID); err != nil {
		s.setLastError(err)
		return err
	}
	s.RemoveByID(postID)
	return nil
}

// ToggleLike likes or unlikes a post depending on its current flag and
// replaces the local copy with the server's returned state. Toggles for
// different posts run independently; a second toggle for a post whose
// toggle is still in flight is suppressed.
func (s *FeedService) ToggleLike(ctx context.Context, postID int64) error {
	s.mu.Lock()
	if s.likesInFlight[postID] {
		s.mu.Unlock()
		return nil
	}
	var liked, found bool
	for _, p := range s.items {
		if p.ID == postID {
			liked = p.LikedByCurrentUser
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return fmt.Errorf("post %d: %w", postID, common.ErrorNotFound)
	}
	s.likesInFlight[postID] = true
	s.mu.Unlock()

	var updated *models.Post
	var err error
	if liked {
		updated, err = s.client.UnlikePost(ctx, postID)
	} else {
		updated, err = s.client.LikePost(ctx, postID)
	}

	s.mu.Lock()
	delete(s.likesInFlight, postID)
	s.mu.Unlock()

	if err != nil {
		s.setLastError(err)
		return err
	}

	s.ReplaceByID(*updated)
	return nil
}

// State returns a snapshot of the controller's state.
func (s *FeedService) State() FeedState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FeedState{
		Items:     append([]models.Post(nil), s.items...),
		PageIndex: s.pageIndex,
		HasMore:   s.hasMore,
		IsLoading: s.isLoading,
		LastError: s.lastError,
	}
}

func (s *FeedService) setLastError(err error) {
	s.mu.Lock()
	s.lastError = userMessage(err)
	s.mu.Unlock()
}

// userMessage turns a gateway error into the string a UI is expected to
// show.
func userMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, common.ErrorUnavailable) {
		return "server unavailable"
	}
	return err.Error()
}
