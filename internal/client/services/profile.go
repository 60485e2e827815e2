package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/socli/internal/client/api"
	"github.com/dmitrijs2005/socli/internal/client/models"
	"github.com/dmitrijs2005/socli/internal/logging"
)

// ProfileState is a snapshot of the profile controller's state.
type ProfileState struct {
	Profile   *models.Profile
	Following bool
	IsLoading bool
	LastError string
}

// ProfileService owns one user's public profile and the local follow flag.
//
// The backend does not always report follow state; a fresh Load adopts the
// server's flag when the payload carries one and falls back to false
// otherwise. The refresh after a successful toggle keeps the locally
// flipped flag and only picks up the updated counts.
type ProfileService struct {
	client api.Client
	log    logging.Logger

	mu        sync.Mutex
	userID    int64
	profile   *models.Profile
	following bool
	isLoading bool
	toggling  bool
	lastError string
}

func NewProfileService(client api.Client, log logging.Logger) *ProfileService {
	return &ProfileService{client: client, log: log}
}

// Load fetches and stores the profile for userID.
func (s *ProfileService) Load(ctx context.Context, userID int64) error {
	s.mu.Lock()
	s.userID = userID
	s.isLoading = true
	s.lastError = ""
	s.mu.Unlock()

	profile, err := s.client.GetProfile(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	if s.userID != userID {
		return nil
	}

	if err != nil {
		s.lastError = userMessage(err)
		s.log.Error(ctx, "profile load failed", "user", userID, "error", err)
		return err
	}

	s.profile = profile
	s.following = profile.Following
	return nil
}

// ToggleFollow follows or unfollows depending on the current flag. The flag
// belongs to the loaded profile, so a toggle for any other user loads that
// profile first; the decision never reads another user's flag. On success it
// flips the flag and refreshes the profile for updated counts; on failure
// the flag stays unchanged. A toggle issued while another is in flight is
// suppressed.
func (s *ProfileService) ToggleFollow(ctx context.Context, userID int64) error {
	s.mu.Lock()
	if s.toggling {
		s.mu.Unlock()
		return nil
	}
	bound := s.profile != nil && s.userID == userID
	s.mu.Unlock()

	if !bound {
		if err := s.Load(ctx, userID); err != nil {
			return err
		}
	}

	s.mu.Lock()
	if s.toggling || s.userID != userID {
		s.mu.Unlock()
		return nil
	}
	s.toggling = true
	following := s.following
	s.mu.Unlock()

	var err error
	if following {
		err = s.client.Unfollow(ctx, userID)
	} else {
		err = s.client.Follow(ctx, userID)
	}

	s.mu.Lock()
	s.toggling = false
	if err != nil {
		s.lastError = userMessage(err)
		s.mu.Unlock()
		s.log.Error(ctx, "follow toggle failed", "user", userID, "error", err)
		return err
	}
	s.following = !following
	s.mu.Unlock()

	s.refreshCounts(ctx, userID)
	return nil
}

// refreshCounts re-fetches the profile after a toggle without disturbing
// the locally flipped follow flag. A refresh failure is logged only; the
// toggle itself already succeeded.
func (s *ProfileService) refreshCounts(ctx context.Context, userID int64) {
	profile, err := s.client.GetProfile(ctx, userID)
	if err != nil {
		s.log.Warn(ctx, "profile refresh failed", "user", userID, "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userID != userID {
		return
	}
	s.profile = profile
}

// State returns a snapshot of the controller's state. Profile is a copy.
func (s *ProfileService) State() ProfileState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := ProfileState{
		Following: s.following,
		IsLoading: s.isLoading,
		LastError: s.lastError,
	}
	if s.profile != nil {
		profile := *s.profile
		state.Profile = &profile
	}
	return state
}
