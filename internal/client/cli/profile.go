package cli

import (
	"context"
	"fmt"
)

func (a *App) printProfile() {
	st := a.profiles.State()
	if st.Profile == nil {
		printlnFn("No profile loaded")
		return
	}
	p := st.Profile
	printlnFn(fmt.Sprintf("@%s (id %d)", p.Username, p.ID))
	if p.Bio != "" {
		printlnFn("Bio:", p.Bio)
	}
	printlnFn(fmt.Sprintf("Followers: %d  Following: %d", p.FollowersCount, p.FollowingCount))
	if st.Following {
		printlnFn("You follow this user")
	}
}

// Profile loads and prints a user's public profile.
func (a *App) Profile(ctx context.Context, args []string) error {
	userID, err := parseID(args[0])
	if err != nil {
		printlnFn("Invalid user id:", args[0])
		return err
	}

	if err := a.profiles.Load(ctx, userID); err != nil {
		printlnFn("Profile load failed:", userMessage(err))
		return err
	}
	a.printProfile()
	return nil
}

// FollowToggle follows the user when not yet followed and unfollows
// otherwise, then prints the refreshed profile.
func (a *App) FollowToggle(ctx context.Context, args []string) error {
	userID, err := parseID(args[0])
	if err != nil {
		printlnFn("Invalid user id:", args[0])
		return err
	}

	if err := a.profiles.ToggleFollow(ctx, userID); err != nil {
		printlnFn("Follow failed:", userMessage(err))
		return err
	}
	a.printProfile()
	return nil
}
