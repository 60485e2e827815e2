package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/socli/internal/client/api"
	"github.com/dmitrijs2005/socli/internal/client/models"
)

func printPost(p models.Post) {
	liked := " "
	if p.LikedByCurrentUser {
		liked = "*"
	}
	printlnFn(fmt.Sprintf("[%d] %s @%s (%s)", p.ID, liked, p.User.Username, p.CreatedAt.Format(time.DateTime)))
	printlnFn("   ", p.Content)
	for _, u := range p.MediaURLs {
		printlnFn("    media:", u)
	}
	printlnFn(fmt.Sprintf("    likes: %d  comments: %d  privacy: %s", p.LikesCount, p.CommentsCount, p.PrivacyLevel))
}

func (a *App) printFeed() {
	st := a.feed.State()
	if st.LastError != "" {
		printlnFn("Feed error:", st.LastError)
	}
	for _, p := range st.Items {
		printPost(p)
	}
	if st.HasMore {
		printlnFn("-- more available, type 'more' --")
	} else if len(st.Items) > 0 {
		printlnFn("-- end of feed --")
	} else {
		printlnFn("Feed is empty")
	}
}

// Feed loads the first feed page and prints the resulting list.
func (a *App) Feed(ctx context.Context) error {
	if err := a.feed.LoadInitial(ctx); err != nil {
		printlnFn("Feed load failed:", userMessage(err))
		return err
	}
	a.printFeed()
	return nil
}

// More loads the next feed page and prints the accumulated list.
func (a *App) More(ctx context.Context) error {
	if err := a.feed.LoadMore(ctx); err != nil {
		printlnFn("Feed load failed:", userMessage(err))
		return err
	}
	a.printFeed()
	return nil
}

// Post prompts for content and privacy and creates a post. The new post is
// prepended to the local feed by the feed controller.
func (a *App) Post(ctx context.Context) error {
	content, err := GetMultiline(a.reader, "Enter post text", os.Stdout)
	if err != nil {
		return err
	}

	privacy, err := getSimpleText(a.reader, "Privacy [PUBLIC/FRIENDS/PRIVATE] (default PUBLIC)", os.Stdout)
	if err != nil {
		return err
	}
	level := models.PrivacyLevel(privacy)
	switch level {
	case models.PrivacyPublic, models.PrivacyFriends, models.PrivacyPrivate:
	default:
		level = models.PrivacyPublic
	}

	post, err := a.feed.Create(ctx, api.CreatePostRequest{Content: content, PrivacyLevel: level})
	if err != nil {
		printlnFn("Post failed:", userMessage(err))
		return err
	}

	printlnFn("Posted with id", post.ID)
	return nil
}

// DeletePost removes an own post both remotely and from the local feed.
func (a *App) DeletePost(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		printlnFn("Invalid post id:", args[0])
		return err
	}

	if err := a.feed.Delete(ctx, id); err != nil {
		printlnFn("Delete failed:", userMessage(err))
		return err
	}
	printlnFn("Deleted post", id)
	return nil
}

// Like toggles a like onto a post that the current user has not liked yet.
func (a *App) Like(ctx context.Context, args []string) error {
	return a.setLike(ctx, args[0], true)
}

// Unlike removes the current user's like from a post.
func (a *App) Unlike(ctx context.Context, args []string) error {
	return a.setLike(ctx, args[0], false)
}

func (a *App) setLike(ctx context.Context, arg string, want bool) error {
	id, err := parseID(arg)
	if err != nil {
		printlnFn("Invalid post id:", arg)
		return err
	}

	for _, p := range a.feed.State().Items {
		if p.ID == id && p.LikedByCurrentUser == want {
			if want {
				printlnFn("Already liked")
			} else {
				printlnFn("Not liked")
			}
			return nil
		}
	}

	if err := a.feed.ToggleLike(ctx, id); err != nil {
		printlnFn("Like failed:", userMessage(err))
		return err
	}

	for _, p := range a.feed.State().Items {
		if p.ID == id {
			printlnFn(fmt.Sprintf("Post %d now has %d likes", p.ID, p.LikesCount))
			break
		}
	}
	return nil
}
