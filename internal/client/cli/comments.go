package cli

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Comments loads and prints the comment list for a post.
func (a *App) Comments(ctx context.Context, args []string) error {
	postID, err := parseID(args[0])
	if err != nil {
		printlnFn("Invalid post id:", args[0])
		return err
	}

	if err := a.comments.Load(ctx, postID); err != nil {
		printlnFn("Comments load failed:", userMessage(err))
		return err
	}

	st := a.comments.State()
	if len(st.Comments) == 0 {
		printlnFn("No comments yet")
		return nil
	}
	for _, c := range st.Comments {
		printlnFn(fmt.Sprintf("[%d] @%s (%s): %s", c.ID, c.User.Username, c.CreatedAt.Format(time.DateTime), c.Content))
	}
	return nil
}

// Comment prompts for text and adds a comment to a post.
func (a *App) Comment(ctx context.Context, args []string) error {
	postID, err := parseID(args[0])
	if err != nil {
		printlnFn("Invalid post id:", args[0])
		return err
	}

	content, err := GetMultiline(a.reader, "Enter comment text", os.Stdout)
	if err != nil {
		return err
	}

	c, err := a.comments.Create(ctx, postID, content)
	if err != nil {
		printlnFn("Comment failed:", userMessage(err))
		return err
	}

	printlnFn("Comment added with id", c.ID)
	return nil
}

// RemoveComment deletes an own comment from a post.
func (a *App) RemoveComment(ctx context.Context, args []string) error {
	postID, err := parseID(args[0])
	if err != nil {
		printlnFn("Invalid post id:", args[0])
		return err
	}
	commentID, err := parseID(args[1])
	if err != nil {
		printlnFn("Invalid comment id:", args[1])
		return err
	}

	if err := a.comments.Remove(ctx, postID, commentID); err != nil {
		printlnFn("Delete failed:", userMessage(err))
		return err
	}
	printlnFn("Deleted comment", commentID)
	return nil
}
