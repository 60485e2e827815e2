package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Feed(ctx context.Context) error
	More(ctx context.Context) error
	Post(ctx context.Context) error
	DeletePost(ctx context.Context, args []string) error
	Like(ctx context.Context, args []string) error
	Unlike(ctx context.Context, args []string) error
	Comments(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	RemoveComment(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	FollowToggle(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the socli CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help                          — show available commands
//	  - whoami                        — show the current account
//	  - feed                          — load the first feed page
//	  - more                          — load the next feed page
//	  - post                          — create a post
//	  - delete <id>                   — delete an own post
//	  - like <id> | unlike <id>       — toggle a like
//	  - comments <postID>             — list a post's comments
//	  - comment <postID>              — add a comment
//	  - rmcomment <postID> <commentID> — delete an own comment
//	  - profile <userID>              — show a profile
//	  - follow <userID>               — follow or unfollow a user
//	  - logout                        — log out
//	  - exit | quit                   — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("socli %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, feed, more, post, delete, like, unlike, comments, comment, rmcomment, profile, follow, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "f", "feed":
			_ = a.Feed(ctx)

		case "more":
			_ = a.More(ctx)

		case "post":
			_ = a.Post(ctx)

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.DeletePost(ctx, args)

		case "like":
			if len(args) == 0 {
				printlnFn("Usage: like <id>")
				continue
			}
			_ = a.Like(ctx, args)

		case "unlike":
			if len(args) == 0 {
				printlnFn("Usage: unlike <id>")
				continue
			}
			_ = a.Unlike(ctx, args)

		case "comments":
			if len(args) == 0 {
				printlnFn("Usage: comments <postID>")
				continue
			}
			_ = a.Comments(ctx, args)

		case "comment":
			if len(args) == 0 {
				printlnFn("Usage: comment <postID>")
				continue
			}
			_ = a.Comment(ctx, args)

		case "rmcomment":
			if len(args) < 2 {
				printlnFn("Usage: rmcomment <postID> <commentID>")
				continue
			}
			_ = a.RemoveComment(ctx, args)

		case "profile":
			if len(args) == 0 {
				printlnFn("Usage: profile <userID>")
				continue
			}
			_ = a.Profile(ctx, args)

		case "follow":
			if len(args) == 0 {
				printlnFn("Usage: follow <userID>")
				continue
			}
			_ = a.FollowToggle(ctx, args)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
