package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/socli/internal/client/api"
	"github.com/dmitrijs2005/socli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for username, email, password, and an optional bio, and
// attempts to create a new account. On success the backend returns an active
// session, so the user is logged in immediately.
//
// The password byte slice is securely wiped before returning. Any I/O or
// service error is reported to the user and returned.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	bio, err := getSimpleText(a.reader, "Enter bio (optional)", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.sessions.Register(ctx, api.RegisterRequest{
		Username: username,
		Email:    email,
		Password: string(password),
		Bio:      bio,
	})
	if err != nil {
		printlnFn("Registration failed:", userMessage(err))
		return err
	}

	printlnFn("Welcome,", user.Username)
	return nil
}

// Login prompts for credentials and authenticates against the backend.
// On success the session is persisted locally so it survives restarts.
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.sessions.Login(ctx, username, string(password))
	if err != nil {
		printlnFn("Login failed:", userMessage(err))
		return err
	}

	printlnFn("Logged in as", user.Username)
	return nil
}

// Logout clears the locally persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		printlnFn("Logout failed:", userMessage(err))
		return err
	}
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the current account, if any.
func (a *App) WhoAmI(ctx context.Context) error {
	cur := a.sessions.Current()
	if cur == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn("Logged in as", cur.User.Username, "(id", cur.User.ID, ")")
	if cur.User.Email != "" {
		printlnFn("Email:", cur.User.Email)
	}
	if cur.User.Bio != "" {
		printlnFn("Bio:", cur.User.Bio)
	}
	return nil
}
