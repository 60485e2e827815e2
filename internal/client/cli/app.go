package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/socli/internal/client/api"
	"github.com/dmitrijs2005/socli/internal/client/config"
	"github.com/dmitrijs2005/socli/internal/client/localdb"
	"github.com/dmitrijs2005/socli/internal/client/models"
	"github.com/dmitrijs2005/socli/internal/client/services"
	"github.com/dmitrijs2005/socli/internal/logging"
)

// sessionController is the slice of the session service the CLI needs.
// The real services.SessionService satisfies it; tests provide fakes.
type sessionController interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Register(ctx context.Context, req api.RegisterRequest) (*models.User, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context)
	Current() *models.Session
	TokenExpiry() (time.Time, bool)
}

type feedController interface {
	LoadInitial(ctx context.Context) error
	LoadMore(ctx context.Context) error
	Create(ctx context.Context, req api.CreatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, postID int64) error
	ToggleLike(ctx context.Context, postID int64) error
	State() services.FeedState
}

type commentsController interface {
	Load(ctx context.Context, postID int64) error
	Create(ctx context.Context, postID int64, content string) (*models.Comment, error)
	Remove(ctx context.Context, postID, commentID int64) error
	State() services.CommentsState
}

type profileController interface {
	Load(ctx context.Context, userID int64) error
	ToggleFollow(ctx context.Context, userID int64) error
	State() services.ProfileState
}

type App struct {
	config   *config.Config
	sessions sessionController
	feed     feedController
	comments commentsController
	profiles profileController
	log      logging.Logger
	reader   *bufio.Reader
}

// NewApp builds the application graph: local sqlite store, REST client with
// a bearer token sourced from the session service, and the feed, comments,
// and profile controllers on top of it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {

	db, err := localdb.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	// The token source and the session service reference each other, so the
	// client is handed a function that reads the token once both exist.
	var sessions *services.SessionService
	apiClient := api.NewHTTPClient(c.APIBaseURL, api.TokenSourceFunc(func() string {
		if sessions == nil {
			return ""
		}
		return sessions.Token()
	}), c.RequestTimeout)
	sessions = services.NewSessionService(apiClient, db, log)

	return &App{
		config:   c,
		sessions: sessions,
		feed:     services.NewFeedService(apiClient, c.PageSize, log),
		comments: services.NewCommentsService(apiClient, c.PageSize, log),
		profiles: services.NewProfileService(apiClient, log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current() != nil
}

// getStatus renders the prompt status: the logged-in username plus the
// remaining token lifetime when the token carries an exp claim.
func (a *App) getStatus() string {
	cur := a.sessions.Current()
	if cur == nil {
		return ""
	}
	s := cur.User.Username
	if exp, ok := a.sessions.TokenExpiry(); ok {
		ttl := time.Until(exp).Truncate(time.Second)
		if ttl > 0 {
			s = fmt.Sprintf("%s ttl=%s", s, ttl)
		} else {
			s += " expired"
		}
	}
	return fmt.Sprintf("(%s)", s)
}

// Run restores any persisted session and starts the REPL. It blocks until
// the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	a.sessions.Restore(ctx)
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
