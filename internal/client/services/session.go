package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/socli/internal/client/api"
	"github.com/dmitrijs2005/socli/internal/client/models"
	"github.com/dmitrijs2005/socli/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/socli/internal/common"
	"github.com/dmitrijs2005/socli/internal/dbx"
	"github.com/dmitrijs2005/socli/internal/logging"
)

// SessionService owns the authenticated identity and its bearer token.
//
// Contract:
//   - Login/Register: authenticate against the backend, persist token+user
//     as a pair, then set the in-memory session. A rejected attempt leaves
//     any previously persisted session untouched.
//   - Logout: clear the persisted pair and the in-memory session; idempotent.
//   - Restore: rehydrate the session from the persisted pair once at
//     startup. Never fails; missing or unparseable data means "no session".
//   - Token: implements api.TokenSource for the gateway client.
//
// The persisted store is the single source of truth across restarts; the
// in-memory session is a write-through projection of it.
type SessionService struct {
	client api.Client
	db     *sql.DB
	log    logging.Logger

	mu      sync.RWMutex
	current *models.Session
}

func NewSessionService(client api.Client, db *sql.DB, log logging.Logger) *SessionService {
	return &SessionService{client: client, db: db, log: log}
}

func (s *SessionService) Login(ctx context.Context, username, password string) (*models.User, error) {
	resp, err := s.client.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := s.persist(ctx, resp); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	s.setCurrent(resp)
	return &resp.User, nil
}

func (s *SessionService) Register(ctx context.Context, req api.RegisterRequest) (*models.User, error) {
	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("registration error: %w", err)
	}

	if err := s.persist(ctx, resp); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	s.setCurrent(resp)
	return &resp.User, nil
}

// Logout clears the persisted pair and the in-memory session. Calling it
// with no active session is a no-op.
func (s *SessionService) Logout(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.StorageKeyToken); err != nil {
			return err
		}
		return repo.Delete(ctx, common.StorageKeyUser)
	})
	if err != nil {
		return fmt.Errorf("session clearing error: %w", err)
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return nil
}

// Restore rehydrates the session from the persisted token/user pair. Any
// missing key, storage failure, or user payload that does not parse is
// treated as "no session"; Restore itself never fails.
func (s *SessionService) Restore(ctx context.Context) {
	repo := metadata.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, common.StorageKeyToken)
	if err != nil {
		s.log.Warn(ctx, "session restore skipped", "error", err)
		return
	}
	userData, err := repo.Get(ctx, common.StorageKeyUser)
	if err != nil {
		s.log.Warn(ctx, "session restore skipped", "error", err)
		return
	}
	if len(token) == 0 || len(userData) == 0 {
		return
	}

	var user models.User
	if err := json.Unmarshal(userData, &user); err != nil {
		s.log.Warn(ctx, "stored user payload does not parse, treating as no session", "error", err)
		return
	}

	s.mu.Lock()
	s.current = &models.Session{Token: string(token), User: user}
	s.mu.Unlock()
	s.log.Info(ctx, "session restored", "user", user.Username)
}

// Current returns a copy of the active session, or nil when logged out.
func (s *SessionService) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	session := *s.current
	return &session
}

// Token implements api.TokenSource.
func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// TokenExpiry peeks at the bearer token's exp claim without verifying the
// signature (the client has no key material; verification is the backend's
// job). Returns false when there is no session or the token is not a JWT
// with an exp claim; such tokens stay valid opaque credentials.
func (s *SessionService) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// persist writes the token/user pair in a single transaction so a crash
// cannot leave one key without the other.
func (s *SessionService) persist(ctx context.Context, resp *api.AuthResponse) error {
	userData, err := json.Marshal(resp.User)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.StorageKeyToken, []byte(resp.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.StorageKeyUser, userData)
	})
}

func (s *SessionService) setCurrent(resp *api.AuthResponse) {
	s.mu.Lock()
	s.current = &models.Session{Token: resp.Token, User: resp.User}
	s.mu.Unlock()
}
