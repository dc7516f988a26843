// Package session persists the authenticated operator between console runs.
//
// The session is stored as two independent string entries: an
// authentication flag and the JSON encoded user, which carries the bearer
// token. Read and decode failures are treated as "no session".
package session

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	"github.com/lorrc/restaurant-console/internal/core/ports"
	"github.com/lorrc/restaurant-console/internal/infrastructure/logging"
)

// Storage keys
const (
	KeyAuthenticated = "isAuthenticated"
	KeyUser          = "user"
)

// minTokenLength is the placeholder validity rule: anything longer passes.
const minTokenLength = 10

// Store reads and writes the session through a KeyValueStore. It is safe for
// concurrent use; concurrent Login and Logout calls are last-write-wins.
type Store struct {
	mu     sync.Mutex
	kv     ports.KeyValueStore
	logger *slog.Logger
}

// New creates a session store over kv. A nil logger discards output.
func New(kv ports.KeyValueStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{kv: kv, logger: logger}
}

// Login records user (including its token) as the authenticated operator.
func (s *Store) Login(user domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Set(KeyUser, string(data)); err != nil {
		return err
	}
	return s.kv.Set(KeyAuthenticated, "true")
}

// Logout removes both session entries. Both deletes are attempted.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	errUser := s.kv.Delete(KeyUser)
	errFlag := s.kv.Delete(KeyAuthenticated)
	if errUser != nil {
		return errUser
	}
	return errFlag
}

// Token returns the stored bearer token, or "" when there is none.
func (s *Store) Token() string {
	user, ok := s.User()
	if !ok {
		return ""
	}
	return user.Token
}

// SetToken replaces the token on the stored user. It reports false when the
// write fails. With no stored user a user record holding only the token is
// created.
func (s *Store) SetToken(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, _ := s.readUser()
	user.Token = token

	data, err := json.Marshal(user)
	if err != nil {
		s.logger.Warn("encode session user", "error", err)
		return false
	}
	if err := s.kv.Set(KeyUser, string(data)); err != nil {
		s.logger.Warn("store session token", "error", err)
		return false
	}
	return true
}

// IsTokenValid reports whether a token is present and longer than ten
// characters. It does not inspect the token.
func (s *Store) IsTokenValid() bool {
	return len(s.Token()) > minTokenLength
}

// User returns the stored user and whether one decoded successfully.
func (s *Store) User() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readUser()
}

// IsAuthenticated reports whether the flag is set and a user is stored. A
// flag without user data reads as logged out.
func (s *Store) IsAuthenticated() bool {
	return s.Snapshot().IsAuthenticated
}

// Snapshot returns the session as read at startup.
func (s *Store) Snapshot() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.readUser()
	if !ok {
		return domain.Session{}
	}

	flag, present, err := s.kv.Get(KeyAuthenticated)
	if err != nil {
		s.logger.Warn("read session flag", "error", err)
		return domain.Session{}
	}
	if !present || flag != "true" {
		return domain.Session{User: &user}
	}
	return domain.Session{IsAuthenticated: true, User: &user}
}

// TokenExpiry decodes the exp claim of the stored token without verifying
// its signature. It is for display only.
func (s *Store) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func (s *Store) readUser() (domain.User, bool) {
	raw, ok, err := s.kv.Get(KeyUser)
	if err != nil {
		s.logger.Warn("read session user", "error", err)
		return domain.User{}, false
	}
	if !ok || raw == "" {
		return domain.User{}, false
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Warn("decode session user", "error", err)
		return domain.User{}, false
	}
	return user, true
}
