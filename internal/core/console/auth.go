package console

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
	"github.com/lorrc/restaurant-console/internal/core/ports"
	"github.com/lorrc/restaurant-console/internal/core/session"
	"github.com/lorrc/restaurant-console/internal/core/store"
)

// AuthState has no transitions; login results live in the session.
type AuthState struct {
	CurrentPlanAddOns any
}

var InitialAuthState = AuthState{}

// NewAuthStore builds the auth store. It registers no handlers, so every
// action, RESET_STATE included, leaves it unchanged.
func NewAuthStore() *store.Store[AuthState] {
	return store.New(InitialAuthState, nil)
}

// AuthModule registers and logs in operators and keeps the session current.
type AuthModule struct {
	*module[AuthState]
	session *session.Store
}

// NewAuthModule creates the auth module. Successful logins are written to sess.
func NewAuthModule(api ports.APIClient, sess *session.Store, logger *slog.Logger) *AuthModule {
	return &AuthModule{
		module:  newModule("auth", api, NewAuthStore(), logger),
		session: sess,
	}
}

// Register creates an account and stores the issued session.
func (m *AuthModule) Register(ctx context.Context, reg domain.Registration) (domain.AuthResult, error) {
	return m.authenticate(ctx, "/auth/register", reg)
}

// Login authenticates and stores the issued session.
func (m *AuthModule) Login(ctx context.Context, creds domain.Credentials) (domain.AuthResult, error) {
	return m.authenticate(ctx, "/auth/login", creds)
}

func (m *AuthModule) authenticate(ctx context.Context, path string, body any) (domain.AuthResult, error) {
	var res domain.AuthResult
	if err := m.api.DoPublic(ctx, ports.Request{Method: http.MethodPost, Path: path, Body: body}, &res); err != nil {
		m.logger.WarnContext(ctx, "authentication failed", "path", path, "error", err)
		return domain.AuthResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.AuthResult{}, err
	}
	if res.Token == "" && res.User.Token == "" {
		return domain.AuthResult{}, &apperrors.DecodeError{What: path + " response", Err: fmt.Errorf("no token issued")}
	}

	if err := m.session.Login(res.SessionUser()); err != nil {
		return domain.AuthResult{}, fmt.Errorf("store session: %w", err)
	}
	m.logger.InfoContext(ctx, "operator signed in", "user_id", res.User.ID, "restaurant_id", res.User.RestaurantID)
	return res, nil
}

// Logout tells the server the token is no longer in use. It does not clear
// the local session; Console.Logout does.
func (m *AuthModule) Logout(ctx context.Context) error {
	return m.api.Do(ctx, ports.Request{Method: http.MethodPost, Path: "/auth/logout"}, nil)
}

// RefreshToken exchanges the current token for a new one and stores it.
func (m *AuthModule) RefreshToken(ctx context.Context) (string, error) {
	var res domain.AuthResult
	if err := m.api.Do(ctx, ports.Request{Method: http.MethodPost, Path: "/auth/refresh"}, &res); err != nil {
		m.logger.WarnContext(ctx, "token refresh failed", "error", err)
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if res.Token == "" {
		return "", &apperrors.DecodeError{What: "/auth/refresh response", Err: fmt.Errorf("no token issued")}
	}
	if !m.session.SetToken(res.Token) {
		return "", fmt.Errorf("store refreshed token")
	}
	return res.Token, nil
}
