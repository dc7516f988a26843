package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"sync"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

// AuthService implements authentication business logic
type AuthService struct {
	accounts   *Repository[domain.Account]
	inviteCode string
	mu         sync.Mutex // serialises registration
}

var _ ports.AuthService = (*AuthService)(nil)

// NewAuthService creates a new authentication service. A non-empty
// inviteCode must accompany every registration.
func NewAuthService(store ports.DocumentStore, inviteCode string) *AuthService {
	return &AuthService{
		accounts:   NewRepository(store, ports.CollectionAccounts, accountKey),
		inviteCode: inviteCode,
	}
}

// Accounts are keyed by normalised email.
func accountKey(a domain.Account) string {
	return domain.NormalizeEmail(a.User.Email)
}

// Register creates a new restaurant account
func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (*domain.Account, error) {
	if s.inviteCode != "" && subtle.ConstantTimeCompare([]byte(reg.InviteCode), []byte(s.inviteCode)) != 1 {
		return nil, apperrors.ErrInvalidInvite
	}

	account, err := domain.NewAccount(reg)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Check if user already exists
	_, err = s.accounts.Get(ctx, accountKey(*account))
	if err == nil {
		return nil, apperrors.ErrUserExists
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if err := s.accounts.Put(ctx, *account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login authenticates a user with email and password
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.Account, error) {
	account, err := s.accounts.Get(ctx, domain.NormalizeEmail(creds.Email))
	if err != nil {
		// Don't reveal whether email exists
		return nil, notFound(err, apperrors.ErrInvalidCredentials)
	}

	if !account.CheckPassword(creds.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return account, nil
}

// GetAccount looks an account up by user id.
func (s *AuthService) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	all, err := s.accounts.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].User.ID == userID {
			return &all[i], nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}
