package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
)

// Account constraints
const (
	RoleRestaurantOwner = "restaurant_owner"
	RoleRestaurantStaff = "restaurant_staff"

	MinPasswordLength = 6
	MaxPasswordLength = 72 // bcrypt input limit
)

// User is the authenticated operator as seen by the console. The bearer token
// travels with the persisted user object.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Role         string `json:"role,omitempty"`
	RestaurantID string `json:"restaurantId,omitempty"`
	Token        string `json:"token,omitempty"`
}

// AuthResult is the data payload of login, register and refresh responses.
type AuthResult struct {
	User    User   `json:"user"`
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// SessionUser returns the user with the issued token attached.
func (r AuthResult) SessionUser() User {
	u := r.User
	if r.Token != "" {
		u.Token = r.Token
	}
	return u
}

// Session is the persisted login record.
type Session struct {
	IsAuthenticated bool  `json:"isAuthenticated"`
	User            *User `json:"user"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	Role       string `json:"role,omitempty"`
	InviteCode string `json:"inviteCode,omitempty"`
}

// Account is a backend-side user record with its password hash.
type Account struct {
	User         User      `json:"user"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewAccount hashes the password and builds a fresh account for reg.
func NewAccount(reg Registration) (*Account, error) {
	if len(reg.Password) < MinPasswordLength || len(reg.Password) > MaxPasswordLength {
		return nil, apperrors.ErrBadRequest
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := reg.Role
	if role == "" {
		role = RoleRestaurantOwner
	}

	return &Account{
		User: User{
			ID:           "user_" + uuid.NewString(),
			Name:         strings.TrimSpace(reg.Name),
			Email:        NormalizeEmail(reg.Email),
			Phone:        strings.TrimSpace(reg.Phone),
			Role:         role,
			RestaurantID: "rest_" + uuid.NewString(),
		},
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (a *Account) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

// NormalizeEmail lower-cases and trims an email for use as a lookup key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
