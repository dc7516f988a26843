package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
)

func TestNewAccount(t *testing.T) {
	t.Run("hashes password and defaults role", func(t *testing.T) {
		acc, err := domain.NewAccount(domain.Registration{
			Name:     "  Priya Kitchen ",
			Email:    " Owner@Example.com ",
			Phone:    "9876543210",
			Password: "secret1",
		})
		require.NoError(t, err)

		assert.Equal(t, "Priya Kitchen", acc.User.Name)
		assert.Equal(t, "owner@example.com", acc.User.Email)
		assert.Equal(t, domain.RoleRestaurantOwner, acc.User.Role)
		assert.True(t, strings.HasPrefix(acc.User.ID, "user_"))
		assert.True(t, strings.HasPrefix(acc.User.RestaurantID, "rest_"))
		assert.NotEqual(t, "secret1", acc.PasswordHash)
		assert.True(t, acc.CheckPassword("secret1"))
		assert.False(t, acc.CheckPassword("secret2"))
	})

	t.Run("rejects short password", func(t *testing.T) {
		acc, err := domain.NewAccount(domain.Registration{Email: "a@b.co", Password: "12345"})
		assert.Nil(t, acc)
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})
}

func TestAuthResult_SessionUser(t *testing.T) {
	res := domain.AuthResult{User: domain.User{ID: "u1", Email: "a@b.co"}, Token: "abc123456789"}

	u := res.SessionUser()
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "abc123456789", u.Token)
}
