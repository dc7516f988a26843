package errors_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want apperrors.Kind
	}{
		{"401", &apperrors.HTTPStatusError{StatusCode: 401, Message: "expired"}, apperrors.KindSessionExpired},
		{"403", &apperrors.HTTPStatusError{StatusCode: 403}, apperrors.KindForbidden},
		{"404 wrapped", fmt.Errorf("get order: %w", &apperrors.HTTPStatusError{StatusCode: 404}), apperrors.KindNotFound},
		{"502", &apperrors.HTTPStatusError{StatusCode: 502}, apperrors.KindServer},
		{"409", &apperrors.HTTPStatusError{StatusCode: 409}, apperrors.KindUnknown},
		{"missing token", fmt.Errorf("menu: %w", apperrors.ErrMissingToken), apperrors.KindMissingToken},
		{"canceled", context.Canceled, apperrors.KindCanceled},
		{"network", &apperrors.NetworkError{Op: "GET /menu", Err: errors.New("refused")}, apperrors.KindNetwork},
		{"decode", &apperrors.DecodeError{What: "response", Err: errors.New("bad json")}, apperrors.KindDecode},
		{"validation", apperrors.NewValidationErrors(), apperrors.KindValidation},
		{"nil", nil, apperrors.KindUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, apperrors.KindOf(tc.err))
		})
	}
}

func TestUserMessage(t *testing.T) {
	t.Run("status classes map to fixed messages", func(t *testing.T) {
		assert.Equal(t, apperrors.MsgSessionExpired, apperrors.UserMessage(&apperrors.HTTPStatusError{StatusCode: 401, Message: "expired"}))
		assert.Equal(t, apperrors.MsgForbidden, apperrors.UserMessage(&apperrors.HTTPStatusError{StatusCode: 403}))
		assert.Equal(t, apperrors.MsgNotFound, apperrors.UserMessage(&apperrors.HTTPStatusError{StatusCode: 404}))
		assert.Equal(t, apperrors.MsgServer, apperrors.UserMessage(&apperrors.HTTPStatusError{StatusCode: 500}))
	})

	t.Run("other errors pass their message through", func(t *testing.T) {
		assert.Equal(t, "menu item name taken", apperrors.UserMessage(&apperrors.HTTPStatusError{StatusCode: 409, Message: "menu item name taken"}))
		assert.Equal(t, "http error: status 418", apperrors.UserMessage(&apperrors.HTTPStatusError{StatusCode: 418}))
	})

	t.Run("nil has no message", func(t *testing.T) {
		assert.Empty(t, apperrors.UserMessage(nil))
	})
}

func TestValidationErrors(t *testing.T) {
	v := apperrors.NewValidationErrors()
	assert.False(t, v.HasErrors())

	v.Add("email", "Email is required")
	v.Add("email", "Please enter a valid email address")

	assert.True(t, v.HasErrors())
	assert.Equal(t, "Email is required", v.First("email"))
	assert.Empty(t, v.First("phone"))
	assert.Equal(t, "validation failed: 1 field(s) have errors", v.Error())
}

func TestAppError(t *testing.T) {
	err := apperrors.NewNotFoundError(apperrors.ErrOrderNotFound, "Order not found")

	assert.Equal(t, "Order not found", err.Error())
	assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
	assert.Equal(t, 404, err.StatusCode)
}
