package http

import (
	"errors"
	"fmt"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tidwall/gjson"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
	"github.com/lorrc/restaurant-console/internal/core/mocks"
	"github.com/lorrc/restaurant-console/internal/infrastructure/logging"
)

func TestErrorHandler_Handle(t *testing.T) {
	validation := apperrors.NewValidationErrors()
	validation.Add("name", "Name is required")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, stdhttp.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"invalid invite", apperrors.ErrInvalidInvite, stdhttp.StatusForbidden, "INVALID_INVITE"},
		{"wrapped not found", fmt.Errorf("load: %w", apperrors.ErrOrderNotFound), stdhttp.StatusNotFound, "ORDER_NOT_FOUND"},
		{"generic not found", apperrors.ErrNotFound, stdhttp.StatusNotFound, "NOT_FOUND"},
		{"duplicate user", apperrors.ErrUserExists, stdhttp.StatusConflict, "USER_EXISTS"},
		{"invalid status", apperrors.ErrInvalidStatus, stdhttp.StatusBadRequest, "INVALID_STATUS"},
		{"rate limited", apperrors.ErrRateLimited, stdhttp.StatusTooManyRequests, "RATE_LIMITED"},
		{"app error keeps its status", apperrors.NewBadRequestError(nil, "Range too wide"), stdhttp.StatusBadRequest, "BAD_REQUEST"},
		{"validation errors", validation, stdhttp.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"unknown", errors.New("disk on fire"), stdhttp.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	h := NewErrorHandler(logging.Discard())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(stdhttp.MethodGet, "/x", nil), tt.err)

			body := gjson.ParseBytes(rec.Body.Bytes())
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.False(t, body.Get("success").Bool())
			assert.True(t, body.Get("success").Exists())
			assert.Equal(t, tt.wantCode, body.Get("code").String())
			assert.NotEmpty(t, body.Get("error").String())
		})
	}
}

func TestErrorHandler_InternalErrorsAreNotLeaked(t *testing.T) {
	rec := httptest.NewRecorder()
	NewErrorHandler(logging.Discard()).Handle(rec, httptest.NewRequest(stdhttp.MethodGet, "/x", nil), errors.New("pq: password authentication failed"))

	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestMenuHandler_ServiceFailure(t *testing.T) {
	svc := mocks.NewMockMenuService()
	svc.On("List", mock.Anything).Return(nil, errors.New("store offline"))
	svc.On("Delete", mock.Anything, "item_001").Return(nil)

	h := NewMenuHandler(svc, NewErrorHandler(logging.Discard()), logging.Discard())

	rec := httptest.NewRecorder()
	h.HandleListItems(rec, httptest.NewRequest(stdhttp.MethodGet, "/", nil))
	assert.Equal(t, stdhttp.StatusInternalServerError, rec.Code)

	router := chiRouter(h.RegisterRoutes)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodDelete, "/item_001", nil))
	assert.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, "item_001", gjson.Get(rec.Body.String(), "data.id").String())

	svc.AssertExpectations(t)
}

func TestMenuHandler_EmptyListIsArray(t *testing.T) {
	svc := mocks.NewMockMenuService()
	svc.On("List", mock.Anything).Return([]domain.MenuItem(nil), nil)

	rec := httptest.NewRecorder()
	NewMenuHandler(svc, NewErrorHandler(logging.Discard()), logging.Discard()).
		HandleListItems(rec, httptest.NewRequest(stdhttp.MethodGet, "/", nil))

	assert.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}
