package restapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorrc/restaurant-console/internal/adapters/secondary/restapi"
	"github.com/lorrc/restaurant-console/internal/core/domain"
	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestDo_MissingTokenSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := restapi.New(srv.URL, staticToken(""))
	err := c.Do(context.Background(), ports.Request{Method: http.MethodGet, Path: "/restaurant/menu"}, nil)

	require.ErrorIs(t, err, apperrors.ErrMissingToken)
	assert.Equal(t, int32(0), calls.Load())
}

func TestDo_SendsHeadersAndDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc123456789", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(restapi.RequestIDHeader))
		assert.Equal(t, "/api/restaurant/orders", r.URL.Path)
		assert.Equal(t, "placed", r.URL.Query().Get("status"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"orders":[{"id":"order_001","status":"placed"}],"totalOrders":1}}`))
	}))
	defer srv.Close()

	c := restapi.New(srv.URL+"/api/", staticToken("abc123456789"))

	var list domain.OrderList
	err := c.Do(context.Background(), ports.Request{
		Method: http.MethodGet,
		Path:   "/restaurant/orders",
		Query:  url.Values{"status": {"placed"}},
	}, &list)

	require.NoError(t, err)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, domain.OrderPlaced, list.Orders[0].Status)
	assert.Equal(t, 1, list.TotalOrders)
}

func TestDo_DecodesBareBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"item_001","name":"Chicken Biryani"}]`))
	}))
	defer srv.Close()

	var items []domain.MenuItem
	err := restapi.New(srv.URL, staticToken("abc123456789")).
		Do(context.Background(), ports.Request{Path: "/restaurant/menu"}, &items)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Chicken Biryani", items[0].Name)
}

func TestDo_SendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		var body domain.StatusUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "confirmed", body.Status)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"order_001","status":"confirmed"}}`))
	}))
	defer srv.Close()

	var order domain.Order
	err := restapi.New(srv.URL, staticToken("abc123456789")).Do(context.Background(), ports.Request{
		Method: http.MethodPatch,
		Path:   "/restaurant/orders/order_001/status",
		Body:   domain.StatusUpdate{Status: "confirmed"},
	}, &order)

	require.NoError(t, err)
	assert.Equal(t, domain.OrderConfirmed, order.Status)
}

func TestDo_ErrorResponses(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		wantKind apperrors.Kind
	}{
		{"server message", http.StatusBadRequest, `{"error":"Invalid status"}`, "Invalid status", apperrors.KindValidation},
		{"generic message", http.StatusInternalServerError, `{}`, "http error: status 500", apperrors.KindServer},
		{"non json body", http.StatusBadGateway, `<html>bad gateway</html>`, "http error: status 502", apperrors.KindServer},
		{"forbidden", http.StatusForbidden, `{"error":"nope","code":"FORBIDDEN"}`, "nope", apperrors.KindForbidden},
		{"not found", http.StatusNotFound, `{"error":"Order not found"}`, "Order not found", apperrors.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := restapi.New(srv.URL, staticToken("abc123456789")).
				Do(context.Background(), ports.Request{Path: "/restaurant/orders/x"}, &domain.Order{})

			var statusErr *apperrors.HTTPStatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
		})
	}
}

func TestDo_UnauthorizedInvokesHandler(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"expired"}`))
	}))
	defer srv.Close()

	c := restapi.New(srv.URL, staticToken("abc123456789"))
	var calls atomic.Int32
	c.SetUnauthorizedHandler(func(context.Context) { calls.Add(1) })

	err := c.Do(context.Background(), ports.Request{Path: "/restaurant/dashboard"}, nil)

	require.Error(t, err)
	assert.Equal(t, "expired", err.Error())
	assert.Equal(t, apperrors.MsgSessionExpired, apperrors.UserMessage(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestDo_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":`))
	}))
	defer srv.Close()

	var out domain.Settings
	err := restapi.New(srv.URL, staticToken("abc123456789")).
		Do(context.Background(), ports.Request{Path: "/restaurant/settings"}, &out)

	assert.Equal(t, apperrors.KindDecode, apperrors.KindOf(err))
}

func TestDo_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	err := restapi.New(addr, staticToken("abc123456789")).
		Do(context.Background(), ports.Request{Path: "/restaurant/menu"}, nil)

	assert.Equal(t, apperrors.KindNetwork, apperrors.KindOf(err))
}

func TestDo_Canceled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := restapi.New(srv.URL, staticToken("abc123456789")).
		Do(ctx, ports.Request{Path: "/restaurant/menu"}, nil)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, apperrors.KindCanceled, apperrors.KindOf(err))
}

func TestDoPublic_OmitsAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"success":true,"data":{"user":{"id":"user_001"},"token":"tok-1234567890"}}`))
	}))
	defer srv.Close()

	var res domain.AuthResult
	err := restapi.New(srv.URL, staticToken("")).DoPublic(context.Background(), ports.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   domain.Credentials{Email: "admin@meels.com", Password: "admin123"},
	}, &res)

	require.NoError(t, err)
	assert.Equal(t, "tok-1234567890", res.SessionUser().Token)
}

func TestDoPublic_UnauthorizedKeepsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"error":"Invalid email or password","code":"INVALID_CREDENTIALS"}`))
	}))
	defer srv.Close()

	c := restapi.New(srv.URL, staticToken("abc123456789"))
	var calls atomic.Int32
	c.SetUnauthorizedHandler(func(context.Context) { calls.Add(1) })

	err := c.DoPublic(context.Background(), ports.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   domain.Credentials{Email: "admin@meels.com", Password: "wrong"},
	}, nil)

	var statusErr *apperrors.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, "Invalid email or password", statusErr.Message)
	assert.Equal(t, int32(0), calls.Load())
}
