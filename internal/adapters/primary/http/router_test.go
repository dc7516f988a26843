package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	mw "github.com/lorrc/restaurant-console/internal/adapters/primary/http/middleware"
	"github.com/lorrc/restaurant-console/internal/adapters/secondary/memory"
	"github.com/lorrc/restaurant-console/internal/auth"
	"github.com/lorrc/restaurant-console/internal/core/domain"
	"github.com/lorrc/restaurant-console/internal/core/mocks"
	"github.com/lorrc/restaurant-console/internal/core/services"
	"github.com/lorrc/restaurant-console/internal/infrastructure/logging"
)

var fixedNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

const testInvite = "let-me-in"

type testEnv struct {
	handler  stdhttp.Handler
	notifier *mocks.MockNotifier
	tokens   *auth.TokenManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewDocumentStore()
	seeded, err := services.Seed(context.Background(), store, fixedNow)
	require.NoError(t, err)
	require.True(t, seeded)

	notifier := mocks.NewMockNotifier()
	tokens := auth.NewTokenManager("test-secret", time.Hour, "restaurant-console")
	reg := prometheus.NewRegistry()

	handler := NewRouter(RouterConfig{
		Services: services.New(store, services.Options{
			InviteCode: testInvite,
			Notifier:   notifier,
			Clock:      func() time.Time { return fixedNow },
		}),
		TokenManager:   tokens,
		Store:          store,
		StoreName:      "memory",
		Version:        "test",
		Logger:         logging.Discard(),
		Metrics:        mw.NewMetrics(reg),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	return &testEnv{handler: handler, notifier: notifier, tokens: tokens}
}

func (e *testEnv) do(t *testing.T, method, path, token, body string) (int, gjson.Result) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec.Code, gjson.ParseBytes(rec.Body.Bytes())
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()

	status, body := e.do(t, stdhttp.MethodPost, "/api/auth/login", "",
		`{"email":"`+services.SeedAdminEmail+`","password":"`+services.SeedAdminPassword+`"}`)
	require.Equal(t, stdhttp.StatusOK, status, body.Raw)

	token := body.Get("data.token").String()
	require.NotEmpty(t, token)
	return token
}

func TestHealthRoutes(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.do(t, stdhttp.MethodGet, "/health/live", "", "")
	assert.Equal(t, stdhttp.StatusOK, status)
	assert.Equal(t, "healthy", body.Get("status").String())

	status, body = env.do(t, stdhttp.MethodGet, "/health/ready", "", "")
	assert.Equal(t, stdhttp.StatusOK, status)
	assert.Equal(t, "healthy", body.Get("checks.store.status").String())
	assert.Equal(t, "memory", body.Get("checks.store.message").String())
}

func TestAuthRoutes(t *testing.T) {
	env := newTestEnv(t)

	t.Run("login rejects a wrong password", func(t *testing.T) {
		status, body := env.do(t, stdhttp.MethodPost, "/api/auth/login", "",
			`{"email":"admin@meels.com","password":"nope"}`)
		assert.Equal(t, stdhttp.StatusUnauthorized, status)
		assert.False(t, body.Get("success").Bool())
		assert.Equal(t, "Invalid email or password", body.Get("error").String())
		assert.Equal(t, "INVALID_CREDENTIALS", body.Get("code").String())
	})

	t.Run("login issues a token for the seeded admin", func(t *testing.T) {
		status, body := env.do(t, stdhttp.MethodPost, "/api/auth/login", "",
			`{"email":"ADMIN@meels.com","password":"admin123"}`)
		require.Equal(t, stdhttp.StatusOK, status)
		assert.True(t, body.Get("success").Bool())
		assert.Equal(t, services.SeedAdminEmail, body.Get("data.user.email").String())

		claims, err := env.tokens.ValidateToken(body.Get("data.token").String())
		require.NoError(t, err)
		assert.Equal(t, services.SeedRestaurantID, claims.RestaurantID)
	})

	t.Run("empty body", func(t *testing.T) {
		status, body := env.do(t, stdhttp.MethodPost, "/api/auth/login", "", "")
		assert.Equal(t, stdhttp.StatusBadRequest, status)
		assert.Equal(t, "Request body is required", body.Get("error").String())
	})

	t.Run("register reports field errors", func(t *testing.T) {
		status, body := env.do(t, stdhttp.MethodPost, "/api/auth/register", "",
			`{"name":"A","email":"nope","phone":"123","password":"abc"}`)
		assert.Equal(t, stdhttp.StatusUnprocessableEntity, status)
		assert.Equal(t, "VALIDATION_ERROR", body.Get("code").String())
		assert.Equal(t, "Name must be at least 2 characters", body.Get("fields.name.0").String())
		assert.True(t, body.Get("fields.email").Exists())
		assert.True(t, body.Get("fields.phone").Exists())
		assert.True(t, body.Get("fields.password").Exists())
	})

	registration := `{"name":"Spice Route","email":"owner@spiceroute.in","phone":"9876543210","password":"secret1","inviteCode":"%s"}`

	t.Run("register needs the invitation code", func(t *testing.T) {
		status, body := env.do(t, stdhttp.MethodPost, "/api/auth/register", "",
			strings.Replace(registration, "%s", "wrong", 1))
		assert.Equal(t, stdhttp.StatusForbidden, status)
		assert.Equal(t, "INVALID_INVITE", body.Get("code").String())
	})

	t.Run("register then duplicate", func(t *testing.T) {
		status, body := env.do(t, stdhttp.MethodPost, "/api/auth/register", "",
			strings.Replace(registration, "%s", testInvite, 1))
		require.Equal(t, stdhttp.StatusCreated, status, body.Raw)
		assert.Equal(t, domain.RoleRestaurantOwner, body.Get("data.user.role").String())
		assert.NotEmpty(t, body.Get("data.token").String())
		assert.Equal(t, "Registration successful", body.Get("message").String())

		status, body = env.do(t, stdhttp.MethodPost, "/api/auth/register", "",
			strings.Replace(registration, "%s", testInvite, 1))
		assert.Equal(t, stdhttp.StatusConflict, status)
		assert.Equal(t, "USER_EXISTS", body.Get("code").String())
	})

	t.Run("refresh, me and logout need a token", func(t *testing.T) {
		status, _ := env.do(t, stdhttp.MethodPost, "/api/auth/refresh", "", "")
		assert.Equal(t, stdhttp.StatusUnauthorized, status)

		token := env.login(t)

		status, body := env.do(t, stdhttp.MethodPost, "/api/auth/refresh", token, "")
		require.Equal(t, stdhttp.StatusOK, status)
		assert.NotEmpty(t, body.Get("data.token").String())

		status, body = env.do(t, stdhttp.MethodGet, "/api/auth/me", token, "")
		require.Equal(t, stdhttp.StatusOK, status)
		assert.Equal(t, "user_001", body.Get("data.id").String())

		status, body = env.do(t, stdhttp.MethodPost, "/api/auth/logout", token, "")
		assert.Equal(t, stdhttp.StatusOK, status)
		assert.Equal(t, "Logged out successfully", body.Get("message").String())
	})

	t.Run("refresh for a vanished account", func(t *testing.T) {
		token, err := env.tokens.GenerateToken(domain.User{ID: "ghost"})
		require.NoError(t, err)

		status, body := env.do(t, stdhttp.MethodPost, "/api/auth/refresh", token, "")
		assert.Equal(t, stdhttp.StatusUnauthorized, status)
		assert.Equal(t, "Account no longer exists", body.Get("error").String())
	})
}

func TestRestaurantRoutes_RequireToken(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/restaurant", "/api/restaurant/menu", "/api/restaurant/orders", "/api/restaurant/dashboard"} {
		status, body := env.do(t, stdhttp.MethodGet, path, "", "")
		assert.Equal(t, stdhttp.StatusUnauthorized, status, path)
		assert.Equal(t, "UNAUTHORIZED", body.Get("code").String(), path)
	}
}

func TestMenuRoutes(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	status, body := env.do(t, stdhttp.MethodGet, "/api/restaurant/menu", token, "")
	require.Equal(t, stdhttp.StatusOK, status)
	assert.Len(t, body.Get("data").Array(), 3)
	assert.Equal(t, "Chicken Biryani", body.Get("data.0.name").String())

	item := `{"name":"Gulab Jamun","description":"Milk dumplings in syrup","price":90,"category":"Dessert",` +
		`"preparationTime":5,"isVegetarian":true,"allergens":["dairy"],"nutritionalInfo":{"calories":300}}`

	status, body = env.do(t, stdhttp.MethodPost, "/api/restaurant/menu", token, item)
	require.Equal(t, stdhttp.StatusCreated, status, body.Raw)
	id := body.Get("data.id").String()
	assert.True(t, strings.HasPrefix(id, "item_"))
	assert.False(t, body.Get("data.isOutOfStock").Bool())

	status, body = env.do(t, stdhttp.MethodPost, "/api/restaurant/menu", token, `{"name":"","price":0,"category":"Soup"}`)
	assert.Equal(t, stdhttp.StatusUnprocessableEntity, status)
	assert.Equal(t, "Valid price is required", body.Get("fields.price.0").String())
	assert.True(t, body.Get("fields.category").Exists())

	status, body = env.do(t, stdhttp.MethodPut, "/api/restaurant/menu/"+id, token,
		strings.Replace(item, `"price":90`, `"price":110`, 1))
	require.Equal(t, stdhttp.StatusOK, status)
	assert.Equal(t, 110.0, body.Get("data.price").Float())

	status, body = env.do(t, stdhttp.MethodPut, "/api/restaurant/menu/item_999", token, item)
	assert.Equal(t, stdhttp.StatusNotFound, status)
	assert.Equal(t, "MENU_ITEM_NOT_FOUND", body.Get("code").String())

	status, body = env.do(t, stdhttp.MethodDelete, "/api/restaurant/menu/"+id, token, "")
	require.Equal(t, stdhttp.StatusOK, status)
	assert.Equal(t, id, body.Get("data.id").String())

	status, _ = env.do(t, stdhttp.MethodDelete, "/api/restaurant/menu/"+id, token, "")
	assert.Equal(t, stdhttp.StatusNotFound, status)
}

func TestOrderRoutes(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	status, body := env.do(t, stdhttp.MethodGet, "/api/restaurant/orders?page=1&limit=2", token, "")
	require.Equal(t, stdhttp.StatusOK, status)
	assert.Len(t, body.Get("data.orders").Array(), 2)
	assert.Equal(t, int64(2), body.Get("data.totalPages").Int())
	assert.Equal(t, int64(3), body.Get("data.totalOrders").Int())
	assert.Equal(t, "order_001", body.Get("data.orders.0.id").String())

	status, body = env.do(t, stdhttp.MethodGet, "/api/restaurant/orders?status=preparing", token, "")
	require.Equal(t, stdhttp.StatusOK, status)
	assert.Equal(t, int64(1), body.Get("data.totalOrders").Int())

	status, body = env.do(t, stdhttp.MethodGet, "/api/restaurant/orders?page=922337203685477582", token, "")
	require.Equal(t, stdhttp.StatusOK, status)
	assert.Empty(t, body.Get("data.orders").Array())
	assert.Equal(t, int64(3), body.Get("data.totalOrders").Int())

	status, body = env.do(t, stdhttp.MethodGet, "/api/restaurant/orders/order_003", token, "")
	require.Equal(t, stdhttp.StatusOK, status)
	assert.Equal(t, "#1232", body.Get("data.orderNumber").String())

	status, body = env.do(t, stdhttp.MethodGet, "/api/restaurant/orders/order_404", token, "")
	assert.Equal(t, stdhttp.StatusNotFound, status)
	assert.Equal(t, "ORDER_NOT_FOUND", body.Get("code").String())

	status, body = env.do(t, stdhttp.MethodPatch, "/api/restaurant/orders/order_001/status", token, `{"status":"teleported"}`)
	assert.Equal(t, stdhttp.StatusUnprocessableEntity, status)
	assert.Equal(t, "Invalid order status", body.Get("fields.status.0").String())

	status, body = env.do(t, stdhttp.MethodPatch, "/api/restaurant/orders/order_001/status", token, `{"status":"confirmed"}`)
	require.Equal(t, stdhttp.StatusOK, status)
	assert.Equal(t, "confirmed", body.Get("data.status").String())
	assert.True(t, body.Get("data.updatedAt").Exists())
}

func TestSupportRoutes(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	status, body := env.do(t, stdhttp.MethodGet, "/api/restaurant/support?status=open", token, "")
	require.Equal(t, stdhttp.StatusOK, status)
	for _, ticket := range body.Get("data.tickets").Array() {
		assert.Equal(t, "open", ticket.Get("status").String())
	}

	status, body = env.do(t, stdhttp.MethodPatch, "/api/restaurant/support/T001/status", token, `{"status":"resolved"}`)
	require.Equal(t, stdhttp.StatusOK, status)
	assert.Equal(t, "resolved", body.Get("data.status").String())

	status, body = env.do(t, stdhttp.MethodPatch, "/api/restaurant/support/T999/status", token, `{"status":"closed"}`)
	assert.Equal(t, stdhttp.StatusNotFound, status)
	assert.Equal(t, "TICKET_NOT_FOUND", body.Get("code").String())
}

func TestDashboardRoutes(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	status, body := env.do(t, stdhttp.MethodGet, "/api/restaurant/dashboard", token, "")
	require.Equal(t, stdhttp.StatusOK, status)
	assert.Equal(t, int64(3), body.Get("data.sales.today.orderCount").Int())
	assert.Equal(t, 1730.0, body.Get("data.sales.today.totalSales").Float())
	assert.Equal(t, int64(1), body.Get("data.orderStatusCounts.placed").Int())
	assert.Equal(t, int64(0), body.Get("data.orderStatusCounts.cancelled").Int())

	status, body = env.do(t, stdhttp.MethodGet, "/api/restaurant/reports?from=2026-10-08&to=2026-10-14", token, "")
	require.Equal(t, stdhttp.StatusOK, status)
	assert.True(t, body.Get("data").IsArray())

	status, body = env.do(t, stdhttp.MethodGet, "/api/restaurant/reports?from=2026-10-14&to=2026-10-01", token, "")
	assert.Equal(t, stdhttp.StatusUnprocessableEntity, status)
	assert.True(t, body.Get("fields.to").Exists())

	status, body = env.do(t, stdhttp.MethodGet, "/api/restaurant/reports?from=14-10-2026", token, "")
	assert.Equal(t, stdhttp.StatusUnprocessableEntity, status)
	assert.Equal(t, "Must be a date in YYYY-MM-DD format", body.Get("fields.from.0").String())

	status, body = env.do(t, stdhttp.MethodGet, "/api/restaurant/activity?limit=2", token, "")
	require.Equal(t, stdhttp.StatusOK, status)
	assert.Len(t, body.Get("data.activities").Array(), 2)
}

func TestProfileAndSettingsRoutes(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	status, body := env.do(t, stdhttp.MethodGet, "/api/restaurant", token, "")
	require.Equal(t, stdhttp.StatusOK, status)
	assert.Equal(t, "Meels Kitchen", body.Get("data.name").String())

	for _, method := range []string{stdhttp.MethodPut, stdhttp.MethodPost} {
		status, body = env.do(t, method, "/api/restaurant", token, `{"name":"Meels Express","isOpen":false}`)
		require.Equal(t, stdhttp.StatusOK, status, method)
		assert.Equal(t, "Meels Express", body.Get("data.name").String())
		assert.Equal(t, services.SeedRestaurantID, body.Get("data.id").String())
	}

	status, body = env.do(t, stdhttp.MethodPut, "/api/restaurant", token, `{"name":""}`)
	assert.Equal(t, stdhttp.StatusUnprocessableEntity, status)

	status, body = env.do(t, stdhttp.MethodGet, "/api/restaurant/settings", token, "")
	require.Equal(t, stdhttp.StatusOK, status)
	assert.Equal(t, "INR", body.Get("data.currency").String())

	status, body = env.do(t, stdhttp.MethodPut, "/api/restaurant/settings", token,
		`{"acceptingOrders":false,"preparationBufferMinutes":15,"notificationChannels":["sms"],"currency":"INR","taxRate":12}`)
	require.Equal(t, stdhttp.StatusOK, status, body.Raw)
	assert.False(t, body.Get("data.acceptingOrders").Bool())
	assert.Equal(t, 12.0, body.Get("data.taxRate").Float())

	status, body = env.do(t, stdhttp.MethodPut, "/api/restaurant/settings", token, `{"taxRate":150}`)
	assert.Equal(t, stdhttp.StatusUnprocessableEntity, status)
	assert.True(t, body.Get("fields.taxRate").Exists())
}

func TestNotificationRoutes(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	env.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Title == "Diwali offer" && n.Audience == "customers"
	})).Once()

	status, body := env.do(t, stdhttp.MethodPost, "/api/restaurant/notifications", token,
		`{"title":"Diwali offer","message":"20% off all sweets"}`)
	require.Equal(t, stdhttp.StatusCreated, status, body.Raw)
	assert.True(t, strings.HasPrefix(body.Get("data.id").String(), "notif_"))

	status, body = env.do(t, stdhttp.MethodPost, "/api/restaurant/notifications", token, `{"title":"","message":""}`)
	assert.Equal(t, stdhttp.StatusUnprocessableEntity, status)

	status, body = env.do(t, stdhttp.MethodGet, "/api/restaurant/notifications", token, "")
	require.Equal(t, stdhttp.StatusOK, status)
	assert.Len(t, body.Get("data").Array(), 1)

	env.notifier.AssertExpectations(t)
}

func TestMetricsAndCORS(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	req := httptest.NewRequest(stdhttp.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `devapi_http_requests_total{method="POST",route="/api/auth/login",status="200"}`)

	req = httptest.NewRequest(stdhttp.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", stdhttp.MethodPost)
	rec = httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func chiRouter(register func(chi.Router)) stdhttp.Handler {
	r := chi.NewRouter()
	register(r)
	return r
}
