package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	mw "github.com/lorrc/restaurant-console/internal/adapters/primary/http/middleware"
	"github.com/lorrc/restaurant-console/internal/auth"
	"github.com/lorrc/restaurant-console/internal/core/services"
)

// defaultOrigins lets a locally served console call the dev backend.
var defaultOrigins = []string{"http://localhost:*", "http://127.0.0.1:*"}

// RouterConfig holds everything NewRouter wires together. Nil rate
// limiters, metrics and metrics handler disable those features.
type RouterConfig struct {
	Services       *services.Services
	TokenManager   *auth.TokenManager
	Store          HealthChecker
	StoreName      string
	Version        string
	Logger         *slog.Logger
	GeneralLimiter *mw.RateLimiter
	AuthLimiter    *mw.RateLimiter
	Metrics        *mw.Metrics
	MetricsHandler http.Handler
	AllowedOrigins []string
}

// NewRouter builds the dev backend HTTP handler.
func NewRouter(cfg RouterConfig) http.Handler {
	errorHandler := NewErrorHandler(cfg.Logger)

	authHandler := NewAuthHandler(cfg.Services.Auth, cfg.TokenManager, errorHandler, cfg.Logger)
	menuHandler := NewMenuHandler(cfg.Services.Menu, errorHandler, cfg.Logger)
	orderHandler := NewOrderHandler(cfg.Services.Orders, errorHandler, cfg.Logger)
	supportHandler := NewSupportHandler(cfg.Services.Support, errorHandler, cfg.Logger)
	dashboardHandler := NewDashboardHandler(cfg.Services.Dashboard, errorHandler)
	restaurantHandler := NewRestaurantHandler(cfg.Services.Restaurant, errorHandler, cfg.Logger)
	notificationHandler := NewNotificationHandler(cfg.Services.Notifications, errorHandler, cfg.Logger)
	healthHandler := NewHealthHandler(cfg.Store, cfg.StoreName, cfg.Version)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = defaultOrigins
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.RequestID)
	r.Use(mw.RequestLogger(cfg.Logger))
	r.Use(mw.RecoveryLogger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", mw.RequestIDHeader},
		ExposedHeaders:   []string{mw.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Apply general rate limiting if enabled
	if cfg.GeneralLimiter != nil {
		r.Use(cfg.GeneralLimiter.Middleware)
	}

	healthHandler.RegisterRoutes(r)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		// Auth routes with stricter rate limiting
		r.Group(func(r chi.Router) {
			if cfg.AuthLimiter != nil {
				r.Use(cfg.AuthLimiter.Middleware)
			}
			r.Route("/auth", authHandler.RegisterRoutes)
		})

		// Protected restaurant routes
		r.Route("/restaurant", func(r chi.Router) {
			r.Use(mw.JWTMiddleware(cfg.TokenManager))

			restaurantHandler.RegisterRoutes(r)
			dashboardHandler.RegisterRoutes(r)
			r.Route("/menu", menuHandler.RegisterRoutes)
			r.Route("/orders", orderHandler.RegisterRoutes)
			r.Route("/support", supportHandler.RegisterRoutes)
			r.Route("/notifications", notificationHandler.RegisterRoutes)
		})
	})

	return r
}
