// Command devapi serves the restaurant API the console talks to, backed by
// postgres when DATABASE_URL is set and by process memory otherwise.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpAdapter "github.com/lorrc/restaurant-console/internal/adapters/primary/http"
	mw "github.com/lorrc/restaurant-console/internal/adapters/primary/http/middleware"
	"github.com/lorrc/restaurant-console/internal/adapters/secondary/email"
	"github.com/lorrc/restaurant-console/internal/adapters/secondary/memory"
	"github.com/lorrc/restaurant-console/internal/adapters/secondary/postgres"
	"github.com/lorrc/restaurant-console/internal/auth"
	"github.com/lorrc/restaurant-console/internal/config"
	"github.com/lorrc/restaurant-console/internal/core/ports"
	"github.com/lorrc/restaurant-console/internal/core/services"
	"github.com/lorrc/restaurant-console/internal/infrastructure/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Load Configuration
	cfg, err := config.Load(ctx)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize Structured Logger
	logger := logging.NewLogger(logging.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Output:      os.Stdout,
		ServiceName: cfg.App.Name + "-devapi",
		Environment: cfg.App.Environment,
	})

	logger.Info("starting service",
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
		"config", cfg.String(),
	)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("devapi stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	// 3. Initialize the document store
	store, storeName, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.DevAPI.Seed {
		seeded, err := services.Seed(ctx, store, time.Now())
		if err != nil {
			return err
		}
		if seeded {
			logger.Info("seeded development fixtures",
				"login_email", services.SeedAdminEmail,
				"restaurant_id", services.SeedRestaurantID,
			)
		}
	}

	// 4. Initialize Security Components
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL, cfg.App.Name)

	// 5. Initialize Rate Limiters
	var generalRateLimiter, authRateLimiter *mw.RateLimiter
	if cfg.RateLimit.Enabled {
		generalRateLimiter = mw.NewRateLimiter(mw.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstSize:         cfg.RateLimit.BurstSize,
			CleanupInterval:   time.Minute,
			TTL:               3 * time.Minute,
		})
		defer generalRateLimiter.Stop()

		authRateLimiter = mw.NewRateLimiter(mw.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.AuthRPS,
			BurstSize:         cfg.RateLimit.AuthBurst,
			CleanupInterval:   time.Minute,
			TTL:               5 * time.Minute,
		})
		defer authRateLimiter.Stop()
	}

	// 6. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 7. Dependency Injection
	svc := services.New(store, services.Options{
		InviteCode: cfg.DevAPI.InviteCode,
		Notifier:   email.NewMockSMTPNotifier(logger),
	})

	handler := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		Services:       svc,
		TokenManager:   tokenManager,
		Store:          store,
		StoreName:      storeName,
		Version:        cfg.App.Version,
		Logger:         logger,
		GeneralLimiter: generalRateLimiter,
		AuthLimiter:    authRateLimiter,
		Metrics:        mw.NewMetrics(registry),
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	// 8. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port, "store", storeName)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server shutdown complete")
	return nil
}

// openStore picks postgres when a database URL is configured.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.DocumentStore, string, func(), error) {
	if !cfg.UsesDatabase() {
		logger.Warn("DATABASE_URL not set, data lives in memory and is lost on exit")
		return memory.NewDocumentStore(), "memory", func() {}, nil
	}

	if err := postgres.Migrate(cfg.Database.URL); err != nil {
		return nil, "", nil, err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, "", nil, err
	}
	logger.Info("database connection established")

	return postgres.NewDocumentStore(pool), "postgres", pool.Close, nil
}
