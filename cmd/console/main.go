// Command console is the restaurant operator's terminal console.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lorrc/restaurant-console/internal/adapters/primary/cli"
	"github.com/lorrc/restaurant-console/internal/adapters/secondary/restapi"
	"github.com/lorrc/restaurant-console/internal/adapters/secondary/storage"
	"github.com/lorrc/restaurant-console/internal/config"
	"github.com/lorrc/restaurant-console/internal/core/console"
	"github.com/lorrc/restaurant-console/internal/core/ports"
	"github.com/lorrc/restaurant-console/internal/core/session"
	"github.com/lorrc/restaurant-console/internal/infrastructure/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr so command output stays clean
	logger := logging.NewLogger(logging.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Output:      os.Stderr,
		ServiceName: cfg.App.Name,
		Environment: cfg.App.Environment,
	})

	// File is empty only with CONSOLE_SESSION_IN_MEMORY or without a config dir
	var kv ports.KeyValueStore = storage.NewMemoryStore()
	if cfg.Session.File != "" {
		kv = storage.NewFileStore(cfg.Session.File)
	}
	sess := session.New(kv, logger)

	api := restapi.New(cfg.API.BaseURL, sess,
		restapi.WithTimeout(cfg.API.Timeout),
		restapi.WithLogger(logger),
	)

	root := cli.NewRootCommand(console.New(api, sess, logger))
	code := cli.Execute(ctx, root)
	stop()
	os.Exit(code)
}
