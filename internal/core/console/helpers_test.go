package console_test

import (
	"log/slog"

	"github.com/lorrc/restaurant-console/internal/infrastructure/logging"
)

func discard() *slog.Logger { return logging.Discard() }
