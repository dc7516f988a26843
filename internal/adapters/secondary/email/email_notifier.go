package email

import (
	"context"
	"log/slog"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

// MockSMTPNotifier is a secondary adapter that mocks sending emails.
// It implements the ports.Notifier interface.
type MockSMTPNotifier struct {
	logger *slog.Logger
}

var _ ports.Notifier = (*MockSMTPNotifier)(nil)

// NewMockSMTPNotifier creates a new mock notifier.
func NewMockSMTPNotifier(logger *slog.Logger) *MockSMTPNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &MockSMTPNotifier{logger: logger.With("component", "email_notifier")}
}

// Notify logs the notification instead of mailing the audience.
func (n *MockSMTPNotifier) Notify(ctx context.Context, notification domain.Notification) {
	n.logger.InfoContext(ctx, "mock email sent",
		"notification_id", notification.ID,
		"audience", notification.Audience,
		"subject", notification.Title,
		"length", len(notification.Message),
	)
}
