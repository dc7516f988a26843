package services

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

// NotificationService records outbound notifications.
type NotificationService struct {
	notifications *Repository[domain.Notification]
	notifier      ports.Notifier
	clock         Clock
}

var _ ports.NotificationService = (*NotificationService)(nil)

// NewNotificationService records notifications in store and hands them
// to notifier, which may be nil.
func NewNotificationService(store ports.DocumentStore, notifier ports.Notifier, clock Clock) *NotificationService {
	return &NotificationService{
		notifications: NewRepository(store, ports.CollectionNotifications, func(n domain.Notification) string { return n.ID }),
		notifier:      notifier,
		clock:         clock,
	}
}

func (s *NotificationService) Send(ctx context.Context, in domain.NotificationInput) (*domain.Notification, error) {
	n := domain.Notification{
		ID:        "notif_" + uuid.NewString(),
		Title:     in.Title,
		Message:   in.Message,
		Audience:  in.Audience,
		CreatedAt: s.clock.now(),
	}
	if n.Audience == "" {
		n.Audience = "customers"
	}

	if err := s.notifications.Put(ctx, n); err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.Notify(ctx, n)
	}
	return &n, nil
}

// List returns notifications, newest first.
func (s *NotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	all, err := s.notifications.All(ctx)
	if err != nil {
		return nil, err
	}
	slices.Reverse(all)
	return all, nil
}
