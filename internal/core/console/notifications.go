package console

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	"github.com/lorrc/restaurant-console/internal/core/ports"
	"github.com/lorrc/restaurant-console/internal/core/store"
)

// Notification actions
const (
	SendNotification store.ActionKind = "SEND_NOTIFICATION"
	GetNotifications store.ActionKind = "GET_NOTIFICATIONS"
)

const notificationsPath = "/restaurant/notifications"

// NotificationsState holds the notifications sent from this restaurant.
type NotificationsState struct {
	Notifications []domain.Notification
}

var InitialNotificationsState = NotificationsState{Notifications: []domain.Notification{}}

// NewNotificationsStore creates a new notifications store
func NewNotificationsStore() *store.Store[NotificationsState] {
	return store.New(InitialNotificationsState, map[store.ActionKind]store.Handler[NotificationsState]{
		SendNotification: store.On(func(s NotificationsState, n domain.Notification) NotificationsState {
			next := make([]domain.Notification, 0, len(s.Notifications)+1)
			s.Notifications = append(append(next, s.Notifications...), n)
			return s
		}),
		GetNotifications: store.On(func(s NotificationsState, list []domain.Notification) NotificationsState {
			s.Notifications = list
			return s
		}),
		store.ResetState: store.Reset(InitialNotificationsState),
	})
}

// NotificationsModule sends and lists customer notifications.
type NotificationsModule struct {
	*module[NotificationsState]
}

// NewNotificationsModule creates a new notifications module
func NewNotificationsModule(api ports.APIClient, logger *slog.Logger) *NotificationsModule {
	return &NotificationsModule{newModule("notifications", api, NewNotificationsStore(), logger)}
}

// SendNotification posts a notification and appends the stored copy.
func (m *NotificationsModule) SendNotification(ctx context.Context, in domain.NotificationInput) (domain.Notification, error) {
	return execute[domain.Notification](ctx, m.module, ports.Request{
		Method: http.MethodPost,
		Path:   notificationsPath,
		Body:   in,
	}, SendNotification)
}

// GetNotifications replaces the cached list with the server's.
func (m *NotificationsModule) GetNotifications(ctx context.Context) ([]domain.Notification, error) {
	return execute[[]domain.Notification](ctx, m.module, ports.Request{
		Method: http.MethodGet,
		Path:   notificationsPath,
	}, GetNotifications)
}
