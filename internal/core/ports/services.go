package ports

import (
	"context"

	"github.com/lorrc/restaurant-console/internal/core/domain"
)

// AuthService defines the port for dev backend account logic.
type AuthService interface {
	Register(ctx context.Context, reg domain.Registration) (*domain.Account, error)
	Login(ctx context.Context, creds domain.Credentials) (*domain.Account, error)
	GetAccount(ctx context.Context, userID string) (*domain.Account, error)
}

// MenuService manages menu items.
type MenuService interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	Create(ctx context.Context, in domain.MenuItemInput) (*domain.MenuItem, error)
	Update(ctx context.Context, id string, in domain.MenuItemInput) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

// OrderService manages orders.
type OrderService interface {
	List(ctx context.Context, params domain.ListParams) (*domain.OrderList, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

// SupportService manages customer support tickets.
type SupportService interface {
	List(ctx context.Context, params domain.ListParams) (*domain.TicketList, error)
	UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) (*domain.SupportTicket, error)
}

// DashboardService computes dashboard aggregates.
type DashboardService interface {
	Metrics(ctx context.Context) (*domain.DashboardMetrics, error)
	Reports(ctx context.Context, params domain.ReportParams) ([]domain.ReportEntry, error)
	Activity(ctx context.Context, limit int) (*domain.ActivityFeed, error)
}

// RestaurantService manages the singleton profile and settings.
type RestaurantService interface {
	Profile(ctx context.Context) (*domain.Restaurant, error)
	UpdateProfile(ctx context.Context, r domain.Restaurant) (*domain.Restaurant, error)
	Settings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, s domain.Settings) (*domain.Settings, error)
}

// NotificationService records outbound notifications.
type NotificationService interface {
	Send(ctx context.Context, in domain.NotificationInput) (*domain.Notification, error)
	List(ctx context.Context) ([]domain.Notification, error)
}

// Notifier delivers a recorded notification to its audience.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}
