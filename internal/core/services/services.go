package services

import "github.com/lorrc/restaurant-console/internal/core/ports"

// Options configure the dev backend services.
type Options struct {
	InviteCode string
	Notifier   ports.Notifier
	Clock      Clock
}

// Services bundles every dev backend use case over one store.
type Services struct {
	Auth          ports.AuthService
	Menu          ports.MenuService
	Orders        ports.OrderService
	Support       ports.SupportService
	Dashboard     ports.DashboardService
	Restaurant    ports.RestaurantService
	Notifications ports.NotificationService
}

func New(store ports.DocumentStore, opts Options) *Services {
	return &Services{
		Auth:          NewAuthService(store, opts.InviteCode),
		Menu:          NewMenuService(store),
		Orders:        NewOrderService(store, opts.Clock),
		Support:       NewSupportService(store, opts.Clock),
		Dashboard:     NewDashboardService(store, opts.Clock),
		Restaurant:    NewRestaurantService(store),
		Notifications: NewNotificationService(store, opts.Notifier, opts.Clock),
	}
}
