package console

import (
	"context"
	"log/slog"

	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
	"github.com/lorrc/restaurant-console/internal/core/ports"
	"github.com/lorrc/restaurant-console/internal/core/session"
	"github.com/lorrc/restaurant-console/internal/infrastructure/logging"
)

// unauthorizedHook is implemented by API clients that can report 401s.
type unauthorizedHook interface {
	SetUnauthorizedHandler(fn func(ctx context.Context))
}

// Console owns one long-lived instance of every domain module and the
// session they share.
type Console struct {
	Session       *session.Store
	Auth          *AuthModule
	Dashboard     *DashboardModule
	Menu          *MenuModule
	Notifications *NotificationsModule
	Orders        *OrdersModule
	Restaurant    *RestaurantModule
	Settings      *SettingsModule
	Support       *SupportModule

	logger *slog.Logger
}

// New wires the domain modules to api and sess. When api reports 401
// responses, ExpireSession is registered as its handler.
func New(api ports.APIClient, sess *session.Store, logger *slog.Logger) *Console {
	if logger == nil {
		logger = logging.Discard()
	}

	c := &Console{
		Session:       sess,
		Auth:          NewAuthModule(api, sess, logger),
		Dashboard:     NewDashboardModule(api, logger),
		Menu:          NewMenuModule(api, logger),
		Notifications: NewNotificationsModule(api, logger),
		Orders:        NewOrdersModule(api, logger),
		Restaurant:    NewRestaurantModule(api, logger),
		Settings:      NewSettingsModule(api, logger),
		Support:       NewSupportModule(api, logger),
		logger:        logger,
	}

	if hook, ok := api.(unauthorizedHook); ok {
		hook.SetUnauthorizedHandler(c.ExpireSession)
	}
	return c
}

// ResetAll restores every domain store to its initial state.
func (c *Console) ResetAll() {
	c.Auth.Reset()
	c.Dashboard.Reset()
	c.Menu.Reset()
	c.Notifications.Reset()
	c.Orders.Reset()
	c.Restaurant.Reset()
	c.Settings.Reset()
	c.Support.Reset()
}

// Logout notifies the server when a token is held, then clears the session
// and every store. A failed server call is logged and does not keep the
// operator signed in.
func (c *Console) Logout(ctx context.Context) error {
	if c.Session.Token() != "" {
		if err := c.Auth.Logout(ctx); err != nil {
			c.logger.WarnContext(ctx, "server logout failed", "error", err)
		}
	}
	return c.clear()
}

// ExpireSession is the 401 interceptor: it clears the session and tears down
// cached state.
func (c *Console) ExpireSession(ctx context.Context) {
	c.logger.WarnContext(ctx, "session expired, signing out")
	if err := c.clear(); err != nil {
		c.logger.ErrorContext(ctx, "clear session", "error", err)
	}
}

// HandleAPIError returns the message to show for err. A session-expired
// error always leaves the operator signed out.
func (c *Console) HandleAPIError(ctx context.Context, err error) string {
	if err == nil {
		return ""
	}
	if apperrors.KindOf(err) == apperrors.KindSessionExpired && c.Session.Token() != "" {
		c.ExpireSession(ctx)
	}
	return apperrors.UserMessage(err)
}

func (c *Console) clear() error {
	err := c.Session.Logout()
	c.ResetAll()
	return err
}
