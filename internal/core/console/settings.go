package console

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	"github.com/lorrc/restaurant-console/internal/core/ports"
	"github.com/lorrc/restaurant-console/internal/core/store"
)

// Settings actions
const (
	GetRestaurantSettings    store.ActionKind = "GET_RESTAURANT_SETTINGS"
	UpdateRestaurantSettings store.ActionKind = "UPDATE_RESTAURANT_SETTINGS"
)

const settingsPath = "/restaurant/settings"

// SettingsState holds the restaurant settings once loaded.
type SettingsState struct {
	RestaurantSettings *domain.Settings
}

var InitialSettingsState = SettingsState{}

// NewSettingsStore creates a new settings store
func NewSettingsStore() *store.Store[SettingsState] {
	set := store.On(func(s SettingsState, v domain.Settings) SettingsState {
		s.RestaurantSettings = &v
		return s
	})
	return store.New(InitialSettingsState, map[store.ActionKind]store.Handler[SettingsState]{
		GetRestaurantSettings:    set,
		UpdateRestaurantSettings: set,
		store.ResetState:         store.Reset(InitialSettingsState),
	})
}

// SettingsModule reads and writes restaurant settings.
type SettingsModule struct {
	*module[SettingsState]
}

// NewSettingsModule creates a new settings module
func NewSettingsModule(api ports.APIClient, logger *slog.Logger) *SettingsModule {
	return &SettingsModule{newModule("settings", api, NewSettingsStore(), logger)}
}

// GetRestaurantSettings fetches the current settings.
func (m *SettingsModule) GetRestaurantSettings(ctx context.Context) (domain.Settings, error) {
	return execute[domain.Settings](ctx, m.module, ports.Request{
		Method: http.MethodGet,
		Path:   settingsPath,
	}, GetRestaurantSettings)
}

// UpdateRestaurantSettings replaces the settings with s.
func (m *SettingsModule) UpdateRestaurantSettings(ctx context.Context, s domain.Settings) (domain.Settings, error) {
	return execute[domain.Settings](ctx, m.module, ports.Request{
		Method: http.MethodPut,
		Path:   settingsPath,
		Body:   s,
	}, UpdateRestaurantSettings)
}
