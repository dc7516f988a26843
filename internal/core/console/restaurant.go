package console

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	"github.com/lorrc/restaurant-console/internal/core/ports"
	"github.com/lorrc/restaurant-console/internal/core/store"
)

// Restaurant profile actions. The kind names keep their historical spelling.
const (
	GetRestaurantDetails    store.ActionKind = "GET_RESTARENT_DETAILS"
	UpdateRestaurantDetails store.ActionKind = "UPDATE_RESTARENT_DETAILS"
)

const restaurantPath = "/restaurant"

// RestaurantState holds the restaurant profile once loaded.
type RestaurantState struct {
	RestaurantDetails *domain.Restaurant
}

var InitialRestaurantState = RestaurantState{}

// NewRestaurantStore creates a new restaurant store
func NewRestaurantStore() *store.Store[RestaurantState] {
	setDetails := store.On(func(s RestaurantState, r domain.Restaurant) RestaurantState {
		s.RestaurantDetails = &r
		return s
	})
	return store.New(InitialRestaurantState, map[store.ActionKind]store.Handler[RestaurantState]{
		GetRestaurantDetails:    setDetails,
		UpdateRestaurantDetails: setDetails,
		store.ResetState:        store.Reset(InitialRestaurantState),
	})
}

// RestaurantModule manages the restaurant profile.
type RestaurantModule struct {
	*module[RestaurantState]
}

// NewRestaurantModule creates a new restaurant module
func NewRestaurantModule(api ports.APIClient, logger *slog.Logger) *RestaurantModule {
	return &RestaurantModule{newModule("restaurant", api, NewRestaurantStore(), logger)}
}

// GetRestaurantDetails fetches the profile of the signed-in restaurant.
func (m *RestaurantModule) GetRestaurantDetails(ctx context.Context) (domain.Restaurant, error) {
	return execute[domain.Restaurant](ctx, m.module, ports.Request{
		Method: http.MethodGet,
		Path:   restaurantPath,
	}, GetRestaurantDetails)
}

// UpdateRestaurantDetails saves r and caches the profile the server returns.
func (m *RestaurantModule) UpdateRestaurantDetails(ctx context.Context, r domain.Restaurant) (domain.Restaurant, error) {
	return execute[domain.Restaurant](ctx, m.module, ports.Request{
		Method: http.MethodPut,
		Path:   restaurantPath,
		Body:   r,
	}, UpdateRestaurantDetails)
}
