package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

// Document ids of the restaurant collection
const (
	profileID  = "profile"
	settingsID = "settings"
)

// DefaultSettings applies until the operator saves settings.
func DefaultSettings() domain.Settings {
	return domain.Settings{
		AcceptingOrders:          true,
		AutoConfirmOrders:        false,
		PreparationBufferMinutes: 10,
		NotificationChannels:     []string{"email"},
		Currency:                 "INR",
		TaxRate:                  5,
	}
}

// RestaurantService manages the singleton profile and settings documents
type RestaurantService struct {
	profile  *Repository[domain.Restaurant]
	settings *Repository[domain.Settings]
	mu       sync.Mutex
}

var _ ports.RestaurantService = (*RestaurantService)(nil)

func NewRestaurantService(store ports.DocumentStore) *RestaurantService {
	return &RestaurantService{
		profile:  NewRepository(store, ports.CollectionRestaurant, func(domain.Restaurant) string { return profileID }),
		settings: NewRepository(store, ports.CollectionRestaurant, func(domain.Settings) string { return settingsID }),
	}
}

func (s *RestaurantService) Profile(ctx context.Context) (*domain.Restaurant, error) {
	return s.profile.Get(ctx, profileID)
}

// UpdateProfile replaces the profile. The restaurant id never changes once
// assigned.
func (s *RestaurantService) UpdateProfile(ctx context.Context, r domain.Restaurant) (*domain.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.profile.Get(ctx, profileID)
	switch {
	case err == nil:
		r.ID = current.ID
	case errors.Is(err, apperrors.ErrNotFound):
		if r.ID == "" {
			r.ID = "rest_" + uuid.NewString()
		}
	default:
		return nil, err
	}

	if err := s.profile.Put(ctx, r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *RestaurantService) Settings(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settings.Get(ctx, settingsID)
	if errors.Is(err, apperrors.ErrNotFound) {
		d := DefaultSettings()
		return &d, nil
	}
	return settings, err
}

func (s *RestaurantService) UpdateSettings(ctx context.Context, settings domain.Settings) (*domain.Settings, error) {
	if settings.NotificationChannels == nil {
		settings.NotificationChannels = []string{}
	}
	if settings.Currency == "" {
		settings.Currency = DefaultSettings().Currency
	}

	if err := s.settings.Put(ctx, settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
