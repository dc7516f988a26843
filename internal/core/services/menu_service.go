package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

// MenuService manages the restaurant menu
type MenuService struct {
	items *Repository[domain.MenuItem]
}

var _ ports.MenuService = (*MenuService)(nil)

func NewMenuService(store ports.DocumentStore) *MenuService {
	return &MenuService{
		items: NewRepository(store, ports.CollectionMenu, func(m domain.MenuItem) string { return m.ID }),
	}
}

func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	return s.items.All(ctx)
}

// Create adds a new item. New items are always in stock.
func (s *MenuService) Create(ctx context.Context, in domain.MenuItemInput) (*domain.MenuItem, error) {
	item := in.Apply("item_" + uuid.NewString())
	item.IsOutOfStock = false

	if err := s.items.Put(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces the item with the given id.
func (s *MenuService) Update(ctx context.Context, id string, in domain.MenuItemInput) (*domain.MenuItem, error) {
	if _, err := s.items.Get(ctx, id); err != nil {
		return nil, notFound(err, apperrors.ErrMenuItemNotFound)
	}

	item := in.Apply(id)
	if err := s.items.Put(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	return notFound(s.items.Delete(ctx, id), apperrors.ErrMenuItemNotFound)
}
