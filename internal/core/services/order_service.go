package services

import (
	"context"
	"sync"
	"time"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

// OrderService implements order listing and status changes
type OrderService struct {
	orders *Repository[domain.Order]
	clock  Clock
	mu     sync.Mutex // serialises read-modify-write of a status
}

var _ ports.OrderService = (*OrderService)(nil)

func NewOrderService(store ports.DocumentStore, clock Clock) *OrderService {
	return &OrderService{orders: orderRepository(store), clock: clock}
}

func orderRepository(store ports.DocumentStore) *Repository[domain.Order] {
	return NewRepository(store, ports.CollectionOrders, func(o domain.Order) string { return o.ID })
}

// List returns one page of orders, newest first.
func (s *OrderService) List(ctx context.Context, params domain.ListParams) (*domain.OrderList, error) {
	all, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}

	p := paginate(all, params,
		func(o domain.Order) string { return string(o.Status) },
		func(o domain.Order) time.Time { return o.CreatedAt },
	)

	return &domain.OrderList{
		Orders:      p.Items,
		TotalPages:  p.TotalPages,
		CurrentPage: p.Current,
		TotalOrders: p.Total,
	}, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrOrderNotFound)
	}
	return order, nil
}

// UpdateStatus sets the order status. Any known status may follow any other.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clock.now()
	order.Status = status
	order.UpdatedAt = &now

	if err := s.orders.Put(ctx, *order); err != nil {
		return nil, err
	}
	return order, nil
}
