package services

import (
	"context"
	"sync"
	"time"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

// SupportService implements the customer help queue
type SupportService struct {
	tickets *Repository[domain.SupportTicket]
	clock   Clock
	mu      sync.Mutex
}

var _ ports.SupportService = (*SupportService)(nil)

func NewSupportService(store ports.DocumentStore, clock Clock) *SupportService {
	return &SupportService{tickets: ticketRepository(store), clock: clock}
}

func ticketRepository(store ports.DocumentStore) *Repository[domain.SupportTicket] {
	return NewRepository(store, ports.CollectionTickets, func(t domain.SupportTicket) string { return t.ID })
}

// List returns one page of tickets, newest first.
func (s *SupportService) List(ctx context.Context, params domain.ListParams) (*domain.TicketList, error) {
	all, err := s.tickets.All(ctx)
	if err != nil {
		return nil, err
	}

	p := paginate(all, params,
		func(t domain.SupportTicket) string { return string(t.Status) },
		func(t domain.SupportTicket) time.Time { return t.CreatedAt },
	)

	return &domain.TicketList{
		Tickets:      p.Items,
		TotalPages:   p.TotalPages,
		CurrentPage:  p.Current,
		TotalTickets: p.Total,
	}, nil
}

func (s *SupportService) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) (*domain.SupportTicket, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, err := s.tickets.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTicketNotFound)
	}

	now := s.clock.now()
	ticket.Status = status
	ticket.UpdatedAt = &now

	if err := s.tickets.Put(ctx, *ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}
