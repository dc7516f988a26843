package console

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	"github.com/lorrc/restaurant-console/internal/core/ports"
	"github.com/lorrc/restaurant-console/internal/core/store"
)

// Support actions
const (
	GetSupportQueries   store.ActionKind = "GET_SUPPORT_QUERIES"
	UpdateSupportStatus store.ActionKind = "UPDATE_SUPPORT_STATUS"
)

const supportPath = "/restaurant/support"

// SupportState is the cached list of customer support queries.
type SupportState struct {
	SupportQueries []domain.SupportTicket
	TotalPages     int
	CurrentPage    int
	TotalTickets   int
}

var InitialSupportState = SupportState{SupportQueries: []domain.SupportTicket{}}

// NewSupportStore creates a new support store
func NewSupportStore() *store.Store[SupportState] {
	return store.New(InitialSupportState, map[store.ActionKind]store.Handler[SupportState]{
		GetSupportQueries: store.On(func(s SupportState, list domain.TicketList) SupportState {
			s.SupportQueries = list.Tickets
			s.TotalPages = list.TotalPages
			s.CurrentPage = list.CurrentPage
			s.TotalTickets = list.TotalTickets
			return s
		}),
		UpdateSupportStatus: store.On(func(s SupportState, ticket domain.SupportTicket) SupportState {
			next := make([]domain.SupportTicket, len(s.SupportQueries))
			for i, existing := range s.SupportQueries {
				if existing.ID == ticket.ID {
					existing = ticket
				}
				next[i] = existing
			}
			s.SupportQueries = next
			return s
		}),
		store.ResetState: store.Reset(InitialSupportState),
	})
}

// SupportModule manages customer help tickets.
type SupportModule struct {
	*module[SupportState]
}

// NewSupportModule creates a new support module
func NewSupportModule(api ports.APIClient, logger *slog.Logger) *SupportModule {
	return &SupportModule{newModule("support", api, NewSupportStore(), logger)}
}

// GetSupportQueries fetches a page of tickets, filtered by status like
// OrdersModule.GetOrders.
func (m *SupportModule) GetSupportQueries(ctx context.Context, params domain.ListParams) (domain.TicketList, error) {
	return executeWith(ctx, m.module, ports.Request{
		Method: http.MethodGet,
		Path:   supportPath,
		Query:  listQuery(params),
	}, GetSupportQueries, func(list domain.TicketList) domain.TicketList {
		if params.FiltersStatus() {
			list.Tickets = filterByStatus(list.Tickets, func(t domain.SupportTicket) string { return string(t.Status) }, params.Status)
		}
		if list.Tickets == nil {
			list.Tickets = []domain.SupportTicket{}
		}
		return list
	})
}

// UpdateSupportStatus changes a ticket's status.
func (m *SupportModule) UpdateSupportStatus(ctx context.Context, id string, status domain.TicketStatus) (domain.SupportTicket, error) {
	return execute[domain.SupportTicket](ctx, m.module, ports.Request{
		Method: http.MethodPatch,
		Path:   supportPath + "/" + url.PathEscape(id) + "/status",
		Body:   domain.StatusUpdate{Status: string(status)},
	}, UpdateSupportStatus)
}
