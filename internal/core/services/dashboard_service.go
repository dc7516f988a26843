package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

const (
	recentOrderCount  = 5
	maxActivityLimit  = 100
	defaultReportDays = 7
	maxReportDays     = 366
	weekWindow        = 7 * 24 * time.Hour
	monthWindow       = 30 * 24 * time.Hour
)

// DashboardService derives the dashboard aggregates from orders and tickets
type DashboardService struct {
	orders  *Repository[domain.Order]
	tickets *Repository[domain.SupportTicket]
	clock   Clock
}

var _ ports.DashboardService = (*DashboardService)(nil)

func NewDashboardService(store ports.DocumentStore, clock Clock) *DashboardService {
	return &DashboardService{
		orders:  orderRepository(store),
		tickets: ticketRepository(store),
		clock:   clock,
	}
}

// Metrics computes sales for today, the last 7 days and the last 30 days,
// the per-status counts and the most recent orders.
func (s *DashboardService) Metrics(ctx context.Context) (*domain.DashboardMetrics, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.now()
	today := startOfDay(now)

	m := &domain.DashboardMetrics{
		OrderStatusCounts: make(map[domain.OrderStatus]int, len(domain.OrderStatuses)),
	}
	for _, status := range domain.OrderStatuses {
		m.OrderStatusCounts[status] = 0
	}

	for _, o := range orders {
		m.OrderStatusCounts[o.Status]++
		if !o.Counts() || o.CreatedAt.After(now) {
			continue
		}

		age := now.Sub(o.CreatedAt)
		if !o.CreatedAt.Before(today) {
			m.Sales.Today.Add(o)
		}
		if age <= weekWindow {
			m.Sales.Week.Add(o)
		}
		if age <= monthWindow {
			m.Sales.Month.Add(o)
		}
	}

	slices.SortStableFunc(orders, func(a, b domain.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	m.RecentOrders = slices.Clip(orders[:min(recentOrderCount, len(orders))])

	return m, nil
}

// Reports buckets sales by calendar day (UTC) between From and To
// inclusive. Missing bounds default to the last seven days.
func (s *DashboardService) Reports(ctx context.Context, params domain.ReportParams) ([]domain.ReportEntry, error) {
	to := params.To
	if to.IsZero() {
		to = s.clock.now()
	}
	to = startOfDay(to)

	from := params.From
	if from.IsZero() {
		from = to.AddDate(0, 0, -(defaultReportDays - 1))
	}
	from = startOfDay(from)

	if to.Before(from) {
		return nil, apperrors.NewBadRequestError(apperrors.ErrBadRequest, "Report end date is before its start date")
	}
	days := int(to.Sub(from)/(24*time.Hour)) + 1
	if days > maxReportDays {
		return nil, apperrors.NewBadRequestError(apperrors.ErrBadRequest,
			fmt.Sprintf("Report range must not exceed %d days", maxReportDays))
	}

	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ReportEntry, days)
	for i := range entries {
		entries[i].Date = from.AddDate(0, 0, i).Format(time.DateOnly)
	}

	for _, o := range orders {
		if !o.Counts() {
			continue
		}
		day := startOfDay(o.CreatedAt)
		if day.Before(from) || day.After(to) {
			continue
		}
		e := &entries[int(day.Sub(from)/(24*time.Hour))]
		e.TotalSales += o.TotalAmount
		e.OrderCount++
	}

	return entries, nil
}

// Activity merges order and ticket events, newest first.
func (s *DashboardService) Activity(ctx context.Context, limit int) (*domain.ActivityFeed, error) {
	if limit <= 0 {
		limit = domain.DefaultActivityLimit
	}
	limit = min(limit, maxActivityLimit)

	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}
	tickets, err := s.tickets.All(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]domain.Activity, 0, len(orders)+len(tickets))
	for _, o := range orders {
		events = append(events, orderActivity(o))
	}
	for _, t := range tickets {
		events = append(events, ticketActivity(t))
	}

	slices.SortStableFunc(events, func(a, b domain.Activity) int {
		return cmp.Or(b.Timestamp.Compare(a.Timestamp), cmp.Compare(a.ID, b.ID))
	})

	total := len(events)
	return &domain.ActivityFeed{
		Activities: slices.Clip(events[:min(limit, total)]),
		Total:      total,
	}, nil
}

func orderActivity(o domain.Order) domain.Activity {
	a := domain.Activity{
		ID:          o.ID,
		Type:        "order",
		Action:      fmt.Sprintf("Order %s placed", o.OrderNumber),
		Description: fmt.Sprintf("%d items - ₹%.0f", o.ItemCount(), o.TotalAmount),
		Timestamp:   o.CreatedAt,
		Status:      string(o.Status),
		Customer:    o.Customer.Name,
	}
	if o.UpdatedAt != nil {
		a.Action = fmt.Sprintf("Order %s status updated", o.OrderNumber)
		a.Description = "Status changed to " + string(o.Status)
		a.Timestamp = *o.UpdatedAt
	}
	return a
}

func ticketActivity(t domain.SupportTicket) domain.Activity {
	a := domain.Activity{
		ID:          t.ID,
		Type:        "support",
		Action:      "Support ticket opened",
		Description: t.Subject,
		Timestamp:   t.CreatedAt,
		Status:      string(t.Status),
		Customer:    t.CustomerName,
	}
	if t.UpdatedAt != nil {
		a.Action = "Support ticket updated"
		a.Timestamp = *t.UpdatedAt
	}
	return a
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
