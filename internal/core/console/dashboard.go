package console

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	"github.com/lorrc/restaurant-console/internal/core/ports"
	"github.com/lorrc/restaurant-console/internal/core/store"
)

// Dashboard actions
const (
	GetDashboardMetrics store.ActionKind = "GET_DASHBOARD_METRICS"
	GetReports          store.ActionKind = "GET_REPORTS"
	GetRecentActivity   store.ActionKind = "GET_RECENT_ACTIVITY"
)

// DashboardState caches the overview page.
type DashboardState struct {
	DashboardMetrics *domain.DashboardMetrics
	Reports          []domain.ReportEntry
	RecentActivity   []domain.Activity
}

var InitialDashboardState = DashboardState{
	Reports:        []domain.ReportEntry{},
	RecentActivity: []domain.Activity{},
}

// NewDashboardStore creates a new dashboard store
func NewDashboardStore() *store.Store[DashboardState] {
	return store.New(InitialDashboardState, map[store.ActionKind]store.Handler[DashboardState]{
		GetDashboardMetrics: store.On(func(s DashboardState, m domain.DashboardMetrics) DashboardState {
			s.DashboardMetrics = &m
			return s
		}),
		GetReports: store.On(func(s DashboardState, r []domain.ReportEntry) DashboardState {
			s.Reports = r
			return s
		}),
		GetRecentActivity: store.On(func(s DashboardState, feed domain.ActivityFeed) DashboardState {
			s.RecentActivity = feed.Activities
			return s
		}),
		store.ResetState: store.Reset(InitialDashboardState),
	})
}

// DashboardModule fetches metrics, reports and the activity feed.
type DashboardModule struct {
	*module[DashboardState]
}

// NewDashboardModule creates a new dashboard module
func NewDashboardModule(api ports.APIClient, logger *slog.Logger) *DashboardModule {
	return &DashboardModule{newModule("dashboard", api, NewDashboardStore(), logger)}
}

// GetDashboardMetrics fetches sales windows, status counts and recent orders.
func (m *DashboardModule) GetDashboardMetrics(ctx context.Context) (domain.DashboardMetrics, error) {
	return execute[domain.DashboardMetrics](ctx, m.module, ports.Request{
		Method: http.MethodGet,
		Path:   "/restaurant/dashboard",
	}, GetDashboardMetrics)
}

// GetReports fetches daily sales buckets. Zero bounds are left to the server.
func (m *DashboardModule) GetReports(ctx context.Context, params domain.ReportParams) ([]domain.ReportEntry, error) {
	q := url.Values{}
	if !params.From.IsZero() {
		q.Set("from", params.From.Format(time.DateOnly))
	}
	if !params.To.IsZero() {
		q.Set("to", params.To.Format(time.DateOnly))
	}
	return execute[[]domain.ReportEntry](ctx, m.module, ports.Request{
		Method: http.MethodGet,
		Path:   "/restaurant/reports",
		Query:  q,
	}, GetReports)
}

// GetRecentActivity fetches the newest activity entries. A limit of zero or
// less means DefaultActivityLimit.
func (m *DashboardModule) GetRecentActivity(ctx context.Context, limit int) (domain.ActivityFeed, error) {
	if limit <= 0 {
		limit = domain.DefaultActivityLimit
	}
	return execute[domain.ActivityFeed](ctx, m.module, ports.Request{
		Method: http.MethodGet,
		Path:   "/restaurant/activity",
		Query:  url.Values{"limit": {strconv.Itoa(limit)}},
	}, GetRecentActivity)
}

// Refresh loads metrics, reports and activity concurrently. The first
// failure cancels the remaining calls and is returned.
func (m *DashboardModule) Refresh(ctx context.Context, params domain.ReportParams) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := m.GetDashboardMetrics(gctx)
		return err
	})
	g.Go(func() error {
		_, err := m.GetReports(gctx, params)
		return err
	})
	g.Go(func() error {
		_, err := m.GetRecentActivity(gctx, domain.DefaultActivityLimit)
		return err
	})
	return g.Wait()
}
