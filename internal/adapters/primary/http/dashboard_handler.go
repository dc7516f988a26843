package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lorrc/restaurant-console/internal/adapters/primary/validation"
	"github.com/lorrc/restaurant-console/internal/core/domain"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

// DashboardHandler serves the dashboard aggregates
type DashboardHandler struct {
	dashboardService ports.DashboardService
	errorHandler     *ErrorHandler
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService ports.DashboardService, errorHandler *ErrorHandler) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		errorHandler:     errorHandler,
	}
}

// RegisterRoutes registers the dashboard routes on the /restaurant router.
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.HandleMetrics)
	r.Get("/reports", h.HandleReports)
	r.Get("/activity", h.HandleActivity)
}

// HandleMetrics handles GET /restaurant/dashboard
func (h *DashboardHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.dashboardService.Metrics(r.Context())
	if HandleError(w, r, err, h.errorHandler) {
		return
	}
	WriteSuccess(w, metrics)
}

// HandleReports handles GET /restaurant/reports?from=&to=
func (h *DashboardHandler) HandleReports(w http.ResponseWriter, r *http.Request) {
	params, err := validation.ParseReportParams(r)
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	entries, err := h.dashboardService.Reports(r.Context(), params)
	if HandleError(w, r, err, h.errorHandler) {
		return
	}
	if entries == nil {
		entries = []domain.ReportEntry{}
	}
	WriteSuccess(w, entries)
}

// HandleActivity handles GET /restaurant/activity?limit=
func (h *DashboardHandler) HandleActivity(w http.ResponseWriter, r *http.Request) {
	limit := validation.ParseIntQueryParam(r, "limit", domain.DefaultActivityLimit)

	feed, err := h.dashboardService.Activity(r.Context(), limit)
	if HandleError(w, r, err, h.errorHandler) {
		return
	}
	WriteSuccess(w, feed)
}
