package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lorrc/restaurant-console/internal/adapters/primary/validation"
	"github.com/lorrc/restaurant-console/internal/core/domain"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

// SupportHandler handles HTTP requests for customer support tickets
type SupportHandler struct {
	supportService ports.SupportService
	errorHandler   *ErrorHandler
	logger         *slog.Logger
}

// NewSupportHandler creates a new support handler
func NewSupportHandler(supportService ports.SupportService, errorHandler *ErrorHandler, logger *slog.Logger) *SupportHandler {
	return &SupportHandler{
		supportService: supportService,
		errorHandler:   errorHandler,
		logger:         logger.With("handler", "support"),
	}
}

// RegisterRoutes sets up the routing for all support endpoints.
func (h *SupportHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleListTickets)
	r.Patch("/{ticketID}/status", h.HandleUpdateTicketStatus)
}

// HandleListTickets handles GET /restaurant/support?page=&limit=&status=
func (h *SupportHandler) HandleListTickets(w http.ResponseWriter, r *http.Request) {
	list, err := h.supportService.List(r.Context(), validation.ParseListParams(r))
	if HandleError(w, r, err, h.errorHandler) {
		return
	}
	WriteSuccess(w, list)
}

// HandleUpdateTicketStatus handles PATCH /restaurant/support/{ticketID}/status
func (h *SupportHandler) HandleUpdateTicketStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "ticketID")

	req, err := validation.DecodeAndValidate[validation.TicketStatusForm](r)
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	ticket, err := h.supportService.UpdateStatus(r.Context(), id, domain.TicketStatus(req.Status))
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	h.logger.InfoContext(r.Context(), "ticket status updated",
		"ticket_id", id,
		"status", req.Status,
	)
	WriteSuccess(w, ticket)
}
