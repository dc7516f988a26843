package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lorrc/restaurant-console/internal/adapters/primary/validation"
	"github.com/lorrc/restaurant-console/internal/core/domain"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

// OrderHandler handles HTTP requests for orders
type OrderHandler struct {
	orderService ports.OrderService
	errorHandler *ErrorHandler
	logger       *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService ports.OrderService, errorHandler *ErrorHandler, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		errorHandler: errorHandler,
		logger:       logger.With("handler", "order"),
	}
}

// RegisterRoutes sets up the routing for all order endpoints.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleListOrders)

	r.Route("/{orderID}", func(r chi.Router) {
		r.Get("/", h.HandleGetOrder)
		r.Patch("/status", h.HandleUpdateOrderStatus)
	})
}

// HandleListOrders handles GET /restaurant/orders?page=&limit=&status=
func (h *OrderHandler) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	list, err := h.orderService.List(r.Context(), validation.ParseListParams(r))
	if HandleError(w, r, err, h.errorHandler) {
		return
	}
	WriteSuccess(w, list)
}

// HandleGetOrder handles GET /restaurant/orders/{orderID}
func (h *OrderHandler) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.Get(r.Context(), chi.URLParam(r, "orderID"))
	if HandleError(w, r, err, h.errorHandler) {
		return
	}
	WriteSuccess(w, order)
}

// HandleUpdateOrderStatus handles PATCH /restaurant/orders/{orderID}/status
func (h *OrderHandler) HandleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderID")

	req, err := validation.DecodeAndValidate[validation.OrderStatusForm](r)
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), id, domain.OrderStatus(req.Status))
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	h.logger.InfoContext(r.Context(), "order status updated",
		"order_id", id,
		"status", req.Status,
	)
	WriteSuccess(w, order)
}
