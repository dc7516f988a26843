package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lorrc/restaurant-console/internal/adapters/primary/validation"
	"github.com/lorrc/restaurant-console/internal/core/domain"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

// NotificationHandler handles outbound restaurant notifications
type NotificationHandler struct {
	notificationService ports.NotificationService
	errorHandler        *ErrorHandler
	logger              *slog.Logger
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService ports.NotificationService, errorHandler *ErrorHandler, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		errorHandler:        errorHandler,
		logger:              logger.With("handler", "notification"),
	}
}

// RegisterRoutes sets up the routing for the notification endpoints.
func (h *NotificationHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleListNotifications)
	r.Post("/", h.HandleSendNotification)
}

// HandleListNotifications handles GET /restaurant/notifications
func (h *NotificationHandler) HandleListNotifications(w http.ResponseWriter, r *http.Request) {
	list, err := h.notificationService.List(r.Context())
	if HandleError(w, r, err, h.errorHandler) {
		return
	}
	if list == nil {
		list = []domain.Notification{}
	}
	WriteSuccess(w, list)
}

// HandleSendNotification handles POST /restaurant/notifications
func (h *NotificationHandler) HandleSendNotification(w http.ResponseWriter, r *http.Request) {
	req, err := validation.DecodeAndValidate[validation.NotificationForm](r)
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	n, err := h.notificationService.Send(r.Context(), req.Input())
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	h.logger.InfoContext(r.Context(), "notification sent",
		"notification_id", n.ID,
		"audience", n.Audience,
	)
	WriteCreated(w, n, "Notification sent")
}
