package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lorrc/restaurant-console/internal/adapters/primary/validation"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

// RestaurantHandler serves the restaurant profile and settings
type RestaurantHandler struct {
	restaurantService ports.RestaurantService
	errorHandler      *ErrorHandler
	logger            *slog.Logger
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(restaurantService ports.RestaurantService, errorHandler *ErrorHandler, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
		errorHandler:      errorHandler,
		logger:            logger.With("handler", "restaurant"),
	}
}

// RegisterRoutes registers the profile and settings routes on the
// /restaurant router. Profile updates are accepted as PUT or POST.
func (h *RestaurantHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleGetProfile)
	r.Put("/", h.HandleUpdateProfile)
	r.Post("/", h.HandleUpdateProfile)

	r.Get("/settings", h.HandleGetSettings)
	r.Put("/settings", h.HandleUpdateSettings)
}

// HandleGetProfile handles GET /restaurant
func (h *RestaurantHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.restaurantService.Profile(r.Context())
	if HandleError(w, r, err, h.errorHandler) {
		return
	}
	WriteSuccess(w, profile)
}

// HandleUpdateProfile handles PUT /restaurant
func (h *RestaurantHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	req, err := validation.DecodeAndValidate[validation.ProfileForm](r)
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	profile, err := h.restaurantService.UpdateProfile(r.Context(), req.Restaurant())
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	h.logger.InfoContext(r.Context(), "restaurant profile updated", "is_open", profile.IsOpen)
	WriteSuccess(w, profile)
}

// HandleGetSettings handles GET /restaurant/settings
func (h *RestaurantHandler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.restaurantService.Settings(r.Context())
	if HandleError(w, r, err, h.errorHandler) {
		return
	}
	WriteSuccess(w, settings)
}

// HandleUpdateSettings handles PUT /restaurant/settings
func (h *RestaurantHandler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	req, err := validation.DecodeAndValidate[validation.SettingsForm](r)
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	settings, err := h.restaurantService.UpdateSettings(r.Context(), req.Settings())
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	h.logger.InfoContext(r.Context(), "restaurant settings updated",
		"accepting_orders", settings.AcceptingOrders,
	)
	WriteSuccess(w, settings)
}
