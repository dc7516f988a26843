package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lorrc/restaurant-console/internal/adapters/primary/validation"
	"github.com/lorrc/restaurant-console/internal/core/domain"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

// MenuHandler handles HTTP requests for menu items
type MenuHandler struct {
	menuService  ports.MenuService
	errorHandler *ErrorHandler
	logger       *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService ports.MenuService, errorHandler *ErrorHandler, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		menuService:  menuService,
		errorHandler: errorHandler,
		logger:       logger.With("handler", "menu"),
	}
}

// RegisterRoutes sets up the routing for all menu endpoints.
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleListItems)
	r.Post("/", h.HandleCreateItem)
	r.Put("/{itemID}", h.HandleUpdateItem)
	r.Delete("/{itemID}", h.HandleDeleteItem)
}

// HandleListItems handles GET /restaurant/menu
func (h *MenuHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.menuService.List(r.Context())
	if HandleError(w, r, err, h.errorHandler) {
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	WriteSuccess(w, items)
}

// HandleCreateItem handles POST /restaurant/menu
func (h *MenuHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	req, err := validation.DecodeAndValidate[validation.MenuItemForm](r)
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	item, err := h.menuService.Create(r.Context(), req.Input())
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	h.logger.InfoContext(r.Context(), "menu item created", "item_id", item.ID)
	WriteCreated(w, item, "Menu item created")
}

// HandleUpdateItem handles PUT /restaurant/menu/{itemID}
func (h *MenuHandler) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemID")

	req, err := validation.DecodeAndValidate[validation.MenuItemForm](r)
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	item, err := h.menuService.Update(r.Context(), id, req.Input())
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	WriteSuccess(w, item)
}

// HandleDeleteItem handles DELETE /restaurant/menu/{itemID}
func (h *MenuHandler) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemID")

	if err := h.menuService.Delete(r.Context(), id); HandleError(w, r, err, h.errorHandler) {
		return
	}

	h.logger.InfoContext(r.Context(), "menu item deleted", "item_id", id)
	WriteSuccess(w, domain.DeletedRef{ID: id})
}
