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

// Menu actions
const (
	GetMenuItems   store.ActionKind = "GET_MENU_ITEMS"
	AddMenuItem    store.ActionKind = "ADD_MENU_ITEM"
	UpdateMenuItem store.ActionKind = "UPDATE_MENU_ITEM"
	DeleteMenuItem store.ActionKind = "DELETE_MENU_ITEM"
)

const menuPath = "/restaurant/menu"

// MenuState is the cached menu.
type MenuState struct {
	MenuItems []domain.MenuItem
}

// InitialMenuState is the empty menu.
var InitialMenuState = MenuState{MenuItems: []domain.MenuItem{}}

// NewMenuStore builds the menu reducer.
func NewMenuStore() *store.Store[MenuState] {
	return store.New(InitialMenuState, map[store.ActionKind]store.Handler[MenuState]{
		GetMenuItems: store.On(func(s MenuState, items []domain.MenuItem) MenuState {
			s.MenuItems = items
			return s
		}),
		AddMenuItem: store.On(func(s MenuState, item domain.MenuItem) MenuState {
			next := make([]domain.MenuItem, 0, len(s.MenuItems)+1)
			s.MenuItems = append(append(next, s.MenuItems...), item)
			return s
		}),
		UpdateMenuItem: store.On(func(s MenuState, item domain.MenuItem) MenuState {
			next := make([]domain.MenuItem, len(s.MenuItems))
			for i, existing := range s.MenuItems {
				if existing.ID == item.ID {
					existing = item
				}
				next[i] = existing
			}
			s.MenuItems = next
			return s
		}),
		DeleteMenuItem: store.On(func(s MenuState, id string) MenuState {
			next := make([]domain.MenuItem, 0, len(s.MenuItems))
			for _, existing := range s.MenuItems {
				if existing.ID != id {
					next = append(next, existing)
				}
			}
			s.MenuItems = next
			return s
		}),
		store.ResetState: store.Reset(InitialMenuState),
	})
}

// MenuModule manages menu items.
type MenuModule struct {
	*module[MenuState]
}

// NewMenuModule creates a new menu module
func NewMenuModule(api ports.APIClient, logger *slog.Logger) *MenuModule {
	return &MenuModule{newModule("menu", api, NewMenuStore(), logger)}
}

// GetMenuItems fetches the full menu.
func (m *MenuModule) GetMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	return execute[[]domain.MenuItem](ctx, m.module, ports.Request{
		Method: http.MethodGet,
		Path:   menuPath,
	}, GetMenuItems)
}

// AddMenuItem creates an item and appends it to the cached menu.
func (m *MenuModule) AddMenuItem(ctx context.Context, in domain.MenuItemInput) (domain.MenuItem, error) {
	return execute[domain.MenuItem](ctx, m.module, ports.Request{
		Method: http.MethodPost,
		Path:   menuPath,
		Body:   in,
	}, AddMenuItem)
}

// UpdateMenuItem replaces the item with the server's copy.
func (m *MenuModule) UpdateMenuItem(ctx context.Context, id string, in domain.MenuItemInput) (domain.MenuItem, error) {
	return execute[domain.MenuItem](ctx, m.module, ports.Request{
		Method: http.MethodPut,
		Path:   menuPath + "/" + url.PathEscape(id),
		Body:   in,
	}, UpdateMenuItem)
}

// DeleteMenuItem removes the item by id.
func (m *MenuModule) DeleteMenuItem(ctx context.Context, id string) error {
	if _, err := request[domain.DeletedRef](ctx, m.module, ports.Request{
		Method: http.MethodDelete,
		Path:   menuPath + "/" + url.PathEscape(id),
	}); err != nil {
		return err
	}
	m.store.Dispatch(store.Action{Kind: DeleteMenuItem, Payload: id})
	return nil
}
