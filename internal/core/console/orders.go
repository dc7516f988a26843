package console

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	"github.com/lorrc/restaurant-console/internal/core/ports"
	"github.com/lorrc/restaurant-console/internal/core/store"
)

// Order actions
const (
	GetOrders         store.ActionKind = "GET_ORDERS"
	GetOrderDetails   store.ActionKind = "GET_ORDER_DETAILS"
	UpdateOrderStatus store.ActionKind = "UPDATE_ORDER_STATUS"
)

const ordersPath = "/restaurant/orders"

// OrdersState is the cached order list and the order being inspected.
type OrdersState struct {
	Orders       []domain.Order
	OrderDetails *domain.Order
	TotalPages   int
	CurrentPage  int
	TotalOrders  int
}

// InitialOrdersState has no orders and no selected order.
var InitialOrdersState = OrdersState{Orders: []domain.Order{}}

// NewOrdersStore builds the orders reducer.
func NewOrdersStore() *store.Store[OrdersState] {
	return store.New(InitialOrdersState, map[store.ActionKind]store.Handler[OrdersState]{
		GetOrders: store.On(func(s OrdersState, list domain.OrderList) OrdersState {
			s.Orders = list.Orders
			s.TotalPages = list.TotalPages
			s.CurrentPage = list.CurrentPage
			s.TotalOrders = list.TotalOrders
			return s
		}),
		GetOrderDetails: store.On(func(s OrdersState, order domain.Order) OrdersState {
			s.OrderDetails = &order
			return s
		}),
		UpdateOrderStatus: store.On(func(s OrdersState, order domain.Order) OrdersState {
			next := make([]domain.Order, len(s.Orders))
			for i, existing := range s.Orders {
				if existing.ID == order.ID {
					existing = order
				}
				next[i] = existing
			}
			s.Orders = next
			return s
		}),
		store.ResetState: store.Reset(InitialOrdersState),
	})
}

// OrdersModule manages customer orders.
type OrdersModule struct {
	*module[OrdersState]
}

// NewOrdersModule creates a new orders module
func NewOrdersModule(api ports.APIClient, logger *slog.Logger) *OrdersModule {
	return &OrdersModule{newModule("orders", api, NewOrdersStore(), logger)}
}

// GetOrders fetches a page of orders. A status filter is applied to the
// response too, so the cached list only holds matching orders.
func (m *OrdersModule) GetOrders(ctx context.Context, params domain.ListParams) (domain.OrderList, error) {
	return executeWith(ctx, m.module, ports.Request{
		Method: http.MethodGet,
		Path:   ordersPath,
		Query:  listQuery(params),
	}, GetOrders, func(list domain.OrderList) domain.OrderList {
		if params.FiltersStatus() {
			list.Orders = filterByStatus(list.Orders, func(o domain.Order) string { return string(o.Status) }, params.Status)
		}
		if list.Orders == nil {
			list.Orders = []domain.Order{}
		}
		return list
	})
}

// GetOrderDetails fetches one order and selects it.
func (m *OrdersModule) GetOrderDetails(ctx context.Context, id string) (domain.Order, error) {
	return execute[domain.Order](ctx, m.module, ports.Request{
		Method: http.MethodGet,
		Path:   ordersPath + "/" + url.PathEscape(id),
	}, GetOrderDetails)
}

// UpdateOrderStatus changes an order's status and replaces the cached copy
// with the server's response.
func (m *OrdersModule) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	return execute[domain.Order](ctx, m.module, ports.Request{
		Method: http.MethodPatch,
		Path:   ordersPath + "/" + url.PathEscape(id) + "/status",
		Body:   domain.StatusUpdate{Status: string(status)},
	}, UpdateOrderStatus)
}

func listQuery(p domain.ListParams) url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	return q
}

func filterByStatus[T any](items []T, status func(T) string, want string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if status(it) == want {
			out = append(out, it)
		}
	}
	return out
}
