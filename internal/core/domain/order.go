package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPlaced         OrderStatus = "placed"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
	OrderRejected       OrderStatus = "rejected"
)

// OrderStatuses lists every status in display order.
var OrderStatuses = []OrderStatus{
	OrderPlaced,
	OrderConfirmed,
	OrderPreparing,
	OrderOutForDelivery,
	OrderDelivered,
	OrderCancelled,
	OrderRejected,
}

// IsValid reports whether s is a known order status.
func (s OrderStatus) IsValid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Customer is the person who placed an order.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is a customer order as returned by the restaurant API.
type Order struct {
	ID                    string      `json:"id"`
	OrderNumber           string      `json:"orderNumber"`
	Customer              Customer    `json:"customer"`
	Items                 []OrderItem `json:"items"`
	TotalAmount           float64     `json:"totalAmount"`
	Status                OrderStatus `json:"status"`
	CreatedAt             time.Time   `json:"createdAt"`
	DeliveryAddress       string      `json:"deliveryAddress,omitempty"`
	PaymentMethod         string      `json:"paymentMethod,omitempty"`
	EstimatedDeliveryTime *time.Time  `json:"estimatedDeliveryTime,omitempty"`
	UpdatedAt             *time.Time  `json:"updatedAt,omitempty"`
}

// Counts reports whether the order contributes to sales figures.
func (o Order) Counts() bool {
	return o.Status != OrderCancelled && o.Status != OrderRejected
}

// ItemCount sums the quantities of all lines.
func (o Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

// OrderList is the data payload of GET /restaurant/orders.
type OrderList struct {
	Orders      []Order `json:"orders"`
	TotalPages  int     `json:"totalPages"`
	CurrentPage int     `json:"currentPage"`
	TotalOrders int     `json:"totalOrders"`
}

// StatusUpdate is the PATCH body for order and ticket status changes.
type StatusUpdate struct {
	Status string `json:"status"`
}

// ListParams are the query parameters shared by paginated list endpoints.
// A zero value field is omitted from the query.
type ListParams struct {
	Page   int
	Limit  int
	Status string
}

// FiltersStatus reports whether p asks for a specific status.
func (p ListParams) FiltersStatus() bool {
	return p.Status != "" && p.Status != "all"
}
