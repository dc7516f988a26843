package domain

import "time"

// SalesWindow aggregates sales over one period.
type SalesWindow struct {
	TotalSales float64 `json:"totalSales"`
	OrderCount int     `json:"orderCount"`
}

// Sales groups the dashboard sales windows.
type Sales struct {
	Today SalesWindow `json:"today"`
	Week  SalesWindow `json:"week"`
	Month SalesWindow `json:"month"`
}

// DashboardMetrics is the data payload of GET /restaurant/dashboard.
type DashboardMetrics struct {
	Sales             Sales               `json:"sales"`
	OrderStatusCounts map[OrderStatus]int `json:"orderStatusCounts"`
	RecentOrders      []Order             `json:"recentOrders"`
}

// ReportEntry is one bucket of a sales report.
type ReportEntry struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"totalSales"`
	OrderCount int     `json:"orderCount"`
}

// ReportParams selects the report range. Zero times are omitted.
type ReportParams struct {
	From time.Time
	To   time.Time
}

// Activity is one entry of the recent-activity feed.
type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"`
	Customer    string    `json:"customer"`
}

// ActivityFeed is the data payload of GET /restaurant/activity.
type ActivityFeed struct {
	Activities []Activity `json:"activities"`
	Total      int        `json:"total"`
}

// DefaultActivityLimit is used when the caller does not pass a limit.
const DefaultActivityLimit = 20

// Add counts o into the window.
func (w *SalesWindow) Add(o Order) {
	w.TotalSales += o.TotalAmount
	w.OrderCount++
}
