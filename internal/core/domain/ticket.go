package domain

import "time"

// TicketStatus represents the possible states of a support ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

// TicketStatuses lists every ticket status in display order.
var TicketStatuses = []TicketStatus{TicketOpen, TicketInProgress, TicketResolved, TicketClosed}

// IsValid reports whether s is a known ticket status.
func (s TicketStatus) IsValid() bool {
	for _, known := range TicketStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// TicketPriority represents the urgency of a ticket.
type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
)

// IsValid reports whether p is a known priority.
func (p TicketPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// SupportTicket is a customer help request raised against the restaurant.
type SupportTicket struct {
	ID            string         `json:"id"`
	CustomerName  string         `json:"customerName"`
	CustomerEmail string         `json:"customerEmail,omitempty"`
	CustomerPhone string         `json:"customerPhone,omitempty"`
	Subject       string         `json:"subject"`
	Message       string         `json:"message"`
	Status        TicketStatus   `json:"status"`
	Priority      TicketPriority `json:"priority"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     *time.Time     `json:"updatedAt,omitempty"`
	AssignedTo    string         `json:"assignedTo,omitempty"`
}

// TicketList is the data payload of GET /restaurant/support.
type TicketList struct {
	Tickets      []SupportTicket `json:"tickets"`
	TotalPages   int             `json:"totalPages"`
	CurrentPage  int             `json:"currentPage"`
	TotalTickets int             `json:"totalTickets"`
}
