package domain

import "time"

// Restaurant is the singleton restaurant profile.
type Restaurant struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Cuisine      []string `json:"cuisine,omitempty"`
	Address      string   `json:"address,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Email        string   `json:"email,omitempty"`
	OpeningHours string   `json:"openingHours,omitempty"`
	IsOpen       bool     `json:"isOpen"`
}

// Settings is the singleton restaurant settings record.
type Settings struct {
	AcceptingOrders          bool     `json:"acceptingOrders"`
	AutoConfirmOrders        bool     `json:"autoConfirmOrders"`
	PreparationBufferMinutes int      `json:"preparationBufferMinutes"`
	NotificationChannels     []string `json:"notificationChannels"`
	Currency                 string   `json:"currency"`
	TaxRate                  float64  `json:"taxRate"`
}

// Notification is a message sent by the restaurant to its customers or staff.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Audience  string    `json:"audience,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationInput is the body of POST /restaurant/notifications.
type NotificationInput struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Audience string `json:"audience,omitempty"`
}
