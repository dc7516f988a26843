package services

import (
	"context"
	"time"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

// Demo account created by Seed
const (
	SeedAdminEmail    = "admin@meels.com"
	SeedAdminPassword = "admin123"
	SeedRestaurantID  = "rest_123456"
)

// Seed loads the demo restaurant into an empty store. Timestamps are
// relative to now so the dashboard has something to show. A store that
// already holds menu items is left alone.
func Seed(ctx context.Context, store ports.DocumentStore, now time.Time) (bool, error) {
	menu := NewRepository(store, ports.CollectionMenu, func(m domain.MenuItem) string { return m.ID })
	empty, err := menu.Empty(ctx)
	if err != nil || !empty {
		return false, err
	}

	now = now.UTC()

	admin, err := domain.NewAccount(domain.Registration{
		Name:     "Admin User",
		Email:    SeedAdminEmail,
		Phone:    "9876543200",
		Password: SeedAdminPassword,
		Role:     domain.RoleRestaurantOwner,
	})
	if err != nil {
		return false, err
	}
	admin.User.ID = "user_001"
	admin.User.RestaurantID = SeedRestaurantID
	admin.CreatedAt = now.AddDate(0, -2, 0)

	if err := NewRepository(store, ports.CollectionAccounts, accountKey).Put(ctx, *admin); err != nil {
		return false, err
	}

	for _, item := range seedMenu() {
		if err := menu.Put(ctx, item); err != nil {
			return false, err
		}
	}

	orders := orderRepository(store)
	for _, o := range seedOrders(now) {
		if err := orders.Put(ctx, o); err != nil {
			return false, err
		}
	}

	tickets := ticketRepository(store)
	for _, t := range seedTickets(now) {
		if err := tickets.Put(ctx, t); err != nil {
			return false, err
		}
	}

	restaurants := NewRestaurantService(store)
	if _, err := restaurants.UpdateProfile(ctx, domain.Restaurant{
		ID:           SeedRestaurantID,
		Name:         "Meels Kitchen",
		Description:  "North Indian home-style cooking",
		Cuisine:      []string{"North Indian", "Mughlai"},
		Address:      "12 Hill Road, Bandra West, Mumbai, Maharashtra",
		Phone:        "+91 9876543200",
		Email:        SeedAdminEmail,
		OpeningHours: "11:00-23:00",
		IsOpen:       true,
	}); err != nil {
		return false, err
	}
	if _, err := restaurants.UpdateSettings(ctx, DefaultSettings()); err != nil {
		return false, err
	}

	return true, nil
}

func seedMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{
			ID:              "item_001",
			Name:            "Chicken Biryani",
			Description:     "Aromatic rice dish with tender chicken and spices",
			Price:           350,
			Category:        "Main Course",
			Image:           "https://example.com/chicken-biryani.jpg",
			PreparationTime: 25,
			IsSpicy:         true,
			Allergens:       []string{"dairy"},
			NutritionalInfo: domain.NutritionalInfo{Calories: 450, Protein: 25, Carbs: 15, Fat: 30},
		},
		{
			ID:              "item_002",
			Name:            "Butter Chicken",
			Description:     "Creamy tomato-based curry with tender chicken",
			Price:           380,
			Category:        "Main Course",
			Image:           "https://example.com/butter-chicken.jpg",
			PreparationTime: 20,
			Allergens:       []string{"dairy"},
			NutritionalInfo: domain.NutritionalInfo{Calories: 380, Protein: 22, Carbs: 12, Fat: 28},
		},
		{
			ID:              "item_003",
			Name:            "Dal Makhani",
			Description:     "Creamy black lentils slow-cooked with spices",
			Price:           180,
			Category:        "Main Course",
			Image:           "https://example.com/dal-makhani.jpg",
			PreparationTime: 15,
			IsVegetarian:    true,
			Allergens:       []string{"dairy"},
			NutritionalInfo: domain.NutritionalInfo{Calories: 280, Protein: 12, Carbs: 45, Fat: 8},
		},
	}
}

func seedOrders(now time.Time) []domain.Order {
	at := func(d time.Duration) *time.Time {
		t := now.Add(-d)
		return &t
	}

	return []domain.Order{
		{
			ID:          "order_001",
			OrderNumber: "#1234",
			Customer:    domain.Customer{Name: "John Doe", Phone: "+91 9876543210"},
			Items: []domain.OrderItem{
				{Name: "Chicken Biryani", Quantity: 2, Price: 350},
				{Name: "Naan Bread", Quantity: 3, Price: 30},
			},
			TotalAmount:           790,
			Status:                domain.OrderPlaced,
			CreatedAt:             *at(30 * time.Minute),
			DeliveryAddress:       "123 Main St, Mumbai, Maharashtra",
			PaymentMethod:         "online",
			EstimatedDeliveryTime: at(-30 * time.Minute),
		},
		{
			ID:          "order_002",
			OrderNumber: "#1233",
			Customer:    domain.Customer{Name: "Jane Smith", Phone: "+91 9876543211"},
			Items: []domain.OrderItem{
				{Name: "Butter Chicken", Quantity: 1, Price: 380},
				{Name: "Rice", Quantity: 1, Price: 80},
			},
			TotalAmount:           460,
			Status:                domain.OrderPreparing,
			CreatedAt:             *at(105 * time.Minute),
			DeliveryAddress:       "456 Oak Ave, Mumbai, Maharashtra",
			PaymentMethod:         "cod",
			EstimatedDeliveryTime: at(30 * time.Minute),
			UpdatedAt:             at(75 * time.Minute),
		},
		{
			ID:          "order_003",
			OrderNumber: "#1232",
			Customer:    domain.Customer{Name: "Mike Johnson", Phone: "+91 9876543212"},
			Items: []domain.OrderItem{
				{Name: "Tandoori Chicken", Quantity: 1, Price: 420},
				{Name: "Raita", Quantity: 1, Price: 60},
			},
			TotalAmount:           480,
			Status:                domain.OrderDelivered,
			CreatedAt:             *at(3 * time.Hour),
			DeliveryAddress:       "789 Pine Rd, Mumbai, Maharashtra",
			PaymentMethod:         "online",
			EstimatedDeliveryTime: at(2 * time.Hour),
		},
	}
}

func seedTickets(now time.Time) []domain.SupportTicket {
	return []domain.SupportTicket{
		{
			ID:            "T001",
			CustomerName:  "Alice Johnson",
			CustomerEmail: "alice@example.com",
			CustomerPhone: "+91 9876543213",
			Subject:       "Order not delivered on time",
			Message:       "I placed an order 2 hours ago and it still hasn't been delivered. The estimated delivery time was 45 minutes.",
			Status:        domain.TicketOpen,
			Priority:      domain.PriorityHigh,
			CreatedAt:     now.Add(-150 * time.Minute),
			AssignedTo:    "support_team",
		},
		{
			ID:            "T002",
			CustomerName:  "Bob Smith",
			CustomerEmail: "bob@example.com",
			CustomerPhone: "+91 9876543214",
			Subject:       "Wrong item received",
			Message:       "I ordered Chicken Biryani but received Butter Chicken instead. Please help me resolve this issue.",
			Status:        domain.TicketInProgress,
			Priority:      domain.PriorityMedium,
			CreatedAt:     now.Add(-255 * time.Minute),
			AssignedTo:    "admin",
		},
		{
			ID:            "T003",
			CustomerName:  "Carol Davis",
			CustomerEmail: "carol@example.com",
			CustomerPhone: "+91 9876543215",
			Subject:       "Payment refund request",
			Message:       "I would like to request a refund for my last order as the food was cold when it arrived.",
			Status:        domain.TicketResolved,
			Priority:      domain.PriorityLow,
			CreatedAt:     now.Add(-27 * time.Hour),
			AssignedTo:    "support_team",
		},
	}
}
