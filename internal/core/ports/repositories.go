package ports

import (
	"context"
	"encoding/json"
)

// Collections held by the dev backend document store.
const (
	CollectionAccounts      = "accounts"
	CollectionMenu          = "menu_items"
	CollectionOrders        = "orders"
	CollectionTickets       = "support_tickets"
	CollectionNotifications = "notifications"
	CollectionRestaurant    = "restaurant"
)

// DocumentStore persists JSON documents grouped by collection. List returns
// documents in insertion order; Put on an existing id keeps its position.
type DocumentStore interface {
	List(ctx context.Context, collection string) ([]json.RawMessage, error)
	// Get returns apperrors.ErrNotFound when the document does not exist.
	Get(ctx context.Context, collection, id string) (json.RawMessage, error)
	Put(ctx context.Context, collection, id string, body json.RawMessage) error
	// Delete returns apperrors.ErrNotFound when the document does not exist.
	Delete(ctx context.Context, collection, id string) error
	Ping(ctx context.Context) error
}
