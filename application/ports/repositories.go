package ports

import (
	"context"

	"github.com/JuanSebastianGarcia23/calzado/domain/events"
	"github.com/JuanSebastianGarcia23/calzado/domain/footwear"
)

// FootwearRepository defines the document store operations for footwear items.
// Every call is a single stateless round trip keyed by the item id.
type FootwearRepository interface {
	// Put writes the item, storing only the fields that are set
	Put(ctx context.Context, item *footwear.Item) error

	// Get fetches an item. A missing item returns (nil, nil).
	Get(ctx context.Context, id string) (*footwear.Item, error)

	// Scan returns every item in store-defined order
	Scan(ctx context.Context) ([]*footwear.Item, error)

	// Update merges attrs into the item, leaving other attributes untouched
	Update(ctx context.Context, id string, attrs footwear.Attributes) error

	// Delete removes the item. Deleting a missing item is not an error.
	Delete(ctx context.Context, id string) error
}

// EventPublisher publishes domain events to interested consumers
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}
