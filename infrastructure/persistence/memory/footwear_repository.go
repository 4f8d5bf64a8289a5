// Package memory provides an in-process footwear store for local development
// and tests.
package memory

import (
	"context"
	"sync"

	"github.com/JuanSebastianGarcia23/calzado/application/ports"
	"github.com/JuanSebastianGarcia23/calzado/domain/footwear"
)

// FootwearRepository keeps items in a map guarded by a RWMutex. Scan returns
// items in insertion order.
type FootwearRepository struct {
	mu    sync.RWMutex
	items map[string]*footwear.Item
	order []string
}

// NewFootwearRepository creates an empty in-memory repository
func NewFootwearRepository() *FootwearRepository {
	return &FootwearRepository{
		items: make(map[string]*footwear.Item),
	}
}

var _ ports.FootwearRepository = (*FootwearRepository)(nil)

// Put stores a copy of item, replacing any existing one
func (r *FootwearRepository) Put(ctx context.Context, item *footwear.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.order = append(r.order, item.ID)
	}
	r.items[item.ID] = clone(item)
	return nil
}

// Get returns a copy of the item or nil when missing
func (r *FootwearRepository) Get(ctx context.Context, id string) (*footwear.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, nil
	}
	return clone(item), nil
}

// Scan returns copies of every item
func (r *FootwearRepository) Scan(ctx context.Context) ([]*footwear.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*footwear.Item, 0, len(r.items))
	for _, id := range r.order {
		items = append(items, clone(r.items[id]))
	}
	return items, nil
}

// Update merges attrs into the item, creating it when missing
func (r *FootwearRepository) Update(ctx context.Context, id string, attrs footwear.Attributes) error {
	if attrs.IsEmpty() {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[id]
	if !exists {
		item = &footwear.Item{ID: id}
		r.items[id] = item
		r.order = append(r.order, id)
	}
	attrs.ApplyTo(item)
	return nil
}

// Delete removes the item if present
func (r *FootwearRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return nil
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func clone(item *footwear.Item) *footwear.Item {
	c := *item
	if item.Name != nil {
		name := *item.Name
		c.Name = &name
	}
	if item.Brand != nil {
		brand := *item.Brand
		c.Brand = &brand
	}
	return &c
}
