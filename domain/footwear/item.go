// Package footwear holds the footwear item entity and the rules that shape
// incoming payloads into stored attributes.
package footwear

import (
	"sort"

	"github.com/google/uuid"
)

// Attribute names used both in stored items and in the JSON wire shape.
const (
	FieldID    = "id"
	FieldName  = "nombre"
	FieldBrand = "marca"
	FieldPrice = "precio"
	FieldSize  = "talla"
)

// Item is a footwear record. Optional fields are nil when they were never set.
// Price and Size hold a float64 when the supplied value was numeric and the
// original value otherwise.
type Item struct {
	ID    string
	Name  *string
	Brand *string
	Price any
	Size  any
}

// NewID returns a fresh random identifier
func NewID() string {
	return uuid.NewString()
}

// NewItem builds an item from normalized attributes. An empty id is replaced
// by a generated one.
func NewItem(id string, attrs Attributes) *Item {
	if id == "" {
		id = NewID()
	}
	item := &Item{ID: id}
	attrs.ApplyTo(item)
	return item
}

// Attributes are the normalized fields explicitly present in a payload.
type Attributes map[string]any

// IsEmpty reports whether no field was supplied
func (a Attributes) IsEmpty() bool {
	return len(a) == 0
}

// Names returns the supplied field names in a stable order
func (a Attributes) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyTo copies the supplied fields onto item, leaving the others untouched
func (a Attributes) ApplyTo(item *Item) {
	if v, ok := a[FieldName]; ok {
		s := v.(string)
		item.Name = &s
	}
	if v, ok := a[FieldBrand]; ok {
		s := v.(string)
		item.Brand = &s
	}
	if v, ok := a[FieldPrice]; ok {
		item.Price = v
	}
	if v, ok := a[FieldSize]; ok {
		item.Size = v
	}
}

// Canonical is the fixed five-field representation returned to callers.
// Unset fields are rendered as JSON null.
type Canonical struct {
	ID    *string `json:"id"`
	Name  *string `json:"nombre"`
	Brand *string `json:"marca"`
	Price any     `json:"precio"`
	Size  any     `json:"talla"`
}

// ToCanonical renders item in canonical form. A nil item renders every field
// as null.
func ToCanonical(item *Item) Canonical {
	if item == nil {
		return Canonical{}
	}

	c := Canonical{
		Name:  item.Name,
		Brand: item.Brand,
		Price: item.Price,
		Size:  item.Size,
	}
	if item.ID != "" {
		id := item.ID
		c.ID = &id
	}
	return c
}

// ToCanonicalList renders items in the order given
func ToCanonicalList(items []*Item) []Canonical {
	out := make([]Canonical, 0, len(items))
	for _, item := range items {
		out = append(out, ToCanonical(item))
	}
	return out
}
