package events

import (
	"time"

	"github.com/JuanSebastianGarcia23/calzado/domain/footwear"
)

// SourceCalzado is the EventBridge source for events raised by this service
const SourceCalzado = "calzado.api"

// Event types
const (
	TypeFootwearRegistered = "calzado.registrado"
	TypeFootwearUpdated    = "calzado.actualizado"
	TypeFootwearDeleted    = "calzado.eliminado"
)

// DomainEvent is the base interface for all domain events
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

// FootwearRegistered is raised after an item is created
type FootwearRegistered struct {
	BaseEvent
	Calzado footwear.Canonical `json:"calzado"`
}

// NewFootwearRegistered creates a FootwearRegistered event
func NewFootwearRegistered(item *footwear.Item, timestamp time.Time) FootwearRegistered {
	return FootwearRegistered{
		BaseEvent: BaseEvent{
			AggregateID: item.ID,
			EventType:   TypeFootwearRegistered,
			Timestamp:   timestamp,
		},
		Calzado: footwear.ToCanonical(item),
	}
}

// FootwearUpdated is raised after a partial update. Fields lists the
// attribute names that were written.
type FootwearUpdated struct {
	BaseEvent
	Fields []string `json:"fields"`
}

// NewFootwearUpdated creates a FootwearUpdated event
func NewFootwearUpdated(id string, attrs footwear.Attributes, timestamp time.Time) FootwearUpdated {
	return FootwearUpdated{
		BaseEvent: BaseEvent{
			AggregateID: id,
			EventType:   TypeFootwearUpdated,
			Timestamp:   timestamp,
		},
		Fields: attrs.Names(),
	}
}

// FootwearDeleted is raised after a delete, whether or not the item existed
type FootwearDeleted struct {
	BaseEvent
}

// NewFootwearDeleted creates a FootwearDeleted event
func NewFootwearDeleted(id string, timestamp time.Time) FootwearDeleted {
	return FootwearDeleted{
		BaseEvent: BaseEvent{
			AggregateID: id,
			EventType:   TypeFootwearDeleted,
			Timestamp:   timestamp,
		},
	}
}
