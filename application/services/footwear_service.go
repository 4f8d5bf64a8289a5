package services

import (
	"context"
	"time"

	"github.com/JuanSebastianGarcia23/calzado/application/ports"
	"github.com/JuanSebastianGarcia23/calzado/domain/events"
	"github.com/JuanSebastianGarcia23/calzado/domain/footwear"
	"github.com/JuanSebastianGarcia23/calzado/pkg/observability"

	"go.uber.org/zap"
)

// FootwearService executes the five footwear operations against the store.
// Each operation is a stateless sequence of single-item store calls.
type FootwearService struct {
	repo      ports.FootwearRepository
	publisher ports.EventPublisher
	tracer    *observability.Tracer
	logger    *zap.Logger
	now       func() time.Time
}

// NewFootwearService creates a new FootwearService. tracer may be nil.
func NewFootwearService(
	repo ports.FootwearRepository,
	publisher ports.EventPublisher,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *FootwearService {
	return &FootwearService{
		repo:      repo,
		publisher: publisher,
		tracer:    tracer,
		logger:    logger,
		now:       time.Now,
	}
}

// Create normalizes payload and stores a new item, generating an id when the
// payload carries none. The stored item is returned.
func (s *FootwearService) Create(ctx context.Context, payload map[string]any) (*footwear.Item, error) {
	item := footwear.NewItem(footwear.IDFrom(payload), footwear.Normalize(payload))

	err := s.trace(ctx, "create", item.ID, func(ctx context.Context) error {
		return s.repo.Put(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Calzado registrado", zap.String("id", item.ID))
	s.publish(ctx, events.NewFootwearRegistered(item, s.now()))

	return item, nil
}

// Get fetches an item by id. A missing item is returned as nil without error.
func (s *FootwearService) Get(ctx context.Context, id string) (*footwear.Item, error) {
	var item *footwear.Item
	err := s.trace(ctx, "get", id, func(ctx context.Context) error {
		var err error
		item, err = s.repo.Get(ctx, id)
		return err
	})
	return item, err
}

// List returns every stored item in store order
func (s *FootwearService) List(ctx context.Context) ([]*footwear.Item, error) {
	var items []*footwear.Item
	err := s.trace(ctx, "list", "", func(ctx context.Context) error {
		var err error
		items, err = s.repo.Scan(ctx)
		return err
	})
	return items, err
}

// Update merges the normalized payload into the item and returns the item as
// read back afterwards. An empty payload writes nothing. The read is not
// atomic with the write; a concurrent delete can make it return nil.
func (s *FootwearService) Update(ctx context.Context, id string, payload map[string]any) (*footwear.Item, error) {
	attrs := footwear.Normalize(payload)

	if attrs.IsEmpty() {
		s.logger.Debug("Update without known fields, nothing written", zap.String("id", id))
	} else {
		err := s.trace(ctx, "update", id, func(ctx context.Context) error {
			return s.repo.Update(ctx, id, attrs)
		})
		if err != nil {
			return nil, err
		}

		s.logger.Info("Calzado actualizado",
			zap.String("id", id),
			zap.Strings("fields", attrs.Names()),
		)
		s.publish(ctx, events.NewFootwearUpdated(id, attrs, s.now()))
	}

	return s.Get(ctx, id)
}

// Delete removes the item. Missing ids are not an error.
func (s *FootwearService) Delete(ctx context.Context, id string) error {
	err := s.trace(ctx, "delete", id, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Calzado eliminado", zap.String("id", id))
	s.publish(ctx, events.NewFootwearDeleted(id, s.now()))

	return nil
}

// trace runs fn in a subsegment annotated with the action and item id
func (s *FootwearService) trace(ctx context.Context, action, id string, fn func(context.Context) error) error {
	return s.tracer.TraceFunction(ctx, action, func(ctx context.Context) error {
		s.tracer.AddAnnotation(ctx, "action", action)
		if id != "" {
			s.tracer.AddAnnotation(ctx, "calzado_id", id)
		}
		return fn(ctx)
	})
}

// publish sends event and only logs failures; the store write already happened
func (s *FootwearService) publish(ctx context.Context, event events.DomainEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event",
			zap.Error(err),
			zap.String("eventType", event.GetEventType()),
			zap.String("aggregateID", event.GetAggregateID()),
		)
	}
}
