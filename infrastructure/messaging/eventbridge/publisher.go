package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JuanSebastianGarcia23/calzado/application/ports"
	"github.com/JuanSebastianGarcia23/calzado/domain/events"
	apperrors "github.com/JuanSebastianGarcia23/calzado/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"
)

// PutEventsAPI is the subset of the EventBridge client used by the publisher
type PutEventsAPI interface {
	PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error)
}

// EventBridgePublisher implements ports.EventPublisher using AWS EventBridge
type EventBridgePublisher struct {
	client       PutEventsAPI
	eventBusName string
	source       string
	logger       *zap.Logger
}

// NewEventBridgePublisher creates a new EventBridge publisher
func NewEventBridgePublisher(client PutEventsAPI, eventBusName string, logger *zap.Logger) *EventBridgePublisher {
	return &EventBridgePublisher{
		client:       client,
		eventBusName: eventBusName,
		source:       events.SourceCalzado,
		logger:       logger,
	}
}

var _ ports.EventPublisher = (*EventBridgePublisher)(nil)

// Publish sends a single event to EventBridge
func (p *EventBridgePublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	detail, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.GetEventType(), err)
	}

	input := &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{
			{
				EventBusName: aws.String(p.eventBusName),
				Source:       aws.String(p.source),
				DetailType:   aws.String(event.GetEventType()),
				Detail:       aws.String(string(detail)),
				Time:         aws.Time(event.GetTimestamp()),
				Resources:    []string{fmt.Sprintf("calzado:%s", event.GetAggregateID())},
			},
		},
	}

	result, err := p.client.PutEvents(ctx, input)
	if err != nil {
		return apperrors.NewExternalError("eventbridge", err)
	}

	if result.FailedEntryCount > 0 {
		for _, entry := range result.Entries {
			if entry.ErrorCode != nil {
				p.logger.Error("Failed to publish event",
					zap.String("eventType", event.GetEventType()),
					zap.String("errorCode", aws.ToString(entry.ErrorCode)),
					zap.String("errorMessage", aws.ToString(entry.ErrorMessage)),
				)
			}
		}
		return apperrors.NewExternalError("eventbridge",
			fmt.Errorf("%d events failed to publish", result.FailedEntryCount))
	}

	p.logger.Debug("Event published to EventBridge",
		zap.String("eventType", event.GetEventType()),
		zap.String("aggregateID", event.GetAggregateID()),
		zap.String("eventBus", p.eventBusName),
	)

	return nil
}

// NopPublisher discards events. It is used when no event bus is configured.
type NopPublisher struct{}

// Publish does nothing
func (NopPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	return nil
}
