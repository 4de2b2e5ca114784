package engagement

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=engagement

import (
	"context"
	"errors"
	"fmt"

	engagement "notify-server/internal/engagement/processor"
	"notify-server/internal/observability"
	"notify-server/internal/workers"
)

type Tracker interface {
	TrackEngagement(ctx context.Context, req engagement.TrackEngagementRequest) (engagement.TrackEngagementResult, error)
}

// EventProcessor records engagement events consumed from Kafka.
type EventProcessor struct {
	tracker Tracker
	logger  *observability.Logger
}

func NewEventProcessor(tracker Tracker, logger *observability.Logger) workers.EventProcessor {
	return &EventProcessor{
		tracker: tracker,
		logger:  logger,
	}
}

func (p *EventProcessor) Name() string {
	return "engagement"
}

// Process records one event. Malformed events and unknown subscribers are
// permanent failures; everything else is retried by the consumer.
func (p *EventProcessor) Process(ctx context.Context, event workers.EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "subscriber_id", Value: event.SubscriberID},
	)

	req, err := engagement.RequestFromEvent(event)
	if err != nil {
		return workers.Permanent(fmt.Errorf("failed to decode engagement event: %w", err))
	}

	result, err := p.tracker.TrackEngagement(ctx, req)
	if err != nil {
		if errors.Is(err, engagement.ErrSubscriberNotFound) || errors.Is(err, engagement.ErrInvalidEventType) {
			return workers.Permanent(err)
		}
		return err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "engagement_score", Value: result.EngagementScore})
	p.logger.Debug(ctx, "engagement event processed")
	return nil
}
