package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"notify-server/internal/clients/kafka"
	"notify-server/internal/observability"
	"notify-server/internal/scheduling"
	"notify-server/internal/store"

	"github.com/google/uuid"
)

// EngagementStore defines the database operations required by EngagementProcessor
type EngagementStore interface {
	RecordEngagement(ctx context.Context, params store.RecordEngagementParams) (store.RecordEngagementResult, error)
}

// EventPublisher hands engagement events to the asynchronous pipeline.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrInvalidEventType   = errors.New("event type is required")
)

// scoreDeltas is the engagement score change per event type. Unlisted types score 0.
var scoreDeltas = map[string]int{
	store.EventTypeOpen:        5,
	store.EventTypeClick:       10,
	store.EventTypeDelivered:   1,
	store.EventTypeBounce:      -5,
	store.EventTypeUnsubscribe: -20,
	store.EventTypeSpam:        -10,
}

var campaignCounters = map[string]string{
	store.EventTypeDelivered:   "stats_delivered",
	store.EventTypeOpen:        "stats_opened",
	store.EventTypeClick:       "stats_clicked",
	store.EventTypeBounce:      "stats_bounced",
	store.EventTypeUnsubscribe: "stats_unsubscribed",
	store.EventTypeSpam:        "stats_spam",
}

type EngagementProcessor struct {
	store     EngagementStore
	publisher EventPublisher
	clock     scheduling.Clock
	metrics   *observability.Metrics
	logger    *observability.Logger
}

// New creates the processor. publisher may be nil, in which case Ingest
// records events synchronously.
func New(store EngagementStore, publisher EventPublisher, clock scheduling.Clock, metrics *observability.Metrics, logger *observability.Logger) EngagementProcessor {
	if clock == nil {
		clock = scheduling.RealClock{}
	}
	return EngagementProcessor{
		store:     store,
		publisher: publisher,
		clock:     clock,
		metrics:   metrics,
		logger:    logger,
	}
}

type TrackEngagementRequest struct {
	SubscriberID uuid.UUID
	CampaignID   *uuid.UUID
	EventType    string
	EventData    map[string]interface{}
	// Timestamp defaults to now.
	Timestamp *time.Time
}

type TrackEngagementResult struct {
	Event           store.EngagementEvent `json:"event"`
	EngagementScore int                   `json:"engagement_score"`
}

// ScoreDelta returns the engagement score change for an event type.
func ScoreDelta(eventType string) int {
	return scoreDeltas[eventType]
}

// TrackEngagement appends the event and applies its score, campaign counter
// and unsubscribe side effects atomically.
func (p EngagementProcessor) TrackEngagement(ctx context.Context, req TrackEngagementRequest) (TrackEngagementResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "subscriber_id", Value: req.SubscriberID},
		observability.Field{Key: "event_type", Value: req.EventType},
	)
	if req.CampaignID != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: *req.CampaignID})
	}

	if req.EventType == "" {
		return TrackEngagementResult{}, ErrInvalidEventType
	}

	occurredAt := p.clock.Now().UTC()
	if req.Timestamp != nil {
		occurredAt = *req.Timestamp
	}
	eventData := store.JSONB(req.EventData)
	if eventData == nil {
		eventData = store.JSONB{}
	}

	var counter string
	if req.CampaignID != nil {
		counter = campaignCounters[req.EventType]
	}

	result, err := p.store.RecordEngagement(ctx, store.RecordEngagementParams{
		SubscriberID:  req.SubscriberID,
		CampaignID:    req.CampaignID,
		EventType:     req.EventType,
		EventData:     eventData,
		OccurredAt:    occurredAt,
		ScoreDelta:    ScoreDelta(req.EventType),
		CounterColumn: counter,
		Unsubscribe:   req.EventType == store.EventTypeUnsubscribe,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TrackEngagementResult{}, ErrSubscriberNotFound
		}
		p.logger.Error(ctx, "failed to record engagement", err)
		return TrackEngagementResult{}, fmt.Errorf("failed to record engagement: %w", err)
	}

	p.metrics.ObserveEngagement(req.EventType)
	p.logger.Info(ctx, "engagement tracked")
	return TrackEngagementResult{Event: result.Event, EngagementScore: result.EngagementScore}, nil
}

// Ingest publishes the event to Kafka when a publisher is configured and
// records it directly otherwise.
func (p EngagementProcessor) Ingest(ctx context.Context, req TrackEngagementRequest) error {
	if p.publisher == nil {
		_, err := p.TrackEngagement(ctx, req)
		return err
	}
	if req.EventType == "" {
		return ErrInvalidEventType
	}

	timestamp := p.clock.Now().UTC()
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}
	event := kafka.EventMessage{
		ID:           uuid.NewString(),
		Type:         req.EventType,
		SubscriberID: req.SubscriberID.String(),
		Data:         req.EventData,
		Timestamp:    timestamp.Format(time.RFC3339Nano),
	}
	if req.CampaignID != nil {
		id := req.CampaignID.String()
		event.CampaignID = &id
	}

	if err := p.publisher.PublishEvent(ctx, event); err != nil {
		p.logger.Error(ctx, "failed to publish engagement event", err)
		return fmt.Errorf("failed to publish engagement event: %w", err)
	}
	return nil
}

// RequestFromEvent decodes a Kafka engagement envelope.
func RequestFromEvent(event kafka.EventMessage) (TrackEngagementRequest, error) {
	subscriberID, err := uuid.Parse(event.SubscriberID)
	if err != nil {
		return TrackEngagementRequest{}, fmt.Errorf("invalid subscriber id: %w", err)
	}
	req := TrackEngagementRequest{
		SubscriberID: subscriberID,
		EventType:    event.Type,
		EventData:    event.Data,
	}
	if event.CampaignID != nil && *event.CampaignID != "" {
		campaignID, err := uuid.Parse(*event.CampaignID)
		if err != nil {
			return TrackEngagementRequest{}, fmt.Errorf("invalid campaign id: %w", err)
		}
		req.CampaignID = &campaignID
	}
	if event.Timestamp != "" {
		ts, err := time.Parse(time.RFC3339Nano, event.Timestamp)
		if err != nil {
			return TrackEngagementRequest{}, fmt.Errorf("invalid timestamp: %w", err)
		}
		req.Timestamp = &ts
	}
	return req, nil
}
