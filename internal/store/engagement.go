package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// campaign counter columns that engagement events may increment
var campaignCounterColumns = map[string]bool{
	"stats_delivered":    true,
	"stats_opened":       true,
	"stats_clicked":      true,
	"stats_bounced":      true,
	"stats_unsubscribed": true,
	"stats_spam":         true,
}

type RecordEngagementParams struct {
	SubscriberID uuid.UUID
	CampaignID   *uuid.UUID
	EventType    string
	EventData    JSONB
	OccurredAt   time.Time
	ScoreDelta   int
	// CounterColumn is the campaign stats column to increment, empty for none.
	CounterColumn string
	Unsubscribe   bool
}

type RecordEngagementResult struct {
	Event           EngagementEvent
	EngagementScore int
}

const sqlApplyEngagementScore = `
UPDATE subscribers
SET engagement_score = engagement_score + $2, last_engagement_at = $3, updated_at = NOW()
WHERE id = $1
RETURNING engagement_score
`

const sqlInsertEngagementEvent = `
INSERT INTO engagement_events (subscriber_id, campaign_id, event_type, event_data, occurred_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, subscriber_id, campaign_id, event_type, event_data, occurred_at, created_at
`

const sqlMarkSubscriberUnsubscribed = `
UPDATE subscribers
SET status = 'unsubscribed', unsubscribed_at = COALESCE(unsubscribed_at, $2), updated_at = NOW()
WHERE id = $1
`

// RecordEngagement appends an engagement event and applies its side effects
// (score, campaign counter, unsubscribe) in a single transaction.
func (s *Store) RecordEngagement(ctx context.Context, params RecordEngagementParams) (RecordEngagementResult, error) {
	if params.CounterColumn != "" && !campaignCounterColumns[params.CounterColumn] {
		return RecordEngagementResult{}, fmt.Errorf("unknown campaign counter %q", params.CounterColumn)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return RecordEngagementResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var result RecordEngagementResult
	err = tx.GetContext(ctx, &result.EngagementScore, sqlApplyEngagementScore, params.SubscriberID, params.ScoreDelta, params.OccurredAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RecordEngagementResult{}, ErrNotFound
		}
		return RecordEngagementResult{}, fmt.Errorf("failed to update engagement score: %w", err)
	}

	err = tx.GetContext(ctx, &result.Event, sqlInsertEngagementEvent,
		params.SubscriberID,
		params.CampaignID,
		params.EventType,
		params.EventData,
		params.OccurredAt)
	if err != nil {
		return RecordEngagementResult{}, fmt.Errorf("failed to insert engagement event: %w", err)
	}

	if params.CampaignID != nil && params.CounterColumn != "" {
		query := fmt.Sprintf("UPDATE campaigns SET %s = %s + 1, updated_at = NOW() WHERE id = $1", params.CounterColumn, params.CounterColumn)
		if _, err := tx.ExecContext(ctx, query, *params.CampaignID); err != nil {
			return RecordEngagementResult{}, fmt.Errorf("failed to increment campaign counter: %w", err)
		}
	}

	if params.Unsubscribe {
		if _, err := tx.ExecContext(ctx, sqlMarkSubscriberUnsubscribed, params.SubscriberID, params.OccurredAt); err != nil {
			return RecordEngagementResult{}, fmt.Errorf("failed to unsubscribe subscriber: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return RecordEngagementResult{}, fmt.Errorf("failed to commit engagement: %w", err)
	}
	return result, nil
}

const sqlListCampaignEvents = `
SELECT id, subscriber_id, campaign_id, event_type, event_data, occurred_at, created_at
FROM engagement_events
WHERE campaign_id = $1
  AND ($2::timestamptz IS NULL OR occurred_at >= $2)
  AND ($3::timestamptz IS NULL OR occurred_at <= $3)
ORDER BY occurred_at
`

// ListCampaignEvents returns a campaign's events, optionally bounded by occurred_at.
func (s *Store) ListCampaignEvents(ctx context.Context, campaignID uuid.UUID, from, to *time.Time) ([]EngagementEvent, error) {
	var events []EngagementEvent
	if err := s.db.SelectContext(ctx, &events, sqlListCampaignEvents, campaignID, from, to); err != nil {
		return nil, fmt.Errorf("failed to list campaign events: %w", err)
	}
	return events, nil
}

const sqlListSubscriberEvents = `
SELECT id, subscriber_id, campaign_id, event_type, event_data, occurred_at, created_at
FROM engagement_events
WHERE subscriber_id = $1
ORDER BY occurred_at
`

func (s *Store) ListSubscriberEvents(ctx context.Context, subscriberID uuid.UUID) ([]EngagementEvent, error) {
	var events []EngagementEvent
	if err := s.db.SelectContext(ctx, &events, sqlListSubscriberEvents, subscriberID); err != nil {
		return nil, fmt.Errorf("failed to list subscriber events: %w", err)
	}
	return events, nil
}
