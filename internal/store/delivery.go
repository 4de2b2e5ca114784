package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type RecordDeliveryParams struct {
	CampaignID   uuid.UUID
	SubscriberID uuid.UUID
	Status       string
	MessageID    *string
	Error        *string
}

// A sent row is final; retries only overwrite failed rows.
const sqlRecordDelivery = `
INSERT INTO campaign_deliveries (campaign_id, subscriber_id, status, message_id, error)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (campaign_id, subscriber_id) DO UPDATE
SET status = EXCLUDED.status, message_id = EXCLUDED.message_id, error = EXCLUDED.error, updated_at = NOW()
WHERE campaign_deliveries.status <> 'sent'
`

func (s *Store) RecordDelivery(ctx context.Context, params RecordDeliveryParams) error {
	_, err := s.db.ExecContext(ctx, sqlRecordDelivery,
		params.CampaignID,
		params.SubscriberID,
		params.Status,
		params.MessageID,
		params.Error)
	if err != nil {
		return fmt.Errorf("failed to record delivery: %w", err)
	}
	return nil
}

const sqlListSentSubscriberIDs = `
SELECT subscriber_id FROM campaign_deliveries WHERE campaign_id = $1 AND status = 'sent'
`

// ListSentSubscriberIDs returns the subscribers a campaign already reached.
func (s *Store) ListSentSubscriberIDs(ctx context.Context, campaignID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := s.db.SelectContext(ctx, &ids, sqlListSentSubscriberIDs, campaignID); err != nil {
		return nil, fmt.Errorf("failed to list sent deliveries: %w", err)
	}
	return ids, nil
}
