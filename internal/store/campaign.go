package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const campaignColumns = `id, name, subject, template_name, body, channel, notification_type, segment_ids,
target_type, topics, status, scheduled_at, sent_at, completed_at, stats_sent, stats_delivered, stats_opened,
stats_clicked, stats_bounced, stats_unsubscribed, stats_spam, created_at, updated_at`

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Name             string
	Subject          string
	TemplateName     string
	Body             string
	Channel          string
	NotificationType *string
	SegmentIDs       []uuid.UUID
	TargetType       string
	Topics           []string
}

const sqlCreateCampaign = `
INSERT INTO campaigns (name, subject, template_name, body, channel, notification_type, segment_ids, target_type, topics, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'draft')
RETURNING ` + campaignColumns

func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateCampaign,
		params.Name,
		params.Subject,
		params.TemplateName,
		params.Body,
		params.Channel,
		params.NotificationType,
		UUIDArray(params.SegmentIDs),
		params.TargetType,
		pq.StringArray(params.Topics))
	if err != nil {
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignByID = `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

func (s *Store) GetCampaignByID(ctx context.Context, id uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

const sqlListCampaigns = `SELECT ` + campaignColumns + ` FROM campaigns ORDER BY created_at DESC LIMIT $1 OFFSET $2`

func (s *Store) ListCampaigns(ctx context.Context, limit, offset int) ([]Campaign, error) {
	var campaigns []Campaign
	if err := s.db.SelectContext(ctx, &campaigns, sqlListCampaigns, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlMarkCampaignSending = `
UPDATE campaigns
SET status = 'sending', sent_at = COALESCE(sent_at, $2), updated_at = NOW()
WHERE id = $1 AND status <> 'sent'
`

// MarkCampaignSending moves a campaign into sending, keeping an earlier sent_at.
func (s *Store) MarkCampaignSending(ctx context.Context, id uuid.UUID, at time.Time) error {
	res, err := s.db.ExecContext(ctx, sqlMarkCampaignSending, id, at)
	if err != nil {
		return fmt.Errorf("failed to mark campaign sending: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlMarkCampaignSent = `
UPDATE campaigns
SET status = 'sent', completed_at = $2, stats_sent = GREATEST(stats_sent, $3), updated_at = NOW()
WHERE id = $1
RETURNING ` + campaignColumns

// MarkCampaignSent completes a campaign. stats_sent never decreases.
func (s *Store) MarkCampaignSent(ctx context.Context, id uuid.UUID, at time.Time, sent int) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlMarkCampaignSent, id, at, sent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to mark campaign sent: %w", err)
	}
	return campaign, nil
}

const sqlScheduleCampaign = `
UPDATE campaigns
SET status = 'scheduled', scheduled_at = $2, updated_at = NOW()
WHERE id = $1 AND status IN ('draft', 'scheduled')
RETURNING ` + campaignColumns

// ScheduleCampaign sets scheduled_at on a draft or already scheduled campaign.
func (s *Store) ScheduleCampaign(ctx context.Context, id uuid.UUID, at time.Time) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlScheduleCampaign, id, at)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to schedule campaign: %w", err)
	}
	return campaign, nil
}

const sqlListDueScheduledCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE status = 'scheduled' AND scheduled_at <= $1
ORDER BY scheduled_at
LIMIT $2
`

func (s *Store) ListDueScheduledCampaigns(ctx context.Context, now time.Time, limit int) ([]Campaign, error) {
	var campaigns []Campaign
	if err := s.db.SelectContext(ctx, &campaigns, sqlListDueScheduledCampaigns, now, limit); err != nil {
		return nil, fmt.Errorf("failed to list due campaigns: %w", err)
	}
	return campaigns, nil
}
