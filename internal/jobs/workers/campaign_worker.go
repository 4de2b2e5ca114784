package workers

//go:generate go run go.uber.org/mock/mockgen@latest -source=campaign_worker.go -destination=mocks_test.go -package=workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"notify-server/internal/delivery"
	"notify-server/internal/jobs"
	"notify-server/internal/observability"
	"notify-server/internal/store"
	"notify-server/internal/workers/campaign"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type CampaignSender interface {
	SendCampaign(ctx context.Context, campaignID uuid.UUID) (campaign.SendCampaignResult, error)
}

type CampaignLookup interface {
	GetCampaignByID(ctx context.Context, id uuid.UUID) (store.Campaign, error)
}

type TokenCleaner interface {
	CleanupInactiveTokens(ctx context.Context, olderThan time.Duration) (int64, error)
}

// CampaignWorker handles campaign send jobs
type CampaignWorker struct {
	sender    CampaignSender
	campaigns CampaignLookup
	logger    *observability.Logger
}

func NewCampaignWorker(sender CampaignSender, campaigns CampaignLookup, logger *observability.Logger) *CampaignWorker {
	return &CampaignWorker{
		sender:    sender,
		campaigns: campaigns,
		logger:    logger,
	}
}

// ProcessCampaignSendTask processes a campaign send task (for Asynq). Outcomes
// that a retry cannot change skip the retry queue.
func (w *CampaignWorker) ProcessCampaignSendTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.CampaignSendJobPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal campaign send job payload", err)
		return fmt.Errorf("failed to unmarshal campaign send job payload: %v: %w", err, asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: payload.CampaignID})

	if payload.ScheduledAt != nil {
		current, err := w.isCurrentSchedule(ctx, payload)
		if err != nil {
			return err
		}
		if !current {
			w.logger.Info(observability.WithFields(ctx,
				observability.Field{Key: "task_scheduled_at", Value: *payload.ScheduledAt},
			), "campaign was rescheduled, dropping stale job")
			return nil
		}
	}

	result, err := w.sender.SendCampaign(ctx, payload.CampaignID)
	switch {
	case errors.Is(err, campaign.ErrCampaignAlreadySent):
		w.logger.Info(ctx, "campaign already sent, dropping job")
		return nil
	case errors.Is(err, campaign.ErrCampaignNotFound),
		errors.Is(err, campaign.ErrNoSubscribers),
		delivery.KindOf(err) == delivery.KindTerminal:
		w.logger.Error(ctx, "campaign send cannot succeed", err)
		return fmt.Errorf("campaign send failed: %v: %w", err, asynq.SkipRetry)
	case err != nil:
		w.logger.InfoWithError(ctx, "campaign send failed, will retry", err)
		return fmt.Errorf("campaign send failed: %w", err)
	}

	w.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "sent", Value: result.Sent},
		observability.Field{Key: "failed", Value: result.Failed},
		observability.Field{Key: "skipped", Value: result.Skipped},
	), "campaign send job completed")
	return nil
}

// isCurrentSchedule reports whether a deferred task still matches the
// campaign's send time. Times compare at second precision, the precision of
// the task id.
func (w *CampaignWorker) isCurrentSchedule(ctx context.Context, payload jobs.CampaignSendJobPayload) (bool, error) {
	c, err := w.campaigns.GetCampaignByID(ctx, payload.CampaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			w.logger.Error(ctx, "scheduled campaign no longer exists", err)
			return false, fmt.Errorf("campaign not found: %v: %w", err, asynq.SkipRetry)
		}
		w.logger.Error(ctx, "failed to load scheduled campaign", err)
		return false, fmt.Errorf("failed to load campaign: %w", err)
	}
	if c.Status != store.CampaignStatusScheduled || c.ScheduledAt == nil {
		// Sending or sent campaigns fall through to the batcher, which resumes or drops them.
		return c.Status != store.CampaignStatusDraft, nil
	}
	return c.ScheduledAt.Unix() == payload.ScheduledAt.Unix(), nil
}

// TokenCleanupWorker handles device token cleanup jobs
type TokenCleanupWorker struct {
	cleaner TokenCleaner
	logger  *observability.Logger
}

func NewTokenCleanupWorker(cleaner TokenCleaner, logger *observability.Logger) *TokenCleanupWorker {
	return &TokenCleanupWorker{
		cleaner: cleaner,
		logger:  logger,
	}
}

func (w *TokenCleanupWorker) ProcessTokenCleanupTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.DeviceTokenCleanupJobPayload
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			w.logger.Error(ctx, "failed to unmarshal token cleanup job payload", err)
			return fmt.Errorf("failed to unmarshal token cleanup job payload: %v: %w", err, asynq.SkipRetry)
		}
	}

	if _, err := w.cleaner.CleanupInactiveTokens(ctx, payload.OlderThan); err != nil {
		return fmt.Errorf("failed to clean up device tokens: %w", err)
	}
	return nil
}
