package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"notify-server/internal/observability"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// Client handles enqueueing background jobs
type Client struct {
	client enqueuer
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(redisAddr string, logger *observability.Logger) *Client {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	return &Client{
		client: client,
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueCampaignSend enqueues a campaign send, deferred to processAt when set.
// Enqueueing the same campaign and time twice is not an error.
func (c *Client) EnqueueCampaignSend(ctx context.Context, campaignID uuid.UUID, processAt *time.Time) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	task, err := NewCampaignSendTask(CampaignSendJobPayload{CampaignID: campaignID}, processAt)
	if err != nil {
		c.logger.Error(ctx, "failed to create campaign send task", err)
		return fmt.Errorf("failed to create campaign send task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			c.logger.Info(ctx, "campaign send task already enqueued")
			return nil
		}
		c.logger.Error(ctx, "failed to enqueue campaign send task", err)
		return fmt.Errorf("failed to enqueue campaign send task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued campaign send task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}

// EnqueueAutomationRun enqueues one leg of an automation run. Enqueueing the
// same run and step twice is not an error.
func (c *Client) EnqueueAutomationRun(ctx context.Context, payload AutomationRunJobPayload, delay time.Duration) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "automation_id", Value: payload.AutomationID},
		observability.Field{Key: "run_id", Value: payload.RunID},
		observability.Field{Key: "from_step", Value: payload.FromStep},
	)

	task, err := NewAutomationRunTask(payload, delay)
	if err != nil {
		c.logger.Error(ctx, "failed to create automation run task", err)
		return fmt.Errorf("failed to create automation run task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			c.logger.Info(ctx, "automation run task already enqueued")
			return nil
		}
		c.logger.Error(ctx, "failed to enqueue automation run task", err)
		return fmt.Errorf("failed to enqueue automation run task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued automation run task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}

// EnqueueDeviceTokenCleanup enqueues a device token cleanup job
func (c *Client) EnqueueDeviceTokenCleanup(ctx context.Context, olderThan time.Duration) error {
	task, err := NewDeviceTokenCleanupTask(DeviceTokenCleanupJobPayload{OlderThan: olderThan})
	if err != nil {
		c.logger.Error(ctx, "failed to create device token cleanup task", err)
		return fmt.Errorf("failed to create device token cleanup task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue device token cleanup task", err)
		return fmt.Errorf("failed to enqueue device token cleanup task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued device token cleanup task: %s", info.ID))
	return nil
}
