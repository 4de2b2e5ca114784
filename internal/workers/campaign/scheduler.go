package campaign

//go:generate go run go.uber.org/mock/mockgen@latest -source=scheduler.go -destination=scheduler_mocks_test.go -package=campaign

import (
	"context"
	"errors"
	"fmt"
	"time"

	"notify-server/internal/observability"
	"notify-server/internal/scheduling"
	"notify-server/internal/store"

	"github.com/google/uuid"
)

const dueCampaignLimit = 10

// SchedulerStore defines the database operations required by Scheduler
type SchedulerStore interface {
	ListDueScheduledCampaigns(ctx context.Context, now time.Time, limit int) ([]store.Campaign, error)
}

type CampaignSender interface {
	SendCampaign(ctx context.Context, campaignID uuid.UUID) (SendCampaignResult, error)
}

// Scheduler periodically checks for scheduled campaigns that are due and sends them
type Scheduler struct {
	store         SchedulerStore
	sender        CampaignSender
	clock         scheduling.Clock
	logger        *observability.Logger
	checkInterval time.Duration
	stopChan      chan struct{}
}

func NewScheduler(
	store SchedulerStore,
	sender CampaignSender,
	clock scheduling.Clock,
	logger *observability.Logger,
	checkInterval time.Duration,
) *Scheduler {
	if checkInterval <= 0 {
		checkInterval = 30 * time.Second
	}
	if clock == nil {
		clock = scheduling.RealClock{}
	}

	return &Scheduler{
		store:         store,
		sender:        sender,
		clock:         clock,
		logger:        logger,
		checkInterval: checkInterval,
		stopChan:      make(chan struct{}),
	}
}

// Start runs the scheduler loop until ctx is cancelled or Stop is called
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info(ctx, fmt.Sprintf("Starting campaign scheduler with %v interval", s.checkInterval))

	ticker := s.clock.NewTicker(s.checkInterval)
	defer ticker.Stop()

	s.checkScheduledCampaigns(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Campaign scheduler stopping: context cancelled")
			return
		case <-s.stopChan:
			s.logger.Info(ctx, "Campaign scheduler stopping: stop signal received")
			return
		case <-ticker.C():
			s.checkScheduledCampaigns(ctx)
		}
	}
}

func (s *Scheduler) Stop() {
	close(s.stopChan)
}

func (s *Scheduler) checkScheduledCampaigns(ctx context.Context) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "check_scheduled_campaigns"},
	)

	campaigns, err := s.store.ListDueScheduledCampaigns(ctx, s.clock.Now().UTC(), dueCampaignLimit)
	if err != nil {
		s.logger.Error(ctx, "Failed to get scheduled campaigns", err)
		return
	}
	if len(campaigns) == 0 {
		return
	}

	s.logger.Info(ctx, fmt.Sprintf("Found %d scheduled campaigns ready to send", len(campaigns)))

	for _, c := range campaigns {
		campaignCtx := observability.WithFields(ctx,
			observability.Field{Key: "campaign_id", Value: c.ID},
		)

		result, err := s.sender.SendCampaign(campaignCtx, c.ID)
		switch {
		case errors.Is(err, ErrCampaignInProgress), errors.Is(err, ErrCampaignAlreadySent):
			s.logger.Info(campaignCtx, "Scheduled campaign already handled elsewhere")
		case err != nil:
			s.logger.Error(campaignCtx, "Failed to send scheduled campaign", err)
		default:
			campaignCtx = observability.WithFields(campaignCtx,
				observability.Field{Key: "sent", Value: result.Sent},
				observability.Field{Key: "failed", Value: result.Failed},
			)
			s.logger.Info(campaignCtx, "Sent scheduled campaign")
		}
	}
}
