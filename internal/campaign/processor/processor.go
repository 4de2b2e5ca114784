package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"notify-server/internal/observability"
	"notify-server/internal/scheduling"
	"notify-server/internal/store"
	"notify-server/internal/templates"
	"notify-server/internal/workers/campaign"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, id uuid.UUID) (store.Campaign, error)
	ListCampaigns(ctx context.Context, limit, offset int) ([]store.Campaign, error)
	ScheduleCampaign(ctx context.Context, id uuid.UUID, at time.Time) (store.Campaign, error)
}

type CampaignSender interface {
	SendCampaign(ctx context.Context, campaignID uuid.UUID) (campaign.SendCampaignResult, error)
}

// SendQueue defers campaign sends to the background workers.
type SendQueue interface {
	EnqueueCampaignSend(ctx context.Context, campaignID uuid.UUID, processAt *time.Time) error
}

var (
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrNameRequired        = errors.New("campaign name is required")
	ErrSubjectRequired     = errors.New("campaign subject is required")
	ErrInvalidChannel      = errors.New("channel must be email or push")
	ErrUnknownTemplate     = errors.New("unknown template")
	ErrScheduleInPast      = errors.New("scheduled time must be in the future")
	ErrCampaignNotEditable = errors.New("only draft or scheduled campaigns can be scheduled")
	ErrInvalidTarget       = errors.New("target_type must be segments, topics or all")
	ErrTopicsRequired      = errors.New("topic targeted campaigns need at least one topic")
	ErrTopicsNeedPush      = errors.New("only push campaigns can target topics")
)

type CampaignProcessor struct {
	store  CampaignStore
	sender CampaignSender
	queue  SendQueue
	clock  scheduling.Clock
	logger *observability.Logger
}

// New creates a campaign processor. queue may be nil; scheduled campaigns are
// then picked up by the scheduler sweep only.
func New(store CampaignStore, sender CampaignSender, queue SendQueue, clock scheduling.Clock, logger *observability.Logger) CampaignProcessor {
	if clock == nil {
		clock = scheduling.RealClock{}
	}
	return CampaignProcessor{
		store:  store,
		sender: sender,
		queue:  queue,
		clock:  clock,
		logger: logger,
	}
}

type CreateCampaignRequest struct {
	Name             string
	Subject          string
	Body             string
	TemplateName     string
	Channel          string
	NotificationType *string
	SegmentIDs       []uuid.UUID
	TargetType       string
	Topics           []string
	ScheduledAt      *time.Time
}

func (p *CampaignProcessor) validate(req *CreateCampaignRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Subject = strings.TrimSpace(req.Subject)
	if req.Channel == "" {
		req.Channel = store.CampaignChannelEmail
	}
	if req.TargetType == "" {
		req.TargetType = store.CampaignTargetSegments
	}
	req.Topics = cleanTopics(req.Topics)

	switch {
	case req.Name == "":
		return ErrNameRequired
	case req.Subject == "":
		return ErrSubjectRequired
	case req.Channel != store.CampaignChannelEmail && req.Channel != store.CampaignChannelPush:
		return ErrInvalidChannel
	}

	switch req.TargetType {
	case store.CampaignTargetSegments:
		req.Topics = nil
	case store.CampaignTargetTopics, store.CampaignTargetAll:
		if req.Channel != store.CampaignChannelPush {
			return ErrTopicsNeedPush
		}
		if len(req.Topics) == 0 {
			return ErrTopicsRequired
		}
	default:
		return ErrInvalidTarget
	}

	if req.Channel == store.CampaignChannelEmail {
		if req.TemplateName == "" {
			req.TemplateName = templates.EmailCampaign
		}
		if !templates.HasEmail(req.TemplateName) {
			return ErrUnknownTemplate
		}
	}
	if req.Channel == store.CampaignChannelPush && req.NotificationType != nil {
		if _, err := templates.Lookup(*req.NotificationType); err != nil {
			return ErrUnknownTemplate
		}
	}
	if req.ScheduledAt != nil && !req.ScheduledAt.After(p.clock.Now()) {
		return ErrScheduleInPast
	}
	return nil
}

func cleanTopics(topics []string) []string {
	seen := make(map[string]struct{}, len(topics))
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// CreateCampaign stores a draft campaign, scheduling it when ScheduledAt is set.
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, req CreateCampaignRequest) (store.Campaign, error) {
	if err := p.validate(&req); err != nil {
		return store.Campaign{}, err
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_name", Value: req.Name},
		observability.Field{Key: "channel", Value: req.Channel},
	)

	created, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		Name:             req.Name,
		Subject:          req.Subject,
		TemplateName:     req.TemplateName,
		Body:             req.Body,
		Channel:          req.Channel,
		NotificationType: req.NotificationType,
		SegmentIDs:       req.SegmentIDs,
		TargetType:       req.TargetType,
		Topics:           req.Topics,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: created.ID})
	p.logger.Info(ctx, "campaign created")

	if req.ScheduledAt != nil {
		return p.schedule(ctx, created.ID, *req.ScheduledAt)
	}
	return created, nil
}

func (p *CampaignProcessor) GetCampaign(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	c, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, err
	}
	return c, nil
}

func (p *CampaignProcessor) ListCampaigns(ctx context.Context, limit, offset int) ([]store.Campaign, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}
	campaigns, err := p.store.ListCampaigns(ctx, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, err
	}
	return campaigns, nil
}

// SendCampaign runs the batcher in the caller's request.
func (p *CampaignProcessor) SendCampaign(ctx context.Context, campaignID uuid.UUID) (campaign.SendCampaignResult, error) {
	return p.sender.SendCampaign(ctx, campaignID)
}

// QueueCampaign hands an immediate send to the background workers.
func (p *CampaignProcessor) QueueCampaign(ctx context.Context, campaignID uuid.UUID) error {
	if _, err := p.GetCampaign(ctx, campaignID); err != nil {
		return err
	}
	if p.queue == nil {
		return errors.New("background queue is not configured")
	}
	return p.queue.EnqueueCampaignSend(ctx, campaignID, nil)
}

// ScheduleCampaign sets the send time of a draft or scheduled campaign.
func (p *CampaignProcessor) ScheduleCampaign(ctx context.Context, campaignID uuid.UUID, at time.Time) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})
	if !at.After(p.clock.Now()) {
		return store.Campaign{}, ErrScheduleInPast
	}
	if _, err := p.GetCampaign(ctx, campaignID); err != nil {
		return store.Campaign{}, err
	}
	return p.schedule(ctx, campaignID, at)
}

func (p *CampaignProcessor) schedule(ctx context.Context, campaignID uuid.UUID, at time.Time) (store.Campaign, error) {
	at = at.UTC()
	scheduled, err := p.store.ScheduleCampaign(ctx, campaignID, at)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotEditable
		}
		p.logger.Error(ctx, "failed to schedule campaign", err)
		return store.Campaign{}, err
	}

	// The scheduler sweep still sends the campaign if enqueueing fails.
	if p.queue != nil {
		if err := p.queue.EnqueueCampaignSend(ctx, campaignID, &at); err != nil {
			p.logger.Error(ctx, "failed to enqueue scheduled campaign", err)
		}
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "scheduled_at", Value: at}), "campaign scheduled")
	return scheduled, nil
}
