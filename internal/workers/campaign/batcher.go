// Package campaign sends campaigns to their resolved audience in paced,
// concurrent batches and sweeps scheduled campaigns.
package campaign

//go:generate go run go.uber.org/mock/mockgen@latest -source=batcher.go -destination=mocks_test.go -package=campaign

import (
	"context"
	"errors"
	"fmt"
	"time"

	"notify-server/internal/delivery"
	engagement "notify-server/internal/engagement/processor"
	"notify-server/internal/observability"
	"notify-server/internal/scheduling"
	"notify-server/internal/store"
	"notify-server/internal/templates"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultBatchSize  = 50
	DefaultBatchDelay = time.Second
)

var (
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrCampaignAlreadySent = errors.New("campaign already sent")
	ErrCampaignInProgress  = errors.New("campaign send already in progress")
	ErrNoSubscribers       = errors.New("no subscribers found for target segments")
)

// BatcherStore defines the database operations required by Batcher
type BatcherStore interface {
	GetCampaignByID(ctx context.Context, id uuid.UUID) (store.Campaign, error)
	MarkCampaignSending(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkCampaignSent(ctx context.Context, id uuid.UUID, at time.Time, sent int) (store.Campaign, error)
	ListSentSubscriberIDs(ctx context.Context, campaignID uuid.UUID) ([]uuid.UUID, error)
	RecordDelivery(ctx context.Context, params store.RecordDeliveryParams) error
}

type SubscriberResolver interface {
	ResolveSubscribers(ctx context.Context, segmentIDs []uuid.UUID) ([]store.Subscriber, error)
}

type EmailSender interface {
	SendCampaignEmail(ctx context.Context, campaign store.Campaign, subscriber store.Subscriber) (string, error)
}

type PushSender interface {
	SendToDevice(ctx context.Context, token, notificationType string, payload delivery.Payload) (delivery.SendResult, error)
	SendToTopic(ctx context.Context, topic, notificationType string, payload delivery.Payload) (delivery.SendResult, error)
}

type EngagementTracker interface {
	TrackEngagement(ctx context.Context, req engagement.TrackEngagementRequest) (engagement.TrackEngagementResult, error)
}

// Locker guards a campaign against concurrent sends. Acquire returns a nil
// release func when the lock is held elsewhere.
type Locker interface {
	Acquire(ctx context.Context, key string) (func(context.Context) error, bool, error)
}

type Config struct {
	BatchSize  int
	BatchDelay time.Duration
}

type SendCampaignResult struct {
	CampaignID      uuid.UUID `json:"campaign_id"`
	TotalRecipients int       `json:"total_recipients"`
	Sent            int       `json:"sent"`
	Failed          int       `json:"failed"`
	Batches         int       `json:"batches"`
	// Skipped recipients already had a sent delivery from an earlier run.
	Skipped      int `json:"skipped"`
	TopicsSent   int `json:"topics_sent"`
	TopicsFailed int `json:"topics_failed"`
}

type Batcher struct {
	store       BatcherStore
	subscribers SubscriberResolver
	email       EmailSender
	push        PushSender
	tracker     EngagementTracker
	locker      Locker
	clock       scheduling.Clock
	metrics     *observability.Metrics
	logger      *observability.Logger
	batchSize   int
	batchDelay  time.Duration
}

type Dependencies struct {
	Store       BatcherStore
	Subscribers SubscriberResolver
	Email       EmailSender
	Push        PushSender
	Tracker     EngagementTracker
	Locker      Locker
	Clock       scheduling.Clock
	Metrics     *observability.Metrics
	Logger      *observability.Logger
}

func NewBatcher(deps Dependencies, cfg Config) *Batcher {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.BatchDelay < 0 {
		cfg.BatchDelay = DefaultBatchDelay
	}
	clock := deps.Clock
	if clock == nil {
		clock = scheduling.RealClock{}
	}
	return &Batcher{
		store:       deps.Store,
		subscribers: deps.Subscribers,
		email:       deps.Email,
		push:        deps.Push,
		tracker:     deps.Tracker,
		locker:      deps.Locker,
		clock:       clock,
		metrics:     deps.Metrics,
		logger:      deps.Logger,
		batchSize:   cfg.BatchSize,
		batchDelay:  cfg.BatchDelay,
	}
}

func lockKey(campaignID uuid.UUID) string {
	return "campaign:send:" + campaignID.String()
}

// SendCampaign delivers the campaign to every resolved subscriber that has not
// already received it. Recipient failures are counted, never returned.
func (b *Batcher) SendCampaign(ctx context.Context, campaignID uuid.UUID) (SendCampaignResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	if _, err := b.loadSendable(ctx, campaignID); err != nil {
		return SendCampaignResult{}, err
	}

	release, acquired, err := b.locker.Acquire(ctx, lockKey(campaignID))
	if err != nil {
		b.logger.Error(ctx, "failed to acquire campaign lock", err)
		return SendCampaignResult{}, fmt.Errorf("failed to acquire campaign lock: %w", err)
	}
	if !acquired {
		return SendCampaignResult{}, ErrCampaignInProgress
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			b.logger.Error(ctx, "failed to release campaign lock", err)
		}
	}()

	// Another holder may have finished the send between the first read and the lock.
	campaign, err := b.loadSendable(ctx, campaignID)
	if err != nil {
		return SendCampaignResult{}, err
	}

	var subscribers []store.Subscriber
	if campaign.TargetType != store.CampaignTargetTopics {
		subscribers, err = b.subscribers.ResolveSubscribers(ctx, campaign.SegmentIDs)
		if err != nil {
			b.logger.Error(ctx, "failed to resolve campaign subscribers", err)
			return SendCampaignResult{}, fmt.Errorf("failed to resolve subscribers: %w", err)
		}
	}
	topics := campaignTopics(campaign)
	if len(subscribers) == 0 && len(topics) == 0 {
		return SendCampaignResult{}, ErrNoSubscribers
	}

	if err := b.store.MarkCampaignSending(ctx, campaignID, b.clock.Now().UTC()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SendCampaignResult{}, ErrCampaignAlreadySent
		}
		b.logger.Error(ctx, "failed to mark campaign sending", err)
		return SendCampaignResult{}, fmt.Errorf("failed to mark campaign sending: %w", err)
	}

	sentIDs, err := b.store.ListSentSubscriberIDs(ctx, campaignID)
	if err != nil {
		b.logger.Error(ctx, "failed to list prior deliveries", err)
		return SendCampaignResult{}, fmt.Errorf("failed to list prior deliveries: %w", err)
	}
	alreadySent := make(map[uuid.UUID]struct{}, len(sentIDs))
	for _, id := range sentIDs {
		alreadySent[id] = struct{}{}
	}
	pending := make([]store.Subscriber, 0, len(subscribers))
	for _, sub := range subscribers {
		if _, ok := alreadySent[sub.ID]; !ok {
			pending = append(pending, sub)
		}
	}

	result := SendCampaignResult{
		CampaignID:      campaignID,
		TotalRecipients: len(subscribers),
		Skipped:         len(subscribers) - len(pending),
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "total_recipients", Value: result.TotalRecipients},
		observability.Field{Key: "skipped", Value: result.Skipped},
	)
	b.logger.Info(ctx, "campaign send started")

	if len(topics) > 0 {
		result.TopicsSent, result.TopicsFailed = b.sendTopics(ctx, campaign, topics)
	}

	for i, batch := range chunk(pending, b.batchSize) {
		if i > 0 {
			if err := b.clock.Sleep(ctx, b.batchDelay); err != nil {
				b.logger.Warn(ctx, "campaign send interrupted between batches")
				return result, fmt.Errorf("campaign send interrupted: %w", err)
			}
		} else if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("campaign send interrupted: %w", err)
		}

		started := b.clock.Now()
		sent, failed := b.sendBatch(ctx, campaign, batch)
		b.metrics.ObserveCampaignBatch(b.clock.Now().Sub(started), sent, failed)

		result.Batches++
		result.Sent += sent
		result.Failed += failed

		batchCtx := observability.WithFields(ctx,
			observability.Field{Key: "batch", Value: i + 1},
			observability.Field{Key: "batch_sent", Value: sent},
			observability.Field{Key: "batch_failed", Value: failed},
		)
		b.logger.Info(batchCtx, "campaign batch sent")
	}

	// Only recipients resolved for this run count, so an earlier run's rows for
	// subscribers who have since left the audience are excluded.
	if _, err := b.store.MarkCampaignSent(ctx, campaignID, b.clock.Now().UTC(), result.Skipped+result.Sent); err != nil {
		b.logger.Error(ctx, "failed to mark campaign sent", err)
		return result, fmt.Errorf("failed to mark campaign sent: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "sent", Value: result.Sent},
		observability.Field{Key: "failed", Value: result.Failed},
		observability.Field{Key: "batches", Value: result.Batches},
		observability.Field{Key: "topics_sent", Value: result.TopicsSent},
	)
	b.logger.Info(ctx, "campaign send completed")
	return result, nil
}

func (b *Batcher) loadSendable(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := b.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		b.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.Status == store.CampaignStatusSent {
		return store.Campaign{}, ErrCampaignAlreadySent
	}
	return campaign, nil
}

// sendBatch fires every send in the batch concurrently and waits for all of
// them to settle.
func (b *Batcher) sendBatch(ctx context.Context, campaign store.Campaign, batch []store.Subscriber) (sent, failed int) {
	outcomes := make([]error, len(batch))
	var eg errgroup.Group
	for i, sub := range batch {
		i, sub := i, sub
		eg.Go(func() error {
			outcomes[i] = b.sendOne(ctx, campaign, sub)
			return nil
		})
	}
	_ = eg.Wait()

	for _, err := range outcomes {
		if err != nil {
			failed++
		} else {
			sent++
		}
	}
	return sent, failed
}

func (b *Batcher) sendOne(ctx context.Context, campaign store.Campaign, sub store.Subscriber) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "subscriber_id", Value: sub.ID})
	campaignID := campaign.ID

	messageID, err := b.deliver(ctx, campaign, sub)
	if err != nil {
		b.logger.InfoWithError(ctx, "campaign recipient failed", err)
		errMsg := err.Error()
		b.recordDelivery(ctx, store.RecordDeliveryParams{
			CampaignID:   campaignID,
			SubscriberID: sub.ID,
			Status:       store.DeliveryStatusFailed,
			Error:        &errMsg,
		})
		b.track(ctx, engagement.TrackEngagementRequest{
			SubscriberID: sub.ID,
			CampaignID:   &campaignID,
			EventType:    store.EventTypeBounce,
			EventData:    map[string]interface{}{"error": errMsg, "error_kind": string(delivery.KindOf(err))},
		})
		return err
	}

	b.recordDelivery(ctx, store.RecordDeliveryParams{
		CampaignID:   campaignID,
		SubscriberID: sub.ID,
		Status:       store.DeliveryStatusSent,
		MessageID:    &messageID,
	})
	b.track(ctx, engagement.TrackEngagementRequest{
		SubscriberID: sub.ID,
		CampaignID:   &campaignID,
		EventType:    store.EventTypeDelivered,
		EventData:    map[string]interface{}{"message_id": messageID},
	})
	return nil
}

func (b *Batcher) deliver(ctx context.Context, campaign store.Campaign, sub store.Subscriber) (string, error) {
	switch campaign.Channel {
	case store.CampaignChannelPush:
		if b.push == nil {
			return "", delivery.Terminal("campaign.push", delivery.ErrNoChannel)
		}
		token := ""
		if sub.DeviceToken != nil {
			token = *sub.DeviceToken
		}
		payload := pushPayload(campaign)
		payload.Data["subscriberId"] = sub.ID.String()
		res, err := b.push.SendToDevice(ctx, token, pushType(campaign), payload)
		if err != nil {
			return "", err
		}
		return res.MessageID, nil
	default:
		if b.email == nil {
			return "", delivery.Terminal("campaign.email", delivery.ErrNoChannel)
		}
		return b.email.SendCampaignEmail(ctx, campaign, sub)
	}
}

// sendTopics fans the campaign out to each FCM topic. Topic sends have no
// per recipient record, so a resumed run sends them again.
func (b *Batcher) sendTopics(ctx context.Context, campaign store.Campaign, topics []string) (sent, failed int) {
	if b.push == nil {
		b.logger.Error(ctx, "campaign targets topics without a push channel", delivery.ErrNoChannel)
		return 0, len(topics)
	}
	for _, topic := range topics {
		topicCtx := observability.WithFields(ctx, observability.Field{Key: "topic", Value: topic})
		if _, err := b.push.SendToTopic(topicCtx, topic, pushType(campaign), pushPayload(campaign)); err != nil {
			b.logger.InfoWithError(topicCtx, "campaign topic send failed", err)
			failed++
			continue
		}
		sent++
	}
	return sent, failed
}

func campaignTopics(campaign store.Campaign) []string {
	if campaign.TargetType != store.CampaignTargetTopics && campaign.TargetType != store.CampaignTargetAll {
		return nil
	}
	return campaign.Topics
}

func pushType(campaign store.Campaign) string {
	if campaign.NotificationType != nil && *campaign.NotificationType != "" {
		return *campaign.NotificationType
	}
	return templates.TypePromotional
}

func pushPayload(campaign store.Campaign) delivery.Payload {
	return delivery.Payload{
		Title: campaign.Subject,
		Body:  campaign.Body,
		Data:  map[string]string{"campaignId": campaign.ID.String()},
	}
}

func (b *Batcher) recordDelivery(ctx context.Context, params store.RecordDeliveryParams) {
	if err := b.store.RecordDelivery(ctx, params); err != nil {
		b.logger.Error(ctx, "failed to record campaign delivery", err)
	}
}

func (b *Batcher) track(ctx context.Context, req engagement.TrackEngagementRequest) {
	if _, err := b.tracker.TrackEngagement(ctx, req); err != nil {
		b.logger.Error(ctx, "failed to track campaign engagement", err)
	}
}

func chunk(subs []store.Subscriber, size int) [][]store.Subscriber {
	var batches [][]store.Subscriber
	for start := 0; start < len(subs); start += size {
		end := start + size
		if end > len(subs) {
			end = len(subs)
		}
		batches = append(batches, subs[start:end])
	}
	return batches
}
