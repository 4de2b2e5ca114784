package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"
	"time"

	engagement "notify-server/internal/engagement/processor"
	"notify-server/internal/observability"
	"notify-server/internal/scheduling"
	"notify-server/internal/store"

	"github.com/google/uuid"
)

// SubscriberStore defines the database operations required by SubscriberProcessor
type SubscriberStore interface {
	CreateSubscriber(ctx context.Context, params store.CreateSubscriberParams) (store.Subscriber, error)
	GetSubscriberByID(ctx context.Context, id uuid.UUID) (store.Subscriber, error)
	GetSubscriberByEmail(ctx context.Context, email string) (store.Subscriber, error)
	UnsubscribeSubscriber(ctx context.Context, email string, reason *string, at time.Time) (store.Subscriber, error)
	AddSubscriberToSegments(ctx context.Context, id uuid.UUID, segmentIDs []uuid.UUID) (store.Subscriber, error)
	UpdateSubscriber(ctx context.Context, id uuid.UUID, params store.UpdateSubscriberParams) (store.Subscriber, error)
	GetSegmentsByIDs(ctx context.Context, ids []uuid.UUID) ([]store.Segment, error)
}

type EngagementTracker interface {
	TrackEngagement(ctx context.Context, req engagement.TrackEngagementRequest) (engagement.TrackEngagementResult, error)
}

// LifecycleMailer sends the emails that accompany subscribe and unsubscribe.
type LifecycleMailer interface {
	SendWelcomeEmail(ctx context.Context, subscriber store.Subscriber) error
	SendUnsubscribeConfirmation(ctx context.Context, email string) error
}

var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrSubscriberExists   = errors.New("subscriber already exists")
	ErrEmailRequired      = errors.New("email is required")
	ErrSegmentNotFound    = errors.New("segment not found")
	ErrNothingToUpdate    = errors.New("no subscriber fields to update")
)

type SubscriberProcessor struct {
	store   SubscriberStore
	tracker EngagementTracker
	mailer  LifecycleMailer
	clock   scheduling.Clock
	logger  *observability.Logger
}

// New creates a subscriber processor. mailer may be nil, in which case no
// lifecycle emails are sent.
func New(store SubscriberStore, tracker EngagementTracker, mailer LifecycleMailer, clock scheduling.Clock, logger *observability.Logger) SubscriberProcessor {
	if clock == nil {
		clock = scheduling.RealClock{}
	}
	return SubscriberProcessor{
		store:   store,
		tracker: tracker,
		mailer:  mailer,
		clock:   clock,
		logger:  logger,
	}
}

type AddSubscriberRequest struct {
	Email       string
	FirstName   *string
	LastName    *string
	DeviceToken *string
	SegmentIDs  []uuid.UUID
	Tags        []string
	Metadata    map[string]interface{}
	SendWelcome bool
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (p *SubscriberProcessor) AddSubscriber(ctx context.Context, req AddSubscriberRequest) (store.Subscriber, error) {
	email := normalizeEmail(req.Email)
	if email == "" {
		return store.Subscriber{}, ErrEmailRequired
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	sub, err := p.store.CreateSubscriber(ctx, store.CreateSubscriberParams{
		Email:       email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DeviceToken: req.DeviceToken,
		SegmentIDs:  req.SegmentIDs,
		Tags:        req.Tags,
		Metadata:    store.JSONB(req.Metadata),
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return store.Subscriber{}, ErrSubscriberExists
		}
		p.logger.Error(ctx, "failed to create subscriber", err)
		return store.Subscriber{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "subscriber_id", Value: sub.ID})
	p.logger.Info(ctx, "subscriber added")

	if req.SendWelcome && p.mailer != nil {
		if err := p.mailer.SendWelcomeEmail(ctx, sub); err != nil {
			p.logger.Error(ctx, "failed to send welcome email", err)
		}
	}

	return sub, nil
}

func (p *SubscriberProcessor) GetSubscriber(ctx context.Context, subscriberID uuid.UUID) (store.Subscriber, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "subscriber_id", Value: subscriberID})

	sub, err := p.store.GetSubscriberByID(ctx, subscriberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Subscriber{}, ErrSubscriberNotFound
		}
		p.logger.Error(ctx, "failed to get subscriber", err)
		return store.Subscriber{}, err
	}
	return sub, nil
}

// UpdateSubscriberRequest changes profile fields. Nil fields keep their value
// and Metadata keys are merged into the stored metadata. Email and status are
// not editable here.
type UpdateSubscriberRequest struct {
	FirstName   *string
	LastName    *string
	DeviceToken *string
	Tags        []string
	Metadata    map[string]interface{}
}

func (p *SubscriberProcessor) UpdateSubscriber(ctx context.Context, subscriberID uuid.UUID, req UpdateSubscriberRequest) (store.Subscriber, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "subscriber_id", Value: subscriberID})
	if req.FirstName == nil && req.LastName == nil && req.DeviceToken == nil && req.Tags == nil && len(req.Metadata) == 0 {
		return store.Subscriber{}, ErrNothingToUpdate
	}

	params := store.UpdateSubscriberParams{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DeviceToken: req.DeviceToken,
		Tags:        req.Tags,
	}
	if len(req.Metadata) > 0 {
		params.Metadata = store.JSONB(req.Metadata)
	}

	sub, err := p.store.UpdateSubscriber(ctx, subscriberID, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Subscriber{}, ErrSubscriberNotFound
		}
		p.logger.Error(ctx, "failed to update subscriber", err)
		return store.Subscriber{}, err
	}
	p.logger.Info(ctx, "subscriber updated")
	return sub, nil
}

// Unsubscribe marks the subscriber unsubscribed and records an unsubscribe
// engagement event with no campaign. Unsubscribing twice is a no-op.
func (p *SubscriberProcessor) Unsubscribe(ctx context.Context, email string, reason *string) (store.Subscriber, error) {
	email = normalizeEmail(email)
	if email == "" {
		return store.Subscriber{}, ErrEmailRequired
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	existing, err := p.store.GetSubscriberByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Subscriber{}, ErrSubscriberNotFound
		}
		p.logger.Error(ctx, "failed to get subscriber", err)
		return store.Subscriber{}, err
	}
	return p.unsubscribe(ctx, existing, nil, reason)
}

// UnsubscribeFromLink unsubscribes the subscriber a signed link was issued to.
// The event is attributed to the campaign the link came from, if any.
func (p *SubscriberProcessor) UnsubscribeFromLink(ctx context.Context, subscriberID uuid.UUID, campaignID *uuid.UUID) (store.Subscriber, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "subscriber_id", Value: subscriberID})

	existing, err := p.store.GetSubscriberByID(ctx, subscriberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Subscriber{}, ErrSubscriberNotFound
		}
		p.logger.Error(ctx, "failed to get subscriber", err)
		return store.Subscriber{}, err
	}
	reason := "unsubscribe_link"
	return p.unsubscribe(ctx, existing, campaignID, &reason)
}

func (p *SubscriberProcessor) unsubscribe(ctx context.Context, existing store.Subscriber, campaignID *uuid.UUID, reason *string) (store.Subscriber, error) {
	if existing.Status == store.SubscriberStatusUnsubscribed {
		return existing, nil
	}

	now := p.clock.Now().UTC()
	sub, err := p.store.UnsubscribeSubscriber(ctx, existing.Email, reason, now)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Subscriber{}, ErrSubscriberNotFound
		}
		p.logger.Error(ctx, "failed to unsubscribe subscriber", err)
		return store.Subscriber{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "subscriber_id", Value: sub.ID})

	data := map[string]interface{}{}
	if reason != nil {
		data["reason"] = *reason
	}
	result, err := p.tracker.TrackEngagement(ctx, engagement.TrackEngagementRequest{
		SubscriberID: sub.ID,
		CampaignID:   campaignID,
		EventType:    store.EventTypeUnsubscribe,
		EventData:    data,
		Timestamp:    &now,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to track unsubscribe event", err)
	} else {
		sub.EngagementScore = result.EngagementScore
	}

	if p.mailer != nil {
		if err := p.mailer.SendUnsubscribeConfirmation(ctx, existing.Email); err != nil {
			p.logger.Error(ctx, "failed to send unsubscribe confirmation", err)
		}
	}

	p.logger.Info(ctx, "subscriber unsubscribed")
	return sub, nil
}

// AddToSegments adds explicit memberships. Every segment must exist.
func (p *SubscriberProcessor) AddToSegments(ctx context.Context, subscriberID uuid.UUID, segmentIDs []uuid.UUID) (store.Subscriber, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "subscriber_id", Value: subscriberID},
		observability.Field{Key: "segment_count", Value: len(segmentIDs)},
	)

	if len(segmentIDs) > 0 {
		segments, err := p.store.GetSegmentsByIDs(ctx, segmentIDs)
		if err != nil {
			p.logger.Error(ctx, "failed to load segments", err)
			return store.Subscriber{}, err
		}
		if len(segments) != len(uniqueIDs(segmentIDs)) {
			return store.Subscriber{}, ErrSegmentNotFound
		}
	}

	sub, err := p.store.AddSubscriberToSegments(ctx, subscriberID, segmentIDs)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Subscriber{}, ErrSubscriberNotFound
		}
		p.logger.Error(ctx, "failed to add subscriber to segments", err)
		return store.Subscriber{}, err
	}
	return sub, nil
}

func uniqueIDs(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
