package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"notify-server/internal/delivery"
	"notify-server/internal/observability"
	"notify-server/internal/scheduling"
	"notify-server/internal/store"
)

// DeviceStore defines the database operations required by DeviceProcessor
type DeviceStore interface {
	UpsertDeviceToken(ctx context.Context, params store.UpsertDeviceTokenParams) (store.DeviceToken, error)
	DeleteDeviceToken(ctx context.Context, userID, token string) error
	ListDeviceTokensByUser(ctx context.Context, userID string, pushableOnly bool) ([]store.DeviceToken, error)
	DeleteInactiveDeviceTokens(ctx context.Context, before time.Time) (int64, error)
}

// TopicManager changes provider topic memberships.
type TopicManager interface {
	SubscribeToTopic(ctx context.Context, tokens []string, topic string) (delivery.TopicResult, error)
	UnsubscribeFromTopic(ctx context.Context, tokens []string, topic string) (delivery.TopicResult, error)
}

var (
	ErrInvalidPlatform = errors.New("platform must be ios or android")
	ErrTokenRequired   = errors.New("device token is required")
	ErrUserRequired    = errors.New("user id is required")
	ErrDeviceNotFound  = errors.New("device token not found")
	ErrTopicRequired   = errors.New("topic is required")
)

// DefaultInactiveRetention is how long deactivated tokens are kept before cleanup.
const DefaultInactiveRetention = 30 * 24 * time.Hour

type DeviceProcessor struct {
	store  DeviceStore
	topics TopicManager
	clock  scheduling.Clock
	logger *observability.Logger
}

func New(store DeviceStore, topics TopicManager, clock scheduling.Clock, logger *observability.Logger) DeviceProcessor {
	if clock == nil {
		clock = scheduling.RealClock{}
	}
	return DeviceProcessor{
		store:  store,
		topics: topics,
		clock:  clock,
		logger: logger,
	}
}

type RegisterDeviceTokenRequest struct {
	UserID           string
	Token            string
	Platform         string
	PushEnabled      bool
	BiometricEnabled bool
}

// RegisterDeviceToken stores a token for the user. Registering a known token
// again reactivates it and updates its settings.
func (p *DeviceProcessor) RegisterDeviceToken(ctx context.Context, req RegisterDeviceTokenRequest) (store.DeviceToken, error) {
	platform := strings.ToLower(strings.TrimSpace(req.Platform))
	switch {
	case req.UserID == "":
		return store.DeviceToken{}, ErrUserRequired
	case req.Token == "":
		return store.DeviceToken{}, ErrTokenRequired
	case platform != store.PlatformIOS && platform != store.PlatformAndroid:
		return store.DeviceToken{}, ErrInvalidPlatform
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: req.UserID},
		observability.Field{Key: "platform", Value: platform},
	)

	token, err := p.store.UpsertDeviceToken(ctx, store.UpsertDeviceTokenParams{
		UserID:           req.UserID,
		Token:            req.Token,
		Platform:         platform,
		PushEnabled:      req.PushEnabled,
		BiometricEnabled: req.BiometricEnabled,
		LastUsedAt:       p.clock.Now().UTC(),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to register device token", err)
		return store.DeviceToken{}, err
	}

	p.logger.Info(ctx, "device token registered")
	return token, nil
}

func (p *DeviceProcessor) UnregisterDeviceToken(ctx context.Context, userID, token string) error {
	if userID == "" {
		return ErrUserRequired
	}
	if token == "" {
		return ErrTokenRequired
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	if err := p.store.DeleteDeviceToken(ctx, userID, token); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrDeviceNotFound
		}
		p.logger.Error(ctx, "failed to unregister device token", err)
		return err
	}
	p.logger.Info(ctx, "device token unregistered")
	return nil
}

func (p *DeviceProcessor) ListDeviceTokens(ctx context.Context, userID string) ([]store.DeviceToken, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	tokens, err := p.store.ListDeviceTokensByUser(ctx, userID, false)
	if err != nil {
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID}),
			"failed to list device tokens", err)
		return nil, err
	}
	return tokens, nil
}

func (p *DeviceProcessor) SubscribeToTopic(ctx context.Context, tokens []string, topic string) (delivery.TopicResult, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return delivery.TopicResult{}, ErrTopicRequired
	}
	if len(tokens) == 0 {
		return delivery.TopicResult{}, ErrTokenRequired
	}
	return p.topics.SubscribeToTopic(ctx, tokens, topic)
}

func (p *DeviceProcessor) UnsubscribeFromTopic(ctx context.Context, tokens []string, topic string) (delivery.TopicResult, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return delivery.TopicResult{}, ErrTopicRequired
	}
	if len(tokens) == 0 {
		return delivery.TopicResult{}, ErrTokenRequired
	}
	return p.topics.UnsubscribeFromTopic(ctx, tokens, topic)
}

// CleanupInactiveTokens deletes tokens that were deactivated more than
// olderThan ago and returns how many were removed.
func (p *DeviceProcessor) CleanupInactiveTokens(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		olderThan = DefaultInactiveRetention
	}
	cutoff := p.clock.Now().UTC().Add(-olderThan)
	ctx = observability.WithFields(ctx, observability.Field{Key: "cutoff", Value: cutoff})

	removed, err := p.store.DeleteInactiveDeviceTokens(ctx, cutoff)
	if err != nil {
		p.logger.Error(ctx, "failed to clean up inactive device tokens", err)
		return 0, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "removed", Value: removed}),
		"inactive device tokens cleaned up")
	return removed, nil
}
