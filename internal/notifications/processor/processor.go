package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"notify-server/internal/delivery"
	"notify-server/internal/observability"
	"notify-server/internal/store"
)

type Gateway interface {
	SendToDevice(ctx context.Context, token, notificationType string, payload delivery.Payload) (delivery.SendResult, error)
	SendToMultipleDevices(ctx context.Context, tokens []string, notificationType string, payload delivery.Payload) (delivery.MulticastResult, error)
	SendToTopic(ctx context.Context, topic, notificationType string, payload delivery.Payload) (delivery.SendResult, error)
}

type DeviceStore interface {
	ListDeviceTokensByUser(ctx context.Context, userID string, pushableOnly bool) ([]store.DeviceToken, error)
}

var (
	ErrNoDevices    = errors.New("user has no active push enabled devices")
	ErrUserRequired = errors.New("user id is required")
)

type NotificationProcessor struct {
	gateway Gateway
	devices DeviceStore
	logger  *observability.Logger
}

func New(gateway Gateway, devices DeviceStore, logger *observability.Logger) NotificationProcessor {
	return NotificationProcessor{
		gateway: gateway,
		devices: devices,
		logger:  logger,
	}
}

func (p *NotificationProcessor) SendToDevice(ctx context.Context, token, notificationType string, payload delivery.Payload) (delivery.SendResult, error) {
	return p.gateway.SendToDevice(ctx, token, notificationType, payload)
}

func (p *NotificationProcessor) SendToMultipleDevices(ctx context.Context, tokens []string, notificationType string, payload delivery.Payload) (delivery.MulticastResult, error) {
	return p.gateway.SendToMultipleDevices(ctx, tokens, notificationType, payload)
}

func (p *NotificationProcessor) SendToTopic(ctx context.Context, topic, notificationType string, payload delivery.Payload) (delivery.SendResult, error) {
	return p.gateway.SendToTopic(ctx, topic, notificationType, payload)
}

// SendToUser multicasts to every active, push enabled token of the user.
func (p *NotificationProcessor) SendToUser(ctx context.Context, userID, notificationType string, payload delivery.Payload) (delivery.MulticastResult, error) {
	if userID == "" {
		return delivery.MulticastResult{}, ErrUserRequired
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID},
		observability.Field{Key: "notification_type", Value: notificationType},
	)

	devices, err := p.devices.ListDeviceTokensByUser(ctx, userID, true)
	if err != nil {
		p.logger.Error(ctx, "failed to list user device tokens", err)
		return delivery.MulticastResult{}, err
	}
	if len(devices) == 0 {
		p.logger.Info(ctx, "user has no pushable devices")
		return delivery.MulticastResult{}, ErrNoDevices
	}

	tokens := make([]string, 0, len(devices))
	for _, d := range devices {
		tokens = append(tokens, d.Token)
	}
	return p.gateway.SendToMultipleDevices(ctx, tokens, notificationType, payload)
}
