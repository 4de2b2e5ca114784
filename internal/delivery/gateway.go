// Package delivery is the push delivery gateway: it resolves templates, builds
// provider messages, keeps the notification log and classifies failures.
package delivery

//go:generate go run go.uber.org/mock/mockgen@latest -source=gateway.go -destination=mocks_test.go -package=delivery

import (
	"context"
	"errors"
	"time"

	"notify-server/internal/observability"
	"notify-server/internal/scheduling"
	"notify-server/internal/store"
	"notify-server/internal/templates"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const defaultMulticastConcurrency = 10

// PushMessage is a provider neutral push payload. Exactly one of Token or Topic is set.
type PushMessage struct {
	Token       string
	Topic       string
	Title       string
	Body        string
	ImageURL    string
	Icon        string
	Color       string
	Sound       string
	ClickAction string
	// Type is the notification type; it becomes the android tag and APNs category.
	Type string
	Data map[string]string
}

// TopicResult reports per token outcomes of a topic membership change.
type TopicResult struct {
	SuccessCount int          `json:"success_count"`
	FailureCount int          `json:"failure_count"`
	Errors       []TopicError `json:"errors,omitempty"`
}

type TopicError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// Payload carries optional overrides and caller data for a send.
type Payload struct {
	Title       string
	Body        string
	ImageURL    string
	ClickAction string
	Data        map[string]string
}

type SendResult struct {
	Success        bool   `json:"success"`
	NotificationID string `json:"notification_id"`
	MessageID      string `json:"message_id,omitempty"`
	Error          string `json:"error,omitempty"`
}

type MulticastResult struct {
	SuccessCount int          `json:"success_count"`
	FailureCount int          `json:"failure_count"`
	Responses    []SendResult `json:"responses"`
}

type PushSender interface {
	Send(ctx context.Context, msg PushMessage) (string, error)
	SubscribeToTopic(ctx context.Context, tokens []string, topic string) (TopicResult, error)
	UnsubscribeFromTopic(ctx context.Context, tokens []string, topic string) (TopicResult, error)
}

type GatewayStore interface {
	CreateNotificationLog(ctx context.Context, params store.CreateNotificationLogParams) (store.NotificationLog, error)
	UpdateNotificationLogStatus(ctx context.Context, id uuid.UUID, status string, messageID, errMsg *string) error
	DeactivateDeviceToken(ctx context.Context, token string) (int64, error)
	CreateAuditLog(ctx context.Context, category, severity string, details store.JSONB) error
	AdjustTopicSubscriberCount(ctx context.Context, name string, delta int) (store.Topic, error)
}

type Gateway struct {
	push        PushSender
	store       GatewayStore
	metrics     *observability.Metrics
	clock       scheduling.Clock
	logger      *observability.Logger
	concurrency int
}

func New(push PushSender, store GatewayStore, metrics *observability.Metrics, clock scheduling.Clock, logger *observability.Logger) Gateway {
	if clock == nil {
		clock = scheduling.RealClock{}
	}
	return Gateway{
		push:        push,
		store:       store,
		metrics:     metrics,
		clock:       clock,
		logger:      logger,
		concurrency: defaultMulticastConcurrency,
	}
}

// SendToDevice sends one push notification to a device token.
func (g Gateway) SendToDevice(ctx context.Context, token, notificationType string, payload Payload) (SendResult, error) {
	if token == "" {
		return SendResult{Error: ErrNoToken.Error()}, Terminal("send_to_device", ErrNoToken)
	}
	return g.send(ctx, store.NotificationTargetDevice, token, notificationType, payload)
}

// SendToTopic broadcasts one push notification to a provider topic.
func (g Gateway) SendToTopic(ctx context.Context, topic, notificationType string, payload Payload) (SendResult, error) {
	if topic == "" {
		return SendResult{Error: ErrNoTopic.Error()}, Terminal("send_to_topic", ErrNoTopic)
	}
	return g.send(ctx, store.NotificationTargetTopic, topic, notificationType, payload)
}

// SendToMultipleDevices sends to every token concurrently. Per token failures
// are reported in the positional responses, never retried.
func (g Gateway) SendToMultipleDevices(ctx context.Context, tokens []string, notificationType string, payload Payload) (MulticastResult, error) {
	if len(tokens) == 0 {
		return MulticastResult{}, Terminal("send_to_multiple_devices", ErrNoTokens)
	}

	responses := make([]SendResult, len(tokens))
	var eg errgroup.Group
	eg.SetLimit(g.concurrency)
	for i, token := range tokens {
		i, token := i, token
		eg.Go(func() error {
			result, _ := g.SendToDevice(ctx, token, notificationType, payload)
			responses[i] = result
			return nil
		})
	}
	_ = eg.Wait()

	result := MulticastResult{Responses: responses}
	for _, r := range responses {
		if r.Success {
			result.SuccessCount++
		} else {
			result.FailureCount++
		}
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "notification_type", Value: notificationType},
		observability.Field{Key: "success_count", Value: result.SuccessCount},
		observability.Field{Key: "failure_count", Value: result.FailureCount},
	)
	g.logger.Info(ctx, "multicast notification sent")
	return result, nil
}

func (g Gateway) SubscribeToTopic(ctx context.Context, tokens []string, topic string) (TopicResult, error) {
	return g.changeTopic(ctx, tokens, topic, true)
}

func (g Gateway) UnsubscribeFromTopic(ctx context.Context, tokens []string, topic string) (TopicResult, error) {
	return g.changeTopic(ctx, tokens, topic, false)
}

func (g Gateway) changeTopic(ctx context.Context, tokens []string, topic string, subscribe bool) (TopicResult, error) {
	if topic == "" {
		return TopicResult{}, Terminal("topic", ErrNoTopic)
	}
	if len(tokens) == 0 {
		return TopicResult{}, Terminal("topic", ErrNoTokens)
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "topic", Value: topic},
		observability.Field{Key: "subscribe", Value: subscribe},
	)

	var (
		result TopicResult
		err    error
	)
	if subscribe {
		result, err = g.push.SubscribeToTopic(ctx, tokens, topic)
	} else {
		result, err = g.push.UnsubscribeFromTopic(ctx, tokens, topic)
	}
	if err != nil {
		g.logger.Error(ctx, "failed to change topic membership", err)
		return TopicResult{}, err
	}

	delta := result.SuccessCount
	if !subscribe {
		delta = -delta
	}
	if delta != 0 {
		if _, err := g.store.AdjustTopicSubscriberCount(ctx, topic, delta); err != nil {
			g.logger.Error(ctx, "failed to update topic subscriber count", err)
		}
	}
	return result, nil
}

func (g Gateway) send(ctx context.Context, targetType, target, notificationType string, payload Payload) (SendResult, error) {
	tmpl := templates.Resolve(notificationType)
	notificationID := uuid.NewString()

	title := tmpl.Title
	if payload.Title != "" {
		title = payload.Title
	}
	body := tmpl.Body
	if payload.Body != "" {
		body = payload.Body
	}

	data := make(map[string]string, len(payload.Data)+3)
	for k, v := range payload.Data {
		data[k] = v
	}
	data["type"] = notificationType
	data["notificationId"] = notificationID
	data["timestamp"] = g.clock.Now().UTC().Format(time.RFC3339)

	msg := PushMessage{
		Title:       title,
		Body:        body,
		ImageURL:    payload.ImageURL,
		Icon:        tmpl.Icon,
		Color:       tmpl.Color,
		Sound:       tmpl.Sound,
		ClickAction: payload.ClickAction,
		Type:        notificationType,
		Data:        data,
	}
	if targetType == store.NotificationTargetTopic {
		msg.Topic = target
	} else {
		msg.Token = target
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "notification_id", Value: notificationID},
		observability.Field{Key: "notification_type", Value: notificationType},
		observability.Field{Key: "target_type", Value: targetType},
	)
	g.logger.Info(ctx, "sending push notification")

	logData := make(store.JSONB, len(data))
	for k, v := range data {
		logData[k] = v
	}
	logEntry, err := g.store.CreateNotificationLog(ctx, store.CreateNotificationLogParams{
		TargetType:       targetType,
		Target:           target,
		NotificationType: notificationType,
		Title:            title,
		Body:             body,
		Data:             logData,
	})
	if err != nil {
		g.logger.Error(ctx, "failed to create notification log", err)
	}

	messageID, sendErr := g.push.Send(ctx, msg)
	if sendErr != nil {
		var typed *Error
		if !errors.As(sendErr, &typed) {
			sendErr = Retryable("push.send", sendErr)
		}
		g.metrics.ObserveNotification("push", false)
		g.logger.Error(ctx, "failed to send push notification", sendErr)
		g.finishLog(ctx, logEntry.ID, store.NotificationStatusFailure, nil, sendErr.Error())

		if targetType == store.NotificationTargetDevice && IsInvalidToken(sendErr) {
			g.deactivateToken(ctx, target, sendErr)
		}
		return SendResult{NotificationID: notificationID, Error: sendErr.Error()}, sendErr
	}

	g.metrics.ObserveNotification("push", true)
	g.logger.Info(ctx, "push notification sent")
	g.finishLog(ctx, logEntry.ID, store.NotificationStatusSuccess, &messageID, "")
	return SendResult{Success: true, NotificationID: notificationID, MessageID: messageID}, nil
}

func (g Gateway) finishLog(ctx context.Context, id uuid.UUID, status string, messageID *string, errMsg string) {
	if id == uuid.Nil {
		return
	}
	var errPtr *string
	if errMsg != "" {
		errPtr = &errMsg
	}
	if err := g.store.UpdateNotificationLogStatus(ctx, id, status, messageID, errPtr); err != nil {
		g.logger.Error(ctx, "failed to update notification log", err)
	}
}

func (g Gateway) deactivateToken(ctx context.Context, token string, cause error) {
	rows, err := g.store.DeactivateDeviceToken(ctx, token)
	if err != nil {
		g.logger.Error(ctx, "failed to deactivate invalid device token", err)
		return
	}
	if rows == 0 {
		return
	}
	g.logger.Warn(ctx, "deactivated invalid device token")
	err = g.store.CreateAuditLog(ctx, store.AuditCategoryDevice, store.AuditSeverityWarning, store.JSONB{
		"action": "token_deactivated",
		"reason": cause.Error(),
		"rows":   rows,
	})
	if err != nil {
		g.logger.Error(ctx, "failed to write audit log", err)
	}
}
