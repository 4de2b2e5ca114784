package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"notify-server/internal/observability"

	"github.com/segmentio/kafka-go"
)

// EventMessage is the engagement event envelope carried on the engagement topic.
type EventMessage struct {
	ID           string                 `json:"id"`
	Type         string                 `json:"type"`
	SubscriberID string                 `json:"subscriber_id"`
	CampaignID   *string                `json:"campaign_id,omitempty"`
	Data         map[string]interface{} `json:"data"`
	Timestamp    string                 `json:"timestamp"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer handles publishing events to Kafka
type Producer struct {
	writer messageWriter
	logger *observability.Logger
}

// ProducerConfig contains configuration for Kafka producer
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:        kafka.TCP(config.Brokers...),
		Topic:       config.Topic,
		Balancer:    &kafka.Hash{},
		Async:       false,
		Compression: kafka.Snappy,
		BatchSize:   100,
	}

	return &Producer{
		writer: writer,
		logger: logger,
	}
}

// PublishEvent publishes an event keyed by subscriber so one subscriber's
// events stay ordered within a partition.
func (p *Producer) PublishEvent(ctx context.Context, event EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "event_id", Value: event.ID},
	)

	msg, err := toMessage(event, nil)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal event", err)
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(ctx, "failed to write message to kafka", err)
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	p.logger.Debug(ctx, fmt.Sprintf("published event %s to kafka", event.Type))
	return nil
}

// PublishEvents publishes multiple events in batch
func (p *Producer) PublishEvents(ctx context.Context, events []EventMessage) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		msg, err := toMessage(event, nil)
		if err != nil {
			p.logger.Error(ctx, fmt.Sprintf("failed to marshal event %s", event.ID), err)
			continue
		}
		messages = append(messages, msg)
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		p.logger.Error(ctx, "failed to write messages to kafka", err)
		return fmt.Errorf("failed to write messages to kafka: %w", err)
	}

	p.logger.Info(ctx, fmt.Sprintf("published %d events to kafka", len(messages)))
	return nil
}

// PublishDeadLetter writes an event that could not be processed, with the
// failure and attempt count in the headers.
func (p *Producer) PublishDeadLetter(ctx context.Context, event EventMessage, cause error, attempts int) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "attempts", Value: attempts},
	)

	msg, err := toMessage(event, []kafka.Header{
		{Key: "error", Value: []byte(cause.Error())},
		{Key: "attempts", Value: []byte(strconv.Itoa(attempts))},
	})
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(ctx, "failed to write dead letter", err)
		return fmt.Errorf("failed to write dead letter: %w", err)
	}

	p.logger.Warn(ctx, "event moved to dead letter topic")
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}

func toMessage(event EventMessage, extra []kafka.Header) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	headers := []kafka.Header{
		{Key: "event_type", Value: []byte(event.Type)},
		{Key: "subscriber_id", Value: []byte(event.SubscriberID)},
	}
	return kafka.Message{
		Key:     []byte(event.SubscriberID),
		Value:   value,
		Headers: append(headers, extra...),
	}, nil
}
