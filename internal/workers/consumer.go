package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"notify-server/internal/observability"
	"notify-server/internal/scheduling"

	kafkago "github.com/segmentio/kafka-go"
)

// ConsumerConfig holds configuration for the Kafka event consumer.
type ConsumerConfig struct {
	// Brokers is the list of Kafka broker addresses.
	Brokers []string

	// ConsumerGroup is the Kafka consumer group ID.
	ConsumerGroup string

	// Topic is the Kafka topic to consume from.
	Topic string

	// NumWorkers is the number of concurrent workers.
	NumWorkers int

	// QueueSize is the buffer size for the event channel.
	QueueSize int

	// DrainTimeout is the maximum time to wait for in-flight events during shutdown.
	DrainTimeout time.Duration

	// MaxAttempts bounds how often one event is processed before it is dead-lettered.
	MaxAttempts int

	// RetryBackoff is the wait after the first failed attempt; it doubles per attempt.
	RetryBackoff time.Duration
}

// DefaultConsumerConfig returns sensible defaults for a consumer.
func DefaultConsumerConfig(brokers []string, consumerGroup, topic string) ConsumerConfig {
	return ConsumerConfig{
		Brokers:       brokers,
		ConsumerGroup: consumerGroup,
		Topic:         topic,
		NumWorkers:    10,
		QueueSize:     100,
		DrainTimeout:  30 * time.Second,
		MaxAttempts:   3,
		RetryBackoff:  500 * time.Millisecond,
	}
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// eventWithMsg pairs an event with its Kafka message for offset tracking.
type eventWithMsg struct {
	event EventMessage
	msg   kafkago.Message
}

// consumer implements the EventConsumer interface.
type consumer struct {
	config      ConsumerConfig
	reader      messageReader
	processor   EventProcessor
	deadLetters DeadLetterPublisher
	clock       scheduling.Clock
	logger      *observability.Logger
	offsets     *offsetTracker

	// Event channel for worker distribution
	eventCh chan eventWithMsg

	// Lifecycle management
	cancelFetch context.CancelFunc // cancels the fetch context
	doneCh      chan struct{}      // closed when Start() returns
	stopping    atomic.Bool
	stopOnce    sync.Once
}

// NewConsumer creates a new Kafka event consumer. deadLetters may be nil, in
// which case exhausted events and everything after them on the same partition
// are left uncommitted.
func NewConsumer(
	config ConsumerConfig,
	processor EventProcessor,
	deadLetters DeadLetterPublisher,
	clock scheduling.Clock,
	logger *observability.Logger,
) EventConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.ConsumerGroup,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		StartOffset:    kafkago.FirstOffset,
		CommitInterval: 0, // Manual commit
	})
	return newConsumer(config, reader, processor, deadLetters, clock, logger)
}

func newConsumer(
	config ConsumerConfig,
	reader messageReader,
	processor EventProcessor,
	deadLetters DeadLetterPublisher,
	clock scheduling.Clock,
	logger *observability.Logger,
) *consumer {
	if config.NumWorkers <= 0 {
		config.NumWorkers = 10
	}
	if config.QueueSize <= 0 {
		config.QueueSize = 100
	}
	if config.DrainTimeout <= 0 {
		config.DrainTimeout = 30 * time.Second
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 1
	}
	if clock == nil {
		clock = scheduling.RealClock{}
	}

	c := &consumer{
		config:      config,
		reader:      reader,
		processor:   processor,
		deadLetters: deadLetters,
		clock:       clock,
		logger:      logger,
		offsets:     newOffsetTracker(),
		eventCh:     make(chan eventWithMsg, config.QueueSize),
		doneCh:      make(chan struct{}),
	}

	ctx := observability.WithFields(context.Background(),
		observability.Field{Key: "processor", Value: processor.Name()},
		observability.Field{Key: "consumer_group", Value: config.ConsumerGroup},
		observability.Field{Key: "topic", Value: config.Topic},
		observability.Field{Key: "num_workers", Value: config.NumWorkers},
	)
	logger.Info(ctx, fmt.Sprintf("Initialized consumer for %s processor", processor.Name()))

	return c
}

// Start begins consuming events and blocks until Stop is called.
func (c *consumer) Start(ctx context.Context) error {
	defer close(c.doneCh)

	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	c.cancelFetch = cancel
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "consumer_group", Value: c.config.ConsumerGroup},
		observability.Field{Key: "topic", Value: c.config.Topic},
		observability.Field{Key: "processor", Value: c.processor.Name()},
	)

	c.logger.Info(ctx, fmt.Sprintf("Starting consumer for %s with %d workers",
		c.processor.Name(), c.config.NumWorkers))

	// Workers process until eventCh is closed; in-flight events are not
	// cancelled by Stop.
	workerCtx := context.WithoutCancel(ctx)
	var workerWg sync.WaitGroup
	for i := 0; i < c.config.NumWorkers; i++ {
		workerWg.Add(1)
		go c.worker(&workerWg, i, workerCtx)
	}

	c.fetchLoop(ctx)

	close(c.eventCh)

	done := make(chan struct{})
	go func() {
		workerWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.logger.Info(ctx, "All workers finished processing")
	case <-time.After(c.config.DrainTimeout):
		c.logger.Warn(ctx, "Drain timeout - some events may not have completed")
	}

	if err := c.reader.Close(); err != nil {
		c.logger.Error(ctx, "Failed to close Kafka reader", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("Consumer stopped for %s", c.processor.Name()))
	return nil
}

// fetchLoop fetches messages from Kafka until context is cancelled.
func (c *consumer) fetchLoop(ctx context.Context) {
	for {
		if c.stopping.Load() {
			return
		}

		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if c.stopping.Load() || ctx.Err() != nil {
				return
			}
			c.logger.Error(ctx, "Failed to fetch message from Kafka", err)
			if c.clock.Sleep(ctx, time.Second) != nil {
				return
			}
			continue
		}

		c.offsets.add(msg)

		var event EventMessage
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.Error(ctx, "Failed to unmarshal event, skipping", err)
			c.commit(ctx, msg, true)
			continue
		}

		select {
		case c.eventCh <- eventWithMsg{event: event, msg: msg}:
		case <-ctx.Done():
			return
		}
	}
}

// worker processes events from the channel until it's closed.
func (c *consumer) worker(wg *sync.WaitGroup, id int, ctx context.Context) {
	defer wg.Done()

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "worker_id", Value: id},
	)

	for e := range c.eventCh {
		eventCtx := observability.WithFields(ctx,
			observability.Field{Key: "event_id", Value: e.event.ID},
			observability.Field{Key: "event_type", Value: e.event.Type},
		)
		c.handle(eventCtx, e)
	}
}

// handle marks the offset committable once the event succeeded or was
// dead-lettered. Without a dead letter publisher a failed event stays
// uncommitted, and so does every later offset of its partition.
func (c *consumer) handle(ctx context.Context, e eventWithMsg) {
	attempts, err := c.processWithRetry(ctx, e.event)
	if err != nil {
		if c.deadLetters == nil {
			c.logger.Error(ctx, "Failed to process event", err)
			c.commit(ctx, e.msg, false)
			return
		}
		if dlqErr := c.deadLetters.PublishDeadLetter(ctx, e.event, err, attempts); dlqErr != nil {
			c.logger.Error(ctx, "Failed to dead-letter event", dlqErr)
			c.commit(ctx, e.msg, false)
			return
		}
		c.logger.Error(ctx, fmt.Sprintf("Event dead-lettered after %d attempts", attempts), err)
	}

	c.commit(ctx, e.msg, true)
}

// commit records the outcome of msg and commits its partition up to the
// lowest unfinished offset. Commits of one partition never move backwards.
func (c *consumer) commit(ctx context.Context, msg kafkago.Message, succeeded bool) {
	p, upTo, ready := c.offsets.finish(msg, succeeded)
	if !ready {
		return
	}
	target := kafkago.Message{Topic: msg.Topic, Partition: msg.Partition, Offset: upTo}

	if p == nil {
		if err := c.reader.CommitMessages(ctx, target); err != nil {
			c.logger.Error(ctx, "Failed to commit offset", err)
		}
		return
	}

	p.commitMu.Lock()
	defer p.commitMu.Unlock()
	if upTo <= p.committed {
		return
	}
	if err := c.reader.CommitMessages(ctx, target); err != nil {
		c.logger.Error(ctx, "Failed to commit offset", err)
		return
	}
	p.committed = upTo
}

func (c *consumer) processWithRetry(ctx context.Context, event EventMessage) (int, error) {
	backoff := c.config.RetryBackoff
	for attempt := 1; ; attempt++ {
		err := c.processor.Process(ctx, event)
		if err == nil {
			return attempt, nil
		}
		if IsPermanent(err) || attempt >= c.config.MaxAttempts {
			return attempt, err
		}

		c.logger.InfoWithError(ctx, fmt.Sprintf("Retrying event after attempt %d", attempt), err)
		if sleepErr := c.clock.Sleep(ctx, backoff); sleepErr != nil {
			return attempt, err
		}
		backoff *= 2
	}
}

// Stop gracefully shuts down the consumer.
// It signals the fetch loop to stop, waits for in-flight events to complete,
// and returns only after full shutdown.
func (c *consumer) Stop() {
	c.stopOnce.Do(func() {
		logCtx := observability.WithFields(context.Background(),
			observability.Field{Key: "processor", Value: c.processor.Name()},
		)
		c.logger.Info(logCtx, fmt.Sprintf("Stopping consumer for %s", c.processor.Name()))

		c.stopping.Store(true)

		if c.cancelFetch != nil {
			c.cancelFetch()
		}

		<-c.doneCh
	})
}
