package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"notify-server/internal/clients/kafka"
	"notify-server/internal/config"
	engagementProcessor "notify-server/internal/engagement/processor"
	"notify-server/internal/observability"
	"notify-server/internal/scheduling"
	"notify-server/internal/store"
	"notify-server/internal/workers"
	engagementWorker "notify-server/internal/workers/engagement"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Initialize logger
	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := context.Background()

	logger.Info(ctx, "Starting engagement event consumer...")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", err)
	}
	if !cfg.Kafka.Enabled {
		logger.Fatal(ctx, "kafka is disabled", errors.New("KAFKA_ENABLED must be true to run the engagement consumer"))
	}

	dataStore, err := store.New(ctx, cfg.Database.ConnectionString(), logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize store", err)
	}
	defer dataStore.Close()

	clock := scheduling.RealClock{}
	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	// Consumed events are recorded directly, never re-published
	tracker := engagementProcessor.New(&dataStore, nil, clock, metrics, logger)

	var deadLetters workers.DeadLetterPublisher
	if cfg.Kafka.DeadLetterTopic != "" {
		dlqProducer := kafka.NewProducer(kafka.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.DeadLetterTopic,
		}, logger)
		defer dlqProducer.Close()
		deadLetters = dlqProducer
	}

	consumerConfig := workers.DefaultConsumerConfig(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup, cfg.Kafka.EngagementTopic)
	consumerConfig.NumWorkers = cfg.WorkerPool.EngagementWorkers
	consumerConfig.MaxAttempts = cfg.Kafka.MaxAttempts

	consumer := workers.NewConsumer(
		consumerConfig,
		engagementWorker.NewEventProcessor(tracker, logger),
		deadLetters,
		clock,
		logger,
	)

	logger.Info(ctx, fmt.Sprintf(`Engagement consumer configuration:
  - Workers: %d
  - Kafka brokers: %v
  - Kafka topic: %s
  - Dead letter topic: %s
  - Consumer group: %s`,
		consumerConfig.NumWorkers, cfg.Kafka.Brokers, cfg.Kafka.EngagementTopic, cfg.Kafka.DeadLetterTopic, cfg.Kafka.ConsumerGroup))

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "engagement consumer error", err)
			cancel()
		}
	}()

	select {
	case <-sigChan:
		logger.Info(ctx, "Received shutdown signal, draining in-flight events...")
	case <-ctx.Done():
	}

	consumer.Stop()
	logger.Info(ctx, "Engagement consumer stopped")
}
