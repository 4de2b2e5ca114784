package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notify-server/internal/bootstrap"
	"notify-server/internal/config"
	"notify-server/internal/jobs"
	"notify-server/internal/jobs/workers"
	"notify-server/internal/observability"

	"github.com/hibiken/asynq"
)

const inactiveTokenRetention = 30 * 24 * time.Hour

func main() {
	// Initialize logger
	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := context.Background()

	logger.Info(ctx, "Starting background worker server...")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer deps.Cleanup()

	// Initialize workers
	campaignWorker := workers.NewCampaignWorker(deps.Batcher, &deps.Store, logger)
	cleanupWorker := workers.NewTokenCleanupWorker(&deps.Devices, logger)
	automationWorker := workers.NewAutomationWorker(&deps.Automations, logger)

	redisOpt := asynq.RedisClientOpt{Addr: cfg.Jobs.RedisAddr}

	// Create Asynq server with queue configuration
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: cfg.Jobs.Concurrency,
			Queues: map[string]int{
				jobs.QueueHigh:   6,
				jobs.QueueMedium: 3,
				jobs.QueueLow:    1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		},
	)

	// Create task handler (mux)
	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeCampaignSend, campaignWorker.ProcessCampaignSendTask)
	mux.HandleFunc(jobs.TypeDeviceTokenCleanup, cleanupWorker.ProcessTokenCleanupTask)
	mux.HandleFunc(jobs.TypeAutomationRun, automationWorker.ProcessAutomationRunTask)

	// Periodic cleanup of tokens FCM rejected
	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Logger: &asynqLogger{logger: logger},
	})

	cleanupTask, err := jobs.NewDeviceTokenCleanupTask(jobs.DeviceTokenCleanupJobPayload{OlderThan: inactiveTokenRetention})
	if err != nil {
		logger.Fatal(ctx, "failed to build token cleanup task", err)
	}
	if _, err := scheduler.Register("@daily", cleanupTask); err != nil {
		logger.Error(ctx, "failed to register daily token cleanup task", err)
	}

	if err := scheduler.Start(); err != nil {
		logger.Fatal(ctx, "failed to start scheduler", err)
	}
	defer scheduler.Shutdown()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", cfg.Jobs.RedisAddr))
		if err := srv.Run(mux); err != nil {
			logger.Fatal(ctx, "failed to run worker server", err)
		}
	}()

	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Fatal(context.Background(), fmt.Sprint(args...), nil)
}
