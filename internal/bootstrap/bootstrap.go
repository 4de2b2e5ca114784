package bootstrap

import (
	"context"
	"fmt"

	"notify-server/internal/config"
	"notify-server/internal/observability"
	"notify-server/internal/ratelimit"
	"notify-server/internal/scheduling"
	"notify-server/internal/store"
	"notify-server/internal/tracking"

	analyticsHandler "notify-server/internal/analytics/handler"
	analyticsProcessor "notify-server/internal/analytics/processor"
	automationsHandler "notify-server/internal/automations/handler"
	automationsProcessor "notify-server/internal/automations/processor"
	campaignHandler "notify-server/internal/campaign/handler"
	campaignProcessor "notify-server/internal/campaign/processor"
	kafkaClient "notify-server/internal/clients/kafka"
	"notify-server/internal/clients/mail"
	"notify-server/internal/clients/push"
	redisClient "notify-server/internal/clients/redis"
	"notify-server/internal/delivery"
	devicesHandler "notify-server/internal/devices/handler"
	devicesProcessor "notify-server/internal/devices/processor"
	"notify-server/internal/email"
	engagementHandler "notify-server/internal/engagement/handler"
	engagementProcessor "notify-server/internal/engagement/processor"
	"notify-server/internal/jobs"
	notificationsHandler "notify-server/internal/notifications/handler"
	notificationsProcessor "notify-server/internal/notifications/processor"
	segmentsHandler "notify-server/internal/segments/handler"
	segmentsProcessor "notify-server/internal/segments/processor"
	subscribersHandler "notify-server/internal/subscribers/handler"
	subscribersProcessor "notify-server/internal/subscribers/processor"
	"notify-server/internal/workers/campaign"

	"github.com/prometheus/client_golang/prometheus"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store   store.Store
	Logger  *observability.Logger
	Metrics *observability.Metrics
	Clock   scheduling.Clock

	// Domain services shared by the API and the workers
	Gateway     delivery.Gateway
	Engagement  engagementProcessor.EngagementProcessor
	Devices     devicesProcessor.DeviceProcessor
	Automations automationsProcessor.AutomationProcessor
	Batcher     *campaign.Batcher

	// Handlers
	SubscriberHandler   subscribersHandler.Handler
	SegmentHandler      segmentsHandler.Handler
	CampaignHandler     campaignHandler.Handler
	EngagementHandler   engagementHandler.Handler
	DeviceHandler       devicesHandler.Handler
	NotificationHandler notificationsHandler.Handler
	AnalyticsHandler    analyticsHandler.Handler
	AutomationHandler   automationsHandler.Handler

	// Background workers
	CampaignScheduler *campaign.Scheduler

	RateLimiter *ratelimit.Service

	// Clients (for cleanup)
	Redis         *redisClient.Client
	KafkaProducer *kafkaClient.Producer
	JobClient     *jobs.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger:  logger,
		Metrics: observability.NewMetrics(prometheus.DefaultRegisterer),
		Clock:   scheduling.RealClock{},
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(ctx, cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize clients
	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	deps.RateLimiter = ratelimit.NewService(deps.Redis, deps.Clock, logger)

	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, cfg.Services.DefaultEmailSender, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}

	pushClient, err := push.New(ctx, push.Config{
		ProjectID:       cfg.Push.ProjectID,
		CredentialsFile: cfg.Push.CredentialsFile,
		MaxRetries:      cfg.Push.MaxRetries,
		Timeout:         cfg.Push.Timeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create fcm client: %w", err)
	}

	signer, err := tracking.NewSigner(cfg.Services.TrackingSecret, cfg.Services.TrackingBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracking signer: %w", err)
	}

	deps.JobClient = jobs.NewClient(cfg.Jobs.RedisAddr, logger)

	// Engagement events go through Kafka when it is enabled
	var publisher engagementProcessor.EventPublisher
	if cfg.Kafka.Enabled {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.EngagementTopic,
		}, logger)
		publisher = deps.KafkaProducer
	}

	// Initialize services
	emailService := email.New(mailClient, signer, logger)
	deps.Gateway = delivery.New(pushClient, &deps.Store, deps.Metrics, deps.Clock, logger)
	deps.Engagement = engagementProcessor.New(&deps.Store, publisher, deps.Clock, deps.Metrics, logger)

	segmentProc := segmentsProcessor.New(&deps.Store, deps.Clock, logger)
	deps.SegmentHandler = segmentsHandler.New(&segmentProc, logger)

	subscriberProc := subscribersProcessor.New(&deps.Store, deps.Engagement, emailService, deps.Clock, logger)
	deps.SubscriberHandler = subscribersHandler.New(&subscriberProc, logger)

	// Initialize campaign batcher and processor
	deps.Batcher = campaign.NewBatcher(campaign.Dependencies{
		Store:       &deps.Store,
		Subscribers: &segmentProc,
		Email:       emailService,
		Push:        deps.Gateway,
		Tracker:     deps.Engagement,
		Locker:      campaign.NewLocker(deps.Redis, &deps.Store, cfg.Campaign.LockTTL),
		Clock:       deps.Clock,
		Metrics:     deps.Metrics,
		Logger:      logger,
	}, campaign.Config{
		BatchSize:  cfg.Campaign.BatchSize,
		BatchDelay: cfg.Campaign.BatchDelay,
	})
	deps.CampaignScheduler = campaign.NewScheduler(&deps.Store, deps.Batcher, deps.Clock, logger, cfg.Campaign.SchedulerInterval)

	analyticsProc := analyticsProcessor.New(&deps.Store, logger)
	deps.AnalyticsHandler = analyticsHandler.New(&analyticsProc, logger)

	campaignProc := campaignProcessor.New(&deps.Store, deps.Batcher, deps.JobClient, deps.Clock, logger)
	deps.CampaignHandler = campaignHandler.New(&campaignProc, &analyticsProc, logger)

	deps.Automations = automationsProcessor.New(&deps.Store, &segmentProc, emailService, deps.Engagement, deps.JobClient, logger)
	deps.AutomationHandler = automationsHandler.New(&deps.Automations, logger)

	deps.EngagementHandler = engagementHandler.New(deps.Engagement, signer, &subscriberProc, logger)

	// Initialize device and notification processors
	deps.Devices = devicesProcessor.New(&deps.Store, deps.Gateway, deps.Clock, logger)
	deps.DeviceHandler = devicesHandler.New(&deps.Devices, logger)

	notificationProc := notificationsProcessor.New(deps.Gateway, &deps.Store, logger)
	deps.NotificationHandler = notificationsHandler.New(&notificationProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if d.JobClient != nil {
		if err := d.JobClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close job client", err)
		}
	}
	if err := d.Redis.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis client", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
