package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"notify-server/internal/store"

	"github.com/google/uuid"
)

// Store defines the database operations required by AnalyticsProcessor
type Store interface {
	GetCampaignByID(ctx context.Context, id uuid.UUID) (store.Campaign, error)
	GetSubscriberByID(ctx context.Context, id uuid.UUID) (store.Subscriber, error)
	ListCampaignEvents(ctx context.Context, campaignID uuid.UUID, from, to *time.Time) ([]store.EngagementEvent, error)
	ListSubscriberEvents(ctx context.Context, subscriberID uuid.UUID) ([]store.EngagementEvent, error)
	CountNotificationLogs(ctx context.Context, filter store.NotificationLogFilter) ([]store.NotificationLogCount, error)
}
