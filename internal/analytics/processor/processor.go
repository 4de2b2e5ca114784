package processor

import (
	"context"
	"errors"
	"time"

	"notify-server/internal/observability"
	"notify-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrInvalidDateRange   = errors.New("date range start must not be after its end")
)

type AnalyticsProcessor struct {
	store  Store
	logger *observability.Logger
}

func New(store Store, logger *observability.Logger) AnalyticsProcessor {
	return AnalyticsProcessor{
		store:  store,
		logger: logger,
	}
}

// DateRange bounds an analytics query; nil ends are open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (r DateRange) validate() error {
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return ErrInvalidDateRange
	}
	return nil
}

// EventSummary is a fold of engagement events.
type EventSummary struct {
	Total       int            `json:"total"`
	ByEventType map[string]int `json:"by_event_type"`
}

func summarize(events []store.EngagementEvent) EventSummary {
	summary := EventSummary{ByEventType: make(map[string]int)}
	for _, e := range events {
		summary.Total++
		summary.ByEventType[e.EventType]++
	}
	return summary
}

type Rates struct {
	OpenRate   float64 `json:"open_rate"`
	ClickRate  float64 `json:"click_rate"`
	BounceRate float64 `json:"bounce_rate"`
}

type CampaignAnalytics struct {
	CampaignID uuid.UUID           `json:"campaign_id"`
	Stats      store.CampaignStats `json:"stats"`
	Events     EventSummary        `json:"events"`
	Rates      Rates               `json:"rates"`
	Range      DateRange           `json:"range"`
}

type SubscriberAnalytics struct {
	Subscriber store.Subscriber `json:"subscriber"`
	Events     EventSummary     `json:"events"`
}

type NotificationFilter struct {
	NotificationType *string
	Status           *string
	From             *time.Time
	To               *time.Time
}

type NotificationAnalytics struct {
	Total    int                       `json:"total"`
	ByStatus map[string]int            `json:"by_status"`
	ByType   map[string]map[string]int `json:"by_type"`
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

// GetCampaignAnalytics recomputes the campaign's event breakdown over the
// range. Rates use the events in range: opens and clicks over deliveries,
// bounces over every attempted delivery.
func (p *AnalyticsProcessor) GetCampaignAnalytics(ctx context.Context, campaignID uuid.UUID, dateRange DateRange) (CampaignAnalytics, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	if err := dateRange.validate(); err != nil {
		return CampaignAnalytics{}, err
	}

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CampaignAnalytics{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return CampaignAnalytics{}, err
	}

	events, err := p.store.ListCampaignEvents(ctx, campaignID, dateRange.From, dateRange.To)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaign events", err)
		return CampaignAnalytics{}, err
	}

	summary := summarize(events)
	delivered := summary.ByEventType[store.EventTypeDelivered]
	bounced := summary.ByEventType[store.EventTypeBounce]

	return CampaignAnalytics{
		CampaignID: campaignID,
		Stats:      campaign.CampaignStats,
		Events:     summary,
		Rates: Rates{
			OpenRate:   ratio(summary.ByEventType[store.EventTypeOpen], delivered),
			ClickRate:  ratio(summary.ByEventType[store.EventTypeClick], delivered),
			BounceRate: ratio(bounced, delivered+bounced),
		},
		Range: dateRange,
	}, nil
}

func (p *AnalyticsProcessor) GetSubscriberAnalytics(ctx context.Context, subscriberID uuid.UUID) (SubscriberAnalytics, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "subscriber_id", Value: subscriberID})

	sub, err := p.store.GetSubscriberByID(ctx, subscriberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SubscriberAnalytics{}, ErrSubscriberNotFound
		}
		p.logger.Error(ctx, "failed to get subscriber", err)
		return SubscriberAnalytics{}, err
	}

	events, err := p.store.ListSubscriberEvents(ctx, subscriberID)
	if err != nil {
		p.logger.Error(ctx, "failed to list subscriber events", err)
		return SubscriberAnalytics{}, err
	}

	return SubscriberAnalytics{Subscriber: sub, Events: summarize(events)}, nil
}

func (p *AnalyticsProcessor) GetNotificationAnalytics(ctx context.Context, filter NotificationFilter) (NotificationAnalytics, error) {
	if err := (DateRange{From: filter.From, To: filter.To}).validate(); err != nil {
		return NotificationAnalytics{}, err
	}

	counts, err := p.store.CountNotificationLogs(ctx, store.NotificationLogFilter{
		NotificationType: filter.NotificationType,
		Status:           filter.Status,
		From:             filter.From,
		To:               filter.To,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to count notification logs", err)
		return NotificationAnalytics{}, err
	}

	result := NotificationAnalytics{
		ByStatus: make(map[string]int),
		ByType:   make(map[string]map[string]int),
	}
	for _, c := range counts {
		result.Total += c.Count
		result.ByStatus[c.Status] += c.Count
		if result.ByType[c.NotificationType] == nil {
			result.ByType[c.NotificationType] = make(map[string]int)
		}
		result.ByType[c.NotificationType][c.Status] += c.Count
	}
	return result, nil
}
