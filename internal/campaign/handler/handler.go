package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	analyticsProcessor "notify-server/internal/analytics/processor"
	"notify-server/internal/apierrors"
	"notify-server/internal/campaign/processor"
	"notify-server/internal/observability"
	"notify-server/internal/store"
	"notify-server/internal/workers/campaign"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CampaignService is the campaign processor as seen by the HTTP layer
type CampaignService interface {
	CreateCampaign(ctx context.Context, req processor.CreateCampaignRequest) (store.Campaign, error)
	GetCampaign(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	ListCampaigns(ctx context.Context, limit, offset int) ([]store.Campaign, error)
	SendCampaign(ctx context.Context, campaignID uuid.UUID) (campaign.SendCampaignResult, error)
	QueueCampaign(ctx context.Context, campaignID uuid.UUID) error
	ScheduleCampaign(ctx context.Context, campaignID uuid.UUID, at time.Time) (store.Campaign, error)
}

type CampaignAnalytics interface {
	GetCampaignAnalytics(ctx context.Context, campaignID uuid.UUID, dateRange analyticsProcessor.DateRange) (analyticsProcessor.CampaignAnalytics, error)
}

type Handler struct {
	processor CampaignService
	analytics CampaignAnalytics
	logger    *observability.Logger
}

func New(processor CampaignService, analytics CampaignAnalytics, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		analytics: analytics,
		logger:    logger,
	}
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Name             string      `json:"name" binding:"required,min=1,max=255"`
	Subject          string      `json:"subject" binding:"required,min=1,max=500"`
	Body             string      `json:"body"`
	TemplateName     string      `json:"template_name,omitempty"`
	Channel          string      `json:"channel,omitempty" binding:"omitempty,oneof=email push"`
	NotificationType *string     `json:"notification_type,omitempty"`
	SegmentIDs       []uuid.UUID `json:"segment_ids,omitempty"`
	TargetType       string      `json:"target_type,omitempty" binding:"omitempty,oneof=segments topics all"`
	Topics           []string    `json:"topics,omitempty" binding:"omitempty,dive,min=1,max=900"`
	ScheduledAt      *time.Time  `json:"scheduled_at,omitempty"`
}

type ScheduleCampaignRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

// HandleCreateCampaign handles POST /api/v1/campaigns
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_name", Value: req.Name})

	created, err := h.processor.CreateCampaign(ctx, processor.CreateCampaignRequest{
		Name:             req.Name,
		Subject:          req.Subject,
		Body:             req.Body,
		TemplateName:     req.TemplateName,
		Channel:          req.Channel,
		NotificationType: req.NotificationType,
		SegmentIDs:       req.SegmentIDs,
		TargetType:       req.TargetType,
		Topics:           req.Topics,
		ScheduledAt:      req.ScheduledAt,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// HandleListCampaigns handles GET /api/v1/campaigns
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	campaigns, err := h.processor.ListCampaigns(c.Request.Context(), limit, offset)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaigns": campaigns,
		"limit":     limit,
		"offset":    offset,
	})
}

// HandleGetCampaign handles GET /api/v1/campaigns/:campaign_id
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}
	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "campaign_id", Value: campaignID.String()})

	found, err := h.processor.GetCampaign(ctx, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

// HandleSendCampaign handles POST /api/v1/campaigns/:campaign_id/send.
// With ?async=true the send is queued for the background workers.
func (h *Handler) HandleSendCampaign(c *gin.Context) {
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}
	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "campaign_id", Value: campaignID.String()})

	if async, _ := strconv.ParseBool(c.Query("async")); async {
		if err := h.processor.QueueCampaign(ctx, campaignID); err != nil {
			apierrors.RespondWithError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"campaign_id": campaignID, "status": "queued"})
		return
	}

	// A client that disconnects must not stop the send between batches.
	result, err := h.processor.SendCampaign(context.WithoutCancel(ctx), campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleScheduleCampaign handles POST /api/v1/campaigns/:campaign_id/schedule
func (h *Handler) HandleScheduleCampaign(c *gin.Context) {
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}
	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "campaign_id", Value: campaignID.String()})

	var req ScheduleCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	scheduled, err := h.processor.ScheduleCampaign(ctx, campaignID, req.ScheduledAt)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, scheduled)
}

// HandleGetCampaignAnalytics handles GET /api/v1/campaigns/:campaign_id/analytics?from=&to=
func (h *Handler) HandleGetCampaignAnalytics(c *gin.Context) {
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}
	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "campaign_id", Value: campaignID.String()})

	dateRange, ok := parseDateRange(c)
	if !ok {
		return
	}

	result, err := h.analytics.GetCampaignAnalytics(ctx, campaignID, dateRange)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) getCampaignID(c *gin.Context) (uuid.UUID, bool) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID"))
		return uuid.Nil, false
	}
	return campaignID, true
}

// parseDateRange reads RFC3339 or YYYY-MM-DD values of the from and to query parameters.
func parseDateRange(c *gin.Context) (analyticsProcessor.DateRange, bool) {
	var dateRange analyticsProcessor.DateRange
	for _, p := range []struct {
		name string
		dst  **time.Time
	}{
		{"from", &dateRange.From},
		{"to", &dateRange.To},
	} {
		raw := c.Query(p.name)
		if raw == "" {
			continue
		}
		t, err := parseTime(raw)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidDateRange, "Invalid "+p.name+" date"))
			return analyticsProcessor.DateRange{}, false
		}
		*p.dst = &t
	}
	return dateRange, true
}

func parseTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
