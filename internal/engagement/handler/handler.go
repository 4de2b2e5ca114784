package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"notify-server/internal/apierrors"
	"notify-server/internal/engagement/processor"
	"notify-server/internal/observability"
	"notify-server/internal/store"
	"notify-server/internal/tracking"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EngagementService interface {
	TrackEngagement(ctx context.Context, req processor.TrackEngagementRequest) (processor.TrackEngagementResult, error)
	Ingest(ctx context.Context, req processor.TrackEngagementRequest) error
}

type TokenVerifier interface {
	Verify(token string) (tracking.Claims, error)
}

type LinkUnsubscriber interface {
	UnsubscribeFromLink(ctx context.Context, subscriberID uuid.UUID, campaignID *uuid.UUID) (store.Subscriber, error)
}

// transparentGIF is a 1x1 transparent GIF.
var transparentGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00, 0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

const unsubscribedPage = `<!DOCTYPE html><html><head><meta charset="utf-8"><title>Unsubscribed</title></head>` +
	`<body><p>You have been unsubscribed and will no longer receive these emails.</p></body></html>`

type Handler struct {
	engagement   EngagementService
	verifier     TokenVerifier
	unsubscriber LinkUnsubscriber
	logger       *observability.Logger
}

func New(engagement EngagementService, verifier TokenVerifier, unsubscriber LinkUnsubscriber, logger *observability.Logger) Handler {
	return Handler{
		engagement:   engagement,
		verifier:     verifier,
		unsubscriber: unsubscriber,
		logger:       logger,
	}
}

type TrackEngagementRequest struct {
	SubscriberID uuid.UUID              `json:"subscriber_id" binding:"required"`
	CampaignID   *uuid.UUID             `json:"campaign_id,omitempty"`
	EventType    string                 `json:"event_type" binding:"required,oneof=delivered open click bounce unsubscribe spam"`
	EventData    map[string]interface{} `json:"event_data,omitempty"`
	Timestamp    *time.Time             `json:"timestamp,omitempty"`
}

// HandleTrackEngagement handles POST /api/v1/engagement
func (h *Handler) HandleTrackEngagement(c *gin.Context) {
	var req TrackEngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.engagement.TrackEngagement(c.Request.Context(), processor.TrackEngagementRequest{
		SubscriberID: req.SubscriberID,
		CampaignID:   req.CampaignID,
		EventType:    req.EventType,
		EventData:    req.EventData,
		Timestamp:    req.Timestamp,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandleOpen handles GET /t/open/:token. The pixel is served even when the
// token is rejected so mail clients never render a broken image.
func (h *Handler) HandleOpen(c *gin.Context) {
	ctx := c.Request.Context()

	if claims, ok := h.verify(c, tracking.ActionOpen); ok {
		err := h.engagement.Ingest(ctx, processor.TrackEngagementRequest{
			SubscriberID: claims.SubscriberID,
			CampaignID:   claims.CampaignID,
			EventType:    store.EventTypeOpen,
			EventData:    requestData(c),
		})
		if err != nil {
			h.logger.Error(ctx, "failed to ingest open event", err)
		}
	}

	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, private")
	c.Data(http.StatusOK, "image/gif", transparentGIF)
}

// HandleClick handles GET /t/click/:token and redirects to the signed target.
func (h *Handler) HandleClick(c *gin.Context) {
	ctx := c.Request.Context()

	claims, ok := h.verify(c, tracking.ActionClick)
	if !ok {
		apierrors.RespondWithError(c, tracking.ErrInvalidToken)
		return
	}
	if !isWebURL(claims.URL) {
		apierrors.RespondWithError(c, tracking.ErrInvalidToken)
		return
	}

	data := requestData(c)
	data["url"] = claims.URL
	err := h.engagement.Ingest(ctx, processor.TrackEngagementRequest{
		SubscriberID: claims.SubscriberID,
		CampaignID:   claims.CampaignID,
		EventType:    store.EventTypeClick,
		EventData:    data,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to ingest click event", err)
	}

	c.Redirect(http.StatusFound, claims.URL)
}

// HandleUnsubscribe handles GET /t/unsubscribe/:token
func (h *Handler) HandleUnsubscribe(c *gin.Context) {
	claims, ok := h.verify(c, tracking.ActionUnsubscribe)
	if !ok {
		apierrors.RespondWithError(c, tracking.ErrInvalidToken)
		return
	}

	if _, err := h.unsubscriber.UnsubscribeFromLink(c.Request.Context(), claims.SubscriberID, claims.CampaignID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(unsubscribedPage))
}

// verify checks the token signature and that it was issued for this route.
func (h *Handler) verify(c *gin.Context, action string) (tracking.Claims, bool) {
	claims, err := h.verifier.Verify(c.Param("token"))
	if err != nil || claims.Action != action {
		h.logger.Warn(observability.WithFields(c.Request.Context(),
			observability.Field{Key: "tracking_action", Value: action},
		), "rejected tracking token")
		return tracking.Claims{}, false
	}
	return claims, true
}

func requestData(c *gin.Context) map[string]interface{} {
	data := map[string]interface{}{
		"device_type": observability.GetDeviceType(c),
		"device_os":   observability.GetDeviceOS(c),
	}
	if ua := c.Request.UserAgent(); ua != "" {
		data["user_agent"] = ua
	}
	if ip := observability.GetRealClientIP(c); ip != "" {
		data["ip"] = ip
	}
	return data
}

func isWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
