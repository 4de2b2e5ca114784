package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"time"

	"notify-server/internal/analytics/processor"
	"notify-server/internal/apierrors"
	"notify-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AnalyticsService interface {
	GetSubscriberAnalytics(ctx context.Context, subscriberID uuid.UUID) (processor.SubscriberAnalytics, error)
	GetNotificationAnalytics(ctx context.Context, filter processor.NotificationFilter) (processor.NotificationAnalytics, error)
}

type Handler struct {
	processor AnalyticsService
	logger    *observability.Logger
}

func New(processor AnalyticsService, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleGetSubscriberAnalytics handles GET /api/v1/subscribers/:subscriber_id/analytics
func (h *Handler) HandleGetSubscriberAnalytics(c *gin.Context) {
	subscriberID, err := uuid.Parse(c.Param("subscriber_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid subscriber ID"))
		return
	}

	result, err := h.processor.GetSubscriberAnalytics(c.Request.Context(), subscriberID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetNotificationAnalytics handles
// GET /api/v1/notifications/analytics?type=&status=&from=&to=
func (h *Handler) HandleGetNotificationAnalytics(c *gin.Context) {
	var filter processor.NotificationFilter
	if v := c.Query("type"); v != "" {
		filter.NotificationType = &v
	}
	if v := c.Query("status"); v != "" {
		filter.Status = &v
	}

	// Parse date range
	if v := c.Query("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidDateRange, "from must be RFC3339"))
			return
		}
		filter.From = &from
	}
	if v := c.Query("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidDateRange, "to must be RFC3339"))
			return
		}
		filter.To = &to
	}

	result, err := h.processor.GetNotificationAnalytics(c.Request.Context(), filter)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
