package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"

	"notify-server/internal/apierrors"
	"notify-server/internal/observability"
	"notify-server/internal/store"
	"notify-server/internal/subscribers/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubscriberService interface {
	AddSubscriber(ctx context.Context, req processor.AddSubscriberRequest) (store.Subscriber, error)
	GetSubscriber(ctx context.Context, subscriberID uuid.UUID) (store.Subscriber, error)
	Unsubscribe(ctx context.Context, email string, reason *string) (store.Subscriber, error)
	AddToSegments(ctx context.Context, subscriberID uuid.UUID, segmentIDs []uuid.UUID) (store.Subscriber, error)
	UpdateSubscriber(ctx context.Context, subscriberID uuid.UUID, req processor.UpdateSubscriberRequest) (store.Subscriber, error)
}

type Handler struct {
	processor SubscriberService
	logger    *observability.Logger
}

func New(processor SubscriberService, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type AddSubscriberRequest struct {
	Email       string                 `json:"email" binding:"required,email"`
	FirstName   *string                `json:"first_name,omitempty" binding:"omitempty,max=100"`
	LastName    *string                `json:"last_name,omitempty" binding:"omitempty,max=100"`
	DeviceToken *string                `json:"device_token,omitempty"`
	SegmentIDs  []uuid.UUID            `json:"segment_ids,omitempty"`
	Tags        []string               `json:"tags,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	SendWelcome bool                   `json:"send_welcome"`
}

type UnsubscribeRequest struct {
	Email  string  `json:"email" binding:"required,email"`
	Reason *string `json:"reason,omitempty" binding:"omitempty,max=500"`
}

type UpdateSubscriberRequest struct {
	FirstName   *string                `json:"first_name,omitempty" binding:"omitempty,max=100"`
	LastName    *string                `json:"last_name,omitempty" binding:"omitempty,max=100"`
	DeviceToken *string                `json:"device_token,omitempty"`
	Tags        []string               `json:"tags,omitempty" binding:"omitempty,dive,min=1,max=50"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

type AddToSegmentsRequest struct {
	SegmentIDs []uuid.UUID `json:"segment_ids" binding:"required,min=1"`
}

// HandleAddSubscriber handles POST /api/v1/subscribers
func (h *Handler) HandleAddSubscriber(c *gin.Context) {
	var req AddSubscriberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	sub, err := h.processor.AddSubscriber(c.Request.Context(), processor.AddSubscriberRequest{
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DeviceToken: req.DeviceToken,
		SegmentIDs:  req.SegmentIDs,
		Tags:        req.Tags,
		Metadata:    req.Metadata,
		SendWelcome: req.SendWelcome,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// HandleGetSubscriber handles GET /api/v1/subscribers/:subscriber_id
func (h *Handler) HandleGetSubscriber(c *gin.Context) {
	subscriberID, ok := getSubscriberID(c)
	if !ok {
		return
	}

	sub, err := h.processor.GetSubscriber(c.Request.Context(), subscriberID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// HandleUpdateSubscriber handles PATCH /api/v1/subscribers/:subscriber_id
func (h *Handler) HandleUpdateSubscriber(c *gin.Context) {
	subscriberID, ok := getSubscriberID(c)
	if !ok {
		return
	}

	var req UpdateSubscriberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	sub, err := h.processor.UpdateSubscriber(c.Request.Context(), subscriberID, processor.UpdateSubscriberRequest{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DeviceToken: req.DeviceToken,
		Tags:        req.Tags,
		Metadata:    req.Metadata,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// HandleUnsubscribe handles POST /api/v1/subscribers/unsubscribe
func (h *Handler) HandleUnsubscribe(c *gin.Context) {
	var req UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	sub, err := h.processor.Unsubscribe(c.Request.Context(), req.Email, req.Reason)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// HandleAddToSegments handles POST /api/v1/subscribers/:subscriber_id/segments
func (h *Handler) HandleAddToSegments(c *gin.Context) {
	subscriberID, ok := getSubscriberID(c)
	if !ok {
		return
	}
	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "subscriber_id", Value: subscriberID.String()})

	var req AddToSegmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	sub, err := h.processor.AddToSegments(ctx, subscriberID, req.SegmentIDs)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

func getSubscriberID(c *gin.Context) (uuid.UUID, bool) {
	subscriberID, err := uuid.Parse(c.Param("subscriber_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid subscriber ID"))
		return uuid.Nil, false
	}
	return subscriberID, true
}
