package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"

	"notify-server/internal/apierrors"
	"notify-server/internal/delivery"
	"notify-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type NotificationService interface {
	SendToDevice(ctx context.Context, token, notificationType string, payload delivery.Payload) (delivery.SendResult, error)
	SendToMultipleDevices(ctx context.Context, tokens []string, notificationType string, payload delivery.Payload) (delivery.MulticastResult, error)
	SendToTopic(ctx context.Context, topic, notificationType string, payload delivery.Payload) (delivery.SendResult, error)
	SendToUser(ctx context.Context, userID, notificationType string, payload delivery.Payload) (delivery.MulticastResult, error)
}

type Handler struct {
	processor NotificationService
	logger    *observability.Logger
}

func New(processor NotificationService, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// PayloadRequest overrides the template defaults of the notification type
type PayloadRequest struct {
	Title       string            `json:"title,omitempty" binding:"max=200"`
	Body        string            `json:"body,omitempty" binding:"max=2000"`
	ImageURL    string            `json:"image_url,omitempty" binding:"omitempty,url"`
	ClickAction string            `json:"click_action,omitempty"`
	Data        map[string]string `json:"data,omitempty"`
}

func (p PayloadRequest) toPayload() delivery.Payload {
	return delivery.Payload{
		Title:       p.Title,
		Body:        p.Body,
		ImageURL:    p.ImageURL,
		ClickAction: p.ClickAction,
		Data:        p.Data,
	}
}

type SendToDeviceRequest struct {
	Token string `json:"token" binding:"required"`
	Type  string `json:"type" binding:"required"`
	PayloadRequest
}

type SendToMultipleDevicesRequest struct {
	Tokens []string `json:"tokens" binding:"required,min=1,max=500"`
	Type   string   `json:"type" binding:"required"`
	PayloadRequest
}

type SendToTopicRequest struct {
	Topic string `json:"topic" binding:"required"`
	Type  string `json:"type" binding:"required"`
	PayloadRequest
}

type SendToUserRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Type   string `json:"type" binding:"required"`
	PayloadRequest
}

// HandleSendToDevice handles POST /api/v1/notifications/device
func (h *Handler) HandleSendToDevice(c *gin.Context) {
	var req SendToDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.SendToDevice(c.Request.Context(), req.Token, req.Type, req.toPayload())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleSendToMultipleDevices handles POST /api/v1/notifications/multicast.
// Per-token failures are reported in the result, not as an error status.
func (h *Handler) HandleSendToMultipleDevices(c *gin.Context) {
	var req SendToMultipleDevicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.SendToMultipleDevices(c.Request.Context(), req.Tokens, req.Type, req.toPayload())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleSendToTopic handles POST /api/v1/notifications/topic
func (h *Handler) HandleSendToTopic(c *gin.Context) {
	var req SendToTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.SendToTopic(c.Request.Context(), req.Topic, req.Type, req.toPayload())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleSendToUser handles POST /api/v1/notifications/user
func (h *Handler) HandleSendToUser(c *gin.Context) {
	var req SendToUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "user_id", Value: req.UserID})
	result, err := h.processor.SendToUser(ctx, req.UserID, req.Type, req.toPayload())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
