package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"

	"notify-server/internal/apierrors"
	"notify-server/internal/delivery"
	"notify-server/internal/devices/processor"
	"notify-server/internal/observability"
	"notify-server/internal/store"

	"github.com/gin-gonic/gin"
)

type DeviceService interface {
	RegisterDeviceToken(ctx context.Context, req processor.RegisterDeviceTokenRequest) (store.DeviceToken, error)
	UnregisterDeviceToken(ctx context.Context, userID, token string) error
	ListDeviceTokens(ctx context.Context, userID string) ([]store.DeviceToken, error)
	SubscribeToTopic(ctx context.Context, tokens []string, topic string) (delivery.TopicResult, error)
	UnsubscribeFromTopic(ctx context.Context, tokens []string, topic string) (delivery.TopicResult, error)
}

type Handler struct {
	processor DeviceService
	logger    *observability.Logger
}

func New(processor DeviceService, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type RegisterDeviceRequest struct {
	UserID           string `json:"user_id" binding:"required"`
	Token            string `json:"token" binding:"required"`
	Platform         string `json:"platform" binding:"required,oneof=ios android"`
	PushEnabled      *bool  `json:"push_enabled,omitempty"`
	BiometricEnabled bool   `json:"biometric_enabled"`
}

type UnregisterDeviceRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Token  string `json:"token" binding:"required"`
}

type TopicRequest struct {
	Tokens []string `json:"tokens" binding:"required,min=1,dive,required"`
}

// HandleRegisterDevice handles POST /api/v1/devices. push_enabled defaults to true.
func (h *Handler) HandleRegisterDevice(c *gin.Context) {
	var req RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	pushEnabled := true
	if req.PushEnabled != nil {
		pushEnabled = *req.PushEnabled
	}

	token, err := h.processor.RegisterDeviceToken(c.Request.Context(), processor.RegisterDeviceTokenRequest{
		UserID:           req.UserID,
		Token:            req.Token,
		Platform:         req.Platform,
		PushEnabled:      pushEnabled,
		BiometricEnabled: req.BiometricEnabled,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, token)
}

// HandleUnregisterDevice handles DELETE /api/v1/devices
func (h *Handler) HandleUnregisterDevice(c *gin.Context) {
	var req UnregisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	if err := h.processor.UnregisterDeviceToken(c.Request.Context(), req.UserID, req.Token); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleListUserDevices handles GET /api/v1/users/:user_id/devices
func (h *Handler) HandleListUserDevices(c *gin.Context) {
	userID := c.Param("user_id")
	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "user_id", Value: userID})

	tokens, err := h.processor.ListDeviceTokens(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"devices": tokens})
}

// HandleSubscribeToTopic handles POST /api/v1/topics/:topic/subscribe
func (h *Handler) HandleSubscribeToTopic(c *gin.Context) {
	h.changeTopic(c, h.processor.SubscribeToTopic)
}

// HandleUnsubscribeFromTopic handles POST /api/v1/topics/:topic/unsubscribe
func (h *Handler) HandleUnsubscribeFromTopic(c *gin.Context) {
	h.changeTopic(c, h.processor.UnsubscribeFromTopic)
}

func (h *Handler) changeTopic(c *gin.Context, change func(context.Context, []string, string) (delivery.TopicResult, error)) {
	topic := c.Param("topic")
	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "topic", Value: topic})

	var req TopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := change(ctx, req.Tokens, topic)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
