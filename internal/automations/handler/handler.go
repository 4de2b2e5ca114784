package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"notify-server/internal/apierrors"
	"notify-server/internal/automations/processor"
	"notify-server/internal/observability"
	"notify-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AutomationService interface {
	CreateAutomation(ctx context.Context, req processor.CreateAutomationRequest) (store.Automation, error)
	GetAutomation(ctx context.Context, automationID uuid.UUID) (store.Automation, error)
	ListAutomations(ctx context.Context, limit, offset int) ([]store.Automation, error)
	TriggerAutomation(ctx context.Context, automationID uuid.UUID, triggerData map[string]interface{}) (processor.TriggerResult, error)
}

type Handler struct {
	processor AutomationService
	logger    *observability.Logger
}

func New(processor AutomationService, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateAutomationRequest struct {
	Name              string                 `json:"name" binding:"required,min=1,max=255"`
	Description       *string                `json:"description,omitempty" binding:"omitempty,max=1000"`
	TriggerType       string                 `json:"trigger_type" binding:"required,oneof=event time segment"`
	TriggerConditions map[string]interface{} `json:"trigger_conditions,omitempty"`
	Steps             []store.AutomationStep `json:"steps" binding:"required,min=1"`
	SegmentIDs        []uuid.UUID            `json:"segment_ids,omitempty"`
	Status            string                 `json:"status,omitempty" binding:"omitempty,oneof=active paused"`
}

type TriggerAutomationRequest struct {
	TriggerData map[string]interface{} `json:"trigger_data,omitempty"`
}

// HandleCreateAutomation handles POST /api/v1/automations
func (h *Handler) HandleCreateAutomation(c *gin.Context) {
	var req CreateAutomationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	created, err := h.processor.CreateAutomation(c.Request.Context(), processor.CreateAutomationRequest{
		Name:              req.Name,
		Description:       req.Description,
		TriggerType:       req.TriggerType,
		TriggerConditions: req.TriggerConditions,
		Steps:             req.Steps,
		SegmentIDs:        req.SegmentIDs,
		Status:            req.Status,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// HandleListAutomations handles GET /api/v1/automations
func (h *Handler) HandleListAutomations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	automations, err := h.processor.ListAutomations(c.Request.Context(), limit, offset)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"automations": automations,
		"limit":       limit,
		"offset":      offset,
	})
}

// HandleGetAutomation handles GET /api/v1/automations/:automation_id
func (h *Handler) HandleGetAutomation(c *gin.Context) {
	automationID, ok := getAutomationID(c)
	if !ok {
		return
	}

	found, err := h.processor.GetAutomation(c.Request.Context(), automationID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

// HandleTriggerAutomation handles POST /api/v1/automations/:automation_id/trigger.
// The body is optional.
func (h *Handler) HandleTriggerAutomation(c *gin.Context) {
	automationID, ok := getAutomationID(c)
	if !ok {
		return
	}
	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "automation_id", Value: automationID.String()})

	var req TriggerAutomationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.TriggerAutomation(ctx, automationID, req.TriggerData)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, result)
}

func getAutomationID(c *gin.Context) (uuid.UUID, bool) {
	automationID, err := uuid.Parse(c.Param("automation_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid automation ID"))
		return uuid.Nil, false
	}
	return automationID, true
}
