package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"strconv"

	"notify-server/internal/apierrors"
	"notify-server/internal/observability"
	"notify-server/internal/segments/processor"
	"notify-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SegmentService interface {
	CreateSegment(ctx context.Context, req processor.CreateSegmentRequest) (store.Segment, error)
	GetSegment(ctx context.Context, segmentID uuid.UUID) (store.Segment, error)
	ListSegments(ctx context.Context, limit, offset int) ([]store.Segment, error)
	RefreshSubscriberCount(ctx context.Context, segmentID uuid.UUID) (store.Segment, error)
}

type Handler struct {
	processor SegmentService
	logger    *observability.Logger
}

func New(processor SegmentService, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CriterionRequest is one field/operator/value condition
type CriterionRequest struct {
	Field    string      `json:"field" binding:"required"`
	Operator string      `json:"operator" binding:"required"`
	Value    interface{} `json:"value"`
}

// CreateSegmentRequest represents the HTTP request for creating a segment
type CreateSegmentRequest struct {
	Name        string             `json:"name" binding:"required,max=255"`
	Description *string            `json:"description,omitempty"`
	Criteria    []CriterionRequest `json:"criteria" binding:"dive"`
}

// HandleCreateSegment handles POST /api/v1/segments
func (h *Handler) HandleCreateSegment(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	criteria := make(store.SegmentCriteria, 0, len(req.Criteria))
	for _, cr := range req.Criteria {
		criteria = append(criteria, store.Criterion{Field: cr.Field, Operator: cr.Operator, Value: cr.Value})
	}

	segment, err := h.processor.CreateSegment(ctx, processor.CreateSegmentRequest{
		Name:        req.Name,
		Description: req.Description,
		Criteria:    criteria,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, segment)
}

// HandleListSegments handles GET /api/v1/segments
func (h *Handler) HandleListSegments(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	segments, err := h.processor.ListSegments(c.Request.Context(), limit, offset)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"segments": segments})
}

// HandleGetSegment handles GET /api/v1/segments/:segment_id
func (h *Handler) HandleGetSegment(c *gin.Context) {
	segmentID, err := uuid.Parse(c.Param("segment_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid segment ID"))
		return
	}

	segment, err := h.processor.GetSegment(c.Request.Context(), segmentID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, segment)
}

// HandleRefreshSegment handles POST /api/v1/segments/:segment_id/refresh
func (h *Handler) HandleRefreshSegment(c *gin.Context) {
	segmentID, err := uuid.Parse(c.Param("segment_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid segment ID"))
		return
	}
	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "segment_id", Value: segmentID.String()})

	segment, err := h.processor.RefreshSubscriberCount(ctx, segmentID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, segment)
}
