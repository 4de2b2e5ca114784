package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"notify-server/internal/observability"
	"notify-server/internal/scheduling"
	"notify-server/internal/store"

	"github.com/google/uuid"
)

// SegmentStore defines the database operations required by SegmentProcessor
type SegmentStore interface {
	CreateSegment(ctx context.Context, params store.CreateSegmentParams) (store.Segment, error)
	GetSegmentByID(ctx context.Context, id uuid.UUID) (store.Segment, error)
	GetSegmentsByIDs(ctx context.Context, ids []uuid.UUID) ([]store.Segment, error)
	ListSegments(ctx context.Context, limit, offset int) ([]store.Segment, error)
	UpdateSegmentCachedCount(ctx context.Context, id uuid.UUID, count int, at time.Time) (store.Segment, error)
	CountSubscribersForSegment(ctx context.Context, seg store.Segment) (int, error)
	ListSubscribersForSegments(ctx context.Context, segments []store.Segment) ([]store.Subscriber, error)
}

var (
	ErrSegmentNotFound = errors.New("segment not found")
	ErrSegmentExists   = errors.New("segment already exists")
	ErrInvalidCriteria = errors.New("invalid segment criteria")
	ErrNameRequired    = errors.New("segment name is required")
)

type SegmentProcessor struct {
	store  SegmentStore
	clock  scheduling.Clock
	logger *observability.Logger
}

func New(store SegmentStore, clock scheduling.Clock, logger *observability.Logger) SegmentProcessor {
	if clock == nil {
		clock = scheduling.RealClock{}
	}
	return SegmentProcessor{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// CreateSegmentRequest represents a request to create a segment
type CreateSegmentRequest struct {
	Name        string
	Description *string
	Criteria    store.SegmentCriteria
}

// CreateSegment validates the criteria, stores the segment and caches its
// current subscriber count. A failed count is logged and leaves the cache empty.
func (p *SegmentProcessor) CreateSegment(ctx context.Context, req CreateSegmentRequest) (store.Segment, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "segment_name", Value: req.Name})

	if strings.TrimSpace(req.Name) == "" {
		return store.Segment{}, ErrNameRequired
	}
	if err := store.ValidateCriteria(req.Criteria); err != nil {
		return store.Segment{}, fmt.Errorf("%w: %s", ErrInvalidCriteria, err.Error())
	}

	segment, err := p.store.CreateSegment(ctx, store.CreateSegmentParams{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Criteria:    req.Criteria,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return store.Segment{}, ErrSegmentExists
		}
		p.logger.Error(ctx, "failed to create segment", err)
		return store.Segment{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "segment_id", Value: segment.ID})
	if refreshed, err := p.refreshCount(ctx, segment); err != nil {
		p.logger.Error(ctx, "failed to cache segment subscriber count", err)
	} else {
		segment = refreshed
	}

	p.logger.Info(ctx, "segment created successfully")
	return segment, nil
}

func (p *SegmentProcessor) GetSegment(ctx context.Context, segmentID uuid.UUID) (store.Segment, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "segment_id", Value: segmentID})

	segment, err := p.store.GetSegmentByID(ctx, segmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Segment{}, ErrSegmentNotFound
		}
		p.logger.Error(ctx, "failed to get segment", err)
		return store.Segment{}, err
	}
	return segment, nil
}

func (p *SegmentProcessor) ListSegments(ctx context.Context, limit, offset int) ([]store.Segment, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}

	segments, err := p.store.ListSegments(ctx, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list segments", err)
		return nil, err
	}
	return segments, nil
}

// RefreshSubscriberCount recounts the segment's active subscribers and stores the result.
func (p *SegmentProcessor) RefreshSubscriberCount(ctx context.Context, segmentID uuid.UUID) (store.Segment, error) {
	segment, err := p.GetSegment(ctx, segmentID)
	if err != nil {
		return store.Segment{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "segment_id", Value: segmentID})
	refreshed, err := p.refreshCount(ctx, segment)
	if err != nil {
		p.logger.Error(ctx, "failed to refresh segment subscriber count", err)
		return store.Segment{}, err
	}
	return refreshed, nil
}

func (p *SegmentProcessor) refreshCount(ctx context.Context, segment store.Segment) (store.Segment, error) {
	count, err := p.store.CountSubscribersForSegment(ctx, segment)
	if err != nil {
		return store.Segment{}, err
	}
	updated, err := p.store.UpdateSegmentCachedCount(ctx, segment.ID, count, p.clock.Now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Segment{}, ErrSegmentNotFound
		}
		return store.Segment{}, err
	}
	return updated, nil
}

// ResolveSubscribers returns the active audience of the listed segments. An
// empty list targets every active subscriber; ids that match no segment are
// ignored, so a list of only unknown ids resolves to nobody.
func (p *SegmentProcessor) ResolveSubscribers(ctx context.Context, segmentIDs []uuid.UUID) ([]store.Subscriber, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "segment_count", Value: len(segmentIDs)})

	var segments []store.Segment
	if len(segmentIDs) > 0 {
		var err error
		segments, err = p.store.GetSegmentsByIDs(ctx, segmentIDs)
		if err != nil {
			p.logger.Error(ctx, "failed to load segments", err)
			return nil, err
		}
		if len(segments) == 0 {
			p.logger.Warn(ctx, "none of the target segments exist")
			return nil, nil
		}
	}

	subscribers, err := p.store.ListSubscribersForSegments(ctx, segments)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCriteria) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCriteria, err.Error())
		}
		p.logger.Error(ctx, "failed to resolve segment subscribers", err)
		return nil, err
	}
	return subscribers, nil
}
