package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"notify-server/internal/email"
	engagement "notify-server/internal/engagement/processor"
	"notify-server/internal/jobs"
	"notify-server/internal/observability"
	"notify-server/internal/store"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const emailConcurrency = 10

// AutomationStore defines the database operations required by AutomationProcessor
type AutomationStore interface {
	CreateAutomation(ctx context.Context, params store.CreateAutomationParams) (store.Automation, error)
	GetAutomationByID(ctx context.Context, id uuid.UUID) (store.Automation, error)
	ListAutomations(ctx context.Context, limit, offset int) ([]store.Automation, error)
	IncrementAutomationStat(ctx context.Context, id uuid.UUID, column string) error
	GetSegmentsByIDs(ctx context.Context, ids []uuid.UUID) ([]store.Segment, error)
	UpdateSubscribers(ctx context.Context, ids []uuid.UUID, params store.UpdateSubscriberParams) (int64, error)
	AddSegmentToSubscribers(ctx context.Context, ids []uuid.UUID, segmentID uuid.UUID) (int64, error)
}

type SubscriberResolver interface {
	ResolveSubscribers(ctx context.Context, segmentIDs []uuid.UUID) ([]store.Subscriber, error)
}

type Mailer interface {
	SendAutomationEmail(ctx context.Context, msg email.AutomationEmail, subscriber store.Subscriber) (string, error)
}

type EngagementTracker interface {
	TrackEngagement(ctx context.Context, req engagement.TrackEngagementRequest) (engagement.TrackEngagementResult, error)
}

// RunQueue hands automation runs to the background workers.
type RunQueue interface {
	EnqueueAutomationRun(ctx context.Context, payload jobs.AutomationRunJobPayload, delay time.Duration) error
}

var (
	ErrAutomationNotFound = errors.New("automation not found")
	ErrAutomationInactive = errors.New("automation is not active")
	ErrNameRequired       = errors.New("automation name is required")
	ErrInvalidTrigger     = errors.New("trigger_type must be event, time or segment")
	ErrInvalidStatus      = errors.New("status must be active or paused")
	ErrStepsRequired      = errors.New("automation needs at least one step")
	ErrInvalidStep        = errors.New("invalid automation step")
	ErrSegmentNotFound    = errors.New("segment not found")
	ErrQueueUnavailable   = errors.New("background queue is not configured")
)

type AutomationProcessor struct {
	store       AutomationStore
	subscribers SubscriberResolver
	mailer      Mailer
	tracker     EngagementTracker
	queue       RunQueue
	logger      *observability.Logger
}

func New(store AutomationStore, subscribers SubscriberResolver, mailer Mailer, tracker EngagementTracker, queue RunQueue, logger *observability.Logger) AutomationProcessor {
	return AutomationProcessor{
		store:       store,
		subscribers: subscribers,
		mailer:      mailer,
		tracker:     tracker,
		queue:       queue,
		logger:      logger,
	}
}

type CreateAutomationRequest struct {
	Name              string
	Description       *string
	TriggerType       string
	TriggerConditions map[string]interface{}
	Steps             []store.AutomationStep
	SegmentIDs        []uuid.UUID
	Status            string
}

func (p *AutomationProcessor) CreateAutomation(ctx context.Context, req CreateAutomationRequest) (store.Automation, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Status == "" {
		req.Status = store.AutomationStatusActive
	}
	switch {
	case req.Name == "":
		return store.Automation{}, ErrNameRequired
	case req.TriggerType != store.AutomationTriggerEvent &&
		req.TriggerType != store.AutomationTriggerTime &&
		req.TriggerType != store.AutomationTriggerSegment:
		return store.Automation{}, ErrInvalidTrigger
	case req.Status != store.AutomationStatusActive && req.Status != store.AutomationStatusPaused:
		return store.Automation{}, ErrInvalidStatus
	case len(req.Steps) == 0:
		return store.Automation{}, ErrStepsRequired
	}
	for i, step := range req.Steps {
		if err := validateStep(step); err != nil {
			return store.Automation{}, fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "automation_name", Value: req.Name},
		observability.Field{Key: "trigger_type", Value: req.TriggerType},
	)
	if err := p.checkSegments(ctx, req); err != nil {
		return store.Automation{}, err
	}

	created, err := p.store.CreateAutomation(ctx, store.CreateAutomationParams{
		Name:              req.Name,
		Description:       req.Description,
		TriggerType:       req.TriggerType,
		TriggerConditions: store.JSONB(req.TriggerConditions),
		Steps:             store.AutomationSteps(req.Steps),
		SegmentIDs:        req.SegmentIDs,
		Status:            req.Status,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create automation", err)
		return store.Automation{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "automation_id", Value: created.ID}), "automation created")
	return created, nil
}

func validateStep(step store.AutomationStep) error {
	switch step.Type {
	case store.AutomationStepSendEmail:
		if strings.TrimSpace(step.Subject) == "" || strings.TrimSpace(step.Content) == "" {
			return fmt.Errorf("%w: send_email needs a subject and content", ErrInvalidStep)
		}
	case store.AutomationStepWait:
		d, err := time.ParseDuration(step.Duration)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: wait needs a positive duration", ErrInvalidStep)
		}
	case store.AutomationStepUpdateSubscriber:
		u := step.Updates
		if u == nil || (u.FirstName == nil && u.LastName == nil && u.Tags == nil && len(u.Metadata) == 0) {
			return fmt.Errorf("%w: update_subscriber needs updates", ErrInvalidStep)
		}
	case store.AutomationStepAddToSegment:
		if step.SegmentID == nil {
			return fmt.Errorf("%w: add_to_segment needs a segment_id", ErrInvalidStep)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidStep, step.Type)
	}
	return nil
}

// checkSegments requires every target segment and every add_to_segment
// segment to exist.
func (p *AutomationProcessor) checkSegments(ctx context.Context, req CreateAutomationRequest) error {
	wanted := make(map[uuid.UUID]struct{})
	for _, id := range req.SegmentIDs {
		wanted[id] = struct{}{}
	}
	for _, step := range req.Steps {
		if step.Type == store.AutomationStepAddToSegment {
			wanted[*step.SegmentID] = struct{}{}
		}
	}
	if len(wanted) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(wanted))
	for id := range wanted {
		ids = append(ids, id)
	}
	segments, err := p.store.GetSegmentsByIDs(ctx, ids)
	if err != nil {
		p.logger.Error(ctx, "failed to load segments", err)
		return err
	}
	if len(segments) != len(ids) {
		return ErrSegmentNotFound
	}
	return nil
}

func (p *AutomationProcessor) GetAutomation(ctx context.Context, automationID uuid.UUID) (store.Automation, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "automation_id", Value: automationID})

	a, err := p.store.GetAutomationByID(ctx, automationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Automation{}, ErrAutomationNotFound
		}
		p.logger.Error(ctx, "failed to get automation", err)
		return store.Automation{}, err
	}
	return a, nil
}

func (p *AutomationProcessor) ListAutomations(ctx context.Context, limit, offset int) ([]store.Automation, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}
	automations, err := p.store.ListAutomations(ctx, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list automations", err)
		return nil, err
	}
	return automations, nil
}

type TriggerResult struct {
	AutomationID uuid.UUID `json:"automation_id"`
	RunID        uuid.UUID `json:"run_id"`
}

// TriggerAutomation starts a run of an active automation in the background.
func (p *AutomationProcessor) TriggerAutomation(ctx context.Context, automationID uuid.UUID, triggerData map[string]interface{}) (TriggerResult, error) {
	a, err := p.GetAutomation(ctx, automationID)
	if err != nil {
		return TriggerResult{}, err
	}
	if a.Status != store.AutomationStatusActive {
		return TriggerResult{}, ErrAutomationInactive
	}
	if p.queue == nil {
		return TriggerResult{}, ErrQueueUnavailable
	}

	runID := uuid.New()
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "automation_id", Value: automationID},
		observability.Field{Key: "run_id", Value: runID},
	)
	if err := p.queue.EnqueueAutomationRun(ctx, jobs.AutomationRunJobPayload{
		AutomationID: automationID,
		RunID:        runID,
		TriggerData:  triggerData,
	}, 0); err != nil {
		return TriggerResult{}, err
	}

	if err := p.store.IncrementAutomationStat(ctx, automationID, "stats_triggered"); err != nil {
		p.logger.Error(ctx, "failed to count automation trigger", err)
	}
	p.logger.Info(ctx, "automation triggered")
	return TriggerResult{AutomationID: automationID, RunID: runID}, nil
}

type RunResult struct {
	Subscribers int
	StepsRun    int
	StepsFailed int
	// NextStep is set when a wait step deferred the rest of the run.
	NextStep *int
	// Stopped is set when the automation was paused before this leg ran.
	Stopped bool
}

// RunAutomation executes one leg of a run: steps from run.FromStep up to the
// next wait step or the end. A failing step is logged and counted and the
// run moves on. The completed or failed counter is bumped once, by the leg
// that reaches the end.
func (p *AutomationProcessor) RunAutomation(ctx context.Context, run jobs.AutomationRunJobPayload) (RunResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "automation_id", Value: run.AutomationID},
		observability.Field{Key: "run_id", Value: run.RunID},
		observability.Field{Key: "from_step", Value: run.FromStep},
	)

	a, err := p.GetAutomation(ctx, run.AutomationID)
	if err != nil {
		return RunResult{}, err
	}
	if a.Status != store.AutomationStatusActive {
		p.logger.Info(ctx, "automation paused, stopping run")
		return RunResult{Stopped: true}, nil
	}

	subscribers, err := p.subscribers.ResolveSubscribers(ctx, a.SegmentIDs)
	if err != nil {
		p.logger.Error(ctx, "failed to resolve automation subscribers", err)
		return RunResult{}, fmt.Errorf("failed to resolve subscribers: %w", err)
	}
	result := RunResult{Subscribers: len(subscribers)}
	failed := run.StepFailed

	for i := run.FromStep; i < len(a.Steps); i++ {
		step := a.Steps[i]
		stepCtx := observability.WithFields(ctx,
			observability.Field{Key: "step", Value: i + 1},
			observability.Field{Key: "step_type", Value: step.Type},
		)

		if step.Type == store.AutomationStepWait {
			if i+1 == len(a.Steps) {
				continue
			}
			delay, err := time.ParseDuration(step.Duration)
			if err != nil {
				p.logger.Error(stepCtx, "invalid wait duration", err)
				result.StepsFailed++
				failed = true
				continue
			}
			if p.queue == nil {
				return result, ErrQueueUnavailable
			}
			next := run
			next.FromStep = i + 1
			next.StepFailed = failed
			if err := p.queue.EnqueueAutomationRun(stepCtx, next, delay); err != nil {
				return result, fmt.Errorf("failed to enqueue automation continuation: %w", err)
			}
			result.NextStep = &next.FromStep
			p.logger.Info(stepCtx, "automation waiting")
			return result, nil
		}

		result.StepsRun++
		if err := p.runStep(stepCtx, a, step, subscribers, run.TriggerData); err != nil {
			p.logger.Error(stepCtx, "automation step failed", err)
			result.StepsFailed++
			failed = true
		}
	}

	counter := "stats_completed"
	if failed {
		counter = "stats_failed"
	}
	if err := p.store.IncrementAutomationStat(ctx, a.ID, counter); err != nil {
		p.logger.Error(ctx, "failed to record automation outcome", err)
	}
	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "subscribers", Value: result.Subscribers},
		observability.Field{Key: "steps_failed", Value: result.StepsFailed},
	), "automation run finished")
	return result, nil
}

func (p *AutomationProcessor) runStep(ctx context.Context, a store.Automation, step store.AutomationStep, subscribers []store.Subscriber, triggerData map[string]interface{}) error {
	ids := make([]uuid.UUID, len(subscribers))
	for i, sub := range subscribers {
		ids[i] = sub.ID
	}

	switch step.Type {
	case store.AutomationStepSendEmail:
		return p.sendEmails(ctx, a, step, subscribers, triggerData)
	case store.AutomationStepUpdateSubscriber:
		u := step.Updates
		if u == nil {
			return fmt.Errorf("%w: update_subscriber needs updates", ErrInvalidStep)
		}
		params := store.UpdateSubscriberParams{FirstName: u.FirstName, LastName: u.LastName, Tags: u.Tags}
		if len(u.Metadata) > 0 {
			params.Metadata = store.JSONB(u.Metadata)
		}
		_, err := p.store.UpdateSubscribers(ctx, ids, params)
		return err
	case store.AutomationStepAddToSegment:
		if step.SegmentID == nil {
			return fmt.Errorf("%w: add_to_segment needs a segment_id", ErrInvalidStep)
		}
		_, err := p.store.AddSegmentToSubscribers(ctx, ids, *step.SegmentID)
		return err
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidStep, step.Type)
	}
}

// sendEmails mails every subscriber and records a delivered or bounce event
// for each one. The step fails when any send fails.
func (p *AutomationProcessor) sendEmails(ctx context.Context, a store.Automation, step store.AutomationStep, subscribers []store.Subscriber, triggerData map[string]interface{}) error {
	msg := email.AutomationEmail{
		AutomationID: a.ID,
		TemplateName: step.TemplateName,
		Subject:      step.Subject,
		Content:      step.Content,
		TriggerData:  triggerData,
	}

	var (
		mu     sync.Mutex
		failed int
	)
	var eg errgroup.Group
	eg.SetLimit(emailConcurrency)
	for _, sub := range subscribers {
		sub := sub
		eg.Go(func() error {
			subCtx := observability.WithFields(ctx, observability.Field{Key: "subscriber_id", Value: sub.ID})
			messageID, err := p.mailer.SendAutomationEmail(subCtx, msg, sub)
			if err != nil {
				p.logger.InfoWithError(subCtx, "automation email failed", err)
				p.track(subCtx, sub.ID, store.EventTypeBounce, map[string]interface{}{"automation_id": a.ID.String(), "error": err.Error()})
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}
			p.track(subCtx, sub.ID, store.EventTypeDelivered, map[string]interface{}{"automation_id": a.ID.String(), "message_id": messageID})
			return nil
		})
	}
	_ = eg.Wait()

	if failed > 0 {
		return fmt.Errorf("%d of %d automation emails failed", failed, len(subscribers))
	}
	return nil
}

func (p *AutomationProcessor) track(ctx context.Context, subscriberID uuid.UUID, eventType string, data map[string]interface{}) {
	if _, err := p.tracker.TrackEngagement(ctx, engagement.TrackEngagementRequest{
		SubscriberID: subscriberID,
		EventType:    eventType,
		EventData:    data,
	}); err != nil {
		p.logger.Error(ctx, "failed to track automation engagement", err)
	}
}
