package workers

//go:generate go run go.uber.org/mock/mockgen@latest -source=automation_worker.go -destination=automation_mocks_test.go -package=workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	automations "notify-server/internal/automations/processor"
	"notify-server/internal/jobs"
	"notify-server/internal/observability"

	"github.com/hibiken/asynq"
)

type AutomationRunner interface {
	RunAutomation(ctx context.Context, run jobs.AutomationRunJobPayload) (automations.RunResult, error)
}

// AutomationWorker runs one leg of an automation per task
type AutomationWorker struct {
	runner AutomationRunner
	logger *observability.Logger
}

func NewAutomationWorker(runner AutomationRunner, logger *observability.Logger) *AutomationWorker {
	return &AutomationWorker{
		runner: runner,
		logger: logger,
	}
}

func (w *AutomationWorker) ProcessAutomationRunTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.AutomationRunJobPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal automation run job payload", err)
		return fmt.Errorf("failed to unmarshal automation run job payload: %v: %w", err, asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "automation_id", Value: payload.AutomationID},
		observability.Field{Key: "run_id", Value: payload.RunID},
	)

	result, err := w.runner.RunAutomation(ctx, payload)
	switch {
	case errors.Is(err, automations.ErrAutomationNotFound),
		errors.Is(err, automations.ErrInvalidStep),
		errors.Is(err, automations.ErrQueueUnavailable):
		w.logger.Error(ctx, "automation run cannot succeed", err)
		return fmt.Errorf("automation run failed: %v: %w", err, asynq.SkipRetry)
	case err != nil:
		w.logger.InfoWithError(ctx, "automation run failed, will retry", err)
		return fmt.Errorf("automation run failed: %w", err)
	}

	fields := []observability.Field{
		{Key: "subscribers", Value: result.Subscribers},
		{Key: "steps_run", Value: result.StepsRun},
		{Key: "steps_failed", Value: result.StepsFailed},
		{Key: "stopped", Value: result.Stopped},
	}
	if result.NextStep != nil {
		fields = append(fields, observability.Field{Key: "next_step", Value: *result.NextStep})
	}
	w.logger.Info(observability.WithFields(ctx, fields...), "automation run job completed")
	return nil
}
