package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeCampaignSend       = "campaign:send"
	TypeAutomationRun      = "automation:run"
	TypeDeviceTokenCleanup = "device:token_cleanup"
)

// Queue names
const (
	QueueHigh   = "high"
	QueueMedium = "medium"
	QueueLow    = "low"
)

// CampaignSendJobPayload asks a worker to run the campaign batcher.
// ScheduledAt is the send time the task was deferred to; a worker drops the
// task once the campaign no longer carries that time.
type CampaignSendJobPayload struct {
	CampaignID  uuid.UUID  `json:"campaign_id"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

// NewCampaignSendTask creates a campaign send task. A non-nil processAt defers
// the task; the task id keeps one task per campaign and send time.
func NewCampaignSendTask(payload CampaignSendJobPayload, processAt *time.Time) (*asynq.Task, error) {
	if processAt != nil {
		at := processAt.UTC()
		payload.ScheduledAt = &at
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	opts := []asynq.Option{asynq.Queue(QueueHigh), asynq.MaxRetry(5)}
	taskID := "campaign-send:" + payload.CampaignID.String()
	if processAt != nil {
		opts = append(opts, asynq.ProcessAt(*processAt))
		taskID = fmt.Sprintf("%s:%d", taskID, processAt.Unix())
	}
	opts = append(opts, asynq.TaskID(taskID))

	return asynq.NewTask(TypeCampaignSend, data, opts...), nil
}

// AutomationRunJobPayload runs an automation's steps starting at FromStep.
// A wait step ends the task and enqueues the rest of the run as a new task;
// StepFailed carries an earlier task's failure through to the final stats.
type AutomationRunJobPayload struct {
	AutomationID uuid.UUID              `json:"automation_id"`
	RunID        uuid.UUID              `json:"run_id"`
	FromStep     int                    `json:"from_step"`
	TriggerData  map[string]interface{} `json:"trigger_data,omitempty"`
	StepFailed   bool                   `json:"step_failed,omitempty"`
}

// NewAutomationRunTask creates an automation run task delayed by delay. The
// task id is unique per run and starting step.
func NewAutomationRunTask(payload AutomationRunJobPayload, delay time.Duration) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	opts := []asynq.Option{
		asynq.Queue(QueueMedium),
		asynq.MaxRetry(3),
		asynq.TaskID(fmt.Sprintf("automation-run:%s:%d", payload.RunID, payload.FromStep)),
	}
	if delay > 0 {
		opts = append(opts, asynq.ProcessIn(delay))
	}
	return asynq.NewTask(TypeAutomationRun, data, opts...), nil
}

// DeviceTokenCleanupJobPayload removes tokens deactivated longer than OlderThan ago.
type DeviceTokenCleanupJobPayload struct {
	OlderThan time.Duration `json:"older_than"`
}

func NewDeviceTokenCleanupTask(payload DeviceTokenCleanupJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDeviceTokenCleanup, data, asynq.Queue(QueueLow), asynq.MaxRetry(3)), nil
}
