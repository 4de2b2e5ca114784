package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = JSONB{}
		return nil
	}
	raw, err := rawJSON(value)
	if err != nil {
		return err
	}
	if len(raw) == 0 || string(raw) == "null" {
		*j = JSONB{}
		return nil
	}
	result := make(JSONB)
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

func rawJSON(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("incompatible type for JSONB")
	}
}

// UUIDArray maps a PostgreSQL uuid[] column.
type UUIDArray []uuid.UUID

func (a UUIDArray) Value() (driver.Value, error) {
	strs := make([]string, len(a))
	for i, id := range a {
		strs[i] = id.String()
	}
	return pq.StringArray(strs).Value()
}

func (a *UUIDArray) Scan(value interface{}) error {
	var strs pq.StringArray
	if err := strs.Scan(value); err != nil {
		return err
	}
	out := make(UUIDArray, 0, len(strs))
	for _, s := range strs {
		id, err := uuid.Parse(s)
		if err != nil {
			return fmt.Errorf("invalid uuid in array: %w", err)
		}
		out = append(out, id)
	}
	*a = out
	return nil
}

// Contains reports whether id is present in the array.
func (a UUIDArray) Contains(id uuid.UUID) bool {
	for _, v := range a {
		if v == id {
			return true
		}
	}
	return false
}

// Subscriber is a recipient of campaigns.
type Subscriber struct {
	ID                uuid.UUID      `db:"id" json:"id"`
	Email             string         `db:"email" json:"email"`
	FirstName         *string        `db:"first_name" json:"first_name,omitempty"`
	LastName          *string        `db:"last_name" json:"last_name,omitempty"`
	DeviceToken       *string        `db:"device_token" json:"device_token,omitempty"`
	Status            string         `db:"status" json:"status"`
	SegmentIDs        UUIDArray      `db:"segment_ids" json:"segment_ids"`
	Tags              pq.StringArray `db:"tags" json:"tags"`
	EngagementScore   int            `db:"engagement_score" json:"engagement_score"`
	LastEngagementAt  *time.Time     `db:"last_engagement_at" json:"last_engagement_at,omitempty"`
	SubscribedAt      time.Time      `db:"subscribed_at" json:"subscribed_at"`
	UnsubscribedAt    *time.Time     `db:"unsubscribed_at" json:"unsubscribed_at,omitempty"`
	UnsubscribeReason *string        `db:"unsubscribe_reason" json:"unsubscribe_reason,omitempty"`
	Metadata          JSONB          `db:"metadata" json:"metadata"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updated_at"`
}

// CampaignStats are the monotonic counters kept on a campaign row.
type CampaignStats struct {
	Sent         int `db:"stats_sent" json:"sent"`
	Delivered    int `db:"stats_delivered" json:"delivered"`
	Opened       int `db:"stats_opened" json:"opened"`
	Clicked      int `db:"stats_clicked" json:"clicked"`
	Bounced      int `db:"stats_bounced" json:"bounced"`
	Unsubscribed int `db:"stats_unsubscribed" json:"unsubscribed"`
	Spam         int `db:"stats_spam" json:"spam"`
}

type Campaign struct {
	ID               uuid.UUID      `db:"id" json:"id"`
	Name             string         `db:"name" json:"name"`
	Subject          string         `db:"subject" json:"subject"`
	TemplateName     string         `db:"template_name" json:"template_name"`
	Body             string         `db:"body" json:"body"`
	Channel          string         `db:"channel" json:"channel"`
	NotificationType *string        `db:"notification_type" json:"notification_type,omitempty"`
	SegmentIDs       UUIDArray      `db:"segment_ids" json:"segment_ids"`
	TargetType       string         `db:"target_type" json:"target_type"`
	Topics           pq.StringArray `db:"topics" json:"topics"`
	Status           string         `db:"status" json:"status"`
	ScheduledAt      *time.Time     `db:"scheduled_at" json:"scheduled_at,omitempty"`
	SentAt           *time.Time     `db:"sent_at" json:"sent_at,omitempty"`
	CompletedAt      *time.Time     `db:"completed_at" json:"completed_at,omitempty"`
	CampaignStats    `json:"stats"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// CampaignDelivery is the per recipient outcome of a campaign send.
type CampaignDelivery struct {
	ID           uuid.UUID `db:"id" json:"id"`
	CampaignID   uuid.UUID `db:"campaign_id" json:"campaign_id"`
	SubscriberID uuid.UUID `db:"subscriber_id" json:"subscriber_id"`
	Status       string    `db:"status" json:"status"`
	MessageID    *string   `db:"message_id" json:"message_id,omitempty"`
	Error        *string   `db:"error" json:"error,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type EngagementEvent struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	SubscriberID uuid.UUID  `db:"subscriber_id" json:"subscriber_id"`
	CampaignID   *uuid.UUID `db:"campaign_id" json:"campaign_id,omitempty"`
	EventType    string     `db:"event_type" json:"event_type"`
	EventData    JSONB      `db:"event_data" json:"event_data"`
	OccurredAt   time.Time  `db:"occurred_at" json:"occurred_at"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

type DeviceToken struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	UserID           string     `db:"user_id" json:"user_id"`
	Token            string     `db:"token" json:"token"`
	Platform         string     `db:"platform" json:"platform"`
	PushEnabled      bool       `db:"push_enabled" json:"push_enabled"`
	BiometricEnabled bool       `db:"biometric_enabled" json:"biometric_enabled"`
	IsActive         bool       `db:"is_active" json:"is_active"`
	LastUsedAt       *time.Time `db:"last_used_at" json:"last_used_at,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// Segment is a named subscriber filter.
type Segment struct {
	ID                    uuid.UUID       `db:"id" json:"id"`
	Name                  string          `db:"name" json:"name"`
	Description           *string         `db:"description" json:"description,omitempty"`
	Criteria              SegmentCriteria `db:"criteria" json:"criteria"`
	CachedSubscriberCount int             `db:"cached_subscriber_count" json:"cached_subscriber_count"`
	CachedAt              *time.Time      `db:"cached_at" json:"cached_at,omitempty"`
	CreatedAt             time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time       `db:"updated_at" json:"updated_at"`
}

// Criterion is a single field/operator/value condition of a segment.
type Criterion struct {
	Field    string      `json:"field"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value"`
}

// SegmentCriteria is stored as a JSONB array; all entries must hold.
type SegmentCriteria []Criterion

func (c SegmentCriteria) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

func (c *SegmentCriteria) Scan(value interface{}) error {
	if value == nil {
		*c = SegmentCriteria{}
		return nil
	}
	raw, err := rawJSON(value)
	if err != nil {
		return err
	}
	if len(raw) == 0 || string(raw) == "null" {
		*c = SegmentCriteria{}
		return nil
	}
	var out SegmentCriteria
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*c = out
	return nil
}

type Topic struct {
	Name            string    `db:"name" json:"name"`
	SubscriberCount int       `db:"subscriber_count" json:"subscriber_count"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

type NotificationLog struct {
	ID               uuid.UUID `db:"id" json:"id"`
	TargetType       string    `db:"target_type" json:"target_type"`
	Target           string    `db:"target" json:"target"`
	NotificationType string    `db:"notification_type" json:"notification_type"`
	Title            string    `db:"title" json:"title"`
	Body             string    `db:"body" json:"body"`
	Data             JSONB     `db:"data" json:"data"`
	Status           string    `db:"status" json:"status"`
	MessageID        *string   `db:"message_id" json:"message_id,omitempty"`
	Error            *string   `db:"error" json:"error,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

type AuditLog struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Category  string    `db:"category" json:"category"`
	Severity  string    `db:"severity" json:"severity"`
	Details   JSONB     `db:"details" json:"details"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type AutomationStats struct {
	Triggered int `db:"stats_triggered" json:"triggered"`
	Completed int `db:"stats_completed" json:"completed"`
	Failed    int `db:"stats_failed" json:"failed"`
}

// Automation is a reusable sequence of steps run against a segment audience
// each time it is triggered.
type Automation struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	Name              string          `db:"name" json:"name"`
	Description       *string         `db:"description" json:"description,omitempty"`
	TriggerType       string          `db:"trigger_type" json:"trigger_type"`
	TriggerConditions JSONB           `db:"trigger_conditions" json:"trigger_conditions"`
	Steps             AutomationSteps `db:"steps" json:"steps"`
	SegmentIDs        UUIDArray       `db:"segment_ids" json:"segment_ids"`
	Status            string          `db:"status" json:"status"`
	AutomationStats   `json:"stats"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// AutomationStep is one action of an automation. Which fields apply depends
// on Type.
type AutomationStep struct {
	Type string `json:"type"`

	// send_email
	TemplateName string `json:"template_name,omitempty"`
	Subject      string `json:"subject,omitempty"`
	Content      string `json:"content,omitempty"`

	// wait, as a Go duration string such as "24h"
	Duration string `json:"duration,omitempty"`

	// update_subscriber
	Updates *SubscriberUpdate `json:"updates,omitempty"`

	// add_to_segment
	SegmentID *uuid.UUID `json:"segment_id,omitempty"`
}

// SubscriberUpdate is the profile change an update_subscriber step applies.
type SubscriberUpdate struct {
	FirstName *string                `json:"first_name,omitempty"`
	LastName  *string                `json:"last_name,omitempty"`
	Tags      []string               `json:"tags,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// AutomationSteps is stored as a JSONB array and runs in order.
type AutomationSteps []AutomationStep

func (a AutomationSteps) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

func (a *AutomationSteps) Scan(value interface{}) error {
	if value == nil {
		*a = AutomationSteps{}
		return nil
	}
	raw, err := rawJSON(value)
	if err != nil {
		return err
	}
	if len(raw) == 0 || string(raw) == "null" {
		*a = AutomationSteps{}
		return nil
	}
	var out AutomationSteps
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("invalid automation steps: %w", err)
	}
	*a = out
	return nil
}
