package store

// Subscriber ENUMs
const (
	SubscriberStatusActive       = "active"
	SubscriberStatusUnsubscribed = "unsubscribed"
	SubscriberStatusExpired      = "expired"
)

// Campaign ENUMs
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusScheduled = "scheduled"
	CampaignStatusSending   = "sending"
	CampaignStatusSent      = "sent"
)

const (
	CampaignChannelEmail = "email"
	CampaignChannelPush  = "push"
)

const (
	CampaignTargetSegments = "segments"
	CampaignTargetTopics   = "topics"
	CampaignTargetAll      = "all"
)

// Campaign Delivery ENUMs
const (
	DeliveryStatusSent   = "sent"
	DeliveryStatusFailed = "failed"
)

// Engagement Event ENUMs
const (
	EventTypeDelivered   = "delivered"
	EventTypeOpen        = "open"
	EventTypeClick       = "click"
	EventTypeBounce      = "bounce"
	EventTypeUnsubscribe = "unsubscribe"
	EventTypeSpam        = "spam"
)

// Automation ENUMs
const (
	AutomationStatusActive = "active"
	AutomationStatusPaused = "paused"
)

const (
	AutomationTriggerEvent   = "event"
	AutomationTriggerTime    = "time"
	AutomationTriggerSegment = "segment"
)

const (
	AutomationStepSendEmail        = "send_email"
	AutomationStepWait             = "wait"
	AutomationStepUpdateSubscriber = "update_subscriber"
	AutomationStepAddToSegment     = "add_to_segment"
)

// Device Token ENUMs
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)

// Notification Log ENUMs
const (
	NotificationTargetDevice = "device"
	NotificationTargetTopic  = "topic"
)

const (
	NotificationStatusAttempt = "attempt"
	NotificationStatusSuccess = "success"
	NotificationStatusFailure = "failure"
)

// Audit ENUMs
const (
	AuditCategoryCampaign   = "campaign"
	AuditCategorySubscriber = "subscriber"
	AuditCategoryDevice     = "device"
)

const (
	AuditSeverityInfo    = "info"
	AuditSeverityWarning = "warning"
)
