package apierrors

import (
	"errors"
	"strings"

	analyticsProcessor "notify-server/internal/analytics/processor"
	automationsProcessor "notify-server/internal/automations/processor"
	campaignProcessor "notify-server/internal/campaign/processor"
	"notify-server/internal/delivery"
	devicesProcessor "notify-server/internal/devices/processor"
	engagementProcessor "notify-server/internal/engagement/processor"
	notificationsProcessor "notify-server/internal/notifications/processor"
	segmentsProcessor "notify-server/internal/segments/processor"
	"notify-server/internal/store"
	subscribersProcessor "notify-server/internal/subscribers/processor"
	"notify-server/internal/templates"
	"notify-server/internal/tracking"
	"notify-server/internal/workers/campaign"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Campaign sends
	case errors.Is(err, campaign.ErrCampaignAlreadySent):
		return Conflict(CodeCampaignAlreadySent, "Campaign already sent")

	case errors.Is(err, campaign.ErrCampaignInProgress):
		return Conflict(CodeCampaignInProgress, "Campaign is already being sent")

	case errors.Is(err, campaign.ErrNoSubscribers):
		return UnprocessableEntity(CodeNoSubscribers, "No subscribers found for target segments")

	case errors.Is(err, campaign.ErrCampaignNotFound),
		errors.Is(err, campaignProcessor.ErrCampaignNotFound),
		errors.Is(err, analyticsProcessor.ErrCampaignNotFound):
		return NotFound(CodeCampaignNotFound, "Campaign not found")

	// Campaign authoring
	case errors.Is(err, campaignProcessor.ErrNameRequired):
		return BadRequest(CodeInvalidInput, "Campaign name is required")

	case errors.Is(err, campaignProcessor.ErrSubjectRequired):
		return BadRequest(CodeInvalidInput, "Campaign subject is required")

	case errors.Is(err, campaignProcessor.ErrInvalidChannel):
		return BadRequest(CodeInvalidInput, "Invalid channel. Valid values: email, push")

	case errors.Is(err, campaignProcessor.ErrInvalidTarget):
		return BadRequest(CodeInvalidInput, "Invalid target_type. Valid values: segments, topics, all")

	case errors.Is(err, campaignProcessor.ErrTopicsRequired):
		return BadRequest(CodeInvalidInput, "At least one topic is required")

	case errors.Is(err, campaignProcessor.ErrTopicsNeedPush):
		return BadRequest(CodeInvalidInput, "Only push campaigns can target topics")

	case errors.Is(err, campaignProcessor.ErrUnknownTemplate),
		errors.Is(err, templates.ErrUnknownTemplate):
		return BadRequest(CodeUnknownTemplate, "Unknown template")

	case errors.Is(err, campaignProcessor.ErrScheduleInPast):
		return BadRequest(CodeInvalidSchedule, "Scheduled time must be in the future")

	case errors.Is(err, campaignProcessor.ErrCampaignNotEditable):
		return Conflict(CodeCampaignNotEditable, "Only draft or scheduled campaigns can be scheduled")

	// Subscribers
	case errors.Is(err, subscribersProcessor.ErrSubscriberNotFound),
		errors.Is(err, engagementProcessor.ErrSubscriberNotFound),
		errors.Is(err, analyticsProcessor.ErrSubscriberNotFound):
		return NotFound(CodeSubscriberNotFound, "Subscriber not found")

	case errors.Is(err, subscribersProcessor.ErrSubscriberExists):
		return Conflict(CodeSubscriberExists, "Subscriber already exists")

	case errors.Is(err, subscribersProcessor.ErrEmailRequired):
		return BadRequest(CodeInvalidInput, "Email is required")

	case errors.Is(err, subscribersProcessor.ErrNothingToUpdate):
		return BadRequest(CodeInvalidInput, "At least one field must be provided")

	// Segments
	case errors.Is(err, segmentsProcessor.ErrSegmentNotFound),
		errors.Is(err, subscribersProcessor.ErrSegmentNotFound):
		return NotFound(CodeSegmentNotFound, "Segment not found")

	case errors.Is(err, segmentsProcessor.ErrSegmentExists):
		return Conflict(CodeSegmentExists, "Segment already exists")

	case errors.Is(err, segmentsProcessor.ErrNameRequired):
		return BadRequest(CodeInvalidInput, "Segment name is required")

	case errors.Is(err, segmentsProcessor.ErrInvalidCriteria),
		errors.Is(err, store.ErrInvalidCriteria):
		return BadRequest(CodeInvalidCriteria, "Invalid segment criteria")

	// Automations
	case errors.Is(err, automationsProcessor.ErrAutomationNotFound):
		return NotFound(CodeAutomationNotFound, "Automation not found")

	case errors.Is(err, automationsProcessor.ErrAutomationInactive):
		return Conflict(CodeAutomationInactive, "Automation is paused")

	case errors.Is(err, automationsProcessor.ErrNameRequired):
		return BadRequest(CodeInvalidInput, "Automation name is required")

	case errors.Is(err, automationsProcessor.ErrInvalidTrigger):
		return BadRequest(CodeInvalidInput, "Invalid trigger_type. Valid values: event, time, segment")

	case errors.Is(err, automationsProcessor.ErrInvalidStatus):
		return BadRequest(CodeInvalidInput, "Invalid status. Valid values: active, paused")

	case errors.Is(err, automationsProcessor.ErrStepsRequired):
		return BadRequest(CodeInvalidInput, "At least one step is required")

	case errors.Is(err, automationsProcessor.ErrInvalidStep):
		return BadRequest(CodeInvalidInput, err.Error())

	case errors.Is(err, automationsProcessor.ErrSegmentNotFound):
		return NotFound(CodeSegmentNotFound, "Segment not found")

	case errors.Is(err, automationsProcessor.ErrQueueUnavailable):
		return ServiceUnavailable(CodeQueueUnavailable, "Background queue is unavailable", err)

	// Engagement
	case errors.Is(err, engagementProcessor.ErrInvalidEventType):
		return BadRequest(CodeInvalidInput, "Event type is required")

	case errors.Is(err, tracking.ErrInvalidToken):
		return BadRequest(CodeInvalidToken, "Invalid or expired link")

	// Devices and notifications
	case errors.Is(err, devicesProcessor.ErrInvalidPlatform):
		return BadRequest(CodeInvalidInput, "Invalid platform. Valid values: ios, android")

	case errors.Is(err, devicesProcessor.ErrTokenRequired),
		errors.Is(err, delivery.ErrNoToken),
		errors.Is(err, delivery.ErrNoTokens):
		return BadRequest(CodeInvalidInput, "Device token is required")

	case errors.Is(err, devicesProcessor.ErrUserRequired),
		errors.Is(err, notificationsProcessor.ErrUserRequired):
		return BadRequest(CodeInvalidInput, "User id is required")

	case errors.Is(err, devicesProcessor.ErrTopicRequired),
		errors.Is(err, delivery.ErrNoTopic):
		return BadRequest(CodeInvalidInput, "Topic is required")

	case errors.Is(err, devicesProcessor.ErrDeviceNotFound):
		return NotFound(CodeDeviceNotFound, "Device token not found")

	case errors.Is(err, notificationsProcessor.ErrNoDevices):
		return NotFound(CodeNoDevices, "User has no push enabled devices")

	// Analytics
	case errors.Is(err, analyticsProcessor.ErrInvalidDateRange):
		return BadRequest(CodeInvalidDateRange, "Invalid date range")

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	case errors.Is(err, store.ErrAlreadyExists):
		return Conflict(CodeConflict, "Resource already exists")

	case errors.Is(err, delivery.ErrNoChannel):
		return ServiceUnavailable(CodeProviderUnavailable, "Delivery channel is not configured", err)

	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError maps provider failures by their classification,
// falling back to message content for unclassified errors.
func mapExternalServiceError(err error) *APIError {
	var de *delivery.Error
	if errors.As(err, &de) {
		switch de.Kind {
		case delivery.KindTerminal, delivery.KindInvalidToken:
			return BadRequest(CodeDeliveryFailed, "Notification could not be delivered")
		default:
			return ServiceUnavailable(
				CodeProviderUnavailable,
				"Delivery provider is temporarily unavailable. Please try again later.",
				err,
			)
		}
	}

	errMsg := strings.ToLower(err.Error())

	// Email service errors (Resend)
	if strings.Contains(errMsg, "resend") || strings.Contains(errMsg, "email service") {
		return ServiceUnavailable(
			CodeProviderUnavailable,
			"Email service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	if strings.Contains(errMsg, "fcm") || strings.Contains(errMsg, "firebase") {
		return ServiceUnavailable(
			CodeProviderUnavailable,
			"Push service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	if strings.Contains(errMsg, "queue is not configured") {
		return ServiceUnavailable(CodeQueueUnavailable, "Background queue is unavailable", err)
	}

	return InternalError(err)
}
