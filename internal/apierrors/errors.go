package apierrors

import (
	"fmt"
	"net/http"

	"notify-server/internal/observability"
)

var logger = observability.NewLogger()

// Machine-readable error codes returned in ErrorResponse.Code.
const (
	CodeNotFound            = "NOT_FOUND"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeConflict            = "CONFLICT"
	CodeInternalError       = "INTERNAL_ERROR"
	CodeCampaignNotFound    = "CAMPAIGN_NOT_FOUND"
	CodeCampaignAlreadySent = "CAMPAIGN_ALREADY_SENT"
	CodeCampaignInProgress  = "CAMPAIGN_IN_PROGRESS"
	CodeCampaignNotEditable = "CAMPAIGN_NOT_EDITABLE"
	CodeNoSubscribers       = "NO_SUBSCRIBERS"
	CodeSubscriberNotFound  = "SUBSCRIBER_NOT_FOUND"
	CodeSubscriberExists    = "SUBSCRIBER_EXISTS"
	CodeSegmentNotFound     = "SEGMENT_NOT_FOUND"
	CodeAutomationNotFound  = "AUTOMATION_NOT_FOUND"
	CodeAutomationInactive  = "AUTOMATION_INACTIVE"
	CodeSegmentExists       = "SEGMENT_EXISTS"
	CodeInvalidCriteria     = "INVALID_CRITERIA"
	CodeUnknownTemplate     = "UNKNOWN_TEMPLATE"
	CodeInvalidSchedule     = "INVALID_SCHEDULE"
	CodeInvalidDateRange    = "INVALID_DATE_RANGE"
	CodeInvalidToken        = "INVALID_TOKEN"
	CodeDeviceNotFound      = "DEVICE_NOT_FOUND"
	CodeNoDevices           = "NO_DEVICES"
	CodeDeliveryFailed      = "DELIVERY_FAILED"
	CodeProviderUnavailable = "PROVIDER_UNAVAILABLE"
	CodeQueueUnavailable    = "QUEUE_UNAVAILABLE"
	CodeRateLimitExceeded   = "RATE_LIMIT_EXCEEDED"
)

// APIError is an error carrying the HTTP status and the sanitized message
// shown to clients. Internal holds the cause for logs only.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Internal   error
}

func (e *APIError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Internal)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Internal
}

// ErrorResponse is the JSON structure returned to API clients
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

func UnprocessableEntity(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusUnprocessableEntity, Code: code, Message: message}
}

func TooManyRequests(message string) *APIError {
	return &APIError{StatusCode: http.StatusTooManyRequests, Code: CodeRateLimitExceeded, Message: message}
}

// ServiceUnavailable keeps the cause for logging; it is never sent to clients.
func ServiceUnavailable(code, message string, internalErr error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Internal: internalErr}
}

// InternalError is a sanitized 500 that never exposes internal details
func InternalError(internalErr error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Internal:   internalErr,
	}
}
