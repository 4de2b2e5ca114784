// Package templates resolves push notification content and renders email bodies.
package templates

import (
	"errors"
	"fmt"
)

var ErrUnknownTemplate = errors.New("unknown notification template")

// Notification types
const (
	TypeBookingCreated   = "booking_created"
	TypeBookingConfirmed = "booking_confirmed"
	TypeBookingStarted   = "booking_started"
	TypeBookingCompleted = "booking_completed"
	TypeBookingCancelled = "booking_cancelled"
	TypeMechanicAssigned = "mechanic_assigned"
	TypePaymentSuccess   = "payment_success"
	TypePaymentFailed    = "payment_failed"
	TypePaymentPending   = "payment_pending"
	TypeServiceReminder  = "service_reminder"
	TypePromotional      = "promotional"
	TypeSystemAlert      = "system_alert"
)

const (
	defaultSound = "default"
	defaultIcon  = "notification_icon"

	colorSuccess = "#4ECDC4"
	colorAlert   = "#FF6B35"
	colorPending = "#FFA500"
	colorPromo   = "#9C27B0"
)

// PushTemplate is the display content of a push notification.
type PushTemplate struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Sound string `json:"sound"`
}

func push(title, body, color string) PushTemplate {
	return PushTemplate{Title: title, Body: body, Icon: defaultIcon, Color: color, Sound: defaultSound}
}

var pushTemplates = map[string]PushTemplate{
	TypeBookingCreated:   push("New Booking Created", "Your service booking has been created successfully!", colorSuccess),
	TypeBookingConfirmed: push("Booking Confirmed", "Your service booking has been confirmed!", colorSuccess),
	TypeBookingStarted:   push("Service Started", "Your mechanic has started working on your vehicle!", colorAlert),
	TypeBookingCompleted: push("Service Completed", "Your service has been completed successfully!", colorSuccess),
	TypeBookingCancelled: push("Booking Cancelled", "Your service booking has been cancelled.", colorAlert),
	TypeMechanicAssigned: push("Mechanic Assigned", "A mechanic has been assigned to your booking!", colorSuccess),
	TypePaymentSuccess:   push("Payment Successful", "Your payment has been processed successfully!", colorSuccess),
	TypePaymentFailed:    push("Payment Failed", "Your payment could not be processed. Please try again.", colorAlert),
	TypePaymentPending:   push("Payment Pending", "Your payment is being processed. Please wait.", colorPending),
	TypeServiceReminder:  push("Service Reminder", "Don't forget your upcoming service appointment!", colorPending),
	TypePromotional:      push("Special Offer", "You have a new promotional offer!", colorPromo),
	TypeSystemAlert:      push("System Alert", "You have a new system notification!", colorAlert),
}

// Resolve returns the template for notificationType, falling back to the
// system alert template for unknown types.
func Resolve(notificationType string) PushTemplate {
	if tmpl, ok := pushTemplates[notificationType]; ok {
		return tmpl
	}
	return pushTemplates[TypeSystemAlert]
}

// Lookup is the strict form of Resolve.
func Lookup(notificationType string) (PushTemplate, error) {
	tmpl, ok := pushTemplates[notificationType]
	if !ok {
		return PushTemplate{}, fmt.Errorf("%w: %s", ErrUnknownTemplate, notificationType)
	}
	return tmpl, nil
}

// Types lists every known notification type.
func Types() []string {
	return []string{
		TypeBookingCreated, TypeBookingConfirmed, TypeBookingStarted, TypeBookingCompleted,
		TypeBookingCancelled, TypeMechanicAssigned, TypePaymentSuccess, TypePaymentFailed,
		TypePaymentPending, TypeServiceReminder, TypePromotional, TypeSystemAlert,
	}
}
