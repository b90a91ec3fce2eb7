package models

import "time"

// Notification types
const (
	NotificationNewAvailableCase = "new_available_case"
	NotificationDirectRequest    = "direct_assignment_request"
	NotificationCaseClaimed      = "case_claimed"
	NotificationCaseUnclaimed    = "case_unclaimed"
	NotificationRequestAccepted  = "request_accepted"
	NotificationRequestRejected  = "request_rejected"
	NotificationCaseUpdate       = "case_update"
	NotificationNewMessage       = "new_message"
	NotificationNewDocument      = "new_document"
	NotificationFollowUp         = "followup_scheduled"
	NotificationApptRequest      = "appointment_request"
	NotificationApptApproved     = "appointment_approved"
	NotificationApptRejected     = "appointment_rejected"
	NotificationApptRescheduled  = "appointment_rescheduled"
)

// Notification is one entry in a user's notification log.
type Notification struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	RelatedID string    `json:"related_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}
