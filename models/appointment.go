package models

import "time"

// Appointment statuses
const (
	AppointmentPending     = "pending"
	AppointmentApproved    = "approved"
	AppointmentRejected    = "rejected"
	AppointmentRescheduled = "rescheduled"
)

// Appointment is a consultation request raised by a client on a case and
// processed by a lawyer from the dispatch queues.
type Appointment struct {
	AppointmentID       string     `json:"appointment_id"`
	CaseID              string     `json:"case_id"`
	ClientID            string     `json:"client_id"`
	LawyerID            string     `json:"lawyer_id,omitempty"`
	PreferredDatetime   time.Time  `json:"preferred_datetime"`
	ConfirmedDatetime   *time.Time `json:"confirmed_datetime,omitempty"`
	RescheduledDatetime *time.Time `json:"rescheduled_datetime,omitempty"`
	Status              string     `json:"status"`
	Urgent              bool       `json:"urgent"`
	RejectionReason     string     `json:"rejection_reason,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}
