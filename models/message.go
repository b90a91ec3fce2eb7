package models

import "time"

// Message is one entry in a case's message log.
type Message struct {
	MessageID  string    `json:"message_id"`
	SenderID   string    `json:"sender_id"`
	SenderRole string    `json:"sender_role"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

// Follow-up types
const (
	FollowUpConsultation = "consultation"
	FollowUpHearing      = "hearing"
)

// FollowUp is a lawyer-scheduled follow-up or hearing on a case.
type FollowUp struct {
	FollowUpID    string    `json:"followup_id"`
	Type          string    `json:"type"`
	ScheduledDate time.Time `json:"scheduled_date"`
	ScheduledBy   string    `json:"scheduled_by"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}
