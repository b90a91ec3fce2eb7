package models

import "time"

// Case statuses
const (
	CaseStatusCreated  = "created"
	CaseStatusInReview = "in_review"
	CaseStatusActive   = "active"
	CaseStatusClosed   = "closed" // terminal
)

// Urgency levels derived from days until the hearing
const (
	UrgencyUrgent = "urgent" // hearing within 7 days (or overdue)
	UrgencyHigh   = "high"   // hearing within 14 days
	UrgencyNormal = "normal"
)

// Assignment routing requested at case creation
const (
	AssignmentGeneral = "general"
	AssignmentDirect  = "direct"
	AssignmentAuto    = "auto" // assign the selected lawyer now, with specialty fallback
)

// Case is a legal case record. Cases are never deleted; closed is terminal
// and retained for audit.
type Case struct {
	CaseID           string    `json:"case_id"`
	ClientID         string    `json:"client_id"`
	LawyerID         *string   `json:"lawyer_id"`
	CaseType         string    `json:"case_type"`
	Description      string    `json:"description"`
	HearingDate      time.Time `json:"hearing_date"`
	UrgencyLevel     string    `json:"urgency_level"`
	DaysUntilHearing int       `json:"days_until_hearing"` // negative when overdue
	PriorityScore    int       `json:"priority_score"`     // max(0, days until hearing); frozen at creation
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Pool routing
	AssignmentType     string  `json:"assignment_type,omitempty"`
	RequestedLawyerID  *string `json:"requested_lawyer_id,omitempty"`

	Updates []CaseUpdate `json:"updates"` // append-only audit log
	Events  []CaseEvent  `json:"events"`
}

// IsUrgent reports whether the case routes through the urgent pool.
func (c *Case) IsUrgent() bool {
	return c.UrgencyLevel == UrgencyUrgent
}

// Clone returns a copy of the case whose slices and pointer fields are
// independent of the original, so callers can read it without observing
// later mutations.
func (c *Case) Clone() Case {
	cloned := *c
	if c.LawyerID != nil {
		id := *c.LawyerID
		cloned.LawyerID = &id
	}
	if c.RequestedLawyerID != nil {
		id := *c.RequestedLawyerID
		cloned.RequestedLawyerID = &id
	}
	cloned.Updates = make([]CaseUpdate, len(c.Updates))
	copy(cloned.Updates, c.Updates)
	cloned.Events = make([]CaseEvent, len(c.Events))
	copy(cloned.Events, c.Events)
	return cloned
}

// CaseUpdate is one audit entry recorded on a status change.
type CaseUpdate struct {
	Timestamp time.Time `json:"timestamp"`
	UpdatedBy string    `json:"updated_by"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	Notes     string    `json:"notes"`
}

// Case event types
const (
	EventTypeHearing     = "hearing"
	EventTypeAppointment = "appointment"
	EventTypeFollowUp    = "followup"
)

// CaseEvent is a dated item on a case (hearing, appointment, follow-up).
type CaseEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// CalendarEvent is a case event enriched with case context for the weekly
// calendar view.
type CalendarEvent struct {
	CaseEvent
	CaseID        string `json:"case_id"`
	CaseType      string `json:"case_type"`
	UrgencyLevel  string `json:"urgency_level"`
	PriorityScore int    `json:"priority_score"`
}
