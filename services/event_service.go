package services

import (
	"fmt"
	"sort"
	"time"

	"legal_case_api_go/db"
	"legal_case_api_go/models"
)

// EventManager appends dated events to cases and assembles the weekly
// calendar view.
type EventManager struct {
	cases *db.CaseStore
	now   func() time.Time
}

// NewEventManager creates an event manager over the case store.
func NewEventManager(cases *db.CaseStore) *EventManager {
	return &EventManager{cases: cases, now: time.Now}
}

// AddEvent appends a hearing, appointment, or follow-up event to the case.
func (m *EventManager) AddEvent(caseID, eventType string, date time.Time, description, createdBy string) (models.CaseEvent, error) {
	event := models.CaseEvent{
		EventID:     models.NewEventID(),
		EventType:   eventType,
		Date:        date,
		Description: description,
		CreatedBy:   createdBy,
		CreatedAt:   m.now(),
	}

	if !m.cases.Mutate(caseID, func(c *models.Case) {
		c.Events = append(c.Events, event)
	}) {
		return models.CaseEvent{}, fmt.Errorf("case %s: %w", caseID, ErrNotFound)
	}
	return event, nil
}

// WeeklyEvents collects the user's case events inside the Sunday-to-Saturday
// week containing start, in chronological order. Closed cases are excluded.
func (m *EventManager) WeeklyEvents(userID, role string, start time.Time) []models.CalendarEvent {
	daysSinceSunday := int(start.Weekday()) // Sunday == 0
	weekStart := start.AddDate(0, 0, -daysSinceSunday)
	weekEnd := weekStart.AddDate(0, 0, 6)

	var cases []models.Case
	if role == models.RoleClient {
		cases = m.cases.ByClient(userID)
	} else {
		cases = m.cases.ByLawyer(userID)
	}

	events := []models.CalendarEvent{}
	for _, c := range cases {
		if c.Status == models.CaseStatusClosed {
			continue
		}
		for _, event := range c.Events {
			if event.Date.Before(weekStart) || event.Date.After(weekEnd) {
				continue
			}
			events = append(events, models.CalendarEvent{
				CaseEvent:     event,
				CaseID:        c.CaseID,
				CaseType:      c.CaseType,
				UrgencyLevel:  c.UrgencyLevel,
				PriorityScore: c.PriorityScore,
			})
		}
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events
}
