package services

import (
	"fmt"
	"sync"
	"time"

	"legal_case_api_go/db"
	"legal_case_api_go/models"
	"legal_case_api_go/structures"
)

// MaxCasesPerLawyer caps the active cases a lawyer can hold at once.
const MaxCasesPerLawyer = 2

// Urgency thresholds in days until the hearing.
const (
	urgentThresholdDays = 7
	highThresholdDays   = 14
)

// validTransitions is the case status state machine. Closed is terminal.
var validTransitions = map[string][]string{
	models.CaseStatusCreated:  {models.CaseStatusInReview, models.CaseStatusActive, models.CaseStatusClosed},
	models.CaseStatusInReview: {models.CaseStatusActive, models.CaseStatusCreated, models.CaseStatusClosed},
	models.CaseStatusActive:   {models.CaseStatusClosed},
	models.CaseStatusClosed:   {},
}

// caseSnapshot is the pre-update state pushed onto a case's undo stack.
type caseSnapshot struct {
	status    string
	updates   []models.CaseUpdate
	updatedAt time.Time
}

// Assignment outcomes of CreateCaseWithAssignment.
const (
	AssignOutcomeSuccess      = "success"
	AssignOutcomeAutoAssigned = "auto_assigned"
	AssignOutcomeAllBusy      = "all_busy"
)

// AssignmentResult reports how a case created with lawyer selection ended up
// routed.
type AssignmentResult struct {
	Outcome    string
	Case       models.Case
	AssignedTo *models.User // set for auto_assigned
}

// CaseManager handles case creation, access control, the status state
// machine with undo, and lawyer assignment. All compound operations hold the
// manager lock so status checks and undo pushes stay atomic.
type CaseManager struct {
	mu      sync.Mutex
	cases   *db.CaseStore
	users   *db.UserStore
	history map[string]*structures.Stack[caseSnapshot]
	now     func() time.Time // injectable clock for tests
}

// NewCaseManager creates a case manager over the given stores.
func NewCaseManager(cases *db.CaseStore, users *db.UserStore) *CaseManager {
	return &CaseManager{
		cases:   cases,
		users:   users,
		history: make(map[string]*structures.Stack[caseSnapshot]),
		now:     time.Now,
	}
}

// urgencyFor buckets days-until-hearing into an urgency level.
func urgencyFor(daysUntil int) string {
	switch {
	case daysUntil <= urgentThresholdDays:
		return models.UrgencyUrgent
	case daysUntil <= highThresholdDays:
		return models.UrgencyHigh
	default:
		return models.UrgencyNormal
	}
}

// CreateCase creates a case owned by the client, scoring urgency from the
// hearing date and seeding the initial hearing event. The priority score is
// frozen at creation; it is not recomputed as the hearing approaches.
func (m *CaseManager) CreateCase(clientID, caseType, description string, hearingDate time.Time) models.Case {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	daysUntil := DaysUntil(hearingDate, now)
	priorityScore := daysUntil
	if priorityScore < 0 {
		priorityScore = 0 // overdue hearings are maximally urgent
	}

	newCase := &models.Case{
		CaseID:           models.NewCaseID(),
		ClientID:         clientID,
		LawyerID:         nil,
		CaseType:         caseType,
		Description:      SanitizeUserInput(description),
		HearingDate:      hearingDate,
		UrgencyLevel:     urgencyFor(daysUntil),
		DaysUntilHearing: daysUntil,
		PriorityScore:    priorityScore,
		Status:           models.CaseStatusCreated,
		AssignmentType:   models.AssignmentGeneral,
		CreatedAt:        now,
		UpdatedAt:        now,
		Updates:          []models.CaseUpdate{},
		Events: []models.CaseEvent{
			{
				EventID:     models.NewEventID(),
				EventType:   models.EventTypeHearing,
				Date:        hearingDate,
				Description: "Court hearing",
				CreatedBy:   "system",
				CreatedAt:   now,
			},
		},
	}

	m.cases.Add(newCase)
	m.history[newCase.CaseID] = structures.NewStack[caseSnapshot]()

	return newCase.Clone()
}

// CheckAccess reports whether the user may touch the case: clients must own
// it, lawyers must be assigned to it. Unknown cases and roles are denied.
func (m *CaseManager) CheckAccess(caseID, userID, role string) bool {
	c, ok := m.cases.Get(caseID)
	if !ok {
		return false
	}

	switch role {
	case models.RoleClient:
		return c.ClientID == userID
	case models.RoleLawyer:
		return c.LawyerID != nil && *c.LawyerID == userID
	}
	return false
}

// UpdateCaseStatus applies a status transition, recording an audit entry and
// pushing the pre-update state onto the case's undo stack.
func (m *CaseManager) UpdateCaseStatus(caseID, newStatus, updatedBy, notes string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.cases.Get(caseID)
	if !ok {
		return fmt.Errorf("case %s: %w", caseID, ErrNotFound)
	}

	if !transitionAllowed(current.Status, newStatus) {
		return fmt.Errorf("%w: from %s to %s", ErrInvalidTransition, current.Status, newStatus)
	}

	stack, ok := m.history[caseID]
	if !ok {
		stack = structures.NewStack[caseSnapshot]()
		m.history[caseID] = stack
	}
	// current is already a clone; its updates slice is safe to retain
	if !stack.Push(caseSnapshot{
		status:    current.Status,
		updates:   current.Updates,
		updatedAt: current.UpdatedAt,
	}) {
		return fmt.Errorf("undo history full: %w", ErrCapacityExceeded)
	}

	now := m.now()
	m.cases.Mutate(caseID, func(c *models.Case) {
		c.Updates = append(c.Updates, models.CaseUpdate{
			Timestamp: now,
			UpdatedBy: updatedBy,
			OldStatus: c.Status,
			NewStatus: newStatus,
			Notes:     SanitizeUserInput(notes),
		})
		c.Status = newStatus
		c.UpdatedAt = now
	})

	return nil
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// UndoLastUpdate pops the most recent snapshot and restores status, updates,
// and updated_at verbatim. Each call walks one update further back.
func (m *CaseManager) UndoLastUpdate(caseID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stack, ok := m.history[caseID]
	if !ok {
		return fmt.Errorf("case %s: %w", caseID, ErrNoHistory)
	}

	snapshot, ok := stack.Pop()
	if !ok {
		return fmt.Errorf("case %s: %w", caseID, ErrNoHistory)
	}

	if !m.cases.Mutate(caseID, func(c *models.Case) {
		c.Status = snapshot.status
		c.Updates = snapshot.updates
		c.UpdatedAt = snapshot.updatedAt
	}) {
		return fmt.Errorf("case %s: %w", caseID, ErrNotFound)
	}

	return nil
}

// AssignLawyer sets (or clears, with nil) the case's lawyer. No validation
// of lawyer existence is performed.
func (m *CaseManager) AssignLawyer(caseID string, lawyerID *string) bool {
	return m.cases.Mutate(caseID, func(c *models.Case) {
		c.LawyerID = lawyerID
	})
}

// LawyerCaseCount counts the lawyer's non-closed cases.
func (m *CaseManager) LawyerCaseCount(lawyerID string) int {
	return m.cases.ActiveCountForLawyer(lawyerID)
}

// FindAvailableLawyer returns the first lawyer, in registration order, whose
// specialities include the target and whose active case count is under the
// cap. Registration order makes fallback assignment deterministic.
func (m *CaseManager) FindAvailableLawyer(speciality string) (models.User, bool) {
	for _, lawyer := range m.users.Lawyers() {
		if !lawyer.HasSpeciality(speciality) {
			continue
		}
		if m.cases.ActiveCountForLawyer(lawyer.UserID) < MaxCasesPerLawyer {
			return lawyer, true
		}
	}
	return models.User{}, false
}

// CreateCaseWithAssignment creates the case and tries to assign the client's
// selected lawyer; if that lawyer is at capacity it falls back to any lawyer
// with the speciality, and if nobody qualifies the case is left unassigned
// with the all_busy outcome.
func (m *CaseManager) CreateCaseWithAssignment(clientID, caseType, description string, hearingDate time.Time, selectedLawyerID, speciality string) AssignmentResult {
	created := m.CreateCase(clientID, caseType, description, hearingDate)

	if m.cases.ActiveCountForLawyer(selectedLawyerID) < MaxCasesPerLawyer {
		m.AssignLawyer(created.CaseID, &selectedLawyerID)
		assigned, _ := m.cases.Get(created.CaseID)
		return AssignmentResult{Outcome: AssignOutcomeSuccess, Case: assigned}
	}

	if alternative, ok := m.FindAvailableLawyer(speciality); ok {
		m.AssignLawyer(created.CaseID, &alternative.UserID)
		assigned, _ := m.cases.Get(created.CaseID)
		return AssignmentResult{Outcome: AssignOutcomeAutoAssigned, Case: assigned, AssignedTo: &alternative}
	}

	return AssignmentResult{Outcome: AssignOutcomeAllBusy, Case: created}
}
