package services

import (
	"fmt"
	"sync"
	"time"

	"legal_case_api_go/models"
	"legal_case_api_go/structures"
)

// FollowUpManager keeps a FIFO log of scheduled follow-ups per case. Only
// lawyers schedule follow-ups; the route layer enforces that.
type FollowUpManager struct {
	mu     sync.Mutex
	byCase *structures.HashTable[*structures.Queue[models.FollowUp]]
	now    func() time.Time
}

// NewFollowUpManager creates an empty follow-up manager.
func NewFollowUpManager() *FollowUpManager {
	return &FollowUpManager{
		byCase: structures.NewHashTable[*structures.Queue[models.FollowUp]](),
		now:    time.Now,
	}
}

// Schedule records a follow-up of the given type on the case.
func (m *FollowUpManager) Schedule(caseID, lawyerID, followupType string, scheduledDate time.Time, notes string) (models.FollowUp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	queue, ok := m.byCase.Get(caseID)
	if !ok {
		queue = structures.NewQueue[models.FollowUp]()
		m.byCase.Put(caseID, queue)
	}

	followup := models.FollowUp{
		FollowUpID:    models.NewMessageID(),
		Type:          followupType,
		ScheduledDate: scheduledDate,
		ScheduledBy:   lawyerID,
		Notes:         SanitizeUserInput(notes),
		CreatedAt:     m.now(),
	}

	if !queue.Enqueue(followup) {
		return models.FollowUp{}, fmt.Errorf("followup log for %s: %w", caseID, ErrCapacityExceeded)
	}
	return followup, nil
}

// FollowUps returns the case's follow-ups in scheduling order.
func (m *FollowUpManager) FollowUps(caseID string) []models.FollowUp {
	m.mu.Lock()
	defer m.mu.Unlock()

	queue, ok := m.byCase.Get(caseID)
	if !ok {
		return []models.FollowUp{}
	}
	return queue.All()
}
