package services

import (
	"fmt"
	"sync"
	"time"

	"legal_case_api_go/models"
	"legal_case_api_go/structures"
)

// MessageManager keeps a FIFO message log per case.
type MessageManager struct {
	mu     sync.Mutex
	byCase *structures.HashTable[*structures.Queue[models.Message]]
	now    func() time.Time
}

// NewMessageManager creates an empty message manager.
func NewMessageManager() *MessageManager {
	return &MessageManager{
		byCase: structures.NewHashTable[*structures.Queue[models.Message]](),
		now:    time.Now,
	}
}

// Send appends a message to the case's log. Content is stripped of markup
// before storage.
func (m *MessageManager) Send(caseID, senderID, senderRole, content string) (models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	queue, ok := m.byCase.Get(caseID)
	if !ok {
		queue = structures.NewQueue[models.Message]()
		m.byCase.Put(caseID, queue)
	}

	message := models.Message{
		MessageID:  models.NewMessageID(),
		SenderID:   senderID,
		SenderRole: senderRole,
		Content:    SanitizeUserInput(content),
		Timestamp:  m.now(),
	}

	if !queue.Enqueue(message) {
		return models.Message{}, fmt.Errorf("message log for %s: %w", caseID, ErrCapacityExceeded)
	}
	return message, nil
}

// Messages returns the case's log in send order.
func (m *MessageManager) Messages(caseID string) []models.Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	queue, ok := m.byCase.Get(caseID)
	if !ok {
		return []models.Message{}
	}
	return queue.All()
}
