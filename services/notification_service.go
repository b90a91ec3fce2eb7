package services

import (
	"log"
	"sync"
	"time"

	"legal_case_api_go/models"
	"legal_case_api_go/structures"
)

// NotificationManager keeps a FIFO notification log per user.
type NotificationManager struct {
	mu     sync.Mutex
	byUser *structures.HashTable[*structures.Queue[models.Notification]]
	now    func() time.Time
}

// NewNotificationManager creates an empty notification manager.
func NewNotificationManager() *NotificationManager {
	return &NotificationManager{
		byUser: structures.NewHashTable[*structures.Queue[models.Notification]](),
		now:    time.Now,
	}
}

// Add appends a notification to the user's log. A full log drops the
// notification with a warning; notifications are best-effort.
func (m *NotificationManager) Add(userID, notificationType, message, relatedID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	queue, ok := m.byUser.Get(userID)
	if !ok {
		queue = structures.NewQueue[models.Notification]()
		m.byUser.Put(userID, queue)
	}

	if !queue.Enqueue(models.Notification{
		Type:      notificationType,
		Message:   message,
		RelatedID: relatedID,
		Timestamp: m.now(),
	}) {
		log.Printf("notification log full for user %s, dropping %s", userID, notificationType)
	}
}

// Notifications returns the user's log in arrival order.
func (m *NotificationManager) Notifications(userID string) []models.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	queue, ok := m.byUser.Get(userID)
	if !ok {
		return []models.Notification{}
	}
	return queue.All()
}

// UnreadCount counts the user's unread notifications.
func (m *NotificationManager) UnreadCount(userID string) int {
	count := 0
	for _, n := range m.Notifications(userID) {
		if !n.Read {
			count++
		}
	}
	return count
}
