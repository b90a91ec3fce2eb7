package services

import (
	"fmt"
	"math"
	"sync"
	"time"

	"legal_case_api_go/models"
	"legal_case_api_go/structures"
)

// conflictWindow is the minimum spacing between two confirmed appointments
// on one lawyer's schedule.
const conflictWindow = 60 * time.Minute

// urgentAppointmentPriority keys every urgent request; within the urgent
// queue they dispatch strictly first-come first-served.
const urgentAppointmentPriority = 1

// AppointmentManager routes appointment requests through a normal FIFO and
// an urgent priority queue, and tracks lawyer schedules for conflict
// detection.
type AppointmentManager struct {
	mu           sync.Mutex
	normalQueue  *structures.Queue[*models.Appointment]
	urgentQueue  *structures.PriorityQueue[*models.Appointment]
	appointments *structures.HashTable[*models.Appointment]
	schedules    *structures.HashTable[[]time.Time] // lawyer ID -> confirmed slots
	now          func() time.Time
}

// NewAppointmentManager creates an empty appointment manager.
func NewAppointmentManager() *AppointmentManager {
	return &AppointmentManager{
		normalQueue:  structures.NewQueue[*models.Appointment](),
		urgentQueue:  structures.NewPriorityQueue[*models.Appointment](),
		appointments: structures.NewHashTable[*models.Appointment](),
		schedules:    structures.NewHashTable[[]time.Time](),
		now:          time.Now,
	}
}

// RequestAppointment files a client's appointment request, routing it to the
// urgent or normal queue.
func (m *AppointmentManager) RequestAppointment(caseID, clientID string, preferred time.Time, urgent bool) (models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	appointment := &models.Appointment{
		AppointmentID:     models.NewAppointmentID(),
		CaseID:            caseID,
		ClientID:          clientID,
		PreferredDatetime: preferred,
		Status:            models.AppointmentPending,
		Urgent:            urgent,
		CreatedAt:         m.now(),
	}

	queued := false
	if urgent {
		queued = m.urgentQueue.Enqueue(appointment, urgentAppointmentPriority)
	} else {
		queued = m.normalQueue.Enqueue(appointment)
	}
	if !queued {
		return models.Appointment{}, fmt.Errorf("appointment queue: %w", ErrCapacityExceeded)
	}

	m.appointments.Put(appointment.AppointmentID, appointment)
	return *appointment, nil
}

// NextRequest pops the next request a lawyer should process, urgent queue
// first.
func (m *AppointmentManager) NextRequest() (models.Appointment, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if appointment, ok := m.urgentQueue.Dequeue(); ok {
		return *appointment, true
	}
	if appointment, ok := m.normalQueue.Dequeue(); ok {
		return *appointment, true
	}
	return models.Appointment{}, false
}

// PendingRequests lists queued requests, urgent first, without consuming
// them.
func (m *AppointmentManager) PendingRequests() []models.Appointment {
	m.mu.Lock()
	defer m.mu.Unlock()

	queued := append(m.urgentQueue.All(), m.normalQueue.All()...)
	result := make([]models.Appointment, len(queued))
	for i, appointment := range queued {
		result[i] = *appointment
	}
	return result
}

// Get returns a copy of the appointment record.
func (m *AppointmentManager) Get(appointmentID string) (models.Appointment, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	appointment, ok := m.appointments.Get(appointmentID)
	if !ok {
		return models.Appointment{}, false
	}
	return *appointment, true
}

// hasConflict reports whether proposed falls within the conflict window of
// any confirmed slot on the lawyer's schedule. Callers hold the lock.
func (m *AppointmentManager) hasConflict(lawyerID string, proposed time.Time) bool {
	slots, ok := m.schedules.Get(lawyerID)
	if !ok {
		return false
	}
	for _, existing := range slots {
		if math.Abs(existing.Sub(proposed).Minutes()) < conflictWindow.Minutes() {
			return true
		}
	}
	return false
}

// Approve confirms an appointment for the lawyer at the given time, after
// checking the lawyer's schedule for conflicts.
func (m *AppointmentManager) Approve(appointmentID, lawyerID string, confirmed time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	appointment, ok := m.appointments.Get(appointmentID)
	if !ok {
		return fmt.Errorf("appointment %s: %w", appointmentID, ErrNotFound)
	}

	if m.hasConflict(lawyerID, confirmed) {
		return ErrScheduleConflict
	}

	appointment.Status = models.AppointmentApproved
	appointment.ConfirmedDatetime = &confirmed
	appointment.LawyerID = lawyerID

	slots, _ := m.schedules.Get(lawyerID)
	m.schedules.Put(lawyerID, append(slots, confirmed))

	return nil
}

// Reject marks the appointment rejected with a reason.
func (m *AppointmentManager) Reject(appointmentID, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	appointment, ok := m.appointments.Get(appointmentID)
	if !ok {
		return fmt.Errorf("appointment %s: %w", appointmentID, ErrNotFound)
	}
	appointment.Status = models.AppointmentRejected
	appointment.RejectionReason = reason
	return nil
}

// Reschedule marks the appointment rescheduled to a new time.
func (m *AppointmentManager) Reschedule(appointmentID string, newTime time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	appointment, ok := m.appointments.Get(appointmentID)
	if !ok {
		return fmt.Errorf("appointment %s: %w", appointmentID, ErrNotFound)
	}
	appointment.Status = models.AppointmentRescheduled
	appointment.RescheduledDatetime = &newTime
	return nil
}

// QueueStats reports the dispatch queue lengths.
func (m *AppointmentManager) QueueStats() (normal, urgent int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.normalQueue.Len(), m.urgentQueue.Len()
}
