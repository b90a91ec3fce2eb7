package services

import "legal_case_api_go/db"

// Package-level manager registry, initialized once at startup after the
// stores exist. Handlers reach managers through these, the same way they
// reach the stores through the db package.
var (
	Cases         *CaseManager
	Pool          *AvailableCasesPool
	Appointments  *AppointmentManager
	Messages      *MessageManager
	FollowUps     *FollowUpManager
	Notifications *NotificationManager
	Documents     *DocumentManager
	Events        *EventManager
)

// InitManagers wires the managers to the current stores. Tests call it again
// after db.Initialize to reset all workflow state.
func InitManagers() {
	Cases = NewCaseManager(db.Cases, db.Users)
	Pool = NewAvailableCasesPool()
	Appointments = NewAppointmentManager()
	Messages = NewMessageManager()
	FollowUps = NewFollowUpManager()
	Notifications = NewNotificationManager()
	Documents = NewDocumentManager(db.Documents, db.Cases)
	Events = NewEventManager(db.Cases)
}
