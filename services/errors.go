package services

import "errors"

// Error taxonomy shared by the managers. Handlers translate these into HTTP
// status codes; nothing here retries or aborts on its own.
var (
	// ErrNotFound reports an unknown case, appointment, or document ID.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition reports a case status change the transition
	// table forbids.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrCapacityExceeded reports a lawyer at the case cap or a
	// fixed-capacity structure refusing another element.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrNotAvailable reports a pool operation against a case that is not
	// in an available-like state.
	ErrNotAvailable = errors.New("case not available")

	// ErrNotPending reports a direct-request operation against a case
	// with no pending request for that lawyer.
	ErrNotPending = errors.New("no pending request")

	// ErrNoHistory reports an undo with an empty history stack.
	ErrNoHistory = errors.New("no previous state to restore")

	// ErrScheduleConflict reports an appointment within the conflict
	// window of an already confirmed one.
	ErrScheduleConflict = errors.New("time slot conflicts with existing appointment")

	// ErrEmailTaken reports a signup against an existing email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials reports a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionInvalid reports a missing or expired session token.
	ErrSessionInvalid = errors.New("session invalid or expired")
)
