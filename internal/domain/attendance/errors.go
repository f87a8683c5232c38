package attendance

import "errors"

// Attendance domain errors. Every rejection reason the engine can produce
// is a distinct value so callers see it verbatim.
var (
	// Precondition failures; never mutate stored state.
	ErrBiometricNotRegistered = errors.New("face data not registered")
	ErrFaceNotRecognized      = errors.New("face not recognized")
	ErrNoLocationConfigured   = errors.New("no attendance location configured")
	ErrNotInAllowedLocation   = errors.New("not within an allowed location")

	// Temporal policy failures.
	ErrCheckInTimePassed   = errors.New("check-in time has passed")
	ErrAlreadyMarkedAbsent = errors.New("already marked absent for today")

	// State-conflict failures; never mutate stored state.
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrMustCheckInFirst  = errors.New("must check in before checking out")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")

	// ErrDuplicateRecord is raised by the storage layer when a concurrent
	// writer created the day's record first. The service re-reads the row
	// and reports the precise state conflict.
	ErrDuplicateRecord = errors.New("attendance record already exists for this day")
)
