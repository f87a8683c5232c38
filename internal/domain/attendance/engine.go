package attendance

// EventType distinguishes the two attendance event kinds.
type EventType string

const (
	EventCheckIn  EventType = "checkin"
	EventCheckOut EventType = "checkout"
)

// State is the per-(employee, day) record state the transition rules run
// against.
type State int

const (
	// StateNoRecord: no record exists for the day yet.
	StateNoRecord State = iota
	// StateAbsentLocked: the absence sweep (or a too-late check-in) wrote
	// an ABSENT record before any check-in; the day is closed.
	StateAbsentLocked
	// StateCheckedIn: check-in recorded, check-out still open.
	StateCheckedIn
	// StateComplete: both check-in and check-out recorded.
	StateComplete
)

// StateOf derives the day state from the stored record. A record without a
// check-in can only have been written by an absence path.
func StateOf(rec *Attendance) State {
	switch {
	case rec == nil:
		return StateNoRecord
	case rec.CheckIn == nil:
		return StateAbsentLocked
	case rec.CheckOut == nil:
		return StateCheckedIn
	default:
		return StateComplete
	}
}

// CheckInDecision is the outcome of a check-in transition.
type CheckInDecision struct {
	// CreateRecord: create the day's record with the classified status.
	CreateRecord bool
	// CreateAbsentRecord: the check-in window has closed; lock the day by
	// writing an ABSENT record (auto-mark enabled). The event itself is
	// still rejected with ErrCheckInTimePassed.
	CreateAbsentRecord bool
}

// DecideCheckIn applies the check-in transition table. Preconditions
// (biometric match, geofence membership) must already have passed; this is
// the final time/state-based stage.
func DecideCheckIn(state State, cls Classification, autoMarkAbsent bool) (CheckInDecision, error) {
	switch state {
	case StateNoRecord:
		if cls.CanMark {
			return CheckInDecision{CreateRecord: true}, nil
		}
		if autoMarkAbsent {
			return CheckInDecision{CreateAbsentRecord: true}, ErrCheckInTimePassed
		}
		return CheckInDecision{}, ErrCheckInTimePassed
	case StateAbsentLocked:
		return CheckInDecision{}, ErrAlreadyMarkedAbsent
	default: // StateCheckedIn, StateComplete
		return CheckInDecision{}, ErrAlreadyCheckedIn
	}
}

// DecideCheckOut applies the check-out transition table. A nil error means
// the check-out may be recorded; check-out never rewrites the day status.
func DecideCheckOut(state State) error {
	switch state {
	case StateNoRecord, StateAbsentLocked:
		return ErrMustCheckInFirst
	case StateCheckedIn:
		return nil
	default: // StateComplete
		return ErrAlreadyCheckedOut
	}
}
