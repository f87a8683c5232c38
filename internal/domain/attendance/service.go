package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	// SubmitEvent runs the full gated pipeline for a check-in or check-out:
	// biometric match, geofence membership, time-window classification, then
	// the state transition. On ErrCheckInTimePassed the response may still
	// carry the ABSENT record that locking the day created.
	SubmitEvent(ctx context.Context, employeeID string, req EventRequest, at time.Time) (EventResponse, error)
	GetMyAttendance(ctx context.Context, employeeID string, filter MyAttendanceFilter) (ListAttendanceResponse, error)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	// SweepAutoAbsence marks every active employee without a record for the
	// day as ABSENT once the check-in window has closed. Returns the number
	// of records created.
	SweepAutoAbsence(ctx context.Context, asOf time.Time) (int, error)
}
