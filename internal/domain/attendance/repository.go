package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create inserts the day's record. Returns ErrDuplicateRecord when a
	// record for (employee, date) already exists.
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	// SetCheckOut records the check-out on an open record. Returns
	// ErrRecordNotFound when the record is missing, has no check-in, or is
	// already checked out.
	SetCheckOut(ctx context.Context, employeeID string, date time.Time, checkOut time.Time, lat, lon float64, imageURL *string) (*Attendance, error)
	GetByEmployee(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]Attendance, int64, error)
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
}
