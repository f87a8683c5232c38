package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusLate    Status = "LATE"
	StatusAbsent  Status = "ABSENT"

	// Reserved statuses; never produced by the current rules.
	StatusEarlyLeave Status = "EARLY_LEAVE"
	StatusHalfDay    Status = "HALF_DAY"
)

// Attendance is the single per-(employee, day) record. Date is the working
// day truncated to midnight in the reference timezone; CheckIn/CheckOut are
// absolute instants stored in UTC.
type Attendance struct {
	ID                string
	EmployeeID        string
	Date              time.Time
	CheckIn           *time.Time
	CheckOut          *time.Time
	CheckInLatitude   *float64
	CheckInLongitude  *float64
	CheckInImageURL   *string
	CheckOutLatitude  *float64
	CheckOutLongitude *float64
	CheckOutImageURL  *string
	Status            Status
	LateMinutes       *int
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO
	EmployeeName       *string
	EmployeeDepartment *string
}
