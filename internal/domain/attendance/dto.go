package attendance

import (
	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
)

// EventRequest is the validated inbound attendance event. The descriptor is
// extracted client-side by the embedding model; the backend only compares
// it against the enrolled template. ImageData is an opaque base64 capture
// kept as proof, never interpreted.
type EventRequest struct {
	Type       EventType `json:"type"`
	Descriptor []float64 `json:"descriptor"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	ImageData  *string   `json:"image_data,omitempty"`
}

func (r *EventRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != EventCheckIn && r.Type != EventCheckOut {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: checkin, checkout",
		})
	}

	if len(r.Descriptor) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "descriptor",
			Message: "descriptor is required",
		})
	}

	if r.Latitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude is required",
		})
	} else if !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude is required",
		})
	} else if !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID                 string   `json:"id"`
	EmployeeID         string   `json:"employee_id"`
	EmployeeName       *string  `json:"employee_name,omitempty"`
	EmployeeDepartment *string  `json:"employee_department,omitempty"`
	Date               string   `json:"date"`
	CheckInTime        *string  `json:"check_in_time,omitempty"`
	CheckOutTime       *string  `json:"check_out_time,omitempty"`
	CheckInLatitude    *float64 `json:"check_in_latitude,omitempty"`
	CheckInLongitude   *float64 `json:"check_in_longitude,omitempty"`
	CheckOutLatitude   *float64 `json:"check_out_latitude,omitempty"`
	CheckOutLongitude  *float64 `json:"check_out_longitude,omitempty"`
	CheckInImageURL    *string  `json:"check_in_image_url,omitempty"`
	CheckOutImageURL   *string  `json:"check_out_image_url,omitempty"`
	Status             Status   `json:"status"`
	LateMinutes        *int     `json:"late_minutes,omitempty"`
}

// EventResponse is the accepted-event result. Rejections travel as domain
// errors; for a too-late check-in that locked the day, Record carries the
// auto-created ABSENT row alongside the error so the caller can observe it.
type EventResponse struct {
	Type   EventType           `json:"type"`
	Record *AttendanceResponse `json:"record,omitempty"`
}

type AttendanceFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status     *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil {
		validStatuses := []string{
			string(StatusPresent), string(StatusLate), string(StatusAbsent),
			string(StatusEarlyLeave), string(StatusHalfDay),
		}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: PRESENT, LATE, ABSENT, EARLY_LEAVE, HALF_DAY",
			})
		}
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MyAttendanceFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status    *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *MyAttendanceFilter) Validate() error {
	full := AttendanceFilter{
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Status:    f.Status,
		Page:      f.Page,
		Limit:     f.Limit,
	}
	if err := full.Validate(); err != nil {
		return err
	}
	f.Page = full.Page
	f.Limit = full.Limit
	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
