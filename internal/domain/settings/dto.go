package settings

import (
	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
)

type UpsertSettingsRequest struct {
	CheckInLatestBy       string  `json:"check_in_latest_by"`
	PermitDurationMinutes int     `json:"permit_duration_minutes"`
	AutoMarkAbsentEnabled *bool   `json:"auto_mark_absent_enabled,omitempty"`
	CheckOutLatestBy      *string `json:"check_out_latest_by,omitempty"`
}

func (r *UpsertSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CheckInLatestBy) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_latest_by",
			Message: "check_in_latest_by is required",
		})
	} else if !validator.IsValidTimeOfDay(r.CheckInLatestBy) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_latest_by",
			Message: "check_in_latest_by must be in HH:mm (24-hour) format",
		})
	}

	if r.CheckOutLatestBy != nil && *r.CheckOutLatestBy != "" && !validator.IsValidTimeOfDay(*r.CheckOutLatestBy) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_latest_by",
			Message: "check_out_latest_by must be in HH:mm (24-hour) format",
		})
	}

	if r.PermitDurationMinutes < 0 || r.PermitDurationMinutes > 1440 {
		errs = append(errs, validator.ValidationError{
			Field:   "permit_duration_minutes",
			Message: "permit_duration_minutes must be between 0 and 1440",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SettingsResponse struct {
	ID                    string  `json:"id"`
	CheckInLatestBy       string  `json:"check_in_latest_by"`
	PermitDurationMinutes int     `json:"permit_duration_minutes"`
	AutoMarkAbsentEnabled bool    `json:"auto_mark_absent_enabled"`
	CheckOutLatestBy      *string `json:"check_out_latest_by,omitempty"`
	IsActive              bool    `json:"is_active"`
	CreatedAt             string  `json:"created_at,omitempty"`
	UpdatedAt             string  `json:"updated_at,omitempty"`
}
