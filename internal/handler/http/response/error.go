package response

import (
	"errors"
	"net/http"

	"github.com/facetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack/attendance-backend-go/internal/domain/auth"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/location"
	"github.com/facetrack/attendance-backend-go/internal/domain/settings"
	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountDisabled):
		Error(w, http.StatusForbidden, "ACCOUNT_DISABLED", "Account is disabled")
	case errors.Is(err, auth.ErrAdminRequired):
		Error(w, http.StatusForbidden, "ADMIN_REQUIRED", "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeCodeTaken):
		Conflict(w, "Employee code already in use")

	// Location domain errors
	case errors.Is(err, location.ErrGeoFenceNotFound):
		NotFound(w, "Location not found")
	case errors.Is(err, location.ErrGeoFenceNameExists):
		Conflict(w, "Location name already in use")

	// Settings domain errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Attendance settings not found")

	// Attendance precondition failures
	case errors.Is(err, attendance.ErrBiometricNotRegistered):
		Error(w, http.StatusBadRequest, "BIOMETRIC_NOT_REGISTERED", "Face data not registered for this account")
	case errors.Is(err, attendance.ErrFaceNotRecognized):
		Error(w, http.StatusForbidden, "FACE_NOT_RECOGNIZED", "Face not recognized")
	case errors.Is(err, attendance.ErrNoLocationConfigured):
		Error(w, http.StatusBadRequest, "NO_LOCATION_CONFIGURED", "No attendance location has been configured")
	case errors.Is(err, attendance.ErrNotInAllowedLocation):
		Error(w, http.StatusForbidden, "NOT_IN_ALLOWED_LOCATION", "You are not within an allowed attendance location")

	// Attendance temporal/state failures
	case errors.Is(err, attendance.ErrCheckInTimePassed):
		Error(w, http.StatusForbidden, "CHECKIN_TIME_PASSED", "The check-in window for today has closed")
	case errors.Is(err, attendance.ErrAlreadyMarkedAbsent):
		Error(w, http.StatusConflict, "ALREADY_MARKED_ABSENT", "Already marked absent for today")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Error(w, http.StatusConflict, "ALREADY_CHECKED_IN", "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Error(w, http.StatusConflict, "ALREADY_CHECKED_OUT", "Already checked out today")
	case errors.Is(err, attendance.ErrMustCheckInFirst):
		Error(w, http.StatusConflict, "MUST_CHECK_IN_FIRST", "Check in before checking out")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
