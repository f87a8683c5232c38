package employee

import (
	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Password       string    `json:"password"`
	EmployeeCode   *string   `json:"employee_code,omitempty"`
	Department     *string   `json:"department,omitempty"`
	Position       *string   `json:"position,omitempty"`
	FaceDescriptor []float64 `json:"face_descriptor,omitempty"`
	FaceImageData  *string   `json:"face_image_data,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest lets an admin change employee details and
// re-enroll or overwrite the biometric template.
type UpdateEmployeeRequest struct {
	ID             string    `json:"-"`
	Name           *string   `json:"name,omitempty"`
	EmployeeCode   *string   `json:"employee_code,omitempty"`
	Department     *string   `json:"department,omitempty"`
	Position       *string   `json:"position,omitempty"`
	IsActive       *bool     `json:"is_active,omitempty"`
	FaceDescriptor []float64 `json:"face_descriptor,omitempty"`
	FaceImageData  *string   `json:"face_image_data,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "employee id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEmployeesFilter struct {
	Department *string `json:"department,omitempty"`
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	Department   *string `json:"department,omitempty"`
	Position     *string `json:"position,omitempty"`
	IsActive     bool    `json:"is_active"`
	FaceEnrolled bool    `json:"face_enrolled"`
	FaceImageURL *string `json:"face_image_url,omitempty"`
	CreatedAt    string  `json:"created_at"`
}
