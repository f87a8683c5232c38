package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// ListActive returns all active non-admin employees; used by the
	// auto-absence sweep.
	ListActive(ctx context.Context) ([]Employee, error)

	List(ctx context.Context, filter ListEmployeesFilter) ([]Employee, error)
	Create(ctx context.Context, emp Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)

	// SetFaceTemplate overwrites the enrolled biometric template.
	SetFaceTemplate(ctx context.Context, id string, encoded string, imageURL *string) error
}
