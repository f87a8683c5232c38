package employee

import "context"

// EmployeeService defines business logic for employee management.
type EmployeeService interface {
	List(ctx context.Context, filter ListEmployeesFilter) ([]EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
}
