package auth

import (
	"context"
	"testing"

	"github.com/facetrack/attendance-backend-go/internal/domain/auth"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) SetFaceTemplate(ctx context.Context, id string, encoded string, imageURL *string) error {
	return nil
}

func newTestService(t *testing.T, employees ...employee.Employee) auth.AuthService {
	t.Helper()
	repo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, emp := range employees {
		repo.employees[emp.ID] = emp
	}
	return NewAuthService(repo, jwt.NewJWTService("test-secret-key-for-jwt", "1h"))
}

func testEmployee(t *testing.T, active bool) employee.Employee {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	return employee.Employee{
		ID:           "emp-1",
		Email:        "emp1@example.com",
		Name:         "Employee One",
		PasswordHash: string(hash),
		IsActive:     active,
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestService(t, testEmployee(t, true))

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "emp1@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "emp-1", resp.UserID)
	assert.Equal(t, "Employee One", resp.Name)
	assert.False(t, resp.IsAdmin)
	assert.Greater(t, resp.AccessTokenExpiresAt, int64(0))
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t, testEmployee(t, true))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "emp1@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(t, testEmployee(t, true))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	// Indistinguishable from a wrong password.
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	svc := newTestService(t, testEmployee(t, false))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "emp1@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, auth.ErrAccountDisabled)
}

func TestLoginValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)
}
