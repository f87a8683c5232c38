package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/pkg/face"
	"github.com/facetrack/attendance-backend-go/internal/service/file"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	fileService file.FileService
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           emp.ID,
		Email:        emp.Email,
		Name:         emp.Name,
		EmployeeCode: emp.EmployeeCode,
		Department:   emp.Department,
		Position:     emp.Position,
		IsActive:     emp.IsActive,
		FaceEnrolled: emp.FaceTemplate != nil,
		FaceImageURL: emp.FaceImageURL,
		CreatedAt:    emp.CreatedAt.Format(time.RFC3339),
	}
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.EmployeeResponse, error) {
	employees, err := e.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}
	return responses, nil
}

// Create implements employee.EmployeeService. Biometric enrollment is
// optional at creation time; the descriptor can be set later via Update.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	emp := employee.Employee{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		EmployeeCode: req.EmployeeCode,
		Department:   req.Department,
		Position:     req.Position,
		IsActive:     true,
	}

	if len(req.FaceDescriptor) > 0 {
		encoded, err := face.Encode(face.Descriptor(req.FaceDescriptor))
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.FaceTemplate = &encoded
	}

	created, err := e.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FaceImageData != nil {
		url, err := e.fileService.UploadEnrollmentPhoto(ctx, created.ID, *req.FaceImageData)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if created.FaceTemplate != nil {
			if err := e.EmployeeRepository.SetFaceTemplate(ctx, created.ID, *created.FaceTemplate, &url); err != nil {
				return employee.EmployeeResponse{}, err
			}
		}
		created.FaceImageURL = &url
	}

	return toResponse(created), nil
}

// Update implements employee.EmployeeService. Supplying a new descriptor
// overwrites the enrolled template; the old one is not kept.
func (e *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.EmployeeCode != nil {
		emp.EmployeeCode = req.EmployeeCode
	}
	if req.Department != nil {
		emp.Department = req.Department
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	updated, err := e.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if len(req.FaceDescriptor) > 0 {
		encoded, err := face.Encode(face.Descriptor(req.FaceDescriptor))
		if err != nil {
			return employee.EmployeeResponse{}, err
		}

		var imageURL *string
		if req.FaceImageData != nil {
			url, err := e.fileService.UploadEnrollmentPhoto(ctx, updated.ID, *req.FaceImageData)
			if err != nil {
				return employee.EmployeeResponse{}, err
			}
			imageURL = &url
		}

		if err := e.EmployeeRepository.SetFaceTemplate(ctx, updated.ID, encoded, imageURL); err != nil {
			return employee.EmployeeResponse{}, err
		}

		updated.FaceTemplate = &encoded
		if imageURL != nil {
			updated.FaceImageURL = imageURL
		}
	}

	return toResponse(updated), nil
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, fileService file.FileService) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		fileService:        fileService,
	}
}
