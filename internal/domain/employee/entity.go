package employee

import "time"

// Employee is a user of the system. Admins manage employees and
// configuration; regular employees submit attendance events.
//
// FaceTemplate holds the enrolled biometric descriptor in its encoded
// (JSON array) form; nil means biometric enrollment has not happened yet.
type Employee struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	EmployeeCode *string
	Department   *string
	Position     *string
	IsAdmin      bool
	IsActive     bool
	FaceTemplate *string
	FaceImageURL *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
