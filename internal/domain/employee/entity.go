package employee

import "time"

// EmployeeCode is the business identifier ("EMP001"), distinct from the
// opaque row id. Department and role references are nullable and may
// dangle after the referenced record is deleted.
type Employee struct {
	ID           string
	EmployeeCode string
	Name         string
	Email        string
	Phone        *string
	DepartmentID *string
	RoleID       *string
	Status       Status
	FaceImages   []string
	CreatedAt    time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
