package role

import "time"

type Role struct {
	ID           string
	Name         string
	Description  *string
	DepartmentID *string
	CreatedAt    time.Time
}
