package department

import "time"

// EmployeeCount is denormalized: adjusted in the same transaction as the
// employee create/delete that changes it, never recomputed on read.
type Department struct {
	ID            string
	Name          string
	Description   *string
	Manager       *string
	EmployeeCount int
	CreatedAt     time.Time
}
