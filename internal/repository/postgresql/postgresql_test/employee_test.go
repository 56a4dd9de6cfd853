package postgresql_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetrack/attendance-backend-go/internal/domain/department"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/facetrack/attendance-backend-go/internal/repository/postgresql"
)

func createTestDepartment(t *testing.T, ctx context.Context, db *database.DB) department.Department {
	t.Helper()

	created, err := postgresql.NewDepartmentRepository(db).Create(ctx, department.Department{
		ID:   uuid.NewString(),
		Name: "Engineering",
	})
	require.NoError(t, err)
	return created
}

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB, code string, departmentID *string) employee.Employee {
	t.Helper()

	created, err := postgresql.NewEmployeeRepository(db).Create(ctx, employee.Employee{
		ID:           uuid.NewString(),
		EmployeeCode: code,
		Name:         "Employee " + code,
		Email:        code + "@example.com",
		DepartmentID: departmentID,
		Status:       employee.StatusActive,
		FaceImages:   []string{},
	})
	require.NoError(t, err)
	return created
}

func TestEmployeeRepository_CreateIncrementsDepartmentCount(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	dept := createTestDepartment(t, ctx, db)
	departmentRepo := postgresql.NewDepartmentRepository(db)

	createTestEmployee(t, ctx, db, "EMP001", &dept.ID)
	stored, err := departmentRepo.GetByID(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.EmployeeCount)

	createTestEmployee(t, ctx, db, "EMP002", &dept.ID)
	stored, err = departmentRepo.GetByID(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.EmployeeCount)
}

func TestEmployeeRepository_DeleteDecrementsDepartmentCount(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	dept := createTestDepartment(t, ctx, db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	created := createTestEmployee(t, ctx, db, "EMP001", &dept.ID)

	deleted, err := employeeRepo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	stored, err := departmentRepo.GetByID(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.EmployeeCount)

	// Repeating the delete reports not-found and leaves the count alone.
	deleted, err = employeeRepo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestEmployeeRepository_DeleteNeverGoesNegative(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	dept := createTestDepartment(t, ctx, db)
	created := createTestEmployee(t, ctx, db, "EMP001", &dept.ID)

	// Simulate counter drift from an out-of-band write.
	_, err := db.Exec(ctx, `UPDATE departments SET employee_count = 0 WHERE id = $1`, dept.ID)
	require.NoError(t, err)

	deleted, err := postgresql.NewEmployeeRepository(db).Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	stored, err := postgresql.NewDepartmentRepository(db).GetByID(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.EmployeeCount)
}

func TestEmployeeRepository_UniqueConstraints(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	createTestEmployee(t, ctx, db, "EMP001", nil)

	_, err := employeeRepo.Create(ctx, employee.Employee{
		ID:           uuid.NewString(),
		EmployeeCode: "EMP001",
		Name:         "Duplicate Code",
		Email:        "other@example.com",
		Status:       employee.StatusActive,
		FaceImages:   []string{},
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)

	_, err = employeeRepo.Create(ctx, employee.Employee{
		ID:           uuid.NewString(),
		EmployeeCode: "EMP002",
		Name:         "Duplicate Email",
		Email:        "EMP001@example.com",
		Status:       employee.StatusActive,
		FaceImages:   []string{},
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeRepository_GetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, err := postgresql.NewEmployeeRepository(db).GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
