package postgresql

import (
	"context"
	"errors"

	"github.com/facetrack/attendance-backend-go/internal/domain/department"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, manager, employee_count, created_at
		FROM departments
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.Manager, &d.EmployeeCount, &d.CreatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}

	return departments, rows.Err()
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, manager, employee_count, created_at
		FROM departments
		WHERE id = $1
	`

	var found department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Name,
		&found.Description,
		&found.Manager,
		&found.EmployeeCount,
		&found.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, err
	}

	return found, nil
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, newDepartment department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, description, manager, employee_count)
		VALUES ($1, $2, $3, $4, 0)
		RETURNING id, name, description, manager, employee_count, created_at
	`

	var created department.Department
	err := q.QueryRow(ctx, query,
		newDepartment.ID,
		newDepartment.Name,
		newDepartment.Description,
		newDepartment.Manager,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Description,
		&created.Manager,
		&created.EmployeeCount,
		&created.CreatedAt,
	)
	if err != nil {
		return department.Department{}, err
	}

	return created, nil
}

// Update implements department.DepartmentRepository.
// Unspecified fields keep their stored values.
func (r *departmentRepositoryImpl) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = COALESCE($2, name),
			description = COALESCE($3, description),
			manager = COALESCE($4, manager)
		WHERE id = $1
		RETURNING id, name, description, manager, employee_count, created_at
	`

	var updated department.Department
	err := q.QueryRow(ctx, query, id, req.Name, req.Description, req.Manager).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Description,
		&updated.Manager,
		&updated.EmployeeCount,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, err
	}

	return updated, nil
}

// Delete implements department.DepartmentRepository.
// Dependent roles and employees keep their dangling references.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
