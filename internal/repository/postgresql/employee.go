package postgresql

import (
	"context"
	"errors"

	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, employee_code, name, email, phone, department_id, role_id, status, face_images, created_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.EmployeeCode,
		&e.Name,
		&e.Email,
		&e.Phone,
		&e.DepartmentID,
		&e.RoleID,
		&e.Status,
		&e.FaceImages,
		&e.CreatedAt,
	)
	return e, err
}

// mapEmployeeConstraintError translates unique violations into domain errors
func mapEmployeeConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "employees_employee_code_key":
			return employee.ErrEmployeeCodeExists
		case "employees_email_key":
			return employee.ErrEmailExists
		}
	}
	return err
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return found, nil
}

// GetByEmployeeCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE employee_code = $1`, employeeCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return found, nil
}

// Create implements employee.EmployeeRepository.
// The owning department's employee_count is incremented in the same
// transaction as the insert.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	var created employee.Employee

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO employees (id, employee_code, name, email, phone, department_id, role_id, status, face_images)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING ` + employeeColumns

		faceImages := newEmployee.FaceImages
		if faceImages == nil {
			faceImages = []string{}
		}

		var err error
		created, err = scanEmployee(tx.QueryRow(ctx, query,
			newEmployee.ID,
			newEmployee.EmployeeCode,
			newEmployee.Name,
			newEmployee.Email,
			newEmployee.Phone,
			newEmployee.DepartmentID,
			newEmployee.RoleID,
			newEmployee.Status,
			faceImages,
		))
		if err != nil {
			return mapEmployeeConstraintError(err)
		}

		if created.DepartmentID != nil {
			_, err = tx.Exec(ctx, `
				UPDATE departments SET employee_count = employee_count + 1 WHERE id = $1
			`, *created.DepartmentID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET employee_code = COALESCE($2, employee_code),
			name = COALESCE($3, name),
			email = COALESCE($4, email),
			phone = COALESCE($5, phone),
			department_id = COALESCE($6, department_id),
			role_id = COALESCE($7, role_id),
			status = COALESCE($8, status),
			face_images = COALESCE($9, face_images)
		WHERE id = $1
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		id,
		req.EmployeeID,
		req.Name,
		req.Email,
		req.Phone,
		req.DepartmentID,
		req.RoleID,
		req.Status,
		req.FaceImages,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, mapEmployeeConstraintError(err)
	}

	return updated, nil
}

// Delete implements employee.EmployeeRepository.
// Decrements the owning department's employee_count in the same
// transaction, never below zero.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		var departmentID *string
		err := tx.QueryRow(ctx, `DELETE FROM employees WHERE id = $1 RETURNING department_id`, id).Scan(&departmentID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return err
		}
		deleted = true

		if departmentID != nil {
			_, err = tx.Exec(ctx, `
				UPDATE departments
				SET employee_count = GREATEST(employee_count - 1, 0)
				WHERE id = $1
			`, *departmentID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}
