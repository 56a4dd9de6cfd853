package postgresql

import (
	"context"
	"errors"

	"github.com/facetrack/attendance-backend-go/internal/domain/role"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

func scanRoles(rows pgx.Rows) ([]role.Role, error) {
	defer rows.Close()

	var roles []role.Role
	for rows.Next() {
		var item role.Role
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.DepartmentID, &item.CreatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, item)
	}

	return roles, rows.Err()
}

// List implements role.RoleRepository.
func (r *roleRepositoryImpl) List(ctx context.Context) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, description, department_id, created_at
		FROM roles
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}

	return scanRoles(rows)
}

// ListByDepartment implements role.RoleRepository.
func (r *roleRepositoryImpl) ListByDepartment(ctx context.Context, departmentID string) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, description, department_id, created_at
		FROM roles
		WHERE department_id = $1
		ORDER BY created_at
	`, departmentID)
	if err != nil {
		return nil, err
	}

	return scanRoles(rows)
}

// GetByID implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByID(ctx context.Context, id string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, department_id, created_at
		FROM roles
		WHERE id = $1
	`

	var found role.Role
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Name,
		&found.Description,
		&found.DepartmentID,
		&found.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.Role{}, role.ErrRoleNotFound
		}
		return role.Role{}, err
	}

	return found, nil
}

// Create implements role.RoleRepository.
func (r *roleRepositoryImpl) Create(ctx context.Context, newRole role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO roles (id, name, description, department_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, department_id, created_at
	`

	var created role.Role
	err := q.QueryRow(ctx, query,
		newRole.ID,
		newRole.Name,
		newRole.Description,
		newRole.DepartmentID,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Description,
		&created.DepartmentID,
		&created.CreatedAt,
	)
	if err != nil {
		return role.Role{}, err
	}

	return created, nil
}

// Update implements role.RoleRepository.
func (r *roleRepositoryImpl) Update(ctx context.Context, id string, req role.UpdateRoleRequest) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE roles
		SET name = COALESCE($2, name),
			description = COALESCE($3, description),
			department_id = COALESCE($4, department_id)
		WHERE id = $1
		RETURNING id, name, description, department_id, created_at
	`

	var updated role.Role
	err := q.QueryRow(ctx, query, id, req.Name, req.Description, req.DepartmentID).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Description,
		&updated.DepartmentID,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.Role{}, role.ErrRoleNotFound
		}
		return role.Role{}, err
	}

	return updated, nil
}

// Delete implements role.RoleRepository.
func (r *roleRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
