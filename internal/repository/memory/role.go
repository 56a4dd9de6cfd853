package memory

import (
	"context"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/role"
)

type roleRepositoryImpl struct {
	store *Store
}

func NewRoleRepository(store *Store) role.RoleRepository {
	return &roleRepositoryImpl{store: store}
}

// List implements role.RoleRepository.
func (r *roleRepositoryImpl) List(ctx context.Context) ([]role.Role, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.roles.list(), nil
}

// ListByDepartment implements role.RoleRepository.
func (r *roleRepositoryImpl) ListByDepartment(ctx context.Context, departmentID string) ([]role.Role, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []role.Role
	for _, item := range r.store.roles.list() {
		if item.DepartmentID != nil && *item.DepartmentID == departmentID {
			result = append(result, item)
		}
	}
	return result, nil
}

// GetByID implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByID(ctx context.Context, id string) (role.Role, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	found, ok := r.store.roles.get(id)
	if !ok {
		return role.Role{}, role.ErrRoleNotFound
	}
	return found, nil
}

// Create implements role.RoleRepository.
func (r *roleRepositoryImpl) Create(ctx context.Context, newRole role.Role) (role.Role, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if newRole.CreatedAt.IsZero() {
		newRole.CreatedAt = time.Now()
	}
	r.store.roles.put(newRole.ID, newRole)
	return newRole, nil
}

// Update implements role.RoleRepository.
func (r *roleRepositoryImpl) Update(ctx context.Context, id string, req role.UpdateRoleRequest) (role.Role, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	found, ok := r.store.roles.get(id)
	if !ok {
		return role.Role{}, role.ErrRoleNotFound
	}

	if req.Name != nil {
		found.Name = *req.Name
	}
	if req.Description != nil {
		found.Description = req.Description
	}
	if req.DepartmentID != nil {
		found.DepartmentID = req.DepartmentID
	}

	r.store.roles.put(id, found)
	return found, nil
}

// Delete implements role.RoleRepository.
func (r *roleRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.roles.remove(id), nil
}
