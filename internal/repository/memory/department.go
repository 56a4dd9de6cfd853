package memory

import (
	"context"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/department"
)

type departmentRepositoryImpl struct {
	store *Store
}

func NewDepartmentRepository(store *Store) department.DepartmentRepository {
	return &departmentRepositoryImpl{store: store}
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.departments.list(), nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	found, ok := r.store.departments.get(id)
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return found, nil
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, newDepartment department.Department) (department.Department, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	newDepartment.EmployeeCount = 0
	if newDepartment.CreatedAt.IsZero() {
		newDepartment.CreatedAt = time.Now()
	}
	r.store.departments.put(newDepartment.ID, newDepartment)
	return newDepartment, nil
}

// Update implements department.DepartmentRepository.
// Unspecified fields keep their stored values.
func (r *departmentRepositoryImpl) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.Department, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	found, ok := r.store.departments.get(id)
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}

	if req.Name != nil {
		found.Name = *req.Name
	}
	if req.Description != nil {
		found.Description = req.Description
	}
	if req.Manager != nil {
		found.Manager = req.Manager
	}

	r.store.departments.put(id, found)
	return found, nil
}

// Delete implements department.DepartmentRepository.
// Dependent roles and employees keep their now-dangling references.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.departments.remove(id), nil
}
