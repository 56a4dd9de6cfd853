package memory

import (
	"context"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepositoryImpl{store: store}
}

func cloneEmployee(e employee.Employee) employee.Employee {
	if e.FaceImages != nil {
		images := make([]string, len(e.FaceImages))
		copy(images, e.FaceImages)
		e.FaceImages = images
	}
	return e
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := r.store.employees.list()
	result := make([]employee.Employee, 0, len(items))
	for _, e := range items {
		result = append(result, cloneEmployee(e))
	}
	return result, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	found, ok := r.store.employees.get(id)
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return cloneEmployee(found), nil
}

// GetByEmployeeCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, e := range r.store.employees.list() {
		if e.EmployeeCode == employeeCode {
			return cloneEmployee(e), nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepositoryImpl) checkUnique(employeeCode, email, excludeID string) error {
	for _, existing := range r.store.employees.list() {
		if existing.ID == excludeID {
			continue
		}
		if existing.EmployeeCode == employeeCode {
			return employee.ErrEmployeeCodeExists
		}
		if existing.Email == email {
			return employee.ErrEmailExists
		}
	}
	return nil
}

// Create implements employee.EmployeeRepository.
// The owning department's employee count is incremented under the same
// lock as the insert.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.checkUnique(newEmployee.EmployeeCode, newEmployee.Email, ""); err != nil {
		return employee.Employee{}, err
	}

	if newEmployee.CreatedAt.IsZero() {
		newEmployee.CreatedAt = time.Now()
	}
	if newEmployee.FaceImages == nil {
		newEmployee.FaceImages = []string{}
	}
	r.store.employees.put(newEmployee.ID, cloneEmployee(newEmployee))

	if newEmployee.DepartmentID != nil {
		if dept, ok := r.store.departments.get(*newEmployee.DepartmentID); ok {
			dept.EmployeeCount++
			r.store.departments.put(dept.ID, dept)
		}
	}

	return newEmployee, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	found, ok := r.store.employees.get(id)
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	if req.EmployeeID != nil {
		found.EmployeeCode = *req.EmployeeID
	}
	if req.Name != nil {
		found.Name = *req.Name
	}
	if req.Email != nil {
		found.Email = *req.Email
	}
	if req.Phone != nil {
		found.Phone = req.Phone
	}
	if req.DepartmentID != nil {
		found.DepartmentID = req.DepartmentID
	}
	if req.RoleID != nil {
		found.RoleID = req.RoleID
	}
	if req.Status != nil {
		found.Status = employee.Status(*req.Status)
	}
	if req.FaceImages != nil {
		found.FaceImages = req.FaceImages
	}

	if err := r.checkUnique(found.EmployeeCode, found.Email, id); err != nil {
		return employee.Employee{}, err
	}

	r.store.employees.put(id, cloneEmployee(found))
	return found, nil
}

// Delete implements employee.EmployeeRepository.
// Decrements the owning department's employee count, never below zero.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	found, ok := r.store.employees.get(id)
	if !ok {
		return false, nil
	}

	r.store.employees.remove(id)

	if found.DepartmentID != nil {
		if dept, ok := r.store.departments.get(*found.DepartmentID); ok && dept.EmployeeCount > 0 {
			dept.EmployeeCount--
			r.store.departments.put(dept.ID, dept)
		}
	}

	return true, nil
}
