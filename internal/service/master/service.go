// Package master bundles the organizational reference data: departments
// and the roles that hang off them.
package master

import (
	"context"

	"github.com/google/uuid"

	"github.com/facetrack/attendance-backend-go/internal/domain/department"
	"github.com/facetrack/attendance-backend-go/internal/domain/role"
)

type MasterService interface {
	// Department operations
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error)
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) (bool, error)

	// Role operations
	ListRoles(ctx context.Context, departmentID string) ([]role.RoleResponse, error)
	GetRole(ctx context.Context, id string) (role.RoleResponse, error)
	CreateRole(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error)
	UpdateRole(ctx context.Context, id string, req role.UpdateRoleRequest) (role.RoleResponse, error)
	DeleteRole(ctx context.Context, id string) (bool, error)
}

type masterServiceImpl struct {
	departmentRepo department.DepartmentRepository
	roleRepo       role.RoleRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	roleRepo role.RoleRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo: departmentRepo,
		roleRepo:       roleRepo,
	}
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.NewDepartmentResponse(d))
	}
	return responses, nil
}

func (s *masterServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	found, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.NewDepartmentResponse(found), nil
}

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Manager:     req.Manager,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.NewDepartmentResponse(created), nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	updated, err := s.departmentRepo.Update(ctx, id, req)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.NewDepartmentResponse(updated), nil
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id string) (bool, error) {
	return s.departmentRepo.Delete(ctx, id)
}

// ==================== ROLE OPERATIONS ====================

// ListRoles returns every role, or only a department's roles when
// departmentID is non-empty.
func (s *masterServiceImpl) ListRoles(ctx context.Context, departmentID string) ([]role.RoleResponse, error) {
	var (
		roles []role.Role
		err   error
	)
	if departmentID != "" {
		roles, err = s.roleRepo.ListByDepartment(ctx, departmentID)
	} else {
		roles, err = s.roleRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]role.RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, role.NewRoleResponse(r))
	}
	return responses, nil
}

func (s *masterServiceImpl) GetRole(ctx context.Context, id string) (role.RoleResponse, error) {
	found, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return role.RoleResponse{}, err
	}
	return role.NewRoleResponse(found), nil
}

func (s *masterServiceImpl) CreateRole(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	created, err := s.roleRepo.Create(ctx, role.Role{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return role.RoleResponse{}, err
	}
	return role.NewRoleResponse(created), nil
}

func (s *masterServiceImpl) UpdateRole(ctx context.Context, id string, req role.UpdateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	updated, err := s.roleRepo.Update(ctx, id, req)
	if err != nil {
		return role.RoleResponse{}, err
	}
	return role.NewRoleResponse(updated), nil
}

func (s *masterServiceImpl) DeleteRole(ctx context.Context, id string) (bool, error) {
	return s.roleRepo.Delete(ctx, id)
}
