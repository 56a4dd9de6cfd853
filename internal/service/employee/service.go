package employee

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/facetrack/attendance-backend-go/internal/domain/department"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/role"
)

type EmployeeService interface {
	List(ctx context.Context) ([]employee.EmployeeDetailResponse, error)
	Get(ctx context.Context, id string) (employee.EmployeeDetailResponse, error)
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type employeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	roleRepo       role.RoleRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	roleRepo role.RoleRepository,
) EmployeeService {
	return &employeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		roleRepo:       roleRepo,
	}
}

// resolveDetail joins the employee with its department and role. A
// reference to a deleted department or role resolves to null rather than
// an error.
func (s *employeeServiceImpl) resolveDetail(ctx context.Context, e employee.Employee) (employee.EmployeeDetailResponse, error) {
	detail := employee.EmployeeDetailResponse{
		EmployeeResponse: employee.NewEmployeeResponse(e),
	}

	if e.DepartmentID != nil {
		dept, err := s.departmentRepo.GetByID(ctx, *e.DepartmentID)
		switch {
		case err == nil:
			deptResponse := department.NewDepartmentResponse(dept)
			detail.Department = &deptResponse
		case !errors.Is(err, department.ErrDepartmentNotFound):
			return employee.EmployeeDetailResponse{}, err
		}
	}

	if e.RoleID != nil {
		r, err := s.roleRepo.GetByID(ctx, *e.RoleID)
		switch {
		case err == nil:
			roleResponse := role.NewRoleResponse(r)
			detail.Role = &roleResponse
		case !errors.Is(err, role.ErrRoleNotFound):
			return employee.EmployeeDetailResponse{}, err
		}
	}

	return detail, nil
}

// List implements EmployeeService.
func (s *employeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeDetailResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeDetailResponse, 0, len(employees))
	for _, e := range employees {
		detail, err := s.resolveDetail(ctx, e)
		if err != nil {
			return nil, err
		}
		responses = append(responses, detail)
	}
	return responses, nil
}

// Get implements EmployeeService.
func (s *employeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeDetailResponse, error) {
	found, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}
	return s.resolveDetail(ctx, found)
}

// Create implements EmployeeService.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	status := employee.StatusActive
	if req.Status != "" {
		status = employee.Status(req.Status)
	}
	faceImages := req.FaceImages
	if faceImages == nil {
		faceImages = []string{}
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:           uuid.NewString(),
		EmployeeCode: req.EmployeeID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		DepartmentID: req.DepartmentID,
		RoleID:       req.RoleID,
		Status:       status,
		FaceImages:   faceImages,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(created), nil
}

// Update implements EmployeeService.
func (s *employeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, id, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(updated), nil
}

// Delete implements EmployeeService.
func (s *employeeServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	return s.employeeRepo.Delete(ctx, id)
}
