package role

import "context"

type RoleRepository interface {
	List(ctx context.Context) ([]Role, error)
	GetByID(ctx context.Context, id string) (Role, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]Role, error)
	Create(ctx context.Context, newRole Role) (Role, error)
	Update(ctx context.Context, id string, req UpdateRoleRequest) (Role, error)
	Delete(ctx context.Context, id string) (bool, error)
}
