package contract

import (
	"context"

	"courseadmin/internal/domain/entity"
)

type IRoleRepository interface {
	// GetRoleByName retrieves a role by its name (e.g. STUDENT, TEACHER).
	GetRoleByName(ctx context.Context, name string) (*entity.Role, error)
	GetRoleByID(ctx context.Context, id string) (*entity.Role, error)
	// CreateRole inserts a new role. Used by seeding.
	CreateRole(ctx context.Context, role *entity.Role) error
}
