package contract

import (
	"context"

	"courseadmin/internal/domain/entity"
)

// IRoleCache caches role-by-name lookups. Misses and absent roles are never
// cached, so a missing seed always surfaces as a configuration error.
type IRoleCache interface {
	GetRoleByName(ctx context.Context, name string) (*entity.Role, bool, error)
	SetRole(ctx context.Context, role *entity.Role) error
	InvalidateRole(ctx context.Context, name string) error
}
