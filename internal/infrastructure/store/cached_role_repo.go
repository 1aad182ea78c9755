package store

import (
	"context"

	"courseadmin/internal/domain/contract"
	"courseadmin/internal/domain/entity"
)

// CachedRoleRepository decorates a role repository with a cache on the
// by-name lookup. Cache errors fall through to the store, so the cache can
// only speed things up, never break them.
type CachedRoleRepository struct {
	inner contract.IRoleRepository
	cache contract.IRoleCache
}

func NewCachedRoleRepository(inner contract.IRoleRepository, cache contract.IRoleCache) *CachedRoleRepository {
	return &CachedRoleRepository{inner: inner, cache: cache}
}

var _ contract.IRoleRepository = (*CachedRoleRepository)(nil)

func (r *CachedRoleRepository) GetRoleByName(ctx context.Context, name string) (*entity.Role, error) {
	if role, ok, err := r.cache.GetRoleByName(ctx, name); err == nil && ok {
		return role, nil
	}

	role, err := r.inner.GetRoleByName(ctx, name)
	if err != nil {
		return nil, err
	}
	_ = r.cache.SetRole(ctx, role)
	return role, nil
}

func (r *CachedRoleRepository) GetRoleByID(ctx context.Context, id string) (*entity.Role, error) {
	return r.inner.GetRoleByID(ctx, id)
}

func (r *CachedRoleRepository) CreateRole(ctx context.Context, role *entity.Role) error {
	if err := r.inner.CreateRole(ctx, role); err != nil {
		return err
	}
	_ = r.cache.InvalidateRole(ctx, role.Name)
	return nil
}
