package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"courseadmin/internal/domain/contract"
	"courseadmin/internal/domain/entity"
)

// RoleCacheStore caches role documents by name in Redis. Roles are seeded
// once and read on nearly every request, so a hit skips a store round trip.
// Misses are never cached.
type RoleCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRoleCacheStore(rdb *redis.Client, ttl time.Duration) *RoleCacheStore {
	return &RoleCacheStore{rdb: rdb, ttl: ttl}
}

var _ contract.IRoleCache = (*RoleCacheStore)(nil)

func roleKey(name string) string { return fmt.Sprintf("role:name:%s", name) }

func (c *RoleCacheStore) GetRoleByName(ctx context.Context, name string) (*entity.Role, bool, error) {
	b, err := c.rdb.Get(ctx, roleKey(name)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var role entity.Role
	if err := json.Unmarshal(b, &role); err != nil {
		return nil, false, nil
	}
	return &role, true, nil
}

func (c *RoleCacheStore) SetRole(ctx context.Context, role *entity.Role) error {
	data, err := json.Marshal(role)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, roleKey(role.Name), data, c.ttl).Err()
}

func (c *RoleCacheStore) InvalidateRole(ctx context.Context, name string) error {
	return c.rdb.Del(ctx, roleKey(name)).Err()
}
