package contract

import (
	"context"

	"courseadmin/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateUser updates an existing user and returns the updated user.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// FindByRole returns a store-paginated page of users holding the role,
	// optionally narrowed by a case-insensitive fullName/email search, plus
	// the total match count.
	FindByRole(ctx context.Context, roleID, search string, page, limit int) ([]*entity.User, int64, error)
	// CountByRole counts users holding the role.
	CountByRole(ctx context.Context, roleID string) (int64, error)
}
