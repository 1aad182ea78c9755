package contract

import (
	"context"

	"courseadmin/internal/domain/entity"
)

type ICategoryRepository interface {
	CreateCategory(ctx context.Context, category *entity.Category) error
	GetCategoryByName(ctx context.Context, name string) (*entity.Category, error)
	FindCategories(ctx context.Context) ([]*entity.Category, error)
}
