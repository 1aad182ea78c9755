package usecasecontract

import (
	"context"

	"courseadmin/internal/domain/entity"
)

type ICategoryUseCase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)
}
