package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courseadmin/internal/domain/contract"
	"courseadmin/internal/domain/entity"
	usecasecontract "courseadmin/internal/usecase/contract"
)

type CategoryUsecase struct {
	categoryRepo  contract.ICategoryRepository
	uuidGenerator contract.IUUIDGenerator
	validator     usecasecontract.IValidator
	logger        usecasecontract.IAppLogger
}

func NewCategoryUsecase(
	categoryRepo contract.ICategoryRepository,
	uuidGenerator contract.IUUIDGenerator,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *CategoryUsecase {
	return &CategoryUsecase{
		categoryRepo:  categoryRepo,
		uuidGenerator: uuidGenerator,
		validator:     validator,
		logger:        logger,
	}
}

var _ usecasecontract.ICategoryUseCase = (*CategoryUsecase)(nil)

func (uc *CategoryUsecase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.FindCategories(ctx)
}

func (uc *CategoryUsecase) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	if err := uc.validator.ValidateCategoryName(name); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := uc.categoryRepo.GetCategoryByName(ctx, name)
	if err != nil && !errors.Is(err, contract.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: category name already exists", ErrValidation)
	}

	now := time.Now()
	category := &entity.Category{
		ID:        uc.uuidGenerator.NewUUID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categoryRepo.CreateCategory(ctx, category); err != nil {
		uc.logger.Errorf("failed to create category: %v", err)
		return nil, err
	}
	return category, nil
}
