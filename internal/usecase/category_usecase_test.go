package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseadmin/internal/domain/contract"
	"courseadmin/internal/domain/entity"
)

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) CreateCategory(_ context.Context, category *entity.Category) error {
	r.categories = append(r.categories, category)
	return nil
}

func (r *fakeCategoryRepo) GetCategoryByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("category %q: %w", name, contract.ErrNotFound)
}

func (r *fakeCategoryRepo) FindCategories(_ context.Context) ([]*entity.Category, error) {
	return r.categories, nil
}

func TestCreateCategory(t *testing.T) {
	repo := &fakeCategoryRepo{}
	uc := NewCategoryUsecase(repo, &fakeUUIDGen{}, fakeValidator{}, fakeLogger{})

	category, err := uc.CreateCategory(context.Background(), "Programming")
	require.NoError(t, err)
	assert.Equal(t, "Programming", category.Name)
	assert.NotEmpty(t, category.ID)
	assert.Len(t, repo.categories, 1)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	repo := &fakeCategoryRepo{categories: []*entity.Category{
		{ID: testID(1), Name: "Programming"},
	}}
	uc := NewCategoryUsecase(repo, &fakeUUIDGen{}, fakeValidator{}, fakeLogger{})

	_, err := uc.CreateCategory(context.Background(), "Programming")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Len(t, repo.categories, 1)
}

func TestCreateCategory_ShortName(t *testing.T) {
	uc := NewCategoryUsecase(&fakeCategoryRepo{}, &fakeUUIDGen{}, fakeValidator{}, fakeLogger{})

	_, err := uc.CreateCategory(context.Background(), "X")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListCategories(t *testing.T) {
	repo := &fakeCategoryRepo{categories: []*entity.Category{
		{ID: testID(1), Name: "Programming"},
		{ID: testID(2), Name: "Design"},
	}}
	uc := NewCategoryUsecase(repo, &fakeUUIDGen{}, fakeValidator{}, fakeLogger{})

	categories, err := uc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}
