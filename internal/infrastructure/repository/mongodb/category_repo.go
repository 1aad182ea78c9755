package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courseadmin/internal/domain/contract"
	"courseadmin/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoCategoryRepository struct {
	collection *mongo.Collection
}

func NewMongoCategoryRepository(collection *mongo.Collection) *MongoCategoryRepository {
	return &MongoCategoryRepository{collection: collection}
}

var _ contract.ICategoryRepository = (*MongoCategoryRepository)(nil)

func (r *MongoCategoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, category); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *MongoCategoryRepository) GetCategoryByName(ctx context.Context, name string) (*entity.Category, error) {
	var category entity.Category
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("category %q: %w", name, contract.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}
	return &category, nil
}

func (r *MongoCategoryRepository) FindCategories(ctx context.Context) ([]*entity.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []*entity.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}
