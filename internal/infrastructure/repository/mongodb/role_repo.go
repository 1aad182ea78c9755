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

type MongoRoleRepository struct {
	collection *mongo.Collection
}

func NewMongoRoleRepository(collection *mongo.Collection) *MongoRoleRepository {
	return &MongoRoleRepository{collection: collection}
}

var _ contract.IRoleRepository = (*MongoRoleRepository)(nil)

func (r *MongoRoleRepository) GetRoleByName(ctx context.Context, name string) (*entity.Role, error) {
	var role entity.Role
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&role)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("role %q: %w", name, contract.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve role %q: %w", name, err)
	}
	return &role, nil
}

func (r *MongoRoleRepository) GetRoleByID(ctx context.Context, id string) (*entity.Role, error) {
	var role entity.Role
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&role)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("role with id %q: %w", id, contract.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve role: %w", err)
	}
	return &role, nil
}

func (r *MongoRoleRepository) CreateRole(ctx context.Context, role *entity.Role) error {
	role.CreatedAt = time.Now()
	role.UpdatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, role); err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}
	return nil
}
