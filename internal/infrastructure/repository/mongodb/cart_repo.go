package mongodb

import (
	"context"
	"fmt"

	"courseadmin/internal/domain/contract"
	"courseadmin/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoCartRepository struct {
	collection *mongo.Collection
}

func NewMongoCartRepository(collection *mongo.Collection) *MongoCartRepository {
	return &MongoCartRepository{collection: collection}
}

var _ contract.ICartRepository = (*MongoCartRepository)(nil)

func (r *MongoCartRepository) AddToCart(ctx context.Context, cart *entity.Cart) error {
	if _, err := r.collection.InsertOne(ctx, cart); err != nil {
		return fmt.Errorf("failed to add course to cart: %w", err)
	}
	return nil
}

func (r *MongoCartRepository) ExistsByStudentAndCourse(ctx context.Context, studentID, courseID string) (bool, error) {
	filter := bson.M{"student_id": studentID, "course_id": courseID}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check cart entry: %w", err)
	}
	return count > 0, nil
}

func (r *MongoCartRepository) FindByStudent(ctx context.Context, studentID string) ([]*entity.Cart, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}
	defer cursor.Close(ctx)

	var items []*entity.Cart
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart items: %w", err)
	}
	return items, nil
}

func (r *MongoCartRepository) RemoveFromCart(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("cart item with id %q: %w", id, contract.ErrNotFound)
	}
	return nil
}
