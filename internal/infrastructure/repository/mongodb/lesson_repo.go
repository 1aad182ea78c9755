package mongodb

import (
	"context"
	"fmt"
	"time"

	"courseadmin/internal/domain/contract"
	"courseadmin/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoLessonRepository struct {
	collection *mongo.Collection
}

func NewMongoLessonRepository(collection *mongo.Collection) *MongoLessonRepository {
	return &MongoLessonRepository{collection: collection}
}

var _ contract.ILessonRepository = (*MongoLessonRepository)(nil)

func (r *MongoLessonRepository) CreateLesson(ctx context.Context, lesson *entity.Lesson) error {
	lesson.CreatedAt = time.Now()
	lesson.UpdatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, lesson); err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}
	return nil
}

// FindByCourse returns the course's lessons oldest first, the order students
// are expected to take them in.
func (r *MongoLessonRepository) FindByCourse(ctx context.Context, courseID string) ([]*entity.Lesson, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"course_id": courseID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve course lessons: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []*entity.Lesson
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode course lessons: %w", err)
	}
	return lessons, nil
}

func (r *MongoLessonRepository) GetLessonsByIDs(ctx context.Context, ids []string) ([]*entity.Lesson, error) {
	if len(ids) == 0 {
		return []*entity.Lesson{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lessons by ids: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []*entity.Lesson
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode lessons: %w", err)
	}
	return lessons, nil
}

func (r *MongoLessonRepository) CountByCourse(ctx context.Context, courseID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"course_id": courseID})
	if err != nil {
		return 0, fmt.Errorf("failed to count course lessons: %w", err)
	}
	return count, nil
}
