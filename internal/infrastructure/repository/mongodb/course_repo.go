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

type MongoCourseRepository struct {
	collection *mongo.Collection
}

func NewMongoCourseRepository(collection *mongo.Collection) *MongoCourseRepository {
	return &MongoCourseRepository{collection: collection}
}

var _ contract.ICourseRepository = (*MongoCourseRepository)(nil)

func (r *MongoCourseRepository) CreateCourse(ctx context.Context, course *entity.Course) error {
	course.CreatedAt = time.Now()
	course.UpdatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, course); err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

func (r *MongoCourseRepository) GetCourseByID(ctx context.Context, id string) (*entity.Course, error) {
	var course entity.Course
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("course with id %q: %w", id, contract.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve course: %w", err)
	}
	return &course, nil
}

func (r *MongoCourseRepository) FindByTeacher(ctx context.Context, teacherID string) ([]*entity.Course, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"teacher_id": teacherID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve teacher courses: %w", err)
	}
	defer cursor.Close(ctx)

	var courses []*entity.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode teacher courses: %w", err)
	}
	return courses, nil
}

func (r *MongoCourseRepository) CountApprovedByTeacher(ctx context.Context, teacherID string) (int64, error) {
	filter := bson.M{"teacher_id": teacherID, "status": entity.CourseStatusApproved}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count approved courses: %w", err)
	}
	return count, nil
}
