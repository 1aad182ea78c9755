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

type MongoEnrollmentRepository struct {
	collection *mongo.Collection
}

func NewMongoEnrollmentRepository(collection *mongo.Collection) *MongoEnrollmentRepository {
	return &MongoEnrollmentRepository{collection: collection}
}

var _ contract.IEnrollmentRepository = (*MongoEnrollmentRepository)(nil)

func (r *MongoEnrollmentRepository) CreateEnrollment(ctx context.Context, enrollment *entity.Enrollment) error {
	if enrollment.CompletedLessons == nil {
		enrollment.CompletedLessons = []entity.CompletedLesson{}
	}
	if _, err := r.collection.InsertOne(ctx, enrollment); err != nil {
		return fmt.Errorf("failed to create enrollment: %w", err)
	}
	return nil
}

func (r *MongoEnrollmentRepository) GetEnrollmentByID(ctx context.Context, id string) (*entity.Enrollment, error) {
	var enrollment entity.Enrollment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&enrollment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("enrollment with id %q: %w", id, contract.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve enrollment: %w", err)
	}
	return &enrollment, nil
}

func (r *MongoEnrollmentRepository) ExistsByStudentAndCourse(ctx context.Context, studentID, courseID string) (bool, error) {
	filter := bson.M{"student_id": studentID, "course_id": courseID}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment existence: %w", err)
	}
	return count > 0, nil
}

// FindByStudentWithCourse joins each enrollment to its course title.
// Enrollments whose course no longer exists are dropped by the unwind, the
// same way a broken reference drops out of a populate.
func (r *MongoEnrollmentRepository) FindByStudentWithCourse(ctx context.Context, studentID string) ([]entity.StudentEnrollmentRow, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"student_id": studentID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "courses",
			"localField":   "course_id",
			"foreignField": "_id",
			"as":           "course",
		}}},
		bson.D{{Key: "$unwind", Value: "$course"}},
		bson.D{{Key: "$project", Value: bson.M{
			"course_id":         1,
			"course_title":      "$course.title",
			"enrollment_date":   1,
			"completed_lessons": 1,
			"progress":          1,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve student enrollments: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []entity.StudentEnrollmentRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode student enrollments: %w", err)
	}
	return rows, nil
}

// FindAllWithCourse produces one row per enrollment with course title and
// teacher name resolved, for the most-enrolled aggregation.
func (r *MongoEnrollmentRepository) FindAllWithCourse(ctx context.Context) ([]entity.EnrollmentCourseRow, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "courses",
			"localField":   "course_id",
			"foreignField": "_id",
			"as":           "course",
		}}},
		bson.D{{Key: "$unwind", Value: "$course"}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "course.teacher_id",
			"foreignField": "_id",
			"as":           "teacher",
		}}},
		bson.D{{Key: "$unwind", Value: "$teacher"}},
		bson.D{{Key: "$project", Value: bson.M{
			"course_id":    1,
			"course_title": "$course.title",
			"teacher_name": "$teacher.full_name",
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve enrollment rows: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []entity.EnrollmentCourseRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode enrollment rows: %w", err)
	}
	return rows, nil
}

// AppendCompletedLesson appends the lesson to completed_lessons only when it
// is not already there, and sets progress from the size of the resulting
// array in the same update. Guard, append and recompute are one atomic
// operation, so concurrent completions can neither land the same lesson twice
// nor persist a stale progress value.
func (r *MongoEnrollmentRepository) AppendCompletedLesson(ctx context.Context, enrollmentID, lessonID string, completedAt time.Time, totalLessons int) (bool, error) {
	filter := bson.M{
		"_id":                         enrollmentID,
		"completed_lessons.lesson_id": bson.M{"$ne": lessonID},
	}

	var progress interface{} = 0
	if totalLessons > 0 {
		// floor(x + 0.5) is the round-half-up ComputeProgress applies
		progress = bson.M{"$toInt": bson.M{"$floor": bson.M{"$add": bson.A{
			bson.M{"$multiply": bson.A{
				bson.M{"$divide": bson.A{bson.M{"$size": "$completed_lessons"}, totalLessons}},
				100,
			}},
			0.5,
		}}}}
	}

	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{
			"completed_lessons": bson.M{"$concatArrays": bson.A{
				"$completed_lessons",
				bson.A{bson.M{"lesson_id": lessonID, "completed_at": completedAt}},
			}},
			"updated_at": time.Now(),
		}}},
		// a second stage so $size sees the appended array
		bson.D{{Key: "$set", Value: bson.M{"progress": progress}}},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to append completed lesson: %w", err)
	}
	return res.ModifiedCount > 0, nil
}
