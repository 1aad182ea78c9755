package mongodb

import (
	"context"
	"fmt"
	"time"

	"courseadmin/internal/domain/contract"
	"courseadmin/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoPaymentRepository struct {
	collection *mongo.Collection
}

func NewMongoPaymentRepository(collection *mongo.Collection) *MongoPaymentRepository {
	return &MongoPaymentRepository{collection: collection}
}

var _ contract.IPaymentRepository = (*MongoPaymentRepository)(nil)

func (r *MongoPaymentRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	payment.CreatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// FindCompletedCourseRows returns COMPLETED payments joined to course title
// and teacher name, in natural (insertion) order so first-seen grouping is
// deterministic. from is inclusive and to exclusive; nil bounds mean all
// time.
func (r *MongoPaymentRepository) FindCompletedCourseRows(ctx context.Context, from, to *time.Time) ([]entity.PaymentCourseRow, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: buildCompletedRowsMatch(from, to)}},
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
			"amount":       1,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment rows: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []entity.PaymentCourseRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode payment rows: %w", err)
	}
	return rows, nil
}

// buildCompletedRowsMatch builds the revenue match document. Only COMPLETED
// payments count, and the window is half-open: from inclusive, to exclusive.
func buildCompletedRowsMatch(from, to *time.Time) bson.M {
	match := bson.M{"status": entity.PaymentCompleted}
	dateFilter := bson.M{}
	if from != nil {
		dateFilter["$gte"] = *from
	}
	if to != nil {
		dateFilter["$lt"] = *to
	}
	if len(dateFilter) > 0 {
		match["payment_date"] = dateFilter
	}
	return match
}

// buildPaymentFilter translates the listing filter into a match document.
func buildPaymentFilter(filter contract.PaymentFilter) bson.M {
	match := bson.M{}
	if filter.StudentID != "" {
		match["student_id"] = filter.StudentID
	}
	if filter.CourseID != "" {
		match["course_id"] = filter.CourseID
	}
	if filter.Status != "" {
		match["status"] = filter.Status
	}
	dateFilter := bson.M{}
	if filter.StartDate != nil {
		dateFilter["$gte"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		dateFilter["$lte"] = *filter.EndDate
	}
	if len(dateFilter) > 0 {
		match["payment_date"] = dateFilter
	}
	return match
}

// FindPayments pages payments at the store (skip/limit) and joins each to
// the paying student and the course. Broken references keep the row, with
// empty join fields, rather than hiding the payment.
func (r *MongoPaymentRepository) FindPayments(ctx context.Context, filter contract.PaymentFilter, page, limit int) ([]entity.PaymentListRow, int64, error) {
	match := buildPaymentFilter(filter)

	totalCount, err := r.collection.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	skip := int64((page - 1) * limit)
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: int64(limit)}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "student_id",
			"foreignField": "_id",
			"as":           "student",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$student",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "courses",
			"localField":   "course_id",
			"foreignField": "_id",
			"as":           "course",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$course",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"student_id":    1,
			"student_name":  "$student.full_name",
			"student_email": "$student.email",
			"course_id":     1,
			"course_title":  "$course.title",
			"amount":        1,
			"payment_date":  1,
			"status":        1,
			"created_at":    1,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []entity.PaymentListRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, 0, fmt.Errorf("failed to decode payments: %w", err)
	}
	return rows, totalCount, nil
}
