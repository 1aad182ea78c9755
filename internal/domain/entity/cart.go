package entity

import "time"

// Cart holds a course a student intends to buy. The student+course pair is
// unique; carts never participate in statistics.
type Cart struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	StudentID string    `bson:"student_id" json:"studentId"`
	CourseID  string    `bson:"course_id" json:"courseId"`
	AddedAt   time.Time `bson:"added_at" json:"addedAt"`
}
