package entity

import "time"

// Payment records a purchase attempt. Only COMPLETED payments count toward
// revenue statistics.
type Payment struct {
	ID          string        `bson:"_id,omitempty" json:"id"`
	StudentID   string        `bson:"student_id" json:"studentId"`
	CourseID    string        `bson:"course_id" json:"courseId"`
	Amount      float64       `bson:"amount" json:"amount"`
	PaymentDate time.Time     `bson:"payment_date" json:"paymentDate"`
	Status      PaymentStatus `bson:"status" json:"status"`
	CreatedAt   time.Time     `bson:"created_at" json:"createdAt"`
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// PaymentCourseRow is the flat join row consumed by the revenue aggregation:
// one row per completed payment with its course and teacher resolved.
type PaymentCourseRow struct {
	CourseID    string  `bson:"course_id"`
	CourseTitle string  `bson:"course_title"`
	TeacherName string  `bson:"teacher_name"`
	Amount      float64 `bson:"amount"`
}

// PaymentListRow is a payment joined to the paying student and the course for
// the admin payment listing.
type PaymentListRow struct {
	ID           string        `bson:"_id" json:"id"`
	StudentID    string        `bson:"student_id" json:"studentId"`
	StudentName  string        `bson:"student_name" json:"studentName"`
	StudentEmail string        `bson:"student_email" json:"studentEmail"`
	CourseID     string        `bson:"course_id" json:"courseId"`
	CourseTitle  string        `bson:"course_title" json:"courseTitle"`
	Amount       float64       `bson:"amount" json:"amount"`
	PaymentDate  time.Time     `bson:"payment_date" json:"paymentDate"`
	Status       PaymentStatus `bson:"status" json:"status"`
	CreatedAt    time.Time     `bson:"created_at" json:"createdAt"`
}
