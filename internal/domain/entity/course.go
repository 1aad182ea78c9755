package entity

import "time"

// Course carries two independent lifecycle axes: Status is the admin
// moderation workflow, CompletionStatus is the teacher-controlled visibility
// axis. They are never merged.
type Course struct {
	ID               string                 `bson:"_id,omitempty" json:"id"`
	Title            string                 `bson:"title" json:"title"`
	Description      string                 `bson:"description" json:"description"`
	Image            string                 `bson:"image,omitempty" json:"image,omitempty"`
	TeacherID        string                 `bson:"teacher_id" json:"teacherId"`
	CategoryID       string                 `bson:"category_id" json:"categoryId"`
	Price            float64                `bson:"price" json:"price"`
	Status           CourseStatus           `bson:"status" json:"status"`
	CompletionStatus CourseCompletionStatus `bson:"completion_status" json:"completionStatus"`
	ShortIntroVideo  string                 `bson:"short_intro_video,omitempty" json:"shortIntroVideo,omitempty"`
	CreatedAt        time.Time              `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time              `bson:"updated_at" json:"updatedAt"`
}

type CourseStatus string

const (
	CourseStatusDraft    CourseStatus = "DRAFT"
	CourseStatusPending  CourseStatus = "PENDING"
	CourseStatusApproved CourseStatus = "APPROVED"
	CourseStatusRejected CourseStatus = "REJECTED"
)

type CourseCompletionStatus string

const (
	CourseCompleted  CourseCompletionStatus = "COMPLETED"
	CourseIncomplete CourseCompletionStatus = "INCOMPLETE"
	CourseBanned     CourseCompletionStatus = "BANNED"
)
