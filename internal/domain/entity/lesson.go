package entity

import "time"

// Lesson belongs to a course and is ordered by creation time within it.
type Lesson struct {
	ID          string            `bson:"_id,omitempty" json:"id"`
	CourseID    string            `bson:"course_id" json:"courseId"`
	Title       string            `bson:"title" json:"title"`
	Description string            `bson:"description,omitempty" json:"description,omitempty"`
	ContentType LessonContentType `bson:"content_type" json:"contentType"`
	ContentURL  string            `bson:"content_url" json:"contentUrl"`
	Status      LessonStatus      `bson:"status" json:"status"`
	CreatedAt   time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time         `bson:"updated_at" json:"updatedAt"`
}

type LessonContentType string

const (
	ContentTypeVideo    LessonContentType = "video"
	ContentTypeDocument LessonContentType = "document"
)

type LessonStatus string

const (
	LessonComplete   LessonStatus = "COMPLETE"
	LessonIncomplete LessonStatus = "INCOMPLETE"
)
