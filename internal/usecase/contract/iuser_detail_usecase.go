package usecasecontract

import (
	"context"
	"time"

	"courseadmin/internal/domain/entity"
)

// RoleRef is the populated role reference embedded in user views.
type RoleRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TeacherCourse is one APPROVED course in a teacher's detail view.
type TeacherCourse struct {
	CourseID    string         `json:"courseId"`
	CourseTitle string         `json:"courseTitle"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	CreatedAt   time.Time      `json:"createdAt"`
	Lessons     []LessonDigest `json:"lessons"`
}

// LessonDigest is the title/contentType/createdAt projection of a lesson.
type LessonDigest struct {
	LessonID    string                   `json:"lessonId"`
	LessonTitle string                   `json:"lessonTitle"`
	ContentType entity.LessonContentType `json:"contentType"`
	CreatedAt   time.Time                `json:"createdAt"`
}

// EnrolledCourse is one enrollment in a student's detail view.
type EnrolledCourse struct {
	CourseID    string    `json:"courseId"`
	CourseTitle string    `json:"courseTitle"`
	EnrolledAt  time.Time `json:"enrolledAt"`
	Progress    int       `json:"progress"`
}

// CompletedLessonDetail is one completed lesson flattened across a student's
// enrollments.
type CompletedLessonDetail struct {
	CourseID    string                   `json:"courseId"`
	CourseTitle string                   `json:"courseTitle"`
	LessonID    string                   `json:"lessonId"`
	LessonTitle string                   `json:"lessonTitle"`
	ContentType entity.LessonContentType `json:"contentType"`
	CompletedAt time.Time                `json:"completedAt"`
}

// CurrentLesson is the student's "continue learning" pointer: the first
// not-yet-completed lesson found in enrollment order. StartedAt is the
// owning enrollment's date, a proxy for when the lesson was started.
type CurrentLesson struct {
	CourseID    string                   `json:"courseId"`
	CourseTitle string                   `json:"courseTitle"`
	LessonID    string                   `json:"lessonId"`
	LessonTitle string                   `json:"lessonTitle"`
	ContentType entity.LessonContentType `json:"contentType"`
	StartedAt   time.Time                `json:"startedAt"`
}

// UserDetail is the role-specific detail view. The teacher fields and the
// student fields are mutually exclusive; pointers keep the absent branch out
// of the JSON while an empty present branch still renders.
type UserDetail struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	FullName  string            `json:"fullName"`
	Role      RoleRef           `json:"role"`
	Status    entity.UserStatus `json:"status"`
	IsBanned  bool              `json:"isBanned"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`

	Courses      *[]TeacherCourse `json:"courses,omitempty"`
	TotalCourses *int             `json:"totalCourses,omitempty"`

	EnrolledCourses       *[]EnrolledCourse        `json:"enrolledCourses,omitempty"`
	TotalEnrolledCourses  *int                     `json:"totalEnrolledCourses,omitempty"`
	CompletedLessons      *[]CompletedLessonDetail `json:"completedLessons,omitempty"`
	TotalCompletedLessons *int                     `json:"totalCompletedLessons,omitempty"`
	CurrentLesson         *CurrentLesson           `json:"currentLesson,omitempty"`
}

// IUserDetailUseCase assembles the role-specific detail view for a user.
type IUserDetailUseCase interface {
	GetUserDetail(ctx context.Context, userID string) (*UserDetail, error)
}
