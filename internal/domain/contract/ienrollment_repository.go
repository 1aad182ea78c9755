package contract

import (
	"context"
	"time"

	"courseadmin/internal/domain/entity"
)

type IEnrollmentRepository interface {
	CreateEnrollment(ctx context.Context, enrollment *entity.Enrollment) error
	GetEnrollmentByID(ctx context.Context, id string) (*entity.Enrollment, error)
	// ExistsByStudentAndCourse reports whether the student is already
	// enrolled in the course.
	ExistsByStudentAndCourse(ctx context.Context, studentID, courseID string) (bool, error)
	// FindByStudentWithCourse returns the student's enrollments joined to
	// their course titles, in stored order.
	FindByStudentWithCourse(ctx context.Context, studentID string) ([]entity.StudentEnrollmentRow, error)
	// FindAllWithCourse returns one row per enrollment joined to course title
	// and teacher name, for the most-enrolled aggregation.
	FindAllWithCourse(ctx context.Context) ([]entity.EnrollmentCourseRow, error)
	// AppendCompletedLesson atomically appends a completed lesson and stores
	// the progress derived from the resulting list against totalLessons, all
	// in one guarded update. Returns false when the guard rejected the append
	// (lesson already completed); nothing is written in that case.
	AppendCompletedLesson(ctx context.Context, enrollmentID, lessonID string, completedAt time.Time, totalLessons int) (bool, error)
}
