package usecasecontract

import (
	"context"

	"courseadmin/internal/domain/entity"
)

type IEnrollmentUseCase interface {
	// Enroll creates an enrollment for the student/course pair. The pair is
	// unique; progress starts derived (0 for a fresh enrollment).
	Enroll(ctx context.Context, studentID, courseID string) (*entity.Enrollment, error)
	// CompleteLesson marks a lesson completed on the enrollment and
	// recomputes progress. Completing the same lesson twice is rejected.
	CompleteLesson(ctx context.Context, enrollmentID, lessonID string) (*entity.Enrollment, error)
}
