package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"courseadmin/internal/domain/contract"
	"courseadmin/internal/domain/entity"
	usecasecontract "courseadmin/internal/usecase/contract"
)

// EnrollmentUsecase owns enrollment creation and the progress calculator.
type EnrollmentUsecase struct {
	enrollmentRepo contract.IEnrollmentRepository
	courseRepo     contract.ICourseRepository
	lessonRepo     contract.ILessonRepository
	uuidGenerator  contract.IUUIDGenerator
	logger         usecasecontract.IAppLogger
}

func NewEnrollmentUsecase(
	enrollmentRepo contract.IEnrollmentRepository,
	courseRepo contract.ICourseRepository,
	lessonRepo contract.ILessonRepository,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *EnrollmentUsecase {
	return &EnrollmentUsecase{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		lessonRepo:     lessonRepo,
		uuidGenerator:  uuidGenerator,
		logger:         logger,
	}
}

var _ usecasecontract.IEnrollmentUseCase = (*EnrollmentUsecase)(nil)

// ComputeProgress derives the 0-100 completion percentage for an enrollment.
// A course with no lessons has progress 0, never a division by zero.
func ComputeProgress(completedCount, totalLessons int) int {
	if totalLessons <= 0 {
		return 0
	}
	return int(math.Round(float64(completedCount) / float64(totalLessons) * 100))
}

// ValidateCompletedLessons rejects a completed-lesson list containing the
// same lesson twice. This is a hard precondition on every enrollment write.
func ValidateCompletedLessons(lessons []entity.CompletedLesson) error {
	seen := make(map[string]struct{}, len(lessons))
	for _, l := range lessons {
		if _, ok := seen[l.LessonID]; ok {
			return ErrDuplicateLesson
		}
		seen[l.LessonID] = struct{}{}
	}
	return nil
}

// Enroll creates an enrollment for the student/course pair.
func (uc *EnrollmentUsecase) Enroll(ctx context.Context, studentID, courseID string) (*entity.Enrollment, error) {
	if err := validateID(studentID); err != nil {
		return nil, err
	}
	if err := validateID(courseID); err != nil {
		return nil, err
	}

	if _, err := uc.courseRepo.GetCourseByID(ctx, courseID); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, fmt.Errorf("%w: course", ErrNotFound)
		}
		return nil, err
	}

	exists, err := uc.enrollmentRepo.ExistsByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyEnrolled
	}

	now := time.Now()
	enrollment := &entity.Enrollment{
		ID:               uc.uuidGenerator.NewUUID(),
		StudentID:        studentID,
		CourseID:         courseID,
		EnrollmentDate:   now,
		CompletedLessons: []entity.CompletedLesson{},
		Progress:         ComputeProgress(0, 0),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.enrollmentRepo.CreateEnrollment(ctx, enrollment); err != nil {
		uc.logger.Errorf("failed to create enrollment: %v", err)
		return nil, err
	}
	return enrollment, nil
}

// CompleteLesson marks a lesson completed. The store appends the lesson and
// derives the new progress in one guarded update, so two concurrent
// completions can neither land the same lesson twice nor leave a stale
// progress behind.
func (uc *EnrollmentUsecase) CompleteLesson(ctx context.Context, enrollmentID, lessonID string) (*entity.Enrollment, error) {
	if err := validateID(enrollmentID); err != nil {
		return nil, err
	}
	if err := validateID(lessonID); err != nil {
		return nil, err
	}

	enrollment, err := uc.enrollmentRepo.GetEnrollmentByID(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, fmt.Errorf("%w: enrollment", ErrNotFound)
		}
		return nil, err
	}

	lessons, err := uc.lessonRepo.GetLessonsByIDs(ctx, []string{lessonID})
	if err != nil {
		return nil, err
	}
	if len(lessons) == 0 {
		return nil, fmt.Errorf("%w: lesson", ErrNotFound)
	}
	if lessons[0].CourseID != enrollment.CourseID {
		return nil, fmt.Errorf("%w: lesson does not belong to the enrolled course", ErrValidation)
	}

	candidate := append(enrollment.CompletedLessons, entity.CompletedLesson{LessonID: lessonID})
	if err := ValidateCompletedLessons(candidate); err != nil {
		return nil, err
	}

	totalLessons, err := uc.lessonRepo.CountByCourse(ctx, enrollment.CourseID)
	if err != nil {
		return nil, err
	}

	appended, err := uc.enrollmentRepo.AppendCompletedLesson(ctx, enrollmentID, lessonID, time.Now(), int(totalLessons))
	if err != nil {
		return nil, err
	}
	if !appended {
		// A concurrent request completed the lesson between our read and the
		// guarded push.
		return nil, ErrDuplicateLesson
	}

	return uc.enrollmentRepo.GetEnrollmentByID(ctx, enrollmentID)
}
