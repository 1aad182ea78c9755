package mocks

import (
	"context"
	"errors"
	"time"

	"courseadmin/internal/domain/entity"
	"courseadmin/internal/usecase"
	usecasecontract "courseadmin/internal/usecase/contract"
)

// MockEnrollmentUsecase is a mock implementation of the enrollment usecase
type MockEnrollmentUsecase struct {
	// Control mock behavior
	ShouldFailEnroll   bool
	AlreadyEnrolled    bool
	DuplicateLesson    bool
	ShouldFailComplete bool

	// Return values
	MockEnrollment entity.Enrollment
}

var _ usecasecontract.IEnrollmentUseCase = (*MockEnrollmentUsecase)(nil)

func NewMockEnrollmentUsecase() *MockEnrollmentUsecase {
	return &MockEnrollmentUsecase{
		MockEnrollment: entity.Enrollment{
			ID:               "mock-enrollment-id",
			StudentID:        "mock-student-id",
			CourseID:         "mock-course-id",
			EnrollmentDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			CompletedLessons: []entity.CompletedLesson{},
			Progress:         0,
		},
	}
}

func (m *MockEnrollmentUsecase) Enroll(ctx context.Context, studentID, courseID string) (*entity.Enrollment, error) {
	if m.AlreadyEnrolled {
		return nil, usecase.ErrAlreadyEnrolled
	}
	if m.ShouldFailEnroll {
		return nil, errors.New("enrollment failed")
	}
	return &m.MockEnrollment, nil
}

func (m *MockEnrollmentUsecase) CompleteLesson(ctx context.Context, enrollmentID, lessonID string) (*entity.Enrollment, error) {
	if m.DuplicateLesson {
		return nil, usecase.ErrDuplicateLesson
	}
	if m.ShouldFailComplete {
		return nil, errors.New("lesson completion failed")
	}
	return &m.MockEnrollment, nil
}
