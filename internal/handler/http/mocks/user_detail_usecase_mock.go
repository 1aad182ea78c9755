package mocks

import (
	"context"
	"errors"

	"courseadmin/internal/domain/entity"
	"courseadmin/internal/usecase"
	usecasecontract "courseadmin/internal/usecase/contract"
)

// MockUserDetailUsecase is a mock implementation of the user detail usecase
type MockUserDetailUsecase struct {
	// Control mock behavior
	ShouldFailDetail bool
	InvalidID        bool
	UserMissing      bool

	// Return values
	MockDetail usecasecontract.UserDetail
}

var _ usecasecontract.IUserDetailUseCase = (*MockUserDetailUsecase)(nil)

func NewMockUserDetailUsecase() *MockUserDetailUsecase {
	courses := []usecasecontract.TeacherCourse{}
	totalCourses := 0
	return &MockUserDetailUsecase{
		MockDetail: usecasecontract.UserDetail{
			ID:           "mock-user-id",
			Email:        "teacher@example.com",
			FullName:     "Mock Teacher",
			Role:         usecasecontract.RoleRef{ID: "mock-role-id", Name: entity.RoleTeacher},
			Status:       entity.UserStatusActive,
			Courses:      &courses,
			TotalCourses: &totalCourses,
		},
	}
}

func (m *MockUserDetailUsecase) GetUserDetail(ctx context.Context, userID string) (*usecasecontract.UserDetail, error) {
	if m.InvalidID {
		return nil, usecase.ErrInvalidID
	}
	if m.UserMissing {
		return nil, usecase.ErrNotFound
	}
	if m.ShouldFailDetail {
		return nil, errors.New("detail lookup failed")
	}
	return &m.MockDetail, nil
}
