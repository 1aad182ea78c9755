package mocks

import (
	"context"
	"errors"

	"courseadmin/internal/domain/entity"
	"courseadmin/internal/usecase"
	usecasecontract "courseadmin/internal/usecase/contract"
)

// MockUserAdminUsecase is a mock implementation of the user admin usecase
type MockUserAdminUsecase struct {
	// Control mock behavior
	ShouldFailList          bool
	ShouldFailCreateTeacher bool
	EmailInUse              bool
	ShouldFailToggle        bool
	UserMissing             bool

	// Captured arguments
	LastSearch string
	LastPage   int
	LastLimit  int

	// Return values
	MockItems []usecasecontract.UserListItem
	MockItem  usecasecontract.UserListItem
}

var _ usecasecontract.IUserAdminUseCase = (*MockUserAdminUsecase)(nil)

func NewMockUserAdminUsecase() *MockUserAdminUsecase {
	item := usecasecontract.UserListItem{
		ID:       "mock-user-id",
		Email:    "teacher@example.com",
		FullName: "Mock Teacher",
		Role:     usecasecontract.RoleRef{ID: "mock-role-id", Name: entity.RoleTeacher},
		Status:   entity.UserStatusActive,
	}
	return &MockUserAdminUsecase{
		MockItems: []usecasecontract.UserListItem{item},
		MockItem:  item,
	}
}

func (m *MockUserAdminUsecase) ListTeachers(ctx context.Context, search string, page, limit int) (usecasecontract.Page[usecasecontract.UserListItem], error) {
	m.LastSearch, m.LastPage, m.LastLimit = search, page, limit
	if m.ShouldFailList {
		return usecasecontract.Page[usecasecontract.UserListItem]{}, errors.New("teacher listing failed")
	}
	return usecasecontract.Page[usecasecontract.UserListItem]{Items: m.MockItems, Total: len(m.MockItems), Page: 1, Pages: 1}, nil
}

func (m *MockUserAdminUsecase) ListStudents(ctx context.Context, search string, page, limit int) (usecasecontract.Page[usecasecontract.UserListItem], error) {
	m.LastSearch, m.LastPage, m.LastLimit = search, page, limit
	if m.ShouldFailList {
		return usecasecontract.Page[usecasecontract.UserListItem]{}, errors.New("student listing failed")
	}
	return usecasecontract.Page[usecasecontract.UserListItem]{Items: m.MockItems, Total: len(m.MockItems), Page: 1, Pages: 1}, nil
}

func (m *MockUserAdminUsecase) CreateTeacher(ctx context.Context, email, fullName string) (*usecasecontract.UserListItem, error) {
	if m.EmailInUse {
		return nil, usecase.ErrEmailInUse
	}
	if m.ShouldFailCreateTeacher {
		return nil, errors.New("teacher creation failed")
	}
	return &m.MockItem, nil
}

func (m *MockUserAdminUsecase) ToggleUserStatus(ctx context.Context, userID string) (*usecasecontract.UserListItem, error) {
	if m.UserMissing {
		return nil, usecase.ErrNotFound
	}
	if m.ShouldFailToggle {
		return nil, errors.New("status toggle failed")
	}
	return &m.MockItem, nil
}
