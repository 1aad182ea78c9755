package mocks

import (
	"context"
	"errors"

	usecasecontract "courseadmin/internal/usecase/contract"
)

// MockStatisticsUsecase is a mock implementation of the statistics usecase
type MockStatisticsUsecase struct {
	// Control mock behavior
	ShouldFailRevenue     bool
	ShouldFailEnrollments bool
	ShouldFailUserStats   bool

	// Captured arguments
	LastMonth int
	LastYear  int
	LastPage  int
	LastLimit int

	// Return values
	MockRevenue     []usecasecontract.RevenueStat
	MockEnrollments []usecasecontract.EnrollmentStat
	MockUserStat    usecasecontract.UserStat
}

var _ usecasecontract.IStatisticsUseCase = (*MockStatisticsUsecase)(nil)

func NewMockStatisticsUsecase() *MockStatisticsUsecase {
	return &MockStatisticsUsecase{
		MockRevenue: []usecasecontract.RevenueStat{
			{CourseID: "course-1", CourseTitle: "Go Basics", TeacherName: "Mock Teacher", TotalRevenue: 99.5, PaymentCount: 2},
		},
		MockEnrollments: []usecasecontract.EnrollmentStat{
			{CourseID: "course-1", CourseTitle: "Go Basics", TeacherName: "Mock Teacher", EnrollmentCount: 7},
		},
		MockUserStat: usecasecontract.UserStat{Students: 12, Teachers: 3},
	}
}

func (m *MockStatisticsUsecase) CourseRevenueStats(ctx context.Context, month, year, page, limit int) (usecasecontract.Page[usecasecontract.RevenueStat], error) {
	m.LastMonth, m.LastYear, m.LastPage, m.LastLimit = month, year, page, limit
	if m.ShouldFailRevenue {
		return usecasecontract.Page[usecasecontract.RevenueStat]{}, errors.New("revenue report failed")
	}
	return usecasecontract.Page[usecasecontract.RevenueStat]{Items: m.MockRevenue, Total: len(m.MockRevenue), Page: 1, Pages: 1}, nil
}

func (m *MockStatisticsUsecase) MostEnrolledCourses(ctx context.Context, page, limit int) (usecasecontract.Page[usecasecontract.EnrollmentStat], error) {
	m.LastPage, m.LastLimit = page, limit
	if m.ShouldFailEnrollments {
		return usecasecontract.Page[usecasecontract.EnrollmentStat]{}, errors.New("enrollment report failed")
	}
	return usecasecontract.Page[usecasecontract.EnrollmentStat]{Items: m.MockEnrollments, Total: len(m.MockEnrollments), Page: 1, Pages: 1}, nil
}

func (m *MockStatisticsUsecase) UserStats(ctx context.Context, page, limit int) (usecasecontract.Page[usecasecontract.UserStat], error) {
	m.LastPage, m.LastLimit = page, limit
	if m.ShouldFailUserStats {
		return usecasecontract.Page[usecasecontract.UserStat]{}, errors.New("user stats failed")
	}
	return usecasecontract.Page[usecasecontract.UserStat]{Items: []usecasecontract.UserStat{m.MockUserStat}, Total: 1, Page: 1, Pages: 1}, nil
}
