package usecasecontract

import "context"

// RevenueStat is one grouped row of the course revenue report.
type RevenueStat struct {
	CourseID     string  `json:"courseId"`
	CourseTitle  string  `json:"courseTitle"`
	TeacherName  string  `json:"teacherName"`
	TotalRevenue float64 `json:"totalRevenue"`
	PaymentCount int     `json:"paymentCount"`
}

// EnrollmentStat is one grouped row of the most-enrolled report.
type EnrollmentStat struct {
	CourseID        string `json:"courseId"`
	CourseTitle     string `json:"courseTitle"`
	TeacherName     string `json:"teacherName"`
	EnrollmentCount int    `json:"enrollmentCount"`
}

// UserStat is the single-row student/teacher headcount report.
type UserStat struct {
	Students int64 `json:"students"`
	Teachers int64 `json:"teachers"`
}

type IStatisticsUseCase interface {
	// CourseRevenueStats groups COMPLETED payments by course. month is 1-12
	// and only honored together with year; year alone covers the whole year;
	// both zero means all time.
	CourseRevenueStats(ctx context.Context, month, year, page, limit int) (Page[RevenueStat], error)
	// MostEnrolledCourses groups all enrollments by course, sorted by
	// enrollment count descending (stable).
	MostEnrolledCourses(ctx context.Context, page, limit int) (Page[EnrollmentStat], error)
	// UserStats counts users per student/teacher role.
	UserStats(ctx context.Context, page, limit int) (Page[UserStat], error)
}
