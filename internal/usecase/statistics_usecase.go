package usecase

import (
	"context"
	"sort"
	"time"

	"courseadmin/internal/domain/contract"
	"courseadmin/internal/domain/entity"
	usecasecontract "courseadmin/internal/usecase/contract"
)

// StatisticsUsecase computes revenue, enrollment and headcount reports.
// Nothing here is materialized: every request aggregates fresh documents.
type StatisticsUsecase struct {
	paymentRepo    contract.IPaymentRepository
	enrollmentRepo contract.IEnrollmentRepository
	userRepo       contract.IUserRepository
	roleRepo       contract.IRoleRepository
	logger         usecasecontract.IAppLogger
}

func NewStatisticsUsecase(
	paymentRepo contract.IPaymentRepository,
	enrollmentRepo contract.IEnrollmentRepository,
	userRepo contract.IUserRepository,
	roleRepo contract.IRoleRepository,
	logger usecasecontract.IAppLogger,
) *StatisticsUsecase {
	return &StatisticsUsecase{
		paymentRepo:    paymentRepo,
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		logger:         logger,
	}
}

var _ usecasecontract.IStatisticsUseCase = (*StatisticsUsecase)(nil)

// CourseRevenueStats groups COMPLETED payments by course. Grouping is
// order-preserving: the first payment seen for a course fixes the row's
// position and contributes the course title and teacher name.
func (uc *StatisticsUsecase) CourseRevenueStats(ctx context.Context, month, year, page, limit int) (usecasecontract.Page[usecasecontract.RevenueStat], error) {
	from, to := paymentWindow(month, year)

	rows, err := uc.paymentRepo.FindCompletedCourseRows(ctx, from, to)
	if err != nil {
		uc.logger.Errorf("revenue aggregation failed: %v", err)
		return usecasecontract.Page[usecasecontract.RevenueStat]{}, err
	}

	index := make(map[string]int, len(rows))
	stats := []usecasecontract.RevenueStat{}
	for _, row := range rows {
		if i, ok := index[row.CourseID]; ok {
			stats[i].TotalRevenue += row.Amount
			stats[i].PaymentCount++
			continue
		}
		index[row.CourseID] = len(stats)
		stats = append(stats, usecasecontract.RevenueStat{
			CourseID:     row.CourseID,
			CourseTitle:  row.CourseTitle,
			TeacherName:  row.TeacherName,
			TotalRevenue: row.Amount,
			PaymentCount: 1,
		})
	}

	return paginate(stats, page, limit), nil
}

// MostEnrolledCourses groups every enrollment by course and sorts descending
// by count. The sort is stable, so equal counts keep discovery order.
func (uc *StatisticsUsecase) MostEnrolledCourses(ctx context.Context, page, limit int) (usecasecontract.Page[usecasecontract.EnrollmentStat], error) {
	rows, err := uc.enrollmentRepo.FindAllWithCourse(ctx)
	if err != nil {
		uc.logger.Errorf("enrollment aggregation failed: %v", err)
		return usecasecontract.Page[usecasecontract.EnrollmentStat]{}, err
	}

	index := make(map[string]int, len(rows))
	stats := []usecasecontract.EnrollmentStat{}
	for _, row := range rows {
		if i, ok := index[row.CourseID]; ok {
			stats[i].EnrollmentCount++
			continue
		}
		index[row.CourseID] = len(stats)
		stats = append(stats, usecasecontract.EnrollmentStat{
			CourseID:        row.CourseID,
			CourseTitle:     row.CourseTitle,
			TeacherName:     row.TeacherName,
			EnrollmentCount: 1,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].EnrollmentCount > stats[j].EnrollmentCount
	})

	return paginate(stats, page, limit), nil
}

// UserStats returns the single-row student/teacher headcount. Pagination is
// applied to the one-element list so out-of-range pages come back empty
// rather than erroring.
func (uc *StatisticsUsecase) UserStats(ctx context.Context, page, limit int) (usecasecontract.Page[usecasecontract.UserStat], error) {
	studentRole, err := uc.roleRepo.GetRoleByName(ctx, entity.RoleStudent)
	if err != nil {
		return usecasecontract.Page[usecasecontract.UserStat]{}, roleLookupError(err)
	}
	teacherRole, err := uc.roleRepo.GetRoleByName(ctx, entity.RoleTeacher)
	if err != nil {
		return usecasecontract.Page[usecasecontract.UserStat]{}, roleLookupError(err)
	}

	studentCount, err := uc.userRepo.CountByRole(ctx, studentRole.ID)
	if err != nil {
		return usecasecontract.Page[usecasecontract.UserStat]{}, err
	}
	teacherCount, err := uc.userRepo.CountByRole(ctx, teacherRole.ID)
	if err != nil {
		return usecasecontract.Page[usecasecontract.UserStat]{}, err
	}

	stats := []usecasecontract.UserStat{{Students: studentCount, Teachers: teacherCount}}
	return paginate(stats, page, limit), nil
}

// paymentWindow resolves the month/year filter into a half-open [from, to)
// window so a payment at any time on the last day of the period is included.
// month is honored only together with year; both zero means all time.
func paymentWindow(month, year int) (*time.Time, *time.Time) {
	if year <= 0 {
		return nil, nil
	}
	var from, to time.Time
	if month >= 1 && month <= 12 {
		from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 1, 0)
	} else {
		from = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(1, 0, 0)
	}
	return &from, &to
}
