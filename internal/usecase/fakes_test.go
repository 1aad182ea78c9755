package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"courseadmin/internal/domain/contract"
	"courseadmin/internal/domain/entity"
)

// In-memory stand-ins for the repository and service contracts. Each fake
// keeps just enough state for the behavior under test.

type fakeLogger struct{}

func (fakeLogger) Debugf(string, ...interface{}) {}
func (fakeLogger) Infof(string, ...interface{})  {}
func (fakeLogger) Warnf(string, ...interface{})  {}
func (fakeLogger) Errorf(string, ...interface{}) {}
func (fakeLogger) Fatalf(string, ...interface{}) {}

type fakeUUIDGen struct{ n int }

func (g *fakeUUIDGen) NewUUID() string {
	g.n++
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", g.n)
}

type fakeRoleRepo struct {
	roles []*entity.Role
}

func (r *fakeRoleRepo) GetRoleByName(_ context.Context, name string) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, fmt.Errorf("role %q: %w", name, contract.ErrNotFound)
}

func (r *fakeRoleRepo) GetRoleByID(_ context.Context, id string) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.ID == id {
			return role, nil
		}
	}
	return nil, fmt.Errorf("role with id %q: %w", id, contract.ErrNotFound)
}

func (r *fakeRoleRepo) CreateRole(_ context.Context, role *entity.Role) error {
	r.roles = append(r.roles, role)
	return nil
}

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *entity.User) error {
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user with id %q: %w", id, contract.ErrNotFound)
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user with email %q: %w", email, contract.ErrNotFound)
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = user
			return user, nil
		}
	}
	return nil, fmt.Errorf("user with id %q: %w", user.ID, contract.ErrNotFound)
}

func (r *fakeUserRepo) FindByRole(_ context.Context, roleID, search string, page, limit int) ([]*entity.User, int64, error) {
	var matched []*entity.User
	needle := strings.ToLower(search)
	for _, u := range r.users {
		if u.RoleID != roleID {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.FullName), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) {
			continue
		}
		matched = append(matched, u)
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], int64(len(matched)), nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, roleID string) (int64, error) {
	var count int64
	for _, u := range r.users {
		if u.RoleID == roleID {
			count++
		}
	}
	return count, nil
}

type fakeCourseRepo struct {
	courses []*entity.Course
}

func (r *fakeCourseRepo) CreateCourse(_ context.Context, course *entity.Course) error {
	r.courses = append(r.courses, course)
	return nil
}

func (r *fakeCourseRepo) GetCourseByID(_ context.Context, id string) (*entity.Course, error) {
	for _, c := range r.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("course with id %q: %w", id, contract.ErrNotFound)
}

func (r *fakeCourseRepo) FindByTeacher(_ context.Context, teacherID string) ([]*entity.Course, error) {
	var out []*entity.Course
	for _, c := range r.courses {
		if c.TeacherID == teacherID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) CountApprovedByTeacher(_ context.Context, teacherID string) (int64, error) {
	var count int64
	for _, c := range r.courses {
		if c.TeacherID == teacherID && c.Status == entity.CourseStatusApproved {
			count++
		}
	}
	return count, nil
}

type fakeLessonRepo struct {
	lessons []*entity.Lesson
}

func (r *fakeLessonRepo) CreateLesson(_ context.Context, lesson *entity.Lesson) error {
	r.lessons = append(r.lessons, lesson)
	return nil
}

func (r *fakeLessonRepo) FindByCourse(_ context.Context, courseID string) ([]*entity.Lesson, error) {
	var out []*entity.Lesson
	for _, l := range r.lessons {
		if l.CourseID == courseID {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeLessonRepo) GetLessonsByIDs(_ context.Context, ids []string) ([]*entity.Lesson, error) {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var out []*entity.Lesson
	for _, l := range r.lessons {
		if _, ok := wanted[l.ID]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLessonRepo) CountByCourse(_ context.Context, courseID string) (int64, error) {
	var count int64
	for _, l := range r.lessons {
		if l.CourseID == courseID {
			count++
		}
	}
	return count, nil
}

type fakeEnrollmentRepo struct {
	enrollments  []*entity.Enrollment
	courseTitles map[string]string
	joinRows     []entity.EnrollmentCourseRow
}

func (r *fakeEnrollmentRepo) CreateEnrollment(_ context.Context, enrollment *entity.Enrollment) error {
	r.enrollments = append(r.enrollments, enrollment)
	return nil
}

func (r *fakeEnrollmentRepo) GetEnrollmentByID(_ context.Context, id string) (*entity.Enrollment, error) {
	for _, e := range r.enrollments {
		if e.ID == id {
			copied := *e
			copied.CompletedLessons = append([]entity.CompletedLesson(nil), e.CompletedLessons...)
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("enrollment with id %q: %w", id, contract.ErrNotFound)
}

func (r *fakeEnrollmentRepo) ExistsByStudentAndCourse(_ context.Context, studentID, courseID string) (bool, error) {
	for _, e := range r.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEnrollmentRepo) FindByStudentWithCourse(_ context.Context, studentID string) ([]entity.StudentEnrollmentRow, error) {
	var rows []entity.StudentEnrollmentRow
	for _, e := range r.enrollments {
		if e.StudentID != studentID {
			continue
		}
		title, ok := r.courseTitles[e.CourseID]
		if !ok {
			continue
		}
		rows = append(rows, entity.StudentEnrollmentRow{
			ID:               e.ID,
			CourseID:         e.CourseID,
			CourseTitle:      title,
			EnrollmentDate:   e.EnrollmentDate,
			CompletedLessons: append([]entity.CompletedLesson(nil), e.CompletedLessons...),
			Progress:         e.Progress,
		})
	}
	return rows, nil
}

func (r *fakeEnrollmentRepo) FindAllWithCourse(_ context.Context) ([]entity.EnrollmentCourseRow, error) {
	return r.joinRows, nil
}

func (r *fakeEnrollmentRepo) AppendCompletedLesson(_ context.Context, enrollmentID, lessonID string, completedAt time.Time, totalLessons int) (bool, error) {
	for _, e := range r.enrollments {
		if e.ID != enrollmentID {
			continue
		}
		for _, cl := range e.CompletedLessons {
			if cl.LessonID == lessonID {
				return false, nil
			}
		}
		e.CompletedLessons = append(e.CompletedLessons, entity.CompletedLesson{LessonID: lessonID, CompletedAt: completedAt})
		e.Progress = ComputeProgress(len(e.CompletedLessons), totalLessons)
		return true, nil
	}
	return false, nil
}

type fakePaymentRepo struct {
	revenueRows []entity.PaymentCourseRow
	listRows    []entity.PaymentListRow
	listTotal   int64

	lastFrom *time.Time
	lastTo   *time.Time
}

func (r *fakePaymentRepo) CreatePayment(_ context.Context, _ *entity.Payment) error { return nil }

func (r *fakePaymentRepo) FindCompletedCourseRows(_ context.Context, from, to *time.Time) ([]entity.PaymentCourseRow, error) {
	r.lastFrom, r.lastTo = from, to
	return r.revenueRows, nil
}

func (r *fakePaymentRepo) FindPayments(_ context.Context, _ contract.PaymentFilter, _, _ int) ([]entity.PaymentListRow, int64, error) {
	return r.listRows, r.listTotal, nil
}

type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) ComparePasswordHash(password, hashed string) error {
	if "hashed:"+password != hashed {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type fakeMailService struct {
	sent     []string
	failSend bool
}

func (m *fakeMailService) SendEmail(_ context.Context, to, subject, body string) error {
	if m.failSend {
		return fmt.Errorf("smtp unavailable")
	}
	m.sent = append(m.sent, to+": "+subject)
	return nil
}

type fakeRandomGen struct{}

func (fakeRandomGen) GeneratePassword(n int) (string, error) {
	return strings.Repeat("x", n), nil
}

type fakeValidator struct{}

func (fakeValidator) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

func (fakeValidator) ValidateFullName(fullName string) error {
	if n := len(strings.TrimSpace(fullName)); n < 2 || n > 50 {
		return fmt.Errorf("full name must be between 2 and 50 characters")
	}
	return nil
}

func (fakeValidator) ValidateCategoryName(name string) error {
	if n := len(strings.TrimSpace(name)); n < 2 || n > 50 {
		return fmt.Errorf("category name must be between 2 and 50 characters")
	}
	return nil
}

type fakeConfig struct {
	sendCredentials bool
	passwordLength  int
}

func (c fakeConfig) GetSendCredentialsEmail() bool { return c.sendCredentials }
func (c fakeConfig) GetTeacherPasswordLength() int {
	if c.passwordLength == 0 {
		return 12
	}
	return c.passwordLength
}
func (c fakeConfig) GetRoleCacheTTL() time.Duration { return time.Hour }

// testID builds a deterministic well-formed UUID for fixtures.
func testID(n int) string {
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", n)
}
