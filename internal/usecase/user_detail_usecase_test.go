package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseadmin/internal/domain/entity"
)

func seededRoles() *fakeRoleRepo {
	return &fakeRoleRepo{roles: []*entity.Role{
		{ID: "r-teacher", Name: entity.RoleTeacher},
		{ID: "r-student", Name: entity.RoleStudent},
		{ID: "r-admin", Name: entity.RoleAdmin},
	}}
}

func newUserDetailUsecaseForTest(userRepo *fakeUserRepo, roleRepo *fakeRoleRepo, courseRepo *fakeCourseRepo, lessonRepo *fakeLessonRepo, enrollmentRepo *fakeEnrollmentRepo) *UserDetailUsecase {
	return NewUserDetailUsecase(userRepo, roleRepo, courseRepo, lessonRepo, enrollmentRepo, fakeLogger{})
}

func TestGetUserDetail_TeacherApprovedCoursesOnly(t *testing.T) {
	teacherID := testID(1)
	userRepo := &fakeUserRepo{users: []*entity.User{
		{ID: teacherID, Email: "ada@example.com", FullName: "Ada", RoleID: "r-teacher", Status: entity.UserStatusActive},
	}}
	day := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }
	courseRepo := &fakeCourseRepo{courses: []*entity.Course{
		{ID: "c1", Title: "Go Basics", TeacherID: teacherID, Status: entity.CourseStatusApproved},
		{ID: "c2", Title: "Drafts", TeacherID: teacherID, Status: entity.CourseStatusDraft},
		{ID: "c3", Title: "Pending", TeacherID: teacherID, Status: entity.CourseStatusPending},
		{ID: "c4", Title: "SQL", TeacherID: teacherID, Status: entity.CourseStatusApproved},
	}}
	lessonRepo := &fakeLessonRepo{lessons: []*entity.Lesson{
		{ID: "l2", CourseID: "c1", Title: "Types", CreatedAt: day(2)},
		{ID: "l1", CourseID: "c1", Title: "Intro", CreatedAt: day(1)},
	}}
	uc := newUserDetailUsecaseForTest(userRepo, seededRoles(), courseRepo, lessonRepo, &fakeEnrollmentRepo{})

	detail, err := uc.GetUserDetail(context.Background(), teacherID)
	require.NoError(t, err)

	assert.Equal(t, entity.RoleTeacher, detail.Role.Name)
	require.NotNil(t, detail.Courses)
	require.Len(t, *detail.Courses, 2)
	assert.Equal(t, "c1", (*detail.Courses)[0].CourseID)
	assert.Equal(t, "c4", (*detail.Courses)[1].CourseID)
	require.NotNil(t, detail.TotalCourses)
	assert.Equal(t, 2, *detail.TotalCourses)

	// lessons come back in creation order
	lessons := (*detail.Courses)[0].Lessons
	require.Len(t, lessons, 2)
	assert.Equal(t, "Intro", lessons[0].LessonTitle)
	assert.Equal(t, "Types", lessons[1].LessonTitle)

	// student branch stays absent
	assert.Nil(t, detail.EnrolledCourses)
	assert.Nil(t, detail.CurrentLesson)
}

func TestGetUserDetail_TeacherWithoutApprovedCourses(t *testing.T) {
	teacherID := testID(1)
	userRepo := &fakeUserRepo{users: []*entity.User{
		{ID: teacherID, RoleID: "r-teacher"},
	}}
	courseRepo := &fakeCourseRepo{courses: []*entity.Course{
		{ID: "c1", TeacherID: teacherID, Status: entity.CourseStatusRejected},
	}}
	uc := newUserDetailUsecaseForTest(userRepo, seededRoles(), courseRepo, &fakeLessonRepo{}, &fakeEnrollmentRepo{})

	detail, err := uc.GetUserDetail(context.Background(), teacherID)
	require.NoError(t, err)
	require.NotNil(t, detail.Courses)
	assert.Empty(t, *detail.Courses)
	require.NotNil(t, detail.TotalCourses)
	assert.Equal(t, 0, *detail.TotalCourses)
}

func TestGetUserDetail_StudentView(t *testing.T) {
	studentID := testID(2)
	userRepo := &fakeUserRepo{users: []*entity.User{
		{ID: studentID, FullName: "Grace", RoleID: "r-student"},
	}}
	day := func(d int) time.Time { return time.Date(2025, 2, d, 0, 0, 0, 0, time.UTC) }
	lessonRepo := &fakeLessonRepo{lessons: []*entity.Lesson{
		{ID: "l1", CourseID: "c1", Title: "Intro", ContentType: entity.ContentTypeVideo, CreatedAt: day(1)},
		{ID: "l2", CourseID: "c1", Title: "Types", ContentType: entity.ContentTypeDocument, CreatedAt: day(2)},
		{ID: "l3", CourseID: "c2", Title: "Joins", ContentType: entity.ContentTypeVideo, CreatedAt: day(3)},
	}}
	enrollmentRepo := &fakeEnrollmentRepo{
		courseTitles: map[string]string{"c1": "Go Basics", "c2": "SQL"},
		enrollments: []*entity.Enrollment{
			{
				ID: "e1", StudentID: studentID, CourseID: "c1", EnrollmentDate: day(5), Progress: 100,
				CompletedLessons: []entity.CompletedLesson{
					{LessonID: "l1", CompletedAt: day(6)},
					{LessonID: "l2", CompletedAt: day(7)},
				},
			},
			{
				ID: "e2", StudentID: studentID, CourseID: "c2", EnrollmentDate: day(8), Progress: 0,
				CompletedLessons: []entity.CompletedLesson{},
			},
		},
	}
	uc := newUserDetailUsecaseForTest(userRepo, seededRoles(), &fakeCourseRepo{}, lessonRepo, enrollmentRepo)

	detail, err := uc.GetUserDetail(context.Background(), studentID)
	require.NoError(t, err)

	require.NotNil(t, detail.EnrolledCourses)
	require.Len(t, *detail.EnrolledCourses, 2)
	assert.Equal(t, "Go Basics", (*detail.EnrolledCourses)[0].CourseTitle)
	assert.Equal(t, 100, (*detail.EnrolledCourses)[0].Progress)

	require.NotNil(t, detail.CompletedLessons)
	require.Len(t, *detail.CompletedLessons, 2)
	assert.Equal(t, "Intro", (*detail.CompletedLessons)[0].LessonTitle)
	assert.Equal(t, "Types", (*detail.CompletedLessons)[1].LessonTitle)
	require.NotNil(t, detail.TotalCompletedLessons)
	assert.Equal(t, 2, *detail.TotalCompletedLessons)

	// the first enrollment is fully done, so the pointer moves to the
	// second course's first lesson
	require.NotNil(t, detail.CurrentLesson)
	assert.Equal(t, "l3", detail.CurrentLesson.LessonID)
	assert.Equal(t, "SQL", detail.CurrentLesson.CourseTitle)
	assert.Equal(t, day(8), detail.CurrentLesson.StartedAt)

	// teacher branch stays absent
	assert.Nil(t, detail.Courses)
	assert.Nil(t, detail.TotalCourses)
}

func TestGetUserDetail_StudentDeletedLessonSkipped(t *testing.T) {
	studentID := testID(2)
	userRepo := &fakeUserRepo{users: []*entity.User{
		{ID: studentID, RoleID: "r-student"},
	}}
	lessonRepo := &fakeLessonRepo{lessons: []*entity.Lesson{
		{ID: "l1", CourseID: "c1", Title: "Intro"},
	}}
	enrollmentRepo := &fakeEnrollmentRepo{
		courseTitles: map[string]string{"c1": "Go Basics"},
		enrollments: []*entity.Enrollment{
			{
				ID: "e1", StudentID: studentID, CourseID: "c1",
				CompletedLessons: []entity.CompletedLesson{
					{LessonID: "l1"},
					{LessonID: "l-deleted"},
				},
			},
		},
	}
	uc := newUserDetailUsecaseForTest(userRepo, seededRoles(), &fakeCourseRepo{}, lessonRepo, enrollmentRepo)

	detail, err := uc.GetUserDetail(context.Background(), studentID)
	require.NoError(t, err)
	require.NotNil(t, detail.CompletedLessons)
	require.Len(t, *detail.CompletedLessons, 1)
	assert.Equal(t, "l1", (*detail.CompletedLessons)[0].LessonID)
}

func TestGetUserDetail_StudentWithNoEnrollments(t *testing.T) {
	studentID := testID(2)
	userRepo := &fakeUserRepo{users: []*entity.User{
		{ID: studentID, RoleID: "r-student"},
	}}
	uc := newUserDetailUsecaseForTest(userRepo, seededRoles(), &fakeCourseRepo{}, &fakeLessonRepo{}, &fakeEnrollmentRepo{})

	detail, err := uc.GetUserDetail(context.Background(), studentID)
	require.NoError(t, err)
	require.NotNil(t, detail.EnrolledCourses)
	assert.Empty(t, *detail.EnrolledCourses)
	assert.Nil(t, detail.CurrentLesson)
}

func TestGetUserDetail_InvalidID(t *testing.T) {
	uc := newUserDetailUsecaseForTest(&fakeUserRepo{}, seededRoles(), &fakeCourseRepo{}, &fakeLessonRepo{}, &fakeEnrollmentRepo{})

	_, err := uc.GetUserDetail(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestGetUserDetail_UserMissing(t *testing.T) {
	uc := newUserDetailUsecaseForTest(&fakeUserRepo{}, seededRoles(), &fakeCourseRepo{}, &fakeLessonRepo{}, &fakeEnrollmentRepo{})

	_, err := uc.GetUserDetail(context.Background(), testID(9))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUserDetail_RoleNotSeeded(t *testing.T) {
	userID := testID(1)
	userRepo := &fakeUserRepo{users: []*entity.User{{ID: userID, RoleID: "r-teacher"}}}
	uc := newUserDetailUsecaseForTest(userRepo, &fakeRoleRepo{}, &fakeCourseRepo{}, &fakeLessonRepo{}, &fakeEnrollmentRepo{})

	_, err := uc.GetUserDetail(context.Background(), userID)
	assert.ErrorIs(t, err, ErrRoleConfigMissing)
}

func TestGetUserDetail_AdminRoleRejected(t *testing.T) {
	userID := testID(1)
	userRepo := &fakeUserRepo{users: []*entity.User{{ID: userID, RoleID: "r-admin"}}}
	uc := newUserDetailUsecaseForTest(userRepo, seededRoles(), &fakeCourseRepo{}, &fakeLessonRepo{}, &fakeEnrollmentRepo{})

	_, err := uc.GetUserDetail(context.Background(), userID)
	assert.ErrorIs(t, err, ErrInvalidRole)
}
