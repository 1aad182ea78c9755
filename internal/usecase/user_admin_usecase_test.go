package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseadmin/internal/domain/entity"
)

func newUserAdminUsecaseForTest(userRepo *fakeUserRepo, roleRepo *fakeRoleRepo, courseRepo *fakeCourseRepo, mail *fakeMailService, cfg fakeConfig) *UserAdminUsecase {
	return NewUserAdminUsecase(userRepo, roleRepo, courseRepo, fakeHasher{}, mail, &fakeUUIDGen{}, fakeRandomGen{}, fakeValidator{}, cfg, fakeLogger{})
}

func TestListTeachers_AnnotatesApprovedCourseCount(t *testing.T) {
	roleRepo := seededRoles()
	userRepo := &fakeUserRepo{users: []*entity.User{
		{ID: testID(1), Email: "ada@example.com", FullName: "Ada", RoleID: "r-teacher"},
		{ID: testID(2), Email: "grace@example.com", FullName: "Grace", RoleID: "r-teacher"},
		{ID: testID(3), Email: "student@example.com", FullName: "Student", RoleID: "r-student"},
	}}
	courseRepo := &fakeCourseRepo{courses: []*entity.Course{
		{ID: "c1", TeacherID: testID(1), Status: entity.CourseStatusApproved},
		{ID: "c2", TeacherID: testID(1), Status: entity.CourseStatusApproved},
		{ID: "c3", TeacherID: testID(1), Status: entity.CourseStatusPending},
	}}
	uc := newUserAdminUsecaseForTest(userRepo, roleRepo, courseRepo, &fakeMailService{}, fakeConfig{})

	page, err := uc.ListTeachers(context.Background(), "", 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Total)

	require.NotNil(t, page.Items[0].TotalCourses)
	assert.Equal(t, 2, *page.Items[0].TotalCourses)
	require.NotNil(t, page.Items[1].TotalCourses)
	assert.Equal(t, 0, *page.Items[1].TotalCourses)
	assert.Equal(t, entity.RoleTeacher, page.Items[0].Role.Name)
}

func TestListTeachers_SearchNarrows(t *testing.T) {
	roleRepo := seededRoles()
	userRepo := &fakeUserRepo{users: []*entity.User{
		{ID: testID(1), Email: "ada@example.com", FullName: "Ada Lovelace", RoleID: "r-teacher"},
		{ID: testID(2), Email: "grace@example.com", FullName: "Grace Hopper", RoleID: "r-teacher"},
	}}
	uc := newUserAdminUsecaseForTest(userRepo, roleRepo, &fakeCourseRepo{}, &fakeMailService{}, fakeConfig{})

	page, err := uc.ListTeachers(context.Background(), "lovelace", 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Ada Lovelace", page.Items[0].FullName)
}

func TestListStudents_PaginationDefaults(t *testing.T) {
	roleRepo := seededRoles()
	userRepo := &fakeUserRepo{}
	for i := 0; i < 15; i++ {
		userRepo.users = append(userRepo.users, &entity.User{ID: testID(i + 1), RoleID: "r-student"})
	}
	uc := newUserAdminUsecaseForTest(userRepo, roleRepo, &fakeCourseRepo{}, &fakeMailService{}, fakeConfig{})

	// zero page/limit fall back to 1/10
	page, err := uc.ListStudents(context.Background(), "", 0, 0)
	require.NoError(t, err)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 15, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.Pages)
}

func TestListTeachers_RoleNotSeeded(t *testing.T) {
	uc := newUserAdminUsecaseForTest(&fakeUserRepo{}, &fakeRoleRepo{}, &fakeCourseRepo{}, &fakeMailService{}, fakeConfig{})

	_, err := uc.ListTeachers(context.Background(), "", 1, 10)
	assert.ErrorIs(t, err, ErrRoleConfigMissing)
}

func TestCreateTeacher(t *testing.T) {
	roleRepo := seededRoles()
	userRepo := &fakeUserRepo{}
	mail := &fakeMailService{}
	uc := newUserAdminUsecaseForTest(userRepo, roleRepo, &fakeCourseRepo{}, mail, fakeConfig{sendCredentials: true, passwordLength: 16})

	item, err := uc.CreateTeacher(context.Background(), "ada@example.com", "Ada Lovelace")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", item.Email)
	assert.Equal(t, entity.RoleTeacher, item.Role.Name)
	assert.Equal(t, entity.UserStatusActive, item.Status)
	assert.False(t, item.IsBanned)

	require.Len(t, userRepo.users, 1)
	stored := userRepo.users[0]
	// the generated password is hashed before it is stored
	assert.Equal(t, "hashed:"+strings.Repeat("x", 16), stored.PasswordHash)

	require.Len(t, mail.sent, 1)
	assert.Contains(t, mail.sent[0], "Your Teacher Account Credentials")
}

func TestCreateTeacher_EmailSkippedWhenDisabled(t *testing.T) {
	mail := &fakeMailService{}
	uc := newUserAdminUsecaseForTest(&fakeUserRepo{}, seededRoles(), &fakeCourseRepo{}, mail, fakeConfig{sendCredentials: false})

	_, err := uc.CreateTeacher(context.Background(), "ada@example.com", "Ada Lovelace")
	require.NoError(t, err)
	assert.Empty(t, mail.sent)
}

func TestCreateTeacher_InvalidEmail(t *testing.T) {
	uc := newUserAdminUsecaseForTest(&fakeUserRepo{}, seededRoles(), &fakeCourseRepo{}, &fakeMailService{}, fakeConfig{})

	_, err := uc.CreateTeacher(context.Background(), "not-an-email", "Ada Lovelace")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateTeacher_ShortName(t *testing.T) {
	uc := newUserAdminUsecaseForTest(&fakeUserRepo{}, seededRoles(), &fakeCourseRepo{}, &fakeMailService{}, fakeConfig{})

	_, err := uc.CreateTeacher(context.Background(), "ada@example.com", "A")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateTeacher_EmailInUse(t *testing.T) {
	userRepo := &fakeUserRepo{users: []*entity.User{
		{ID: testID(1), Email: "ada@example.com", RoleID: "r-teacher"},
	}}
	uc := newUserAdminUsecaseForTest(userRepo, seededRoles(), &fakeCourseRepo{}, &fakeMailService{}, fakeConfig{})

	_, err := uc.CreateTeacher(context.Background(), "ada@example.com", "Ada Lovelace")
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestCreateTeacher_MailFailureSurfaces(t *testing.T) {
	mail := &fakeMailService{failSend: true}
	uc := newUserAdminUsecaseForTest(&fakeUserRepo{}, seededRoles(), &fakeCourseRepo{}, mail, fakeConfig{sendCredentials: true})

	_, err := uc.CreateTeacher(context.Background(), "ada@example.com", "Ada Lovelace")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email")
}

func TestToggleUserStatus(t *testing.T) {
	userID := testID(1)
	userRepo := &fakeUserRepo{users: []*entity.User{
		{ID: userID, RoleID: "r-teacher", Status: entity.UserStatusActive, IsBanned: false},
	}}
	uc := newUserAdminUsecaseForTest(userRepo, seededRoles(), &fakeCourseRepo{}, &fakeMailService{}, fakeConfig{})

	item, err := uc.ToggleUserStatus(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusInactive, item.Status)
	assert.True(t, item.IsBanned)

	item, err = uc.ToggleUserStatus(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusActive, item.Status)
	assert.False(t, item.IsBanned)
}

func TestToggleUserStatus_NotFound(t *testing.T) {
	uc := newUserAdminUsecaseForTest(&fakeUserRepo{}, seededRoles(), &fakeCourseRepo{}, &fakeMailService{}, fakeConfig{})

	_, err := uc.ToggleUserStatus(context.Background(), testID(9))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleUserStatus_InvalidID(t *testing.T) {
	uc := newUserAdminUsecaseForTest(&fakeUserRepo{}, seededRoles(), &fakeCourseRepo{}, &fakeMailService{}, fakeConfig{})

	_, err := uc.ToggleUserStatus(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrInvalidID)
}
