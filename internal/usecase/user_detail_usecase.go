package usecase

import (
	"context"
	"errors"

	"courseadmin/internal/domain/contract"
	"courseadmin/internal/domain/entity"
	usecasecontract "courseadmin/internal/usecase/contract"
)

// UserDetailUsecase assembles the role-specific admin detail view for a user.
type UserDetailUsecase struct {
	userRepo       contract.IUserRepository
	roleRepo       contract.IRoleRepository
	courseRepo     contract.ICourseRepository
	lessonRepo     contract.ILessonRepository
	enrollmentRepo contract.IEnrollmentRepository
	logger         usecasecontract.IAppLogger
}

func NewUserDetailUsecase(
	userRepo contract.IUserRepository,
	roleRepo contract.IRoleRepository,
	courseRepo contract.ICourseRepository,
	lessonRepo contract.ILessonRepository,
	enrollmentRepo contract.IEnrollmentRepository,
	logger usecasecontract.IAppLogger,
) *UserDetailUsecase {
	return &UserDetailUsecase{
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		courseRepo:     courseRepo,
		lessonRepo:     lessonRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

var _ usecasecontract.IUserDetailUseCase = (*UserDetailUsecase)(nil)

// GetUserDetail returns the teacher view (approved courses with lessons) or
// the student view (enrollments, flattened completed lessons, current
// lesson), depending on the user's role.
func (uc *UserDetailUsecase) GetUserDetail(ctx context.Context, userID string) (*usecasecontract.UserDetail, error) {
	if err := validateID(userID); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	teacherRole, err := uc.roleRepo.GetRoleByName(ctx, entity.RoleTeacher)
	if err != nil {
		return nil, roleLookupError(err)
	}
	studentRole, err := uc.roleRepo.GetRoleByName(ctx, entity.RoleStudent)
	if err != nil {
		return nil, roleLookupError(err)
	}

	detail := &usecasecontract.UserDetail{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Status:    user.Status,
		IsBanned:  user.IsBanned,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	switch user.RoleID {
	case teacherRole.ID:
		detail.Role = usecasecontract.RoleRef{ID: teacherRole.ID, Name: teacherRole.Name}
		if err := uc.fillTeacherDetail(ctx, user, detail); err != nil {
			return nil, err
		}
	case studentRole.ID:
		detail.Role = usecasecontract.RoleRef{ID: studentRole.ID, Name: studentRole.Name}
		if err := uc.fillStudentDetail(ctx, user, detail); err != nil {
			return nil, err
		}
	default:
		return nil, ErrInvalidRole
	}

	return detail, nil
}

// fillTeacherDetail lists the teacher's APPROVED courses with their lessons
// in creation order. Courses still in DRAFT/PENDING/REJECTED exist but are
// excluded from the view.
func (uc *UserDetailUsecase) fillTeacherDetail(ctx context.Context, user *entity.User, detail *usecasecontract.UserDetail) error {
	allCourses, err := uc.courseRepo.FindByTeacher(ctx, user.ID)
	if err != nil {
		return err
	}

	courses := []usecasecontract.TeacherCourse{}
	for _, course := range allCourses {
		if course.Status != entity.CourseStatusApproved {
			continue
		}
		lessons, err := uc.lessonRepo.FindByCourse(ctx, course.ID)
		if err != nil {
			return err
		}
		digests := make([]usecasecontract.LessonDigest, 0, len(lessons))
		for _, lesson := range lessons {
			digests = append(digests, usecasecontract.LessonDigest{
				LessonID:    lesson.ID,
				LessonTitle: lesson.Title,
				ContentType: lesson.ContentType,
				CreatedAt:   lesson.CreatedAt,
			})
		}
		courses = append(courses, usecasecontract.TeacherCourse{
			CourseID:    course.ID,
			CourseTitle: course.Title,
			Description: course.Description,
			Price:       course.Price,
			CreatedAt:   course.CreatedAt,
			Lessons:     digests,
		})
	}

	total := len(courses)
	detail.Courses = &courses
	detail.TotalCourses = &total
	return nil
}

// fillStudentDetail builds the enrollment list, the flattened completed
// lessons and the current-lesson pointer. Completed lessons are resolved with
// one batched lookup instead of a query per lesson; output order still
// follows enrollment order, not fetch order.
func (uc *UserDetailUsecase) fillStudentDetail(ctx context.Context, user *entity.User, detail *usecasecontract.UserDetail) error {
	enrollments, err := uc.enrollmentRepo.FindByStudentWithCourse(ctx, user.ID)
	if err != nil {
		return err
	}

	enrolled := make([]usecasecontract.EnrolledCourse, 0, len(enrollments))
	var completedIDs []string
	for _, e := range enrollments {
		enrolled = append(enrolled, usecasecontract.EnrolledCourse{
			CourseID:    e.CourseID,
			CourseTitle: e.CourseTitle,
			EnrolledAt:  e.EnrollmentDate,
			Progress:    e.Progress,
		})
		for _, cl := range e.CompletedLessons {
			completedIDs = append(completedIDs, cl.LessonID)
		}
	}

	lessonsByID := make(map[string]*entity.Lesson)
	if len(completedIDs) > 0 {
		lessons, err := uc.lessonRepo.GetLessonsByIDs(ctx, completedIDs)
		if err != nil {
			return err
		}
		for _, lesson := range lessons {
			lessonsByID[lesson.ID] = lesson
		}
	}

	// Lessons deleted since completion are skipped, not errors.
	completed := []usecasecontract.CompletedLessonDetail{}
	for _, e := range enrollments {
		for _, cl := range e.CompletedLessons {
			lesson, ok := lessonsByID[cl.LessonID]
			if !ok {
				continue
			}
			completed = append(completed, usecasecontract.CompletedLessonDetail{
				CourseID:    e.CourseID,
				CourseTitle: e.CourseTitle,
				LessonID:    cl.LessonID,
				LessonTitle: lesson.Title,
				ContentType: lesson.ContentType,
				CompletedAt: cl.CompletedAt,
			})
		}
	}

	current, err := uc.findCurrentLesson(ctx, enrollments)
	if err != nil {
		return err
	}

	totalEnrolled := len(enrolled)
	totalCompleted := len(completed)
	detail.EnrolledCourses = &enrolled
	detail.TotalEnrolledCourses = &totalEnrolled
	detail.CompletedLessons = &completed
	detail.TotalCompletedLessons = &totalCompleted
	detail.CurrentLesson = current
	return nil
}

// findCurrentLesson walks enrollments in stored order and returns the first
// lesson (by creation order within its course) the student has not completed
// yet. Enrollment order wins over lesson recency across courses.
func (uc *UserDetailUsecase) findCurrentLesson(ctx context.Context, enrollments []entity.StudentEnrollmentRow) (*usecasecontract.CurrentLesson, error) {
	for _, e := range enrollments {
		lessons, err := uc.lessonRepo.FindByCourse(ctx, e.CourseID)
		if err != nil {
			return nil, err
		}
		completedSet := make(map[string]struct{}, len(e.CompletedLessons))
		for _, cl := range e.CompletedLessons {
			completedSet[cl.LessonID] = struct{}{}
		}
		for _, lesson := range lessons {
			if _, done := completedSet[lesson.ID]; done {
				continue
			}
			return &usecasecontract.CurrentLesson{
				CourseID:    e.CourseID,
				CourseTitle: e.CourseTitle,
				LessonID:    lesson.ID,
				LessonTitle: lesson.Title,
				ContentType: lesson.ContentType,
				StartedAt:   e.EnrollmentDate,
			}, nil
		}
	}
	return nil, nil
}

// roleLookupError maps a failed role-by-name lookup: an absent role is a
// seed/deployment defect, anything else passes through.
func roleLookupError(err error) error {
	if errors.Is(err, contract.ErrNotFound) {
		return ErrRoleConfigMissing
	}
	return err
}
