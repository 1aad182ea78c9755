package contract

import (
	"context"

	"courseadmin/internal/domain/entity"
)

type ICourseRepository interface {
	CreateCourse(ctx context.Context, course *entity.Course) error
	GetCourseByID(ctx context.Context, id string) (*entity.Course, error)
	// FindByTeacher returns every course owned by the teacher, regardless of
	// moderation status.
	FindByTeacher(ctx context.Context, teacherID string) ([]*entity.Course, error)
	// CountApprovedByTeacher counts the teacher's APPROVED courses.
	CountApprovedByTeacher(ctx context.Context, teacherID string) (int64, error)
}
