package contract

import (
	"context"

	"courseadmin/internal/domain/entity"
)

type ILessonRepository interface {
	CreateLesson(ctx context.Context, lesson *entity.Lesson) error
	// FindByCourse returns the course's lessons ordered by creation time
	// ascending (oldest first).
	FindByCourse(ctx context.Context, courseID string) ([]*entity.Lesson, error)
	// GetLessonsByIDs batch-fetches lessons by ID. Missing IDs are simply
	// absent from the result, not an error.
	GetLessonsByIDs(ctx context.Context, ids []string) ([]*entity.Lesson, error)
	// CountByCourse counts all lessons in a course.
	CountByCourse(ctx context.Context, courseID string) (int64, error)
}
