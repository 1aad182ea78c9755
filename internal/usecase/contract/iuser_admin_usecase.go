package usecasecontract

import (
	"context"
	"time"

	"courseadmin/internal/domain/entity"
)

// UserListItem is one row of the teacher/student admin listings.
// TotalCourses is only set for teachers (count of APPROVED courses).
type UserListItem struct {
	ID           string            `json:"id"`
	Email        string            `json:"email"`
	FullName     string            `json:"fullName"`
	Role         RoleRef           `json:"role"`
	Status       entity.UserStatus `json:"status"`
	IsBanned     bool              `json:"isBanned"`
	CreatedAt    time.Time         `json:"createdAt"`
	TotalCourses *int              `json:"totalCourses,omitempty"`
}

type IUserAdminUseCase interface {
	// ListTeachers pages teachers, optionally narrowed by a fullName/email
	// search, each annotated with its approved-course count.
	ListTeachers(ctx context.Context, search string, page, limit int) (Page[UserListItem], error)
	// ListStudents pages students, optionally narrowed by a fullName/email
	// search.
	ListStudents(ctx context.Context, search string, page, limit int) (Page[UserListItem], error)
	// CreateTeacher provisions a teacher account with a generated password
	// and emails the credentials.
	CreateTeacher(ctx context.Context, email, fullName string) (*UserListItem, error)
	// ToggleUserStatus flips ACTIVE and INACTIVE, keeping isBanned in sync.
	ToggleUserStatus(ctx context.Context, userID string) (*UserListItem, error)
}
