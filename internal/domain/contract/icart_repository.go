package contract

import (
	"context"

	"courseadmin/internal/domain/entity"
)

type ICartRepository interface {
	AddToCart(ctx context.Context, cart *entity.Cart) error
	// ExistsByStudentAndCourse reports whether the course is already in the
	// student's cart.
	ExistsByStudentAndCourse(ctx context.Context, studentID, courseID string) (bool, error)
	FindByStudent(ctx context.Context, studentID string) ([]*entity.Cart, error)
	RemoveFromCart(ctx context.Context, id string) error
}
