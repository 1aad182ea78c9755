package usecasecontract

import (
	"context"

	"courseadmin/internal/domain/entity"
)

type ICartUseCase interface {
	AddToCart(ctx context.Context, studentID, courseID string) (*entity.Cart, error)
	GetCart(ctx context.Context, studentID string) ([]*entity.Cart, error)
	RemoveFromCart(ctx context.Context, cartID string) error
}
