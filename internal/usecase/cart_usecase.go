package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courseadmin/internal/domain/contract"
	"courseadmin/internal/domain/entity"
	usecasecontract "courseadmin/internal/usecase/contract"
)

type CartUsecase struct {
	cartRepo      contract.ICartRepository
	courseRepo    contract.ICourseRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
}

func NewCartUsecase(
	cartRepo contract.ICartRepository,
	courseRepo contract.ICourseRepository,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:      cartRepo,
		courseRepo:    courseRepo,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}
}

var _ usecasecontract.ICartUseCase = (*CartUsecase)(nil)

func (uc *CartUsecase) AddToCart(ctx context.Context, studentID, courseID string) (*entity.Cart, error) {
	if err := validateID(studentID); err != nil {
		return nil, err
	}
	if err := validateID(courseID); err != nil {
		return nil, err
	}

	if _, err := uc.courseRepo.GetCourseByID(ctx, courseID); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, fmt.Errorf("%w: course", ErrNotFound)
		}
		return nil, err
	}

	exists, err := uc.cartRepo.ExistsByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyInCart
	}

	cart := &entity.Cart{
		ID:        uc.uuidGenerator.NewUUID(),
		StudentID: studentID,
		CourseID:  courseID,
		AddedAt:   time.Now(),
	}
	if err := uc.cartRepo.AddToCart(ctx, cart); err != nil {
		uc.logger.Errorf("failed to add to cart: %v", err)
		return nil, err
	}
	return cart, nil
}

func (uc *CartUsecase) GetCart(ctx context.Context, studentID string) ([]*entity.Cart, error) {
	if err := validateID(studentID); err != nil {
		return nil, err
	}
	return uc.cartRepo.FindByStudent(ctx, studentID)
}

func (uc *CartUsecase) RemoveFromCart(ctx context.Context, cartID string) error {
	if err := validateID(cartID); err != nil {
		return err
	}
	if err := uc.cartRepo.RemoveFromCart(ctx, cartID); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
