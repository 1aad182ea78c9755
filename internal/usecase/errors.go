package usecase

import (
	"errors"

	"github.com/google/uuid"
)

// Sentinel errors the handlers map onto HTTP statuses: ErrInvalidID,
// ErrInvalidRole and ErrValidation are client faults (400), ErrNotFound is
// 404, ErrRoleConfigMissing is a deployment/seed defect (500). Anything else
// surfaces as a generic server error.
var (
	ErrInvalidID         = errors.New("invalid identifier")
	ErrNotFound          = errors.New("not found")
	ErrInvalidRole       = errors.New("invalid user role")
	ErrRoleConfigMissing = errors.New("role not found")
	ErrValidation        = errors.New("validation failed")
	ErrDuplicateLesson   = errors.New("cannot mark the same lesson as completed multiple times")
	ErrAlreadyEnrolled   = errors.New("student is already enrolled in this course")
	ErrAlreadyInCart     = errors.New("course is already in the cart")
	ErrEmailInUse        = errors.New("email already in use")
)

// validateID checks that an identifier is a well-formed store key.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}
