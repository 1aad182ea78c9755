package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	usecasecontract "courseadmin/internal/usecase/contract"
)

// AppValidator implements the usecase validator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator backed by go-playground/validator.
func NewValidator() usecasecontract.IValidator {
	return &AppValidator{validate: validator.New()}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	if err := av.validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidateFullName checks that the full name is 2 to 50 characters after trimming.
func (av *AppValidator) ValidateFullName(fullName string) error {
	trimmed := strings.TrimSpace(fullName)
	if err := av.validate.Var(trimmed, "required,min=2,max=50"); err != nil {
		return fmt.Errorf("full name must be between 2 and 50 characters")
	}
	return nil
}

// ValidateCategoryName checks that the category name is 2 to 50 characters after trimming.
func (av *AppValidator) ValidateCategoryName(name string) error {
	trimmed := strings.TrimSpace(name)
	if err := av.validate.Var(trimmed, "required,min=2,max=50"); err != nil {
		return fmt.Errorf("category name must be between 2 and 50 characters")
	}
	return nil
}
