package usecasecontract

// IValidator validates user-supplied fields before they reach the store.
type IValidator interface {
	ValidateEmail(email string) error
	// ValidateFullName enforces the 2-50 character full name rule.
	ValidateFullName(fullName string) error
	// ValidateCategoryName enforces the 2-50 character category name rule.
	ValidateCategoryName(name string) error
}
