package dto

import (
	"courseadmin/internal/domain/entity"
	usecasecontract "courseadmin/internal/usecase/contract"
)

// MessageResponse is a generic response for success messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error envelope every failure renders.
type ErrorResponse struct {
	Message string `json:"message"`
}

// UsersResponse is the paginated envelope of the teacher/student listings.
type UsersResponse struct {
	Users []usecasecontract.UserListItem `json:"users"`
	Total int                            `json:"total"`
	Page  int                            `json:"page"`
	Pages int                            `json:"pages"`
}

// StatsResponse is the paginated envelope of the statistics reports.
type StatsResponse[T any] struct {
	Stats []T `json:"stats"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// PaymentsResponse is the paginated envelope of the payment listing.
type PaymentsResponse struct {
	Payments []entity.PaymentListRow `json:"payments"`
	Total    int                     `json:"total"`
	Page     int                     `json:"page"`
	Pages    int                     `json:"pages"`
}

// UserDetailResponse wraps the role-specific detail view.
type UserDetailResponse struct {
	User *usecasecontract.UserDetail `json:"user"`
}

// UserMutationResponse is returned by teacher creation and status toggling.
type UserMutationResponse struct {
	Message string                        `json:"message"`
	User    *usecasecontract.UserListItem `json:"user"`
}
