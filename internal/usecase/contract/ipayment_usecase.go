package usecasecontract

import (
	"context"

	"courseadmin/internal/domain/contract"
	"courseadmin/internal/domain/entity"
)

type IPaymentUseCase interface {
	// ListPayments pages payments matching the filter, joined to student
	// name/email and course title. Pagination happens at the store.
	ListPayments(ctx context.Context, filter contract.PaymentFilter, page, limit int) (Page[entity.PaymentListRow], error)
}
