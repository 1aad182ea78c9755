package usecase

import (
	"context"

	"courseadmin/internal/domain/contract"
	"courseadmin/internal/domain/entity"
	usecasecontract "courseadmin/internal/usecase/contract"
)

// PaymentUsecase is a pure filtered listing: no aggregation, no derived
// fields, pagination pushed down to the store.
type PaymentUsecase struct {
	paymentRepo contract.IPaymentRepository
	logger      usecasecontract.IAppLogger
}

func NewPaymentUsecase(paymentRepo contract.IPaymentRepository, logger usecasecontract.IAppLogger) *PaymentUsecase {
	return &PaymentUsecase{paymentRepo: paymentRepo, logger: logger}
}

var _ usecasecontract.IPaymentUseCase = (*PaymentUsecase)(nil)

func (uc *PaymentUsecase) ListPayments(ctx context.Context, filter contract.PaymentFilter, page, limit int) (usecasecontract.Page[entity.PaymentListRow], error) {
	page, limit = normalizePageLimit(page, limit)

	rows, total, err := uc.paymentRepo.FindPayments(ctx, filter, page, limit)
	if err != nil {
		uc.logger.Errorf("payment listing failed: %v", err)
		return usecasecontract.Page[entity.PaymentListRow]{}, err
	}

	return usecasecontract.Page[entity.PaymentListRow]{
		Items: rows,
		Total: int(total),
		Page:  page,
		Pages: pageCount(int(total), limit),
	}, nil
}
