package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"courseadmin/internal/domain/contract"
	"courseadmin/internal/domain/entity"
	"courseadmin/internal/handler/http/dto"
	usecasecontract "courseadmin/internal/usecase/contract"
)

type PaymentHandler struct {
	paymentUsecase usecasecontract.IPaymentUseCase
}

func NewPaymentHandler(paymentUsecase usecasecontract.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase}
}

// ListPayments handles the filtered, paginated payment listing
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	page, limit := ParsePagination(c)

	filter := contract.PaymentFilter{
		StudentID: c.Query("studentId"),
		CourseID:  c.Query("courseId"),
		Status:    entity.PaymentStatus(c.Query("status")),
		StartDate: parseDateQuery(c.Query("startDate")),
		EndDate:   parseDateQuery(c.Query("endDate")),
	}

	result, err := h.paymentUsecase.ListPayments(c.Request.Context(), filter, page, limit)
	if err != nil {
		HandleUseCaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PaymentsResponse{
		Payments: result.Items,
		Total:    result.Total,
		Page:     result.Page,
		Pages:    result.Pages,
	})
}

// parseDateQuery accepts RFC 3339 timestamps or plain dates. Anything else
// means no bound.
func parseDateQuery(value string) *time.Time {
	if value == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t
	}
	return nil
}
