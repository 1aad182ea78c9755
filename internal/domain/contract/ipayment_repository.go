package contract

import (
	"context"
	"time"

	"courseadmin/internal/domain/entity"
)

// PaymentFilter narrows the admin payment listing. Zero values mean "no
// constraint".
type PaymentFilter struct {
	StudentID string
	CourseID  string
	Status    entity.PaymentStatus
	StartDate *time.Time
	EndDate   *time.Time
}

type IPaymentRepository interface {
	CreatePayment(ctx context.Context, payment *entity.Payment) error
	// FindCompletedCourseRows returns one row per COMPLETED payment joined to
	// course title and teacher name. from is inclusive, to is exclusive;
	// nil bounds mean all time.
	FindCompletedCourseRows(ctx context.Context, from, to *time.Time) ([]entity.PaymentCourseRow, error)
	// FindPayments returns a store-paginated page of payments joined to
	// student name/email and course title, plus the total match count.
	FindPayments(ctx context.Context, filter PaymentFilter, page, limit int) ([]entity.PaymentListRow, int64, error)
}
