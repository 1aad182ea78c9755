package contract

import "context"

type IMailService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}
