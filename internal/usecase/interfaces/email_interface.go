package interfaces

//go:generate mockgen -source=email_interface.go -destination=mocks/email_interface_mock.go -package=mock_interfaces

import (
	"context"

	"master_booking/internal/domain/emails"
	"master_booking/internal/domain/entities"
)

// IEmailSender delivers a rendered message and returns the provider message id.
type IEmailSender interface {
	Send(ctx context.Context, msg entities.EmailMessage) (string, error)
}

type IEmailLogRepository interface {
	Create(ctx context.Context, l entities.EmailLog) error
}

// INotifier renders a template and sends it. Callers treat failures as best effort.
type INotifier interface {
	Notify(ctx context.Context, template emails.TemplateID, to string, data emails.Data) error
}
