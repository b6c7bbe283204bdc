package usecase

//go:generate mockgen -source=email_usecase.go -destination=../adapter/http/handlers/mocks/email_usecase_mock.go -package=mocks

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"master_booking/internal/domain/emails"
	"master_booking/internal/domain/entities"
	"master_booking/internal/domain/validation"
	"master_booking/internal/infrastructure/metrics"
	"master_booking/internal/security"
	"master_booking/internal/usecase/interfaces"
)

// SendEmailInput is the internal send-email request.
type SendEmailInput struct {
	Template string
	To       string
	Data     emails.Data
}

type SendEmailResult struct {
	ID string
}

type IEmailUseCase interface {
	Send(ctx context.Context, in SendEmailInput) (SendEmailResult, error)
	Notify(ctx context.Context, template emails.TemplateID, to string, data emails.Data) error
}

type EmailUseCase struct {
	sender  interfaces.IEmailSender
	logs    interfaces.IEmailLogRepository
	from    string
	replyTo string
	now     func() time.Time
}

var (
	_ IEmailUseCase        = (*EmailUseCase)(nil)
	_ interfaces.INotifier = (*EmailUseCase)(nil)
)

func NewEmailUseCase(sender interfaces.IEmailSender, logs interfaces.IEmailLogRepository, from, replyTo string) *EmailUseCase {
	return &EmailUseCase{sender: sender, logs: logs, from: from, replyTo: replyTo, now: time.Now}
}

func (u *EmailUseCase) Send(ctx context.Context, in SendEmailInput) (SendEmailResult, error) {
	id, ok := emails.Parse(in.Template)
	if !ok {
		return SendEmailResult{}, invalid(fmt.Sprintf("Template %q not found", strings.TrimSpace(in.Template)))
	}
	extID, err := u.deliver(ctx, id, in.To, in.Data)
	if err != nil {
		return SendEmailResult{}, err
	}
	return SendEmailResult{ID: extID}, nil
}

// Notify sends a template from inside the service, for example after a webhook.
func (u *EmailUseCase) Notify(ctx context.Context, template emails.TemplateID, to string, data emails.Data) error {
	_, err := u.deliver(ctx, template, to, data)
	return err
}

func (u *EmailUseCase) deliver(ctx context.Context, id emails.TemplateID, to string, data emails.Data) (string, error) {
	addr := validation.Email(to)
	if !addr.Valid {
		return "", invalid("Valid recipient email is required")
	}
	if u.sender == nil {
		return "", missingConfig("RESEND_API_KEY")
	}

	content, err := emails.Render(id, data)
	if err != nil {
		return "", invalid(fmt.Sprintf("Template %q not found", id))
	}

	extID, err := u.sender.Send(ctx, entities.EmailMessage{
		From:    u.from,
		To:      []string{addr.Sanitized},
		Subject: content.Subject,
		HTML:    content.HTML,
		Text:    content.Text,
		ReplyTo: u.replyTo,
	})
	if err != nil {
		metrics.EmailsSent.WithLabelValues(string(id), metrics.OutcomeFailed).Inc()
		slog.ErrorContext(ctx, "[email][usecase] send failed", "template", id, "error", err)
		return "", upstream(ProviderEmail, err)
	}
	metrics.EmailsSent.WithLabelValues(string(id), metrics.OutcomeOK).Inc()

	if u.logs != nil {
		entry := entities.EmailLog{
			Template:       string(id),
			RecipientEmail: addr.Sanitized,
			Subject:        content.Subject,
			Status:         entities.EmailLogStatusSent,
			ExternalID:     extID,
			SentAt:         u.now().UTC(),
		}
		if err := u.logs.Create(ctx, entry); err != nil {
			slog.WarnContext(ctx, "[email][usecase] email log insert failed", "template", id, "error", err)
		}
	}

	security.LogEvent(ctx, security.SeverityLow, "email_sent",
		slog.String("template", string(id)),
		slog.String("external_id", extID),
	)
	return extID, nil
}
