// Package email delivers rendered messages through Resend.
package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"

	"master_booking/internal/domain/entities"
	"master_booking/internal/usecase/interfaces"
)

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")

type ResendSender struct {
	client *resend.Client
}

var _ interfaces.IEmailSender = (*ResendSender)(nil)

func NewResendSender(apiKey string) (*ResendSender, error) {
	if apiKey == "" {
		return nil, ErrMissingResendAPIKey
	}
	slog.Info("[email][sender] Resend client initialized")
	return &ResendSender{client: resend.NewClient(apiKey)}, nil
}

func (s *ResendSender) Send(ctx context.Context, msg entities.EmailMessage) (string, error) {
	req := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	}

	resp, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		slog.ErrorContext(ctx, "[email][sender] send failed", "subject", msg.Subject, "error", err)
		return "", fmt.Errorf("resend send: %w", err)
	}
	slog.InfoContext(ctx, "[email][sender] sent", "external_id", resp.Id)
	return resp.Id, nil
}
