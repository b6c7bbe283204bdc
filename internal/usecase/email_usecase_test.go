package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"master_booking/internal/domain/emails"
	"master_booking/internal/domain/entities"
	mock_interfaces "master_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const fromAddress = "Master <hello@wearemaster.com>"

func TestEmailUseCase_Send(t *testing.T) {
	t.Run("unknown template", func(t *testing.T) {
		uc := NewEmailUseCase(nil, nil, fromAddress, "")
		_, err := uc.Send(context.Background(), SendEmailInput{Template: "nope", To: "a@example.com"})
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Message != `Template "nope" not found` {
			t.Fatalf("expected template not found, got %v", err)
		}
	})

	t.Run("invalid recipient", func(t *testing.T) {
		uc := NewEmailUseCase(nil, nil, fromAddress, "")
		_, err := uc.Send(context.Background(), SendEmailInput{Template: "booking_confirmed", To: "bad"})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("sender not configured", func(t *testing.T) {
		uc := NewEmailUseCase(nil, nil, fromAddress, "")
		_, err := uc.Send(context.Background(), SendEmailInput{Template: "booking_confirmed", To: "a@example.com"})
		var cfgErr *MissingConfigError
		if !errors.As(err, &cfgErr) || cfgErr.Setting != "RESEND_API_KEY" {
			t.Fatalf("expected missing RESEND_API_KEY, got %v", err)
		}
	})

	t.Run("renders sends and logs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		logs := mock_interfaces.NewMockIEmailLogRepository(ctrl)
		uc := NewEmailUseCase(sender, logs, fromAddress, "")

		sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg entities.EmailMessage) (string, error) {
				if msg.From != fromAddress || len(msg.To) != 1 || msg.To[0] != "ann@example.com" {
					t.Fatalf("unexpected envelope %+v", msg)
				}
				if msg.Subject != "Your booking is confirmed" || !strings.Contains(msg.HTML, "MST-42") {
					t.Fatalf("unexpected content %q", msg.Subject)
				}
				return "re_123", nil
			})
		logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.EmailLog) error {
				if l.ExternalID != "re_123" || l.Status != entities.EmailLogStatusSent || l.Template != "booking_confirmed" {
					t.Fatalf("unexpected log %+v", l)
				}
				return nil
			})

		res, err := uc.Send(context.Background(), SendEmailInput{
			Template: "booking_confirmed",
			To:       " Ann@Example.com ",
			Data:     emails.Data{"name": "Ann", "bookingRef": "MST-42"},
		})
		if err != nil || res.ID != "re_123" {
			t.Fatalf("unexpected result %+v %v", res, err)
		}
	})

	t.Run("log failure is not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		logs := mock_interfaces.NewMockIEmailLogRepository(ctrl)
		uc := NewEmailUseCase(sender, logs, fromAddress, "")

		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("re_1", nil)
		logs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		if _, err := uc.Send(context.Background(), SendEmailInput{Template: "verification_code", To: "a@example.com", Data: emails.Data{"code": "123456"}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("provider failure is upstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewEmailUseCase(sender, nil, fromAddress, "")

		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("429"))

		_, err := uc.Send(context.Background(), SendEmailInput{Template: "booking_confirmed", To: "a@example.com"})
		var upErr *UpstreamError
		if !errors.As(err, &upErr) || upErr.Provider != ProviderEmail {
			t.Fatalf("expected upstream error, got %v", err)
		}
	})
}

func TestEmailUseCase_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sender := mock_interfaces.NewMockIEmailSender(ctrl)
	uc := NewEmailUseCase(sender, nil, fromAddress, "hello@wearemaster.com")

	sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg entities.EmailMessage) (string, error) {
			if msg.ReplyTo != "hello@wearemaster.com" {
				t.Fatalf("expected reply-to, got %q", msg.ReplyTo)
			}
			return "re_2", nil
		})

	if err := uc.Notify(context.Background(), emails.PaymentFailed, "a@example.com", emails.Data{"name": "Ann"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
