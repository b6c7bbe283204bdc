package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"master_booking/internal/domain/emails"
	"master_booking/internal/domain/entities"
	mock_interfaces "master_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCheckoutUseCase_TrackAbandon(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		cases := []struct {
			name string
			in   TrackCheckoutInput
			want string
		}{
			{name: "wrong action", in: TrackCheckoutInput{Action: "recover", Email: "a@example.com"}, want: "Invalid action"},
			{name: "missing email", in: TrackCheckoutInput{Action: "abandon"}, want: "Email is required"},
			{name: "invalid email", in: TrackCheckoutInput{Action: "abandon", Email: "a@"}, want: "Invalid email format"},
			{name: "negative amount", in: TrackCheckoutInput{Action: "abandon", Email: "a@example.com", Amount: -3.0}, want: "Amount must be positive"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc := NewCheckoutUseCase(nil, nil, "", 0)
				_, err := uc.TrackAbandon(context.Background(), tc.in)
				var vErr *ValidationError
				if !errors.As(err, &vErr) || vErr.Message != tc.want {
					t.Fatalf("expected %q, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("duplicate returns the existing id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutRepository(ctrl)
		uc := NewCheckoutUseCase(repo, nil, "", 0)

		repo.EXPECT().FindPending(gomock.Any(), "a@example.com", "pi_1").Return(entities.AbandonedCheckout{ID: "ac-1"}, nil)

		res, err := uc.TrackAbandon(context.Background(), TrackCheckoutInput{Action: "abandon", Email: "A@example.com", PaymentIntentID: "pi_1"})
		if err != nil || !res.AlreadyTracked || res.ID != "ac-1" {
			t.Fatalf("unexpected result %+v %v", res, err)
		}
	})

	t.Run("stores amount in pence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutRepository(ctrl)
		uc := NewCheckoutUseCase(repo, nil, "", 0)

		repo.EXPECT().FindPending(gomock.Any(), "a@example.com", "pi_1").Return(entities.AbandonedCheckout{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.AbandonedCheckout) (entities.AbandonedCheckout, error) {
				if c.AmountPence != 12999 || c.Status != entities.CheckoutStatusPending || c.Phone != "07700900123" {
					t.Fatalf("unexpected checkout %+v", c)
				}
				c.ID = "ac-2"
				return c, nil
			})

		res, err := uc.TrackAbandon(context.Background(), TrackCheckoutInput{
			Action:          "abandon",
			Email:           "a@example.com",
			Phone:           "+44 7700 900123",
			PaymentIntentID: "pi_1",
			Amount:          "129.99",
			ServiceName:     "Painting",
		})
		if err != nil || res.ID != "ac-2" || res.AlreadyTracked {
			t.Fatalf("unexpected result %+v %v", res, err)
		}
	})
}

func TestCheckoutUseCase_SendRecoveryEmails(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("not configured", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, "", 0)
		if _, err := uc.SendRecoveryEmails(context.Background()); err == nil {
			t.Fatalf("expected configuration error")
		}
	})

	t.Run("runs both passes and counts failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewCheckoutUseCase(repo, notifier, "https://wearemaster.com/", 25)
		uc.now = func() time.Time { return now }

		repo.EXPECT().ListDueForRecovery(gomock.Any(), entities.RecoveryStage1h, now, 25).Return([]entities.AbandonedCheckout{
			{ID: "a", Email: "a@example.com", Name: "Ann"},
			{ID: "b", Email: "b@example.com"},
		}, nil)
		notifier.EXPECT().Notify(gomock.Any(), emails.CartAbandoned1h, "a@example.com", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ emails.TemplateID, _ string, data emails.Data) error {
				if !strings.HasPrefix(data.String("resumeUrl", ""), "https://wearemaster.com/booking?checkout=a") {
					t.Fatalf("unexpected resume url %v", data["resumeUrl"])
				}
				return nil
			})
		notifier.EXPECT().Notify(gomock.Any(), emails.CartAbandoned1h, "b@example.com", gomock.Any()).Return(errors.New("bounce"))
		repo.EXPECT().MarkRecoverySent(gomock.Any(), "a", entities.RecoveryStage1h).Return(nil)

		repo.EXPECT().ListDueForRecovery(gomock.Any(), entities.RecoveryStage24h, now, 25).Return([]entities.AbandonedCheckout{
			{ID: "c", Email: "c@example.com"},
		}, nil)
		notifier.EXPECT().Notify(gomock.Any(), emails.CartAbandoned24h, "c@example.com", gomock.Any()).Return(nil)
		repo.EXPECT().MarkRecoverySent(gomock.Any(), "c", entities.RecoveryStage24h).Return(nil)

		res, err := uc.SendRecoveryEmails(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Sent1h != 1 || res.Sent24h != 1 || res.Failed != 1 {
			t.Fatalf("unexpected counts %+v", res)
		}
	})

	t.Run("a failing list does not stop the other pass", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewCheckoutUseCase(repo, notifier, "", 0)
		uc.now = func() time.Time { return now }

		repo.EXPECT().ListDueForRecovery(gomock.Any(), entities.RecoveryStage1h, now, defaultRecoveryBatch).Return(nil, errors.New("db"))
		repo.EXPECT().ListDueForRecovery(gomock.Any(), entities.RecoveryStage24h, now, defaultRecoveryBatch).Return([]entities.AbandonedCheckout{{ID: "c", Email: "c@example.com"}}, nil)
		notifier.EXPECT().Notify(gomock.Any(), emails.CartAbandoned24h, "c@example.com", gomock.Any()).Return(nil)
		repo.EXPECT().MarkRecoverySent(gomock.Any(), "c", entities.RecoveryStage24h).Return(nil)

		res, err := uc.SendRecoveryEmails(context.Background())
		if err != nil || res.Sent24h != 1 || res.Sent1h != 0 {
			t.Fatalf("unexpected result %+v %v", res, err)
		}
	})
}
