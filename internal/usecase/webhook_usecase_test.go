package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"master_booking/internal/domain/emails"
	"master_booking/internal/domain/entities"
	mock_interfaces "master_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const opsInbox = "ops@example.com"

type webhookDeps struct {
	verifier  *mock_interfaces.MockIWebhookVerifier
	bookings  *mock_interfaces.MockIBookingRepository
	checkouts *mock_interfaces.MockICheckoutRepository
	notifier  *mock_interfaces.MockINotifier
	uc        *WebhookUseCase
}

func newWebhookDeps(t *testing.T) webhookDeps {
	ctrl := gomock.NewController(t)
	d := webhookDeps{
		verifier:  mock_interfaces.NewMockIWebhookVerifier(ctrl),
		bookings:  mock_interfaces.NewMockIBookingRepository(ctrl),
		checkouts: mock_interfaces.NewMockICheckoutRepository(ctrl),
		notifier:  mock_interfaces.NewMockINotifier(ctrl),
	}
	d.uc = NewWebhookUseCase(d.verifier, d.bookings, d.checkouts, d.notifier, opsInbox)
	d.uc.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
	return d
}

func TestWebhookUseCase_Handle_Signature(t *testing.T) {
	t.Run("missing signature never reaches the verifier", func(t *testing.T) {
		d := newWebhookDeps(t)
		_, err := d.uc.Handle(context.Background(), []byte(`{}`), " ")
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Message != "Missing stripe-signature header" {
			t.Fatalf("expected missing signature error, got %v", err)
		}
	})

	t.Run("verifier not configured", func(t *testing.T) {
		uc := NewWebhookUseCase(nil, nil, nil, nil, "")
		_, err := uc.Handle(context.Background(), []byte(`{}`), "t=1,v1=abc")
		var cfgErr *MissingConfigError
		if !errors.As(err, &cfgErr) || cfgErr.Setting != "STRIPE_WEBHOOK_SECRET" {
			t.Fatalf("expected missing webhook secret, got %v", err)
		}
	})

	t.Run("invalid signature touches no repository", func(t *testing.T) {
		d := newWebhookDeps(t)
		d.verifier.EXPECT().Verify(gomock.Any(), "t=1,v1=bad").Return(entities.PaymentEvent{}, errors.New("signature mismatch"))

		_, err := d.uc.Handle(context.Background(), []byte(`{}`), "t=1,v1=bad")
		if !errors.Is(err, ErrInvalidWebhookPayload) {
			t.Fatalf("expected ErrInvalidWebhookPayload, got %v", err)
		}
	})
}

func TestWebhookUseCase_Handle_PaymentSucceeded(t *testing.T) {
	event := entities.PaymentEvent{
		ID:              "evt_1",
		Type:            entities.EventPaymentSucceeded,
		PaymentIntentID: "pi_1",
		AmountPence:     6900,
		Currency:        "GBP",
		ReceiptEmail:    "ann@example.com",
		Metadata: map[string]string{
			"booking_ref":     "MST-ABCDEF12",
			"customer_name":   "Ann Smith",
			"service_name":    "TV mounting",
			"scheduled_dates": "2025-03-04, 2025-03-05",
		},
	}

	t.Run("first delivery confirms and notifies", func(t *testing.T) {
		d := newWebhookDeps(t)
		d.verifier.EXPECT().Verify(gomock.Any(), "sig").Return(event, nil)
		d.bookings.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.BookingUpsert, error) {
				if b.Status != entities.BookingStatusConfirmed || b.PaymentStatus != entities.PaymentStatusPaid || b.PaidAt == nil {
					t.Fatalf("expected confirmed and paid, got %+v", b)
				}
				if b.CustomerEmail != "ann@example.com" || b.BookingRef != "MST-ABCDEF12" || b.Currency != "gbp" {
					t.Fatalf("booking not rebuilt from metadata: %+v", b)
				}
				if len(b.ScheduledDates) != 2 {
					t.Fatalf("expected dates split, got %v", b.ScheduledDates)
				}
				b.ID = "b-1"
				return entities.BookingUpsert{Booking: b, Previous: entities.BookingStatusPending}, nil
			})
		d.checkouts.EXPECT().MarkRecovered(gomock.Any(), "pi_1", gomock.Any()).Return(nil)
		d.notifier.EXPECT().Notify(gomock.Any(), emails.BookingConfirmed, "ann@example.com", gomock.Any()).Return(nil)
		d.notifier.EXPECT().Notify(gomock.Any(), emails.InternalNewJobPaid, opsInbox, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ emails.TemplateID, _ string, data emails.Data) error {
				if data["paymentIntentId"] != "pi_1" || data["amount"] != int64(6900) {
					t.Fatalf("unexpected ops data %v", data)
				}
				return nil
			})

		res, err := d.uc.Handle(context.Background(), []byte(`{}`), "sig")
		if err != nil || !res.Handled || res.Type != string(entities.EventPaymentSucceeded) {
			t.Fatalf("unexpected result %+v %v", res, err)
		}
	})

	t.Run("replay does not notify again", func(t *testing.T) {
		d := newWebhookDeps(t)
		d.verifier.EXPECT().Verify(gomock.Any(), "sig").Return(event, nil)
		d.bookings.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.BookingUpsert{
			Booking:  entities.Booking{ID: "b-1", Status: entities.BookingStatusConfirmed},
			Previous: entities.BookingStatusConfirmed,
		}, nil)
		d.checkouts.EXPECT().MarkRecovered(gomock.Any(), "pi_1", gomock.Any()).Return(nil)

		res, err := d.uc.Handle(context.Background(), []byte(`{}`), "sig")
		if err != nil || !res.Handled {
			t.Fatalf("unexpected result %+v %v", res, err)
		}
	})

	t.Run("notification failures are swallowed", func(t *testing.T) {
		d := newWebhookDeps(t)
		d.verifier.EXPECT().Verify(gomock.Any(), "sig").Return(event, nil)
		d.bookings.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.BookingUpsert{
			Booking: entities.Booking{ID: "b-1", Status: entities.BookingStatusConfirmed, CustomerEmail: "ann@example.com"},
		}, nil)
		d.checkouts.EXPECT().MarkRecovered(gomock.Any(), "pi_1", gomock.Any()).Return(errors.New("db"))
		d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp")).Times(2)

		if _, err := d.uc.Handle(context.Background(), []byte(`{}`), "sig"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("upsert failure is returned for a retry", func(t *testing.T) {
		d := newWebhookDeps(t)
		d.verifier.EXPECT().Verify(gomock.Any(), "sig").Return(event, nil)
		d.bookings.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.BookingUpsert{}, errors.New("db"))

		if _, err := d.uc.Handle(context.Background(), []byte(`{}`), "sig"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestWebhookUseCase_Handle_Transitions(t *testing.T) {
	t.Run("payment failed notifies the customer", func(t *testing.T) {
		d := newWebhookDeps(t)
		d.verifier.EXPECT().Verify(gomock.Any(), "sig").Return(entities.PaymentEvent{Type: entities.EventPaymentFailed, PaymentIntentID: "pi_1"}, nil)
		d.bookings.EXPECT().Transition(gomock.Any(), "pi_1", entities.BookingStatusPaymentFailed, gomock.Any()).
			Return(entities.Booking{ID: "b-1", CustomerEmail: "ann@example.com", BookingRef: "MST-1"}, nil)
		d.notifier.EXPECT().Notify(gomock.Any(), emails.PaymentFailed, "ann@example.com", gomock.Any()).Return(nil)

		res, err := d.uc.Handle(context.Background(), nil, "sig")
		if err != nil || !res.Handled {
			t.Fatalf("unexpected result %+v %v", res, err)
		}
	})

	t.Run("payment failed without a booking sends nothing", func(t *testing.T) {
		d := newWebhookDeps(t)
		d.verifier.EXPECT().Verify(gomock.Any(), "sig").Return(entities.PaymentEvent{Type: entities.EventPaymentFailed, PaymentIntentID: "pi_9"}, nil)
		d.bookings.EXPECT().Transition(gomock.Any(), "pi_9", entities.BookingStatusPaymentFailed, gomock.Any()).Return(entities.Booking{}, nil)

		if _, err := d.uc.Handle(context.Background(), nil, "sig"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("canceled", func(t *testing.T) {
		d := newWebhookDeps(t)
		d.verifier.EXPECT().Verify(gomock.Any(), "sig").Return(entities.PaymentEvent{Type: entities.EventPaymentCanceled, PaymentIntentID: "pi_1"}, nil)
		d.bookings.EXPECT().Transition(gomock.Any(), "pi_1", entities.BookingStatusCanceled, gomock.Any()).Return(entities.Booking{ID: "b-1"}, nil)

		if _, err := d.uc.Handle(context.Background(), nil, "sig"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("refunded", func(t *testing.T) {
		d := newWebhookDeps(t)
		d.verifier.EXPECT().Verify(gomock.Any(), "sig").Return(entities.PaymentEvent{Type: entities.EventChargeRefunded, PaymentIntentID: "pi_1"}, nil)
		d.bookings.EXPECT().Transition(gomock.Any(), "pi_1", entities.BookingStatusRefunded, gomock.Any()).Return(entities.Booking{ID: "b-1"}, nil)

		if _, err := d.uc.Handle(context.Background(), nil, "sig"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("other events are acknowledged", func(t *testing.T) {
		d := newWebhookDeps(t)
		d.verifier.EXPECT().Verify(gomock.Any(), "sig").Return(entities.PaymentEvent{ID: "evt_2", Type: "customer.created"}, nil)

		res, err := d.uc.Handle(context.Background(), nil, "sig")
		if err != nil || res.Handled || res.Type != "customer.created" {
			t.Fatalf("unexpected result %+v %v", res, err)
		}
	})
}
