package usecase

//go:generate mockgen -source=webhook_usecase.go -destination=../adapter/http/handlers/mocks/webhook_usecase_mock.go -package=mocks

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"master_booking/internal/domain/emails"
	"master_booking/internal/domain/entities"
	"master_booking/internal/security"
	"master_booking/internal/usecase/interfaces"
)

// WebhookResult tells the caller which event arrived and whether it changed anything.
type WebhookResult struct {
	Type    string
	Handled bool
}

type IWebhookUseCase interface {
	Handle(ctx context.Context, payload []byte, signature string) (WebhookResult, error)
}

type WebhookUseCase struct {
	verifier  interfaces.IWebhookVerifier
	bookings  interfaces.IBookingRepository
	checkouts interfaces.ICheckoutRepository
	notifier  interfaces.INotifier
	opsEmail  string
	now       func() time.Time
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(verifier interfaces.IWebhookVerifier, bookings interfaces.IBookingRepository, checkouts interfaces.ICheckoutRepository, notifier interfaces.INotifier, opsEmail string) *WebhookUseCase {
	return &WebhookUseCase{
		verifier:  verifier,
		bookings:  bookings,
		checkouts: checkouts,
		notifier:  notifier,
		opsEmail:  opsEmail,
		now:       time.Now,
	}
}

func (u *WebhookUseCase) Handle(ctx context.Context, payload []byte, signature string) (WebhookResult, error) {
	if strings.TrimSpace(signature) == "" {
		security.LogEvent(ctx, security.SeverityMedium, "webhook_missing_signature")
		return WebhookResult{}, invalid("Missing stripe-signature header")
	}
	if u.verifier == nil {
		return WebhookResult{}, missingConfig("STRIPE_WEBHOOK_SECRET")
	}

	event, err := u.verifier.Verify(payload, signature)
	if err != nil {
		security.LogEvent(ctx, security.SeverityHigh, "webhook_signature_invalid",
			slog.Int("payload_bytes", len(payload)),
			slog.String("reason", err.Error()),
		)
		return WebhookResult{}, ErrInvalidWebhookPayload
	}

	res := WebhookResult{Type: string(event.Type)}
	slog.InfoContext(ctx, "[webhook][usecase] event received", "event_id", event.ID, "type", event.Type)

	switch event.Type {
	case entities.EventPaymentSucceeded:
		err = u.paymentSucceeded(ctx, event)
	case entities.EventPaymentFailed:
		err = u.paymentFailed(ctx, event)
	case entities.EventPaymentCanceled:
		_, err = u.transition(ctx, event, entities.BookingStatusCanceled)
	case entities.EventChargeRefunded:
		_, err = u.transition(ctx, event, entities.BookingStatusRefunded)
	default:
		slog.InfoContext(ctx, "[webhook][usecase] event ignored", "type", event.Type)
		return res, nil
	}
	if err != nil {
		return res, err
	}
	res.Handled = true
	return res, nil
}

func (u *WebhookUseCase) paymentSucceeded(ctx context.Context, ev entities.PaymentEvent) error {
	if u.bookings == nil {
		return missingConfig("DATABASE_URL")
	}
	paidAt := ev.OccurredAt
	if paidAt.IsZero() {
		paidAt = u.now()
	}

	b := bookingFromMetadata(ev.Metadata, ev.ReceiptEmail)
	b.StripePaymentIntentID = ev.PaymentIntentID
	b.AmountPence = ev.AmountPence
	b.Currency = strings.ToLower(ev.Currency)
	b.Status = entities.BookingStatusConfirmed
	b.PaymentStatus = entities.PaymentStatusPaid
	b.PaidAt = &paidAt

	up, err := u.bookings.Upsert(ctx, b)
	if err != nil {
		slog.ErrorContext(ctx, "[webhook][usecase] booking upsert failed", "payment_intent_id", ev.PaymentIntentID, "error", err)
		return err
	}

	if u.checkouts != nil {
		if err := u.checkouts.MarkRecovered(ctx, ev.PaymentIntentID, paidAt); err != nil {
			slog.WarnContext(ctx, "[webhook][usecase] mark recovered failed", "payment_intent_id", ev.PaymentIntentID, "error", err)
		}
	}

	if !up.Transitioned() {
		slog.InfoContext(ctx, "[webhook][usecase] booking already confirmed", "booking_ref", up.Booking.BookingRef)
		return nil
	}

	booked := up.Booking
	slog.InfoContext(ctx, "[webhook][usecase] booking confirmed", "booking_ref", booked.BookingRef, "previous", up.Previous)
	if booked.CustomerEmail != "" {
		u.notify(ctx, emails.BookingConfirmed, booked.CustomerEmail, emails.Data{
			"name":       booked.CustomerName,
			"bookingRef": booked.BookingRef,
		})
	}
	if u.opsEmail != "" {
		u.notify(ctx, emails.InternalNewJobPaid, u.opsEmail, newJobData(booked, ev))
	}
	return nil
}

func (u *WebhookUseCase) paymentFailed(ctx context.Context, ev entities.PaymentEvent) error {
	b, err := u.transition(ctx, ev, entities.BookingStatusPaymentFailed)
	if err != nil || b.ID == "" || b.CustomerEmail == "" {
		return err
	}
	u.notify(ctx, emails.PaymentFailed, b.CustomerEmail, emails.Data{
		"name":       b.CustomerName,
		"bookingRef": b.BookingRef,
	})
	return nil
}

func (u *WebhookUseCase) transition(ctx context.Context, ev entities.PaymentEvent, to entities.BookingStatus) (entities.Booking, error) {
	if u.bookings == nil {
		return entities.Booking{}, missingConfig("DATABASE_URL")
	}
	if ev.PaymentIntentID == "" {
		slog.WarnContext(ctx, "[webhook][usecase] event without payment intent", "type", ev.Type)
		return entities.Booking{}, nil
	}
	b, err := u.bookings.Transition(ctx, ev.PaymentIntentID, to, u.now())
	if err != nil {
		slog.ErrorContext(ctx, "[webhook][usecase] transition failed", "payment_intent_id", ev.PaymentIntentID, "to", to, "error", err)
		return entities.Booking{}, err
	}
	if b.ID == "" {
		slog.InfoContext(ctx, "[webhook][usecase] no booking to transition", "payment_intent_id", ev.PaymentIntentID, "to", to)
		return b, nil
	}
	slog.InfoContext(ctx, "[webhook][usecase] booking transitioned", "booking_ref", b.BookingRef, "to", to)
	return b, nil
}

func (u *WebhookUseCase) notify(ctx context.Context, id emails.TemplateID, to string, data emails.Data) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx, id, to, data); err != nil {
		slog.WarnContext(ctx, "[webhook][usecase] notification failed", "template", id, "error", err)
	}
}

func newJobData(b entities.Booking, ev entities.PaymentEvent) emails.Data {
	paidAt := ""
	if b.PaidAt != nil {
		paidAt = b.PaidAt.UTC().Format(time.RFC3339)
	}
	hours := ""
	if b.HoursBooked > 0 {
		hours = strconv.Itoa(b.HoursBooked)
	}
	return emails.Data{
		"bookingRef":         b.BookingRef,
		"customerName":       b.CustomerName,
		"amount":             b.AmountPence,
		"currency":           b.Currency,
		"paymentIntentId":    b.StripePaymentIntentID,
		"customerEmail":      b.CustomerEmail,
		"customerPhone":      b.CustomerPhone,
		"addressLine1":       b.AddressLine1,
		"addressLine2":       b.AddressLine2,
		"city":               b.City,
		"postcode":           b.Postcode,
		"serviceName":        b.ServiceName,
		"serviceCategory":    b.ServiceCategory,
		"jobDescription":     b.JobDescription,
		"preferredDates":     b.ScheduledDates,
		"preferredTimeSlots": b.ScheduledTimeSlots,
		"hoursBooked":        hours,
		"addSubscription":    ev.Metadata["add_subscription"],
		"paidAt":             paidAt,
	}
}
