package payments

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"

	"master_booking/internal/domain/entities"
	"master_booking/internal/usecase/interfaces"
)

// StripeWebhookVerifier checks the Stripe-Signature header and decodes the events bookings react to.
type StripeWebhookVerifier struct {
	secret    string
	tolerance time.Duration
}

var _ interfaces.IWebhookVerifier = (*StripeWebhookVerifier)(nil)

func NewStripeWebhookVerifier(secret string) *StripeWebhookVerifier {
	return &StripeWebhookVerifier{secret: secret, tolerance: webhook.DefaultTolerance}
}

func (v *StripeWebhookVerifier) Verify(payload []byte, signatureHeader string) (entities.PaymentEvent, error) {
	ev, err := webhook.ConstructEventWithOptions(payload, signatureHeader, v.secret, webhook.ConstructEventOptions{
		Tolerance:                v.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("verify stripe signature: %w", err)
	}

	out := entities.PaymentEvent{
		ID:         ev.ID,
		Type:       entities.PaymentEventType(ev.Type),
		OccurredAt: time.Unix(ev.Created, 0).UTC(),
	}
	if ev.Data == nil {
		return out, nil
	}

	switch out.Type {
	case entities.EventPaymentSucceeded, entities.EventPaymentFailed, entities.EventPaymentCanceled:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(ev.Data.Raw, &pi); err != nil {
			return entities.PaymentEvent{}, fmt.Errorf("decode payment intent %s: %w", ev.ID, err)
		}
		out.PaymentIntentID = pi.ID
		out.AmountPence = pi.Amount
		out.Currency = string(pi.Currency)
		out.ReceiptEmail = pi.ReceiptEmail
		out.Metadata = pi.Metadata
		if pi.LastPaymentError != nil {
			out.FailureMessage = pi.LastPaymentError.Msg
		}
	case entities.EventChargeRefunded:
		var ch stripe.Charge
		if err := json.Unmarshal(ev.Data.Raw, &ch); err != nil {
			return entities.PaymentEvent{}, fmt.Errorf("decode charge %s: %w", ev.ID, err)
		}
		if ch.PaymentIntent != nil {
			out.PaymentIntentID = ch.PaymentIntent.ID
		}
		out.AmountPence = ch.AmountRefunded
		out.Currency = string(ch.Currency)
		out.ReceiptEmail = ch.ReceiptEmail
		out.Metadata = ch.Metadata
	}
	return out, nil
}
