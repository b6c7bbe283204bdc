package entities

import "time"

// PaymentIntentRequest is what the booking flow asks the provider to charge.
type PaymentIntentRequest struct {
	AmountPence   int64
	Currency      string
	ReceiptEmail  string
	Description   string
	Metadata      map[string]string
	IdempotencyID string
}

// PaymentIntent is the provider's answer to a PaymentIntentRequest.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	AmountPence  int64
	Currency     string
	Status       string
	ReceiptEmail string
	Metadata     map[string]string
}

// PaymentEventType lists the webhook events the booking flow reacts to.
type PaymentEventType string

const (
	EventPaymentSucceeded PaymentEventType = "payment_intent.succeeded"
	EventPaymentFailed    PaymentEventType = "payment_intent.payment_failed"
	EventPaymentCanceled  PaymentEventType = "payment_intent.canceled"
	EventChargeRefunded   PaymentEventType = "charge.refunded"
)

// PaymentEvent is a verified webhook event reduced to what bookings need.
type PaymentEvent struct {
	ID              string
	Type            PaymentEventType
	PaymentIntentID string
	AmountPence     int64
	Currency        string
	ReceiptEmail    string
	Metadata        map[string]string
	FailureMessage  string
	OccurredAt      time.Time
}
