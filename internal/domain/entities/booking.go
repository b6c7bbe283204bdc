package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle of a booking.
//
// Transitions only move forward:
//   - pending -> confirmed | payment_failed | canceled
//   - payment_failed -> confirmed | canceled (the provider may retry a failed intent)
//   - confirmed | payment_failed | canceled -> refunded
type BookingStatus string

const (
	BookingStatusPending       BookingStatus = "pending"
	BookingStatusConfirmed     BookingStatus = "confirmed"
	BookingStatusPaymentFailed BookingStatus = "payment_failed"
	BookingStatusCanceled      BookingStatus = "canceled"
	BookingStatusRefunded      BookingStatus = "refunded"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusPayLater PaymentStatus = "pay_later"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusCanceled PaymentStatus = "canceled"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusConfirmed:     {BookingStatusPending, BookingStatusPaymentFailed},
	BookingStatusPaymentFailed: {BookingStatusPending},
	BookingStatusCanceled:      {BookingStatusPending, BookingStatusPaymentFailed},
	BookingStatusRefunded:      {BookingStatusConfirmed, BookingStatusPaymentFailed, BookingStatusCanceled},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to BookingStatus) bool {
	for _, s := range bookingTransitions[to] {
		if s == from {
			return true
		}
	}
	return false
}

// TransitionSources lists the statuses a booking may be in to move to target.
func TransitionSources(to BookingStatus) []BookingStatus {
	return append([]BookingStatus(nil), bookingTransitions[to]...)
}

// PaymentStatusFor is the payment status that accompanies a booking status.
func PaymentStatusFor(s BookingStatus) PaymentStatus {
	switch s {
	case BookingStatusConfirmed:
		return PaymentStatusPaid
	case BookingStatusPaymentFailed:
		return PaymentStatusFailed
	case BookingStatusCanceled:
		return PaymentStatusCanceled
	case BookingStatusRefunded:
		return PaymentStatusRefunded
	default:
		return PaymentStatusPending
	}
}

// Booking is a customer's request for a service at a price.
// Rows are never deleted, only status-transitioned.
type Booking struct {
	ID                    string
	BookingRef            string
	CustomerName          string
	CustomerEmail         string
	CustomerPhone         string
	AddressLine1          string
	AddressLine2          string
	City                  string
	Postcode              string
	ServiceID             string
	ServiceName           string
	ServiceCategory       string
	JobDescription        string
	PropertyType          string
	Bedrooms              int
	Bathrooms             int
	Addons                []string
	ScheduledDates        []string
	ScheduledTimeSlots    []string
	HoursBooked           int
	AmountPence           int64
	Currency              string
	CouponCode            string
	DiscountPence         int64
	Status                BookingStatus
	PaymentStatus         PaymentStatus
	StripePaymentIntentID string
	PaidAt                *time.Time
	RefundedAt            *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// BookingUpsert is the result of an idempotent write keyed by the payment intent.
// Previous is empty when the row was created by the write.
type BookingUpsert struct {
	Booking  Booking
	Previous BookingStatus
}

// Transitioned reports whether the write changed the booking status.
func (u BookingUpsert) Transitioned() bool {
	return u.Booking.ID != "" && u.Previous != u.Booking.Status
}

// NewBookingRef returns an opaque customer-facing reference.
func NewBookingRef() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "MST-" + strings.ToUpper(id[:8])
}
