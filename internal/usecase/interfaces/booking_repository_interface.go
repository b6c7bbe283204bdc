package interfaces

//go:generate mockgen -source=booking_repository_interface.go -destination=mocks/booking_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"time"

	"master_booking/internal/domain/entities"
)

// IBookingRepository persists bookings in Postgres.
//
// Rows are keyed by booking_ref and, for card payments, by the provider's
// payment intent id. Status only moves along entities.CanTransition.
type IBookingRepository interface {
	// Upsert is idempotent on StripePaymentIntentID. An existing row keeps its status
	// unless the new one is a legal transition from it.
	Upsert(ctx context.Context, b entities.Booking) (entities.BookingUpsert, error)
	// Transition moves the booking for a payment intent to status. It returns a zero
	// Booking when no row is in one of the allowed source statuses.
	Transition(ctx context.Context, paymentIntentID string, to entities.BookingStatus, at time.Time) (entities.Booking, error)
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (entities.Booking, error)
}
