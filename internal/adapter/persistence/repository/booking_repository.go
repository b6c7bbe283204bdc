package repository

import (
	"context"
	"fmt"
	"time"

	"master_booking/internal/domain/entities"
	"master_booking/internal/usecase/interfaces"
)

const bookingColumns = `id::text, booking_ref, customer_name, customer_email, customer_phone,
	address_line1, address_line2, city, postcode, service_id::text, service_name,
	service_category, job_description, property_type, bedrooms, bathrooms, addons,
	preferred_dates, preferred_time_slots, hours_booked, amount_pence, currency,
	coupon_code, discount_pence, status, payment_status, stripe_payment_intent_id,
	paid_at, refunded_at, created_at, updated_at`

const bookingInsert = `INSERT INTO booking_website (
	booking_ref, customer_name, customer_email, customer_phone, address_line1,
	address_line2, city, postcode, service_id, service_name, service_category,
	job_description, property_type, bedrooms, bathrooms, addons, preferred_dates,
	preferred_time_slots, hours_booked, amount_pence, currency, coupon_code,
	discount_pence, status, payment_status, stripe_payment_intent_id, paid_at, refunded_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9::text::uuid, $10, $11, $12, $13, $14, $15, $16,
	$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28
)`

// The CTE snapshot is taken before the insert, so prev holds the status the
// row had when the statement started, or nothing for a new row.
const bookingUpsert = `WITH prev AS (
	SELECT status FROM booking_website WHERE stripe_payment_intent_id = $26
)
` + bookingInsert + `
ON CONFLICT (stripe_payment_intent_id) DO UPDATE SET
	status = CASE WHEN booking_website.status = ANY($29::text[]) THEN EXCLUDED.status ELSE booking_website.status END,
	payment_status = CASE WHEN booking_website.status = ANY($29::text[]) THEN EXCLUDED.payment_status ELSE booking_website.payment_status END,
	paid_at = CASE WHEN booking_website.status = ANY($29::text[]) THEN COALESCE(EXCLUDED.paid_at, booking_website.paid_at) ELSE booking_website.paid_at END,
	updated_at = now()
RETURNING ` + bookingColumns + `, (SELECT status FROM prev)`

const bookingTransition = `UPDATE booking_website SET
	status = $2,
	payment_status = $3,
	paid_at = CASE WHEN $2 = 'confirmed' THEN COALESCE(paid_at, $4) ELSE paid_at END,
	refunded_at = CASE WHEN $2 = 'refunded' THEN $4 ELSE refunded_at END,
	updated_at = $4
WHERE stripe_payment_intent_id = $1 AND status = ANY($5::text[])
RETURNING ` + bookingColumns

type bookingRow struct {
	ID                    string
	BookingRef            string
	CustomerName          string
	CustomerEmail         string
	CustomerPhone         *string
	AddressLine1          *string
	AddressLine2          *string
	City                  *string
	Postcode              string
	ServiceID             *string
	ServiceName           string
	ServiceCategory       *string
	JobDescription        *string
	PropertyType          *string
	Bedrooms              *int32
	Bathrooms             *int32
	Addons                []string
	PreferredDates        []string
	PreferredTimeSlots    []string
	HoursBooked           *int32
	AmountPence           int64
	Currency              string
	CouponCode            *string
	DiscountPence         int64
	Status                string
	PaymentStatus         string
	StripePaymentIntentID *string
	PaidAt                *time.Time
	RefundedAt            *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (r *bookingRow) targets() []any {
	return []any{
		&r.ID, &r.BookingRef, &r.CustomerName, &r.CustomerEmail, &r.CustomerPhone,
		&r.AddressLine1, &r.AddressLine2, &r.City, &r.Postcode, &r.ServiceID, &r.ServiceName,
		&r.ServiceCategory, &r.JobDescription, &r.PropertyType, &r.Bedrooms, &r.Bathrooms, &r.Addons,
		&r.PreferredDates, &r.PreferredTimeSlots, &r.HoursBooked, &r.AmountPence, &r.Currency,
		&r.CouponCode, &r.DiscountPence, &r.Status, &r.PaymentStatus, &r.StripePaymentIntentID,
		&r.PaidAt, &r.RefundedAt, &r.CreatedAt, &r.UpdatedAt,
	}
}

func (r bookingRow) toEntity() entities.Booking {
	return entities.Booking{
		ID:                    r.ID,
		BookingRef:            r.BookingRef,
		CustomerName:          r.CustomerName,
		CustomerEmail:         r.CustomerEmail,
		CustomerPhone:         deref(r.CustomerPhone),
		AddressLine1:          deref(r.AddressLine1),
		AddressLine2:          deref(r.AddressLine2),
		City:                  deref(r.City),
		Postcode:              r.Postcode,
		ServiceID:             deref(r.ServiceID),
		ServiceName:           r.ServiceName,
		ServiceCategory:       deref(r.ServiceCategory),
		JobDescription:        deref(r.JobDescription),
		PropertyType:          deref(r.PropertyType),
		Bedrooms:              derefInt(r.Bedrooms),
		Bathrooms:             derefInt(r.Bathrooms),
		Addons:                r.Addons,
		ScheduledDates:        r.PreferredDates,
		ScheduledTimeSlots:    r.PreferredTimeSlots,
		HoursBooked:           derefInt(r.HoursBooked),
		AmountPence:           r.AmountPence,
		Currency:              r.Currency,
		CouponCode:            deref(r.CouponCode),
		DiscountPence:         r.DiscountPence,
		Status:                entities.BookingStatus(r.Status),
		PaymentStatus:         entities.PaymentStatus(r.PaymentStatus),
		StripePaymentIntentID: deref(r.StripePaymentIntentID),
		PaidAt:                r.PaidAt,
		RefundedAt:            r.RefundedAt,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

func bookingArgs(b entities.Booking) []any {
	return []any{
		b.BookingRef, b.CustomerName, b.CustomerEmail, nullString(b.CustomerPhone), nullString(b.AddressLine1),
		nullString(b.AddressLine2), nullString(b.City), b.Postcode, nullString(b.ServiceID), b.ServiceName,
		nullString(b.ServiceCategory), nullString(b.JobDescription), nullString(b.PropertyType),
		nullInt(b.Bedrooms), nullInt(b.Bathrooms), nonNil(b.Addons), nonNil(b.ScheduledDates),
		nonNil(b.ScheduledTimeSlots), nullInt(b.HoursBooked), b.AmountPence, b.Currency,
		nullString(b.CouponCode), b.DiscountPence, string(b.Status), string(b.PaymentStatus),
		nullString(b.StripePaymentIntentID), b.PaidAt, b.RefundedAt,
	}
}

// BookingPostgresRepository persists bookings in the booking_website table.
type BookingPostgresRepository struct {
	db DBTX
}

var _ interfaces.IBookingRepository = (*BookingPostgresRepository)(nil)

func NewBookingPostgresRepository(db DBTX) *BookingPostgresRepository {
	return &BookingPostgresRepository{db: db}
}

func (r *BookingPostgresRepository) Upsert(ctx context.Context, b entities.Booking) (entities.BookingUpsert, error) {
	if b.StripePaymentIntentID == "" {
		return entities.BookingUpsert{}, fmt.Errorf("upsert booking %s: missing payment intent id", b.BookingRef)
	}

	args := append(bookingArgs(b), textArray(entities.TransitionSources(b.Status)))

	var row bookingRow
	var previous *string
	if err := r.db.QueryRow(ctx, bookingUpsert, args...).Scan(append(row.targets(), &previous)...); err != nil {
		return entities.BookingUpsert{}, fmt.Errorf("upsert booking %s: %w", b.StripePaymentIntentID, err)
	}
	return entities.BookingUpsert{
		Booking:  row.toEntity(),
		Previous: entities.BookingStatus(deref(previous)),
	}, nil
}

func (r *BookingPostgresRepository) Transition(ctx context.Context, paymentIntentID string, to entities.BookingStatus, at time.Time) (entities.Booking, error) {
	sources := textArray(entities.TransitionSources(to))
	if len(sources) == 0 {
		return entities.Booking{}, nil
	}

	var row bookingRow
	err := r.db.QueryRow(ctx, bookingTransition,
		paymentIntentID, string(to), string(entities.PaymentStatusFor(to)), at.UTC(), sources,
	).Scan(row.targets()...)
	if notFound(err) {
		return entities.Booking{}, nil
	}
	if err != nil {
		return entities.Booking{}, fmt.Errorf("transition booking %s to %s: %w", paymentIntentID, to, err)
	}
	return row.toEntity(), nil
}

func (r *BookingPostgresRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	var row bookingRow
	if err := r.db.QueryRow(ctx, bookingInsert+"\nRETURNING "+bookingColumns, bookingArgs(b)...).Scan(row.targets()...); err != nil {
		return entities.Booking{}, fmt.Errorf("insert booking %s: %w", b.BookingRef, err)
	}
	return row.toEntity(), nil
}

func (r *BookingPostgresRepository) GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (entities.Booking, error) {
	var row bookingRow
	err := r.db.QueryRow(ctx,
		"SELECT "+bookingColumns+" FROM booking_website WHERE stripe_payment_intent_id = $1",
		paymentIntentID,
	).Scan(row.targets()...)
	if notFound(err) {
		return entities.Booking{}, nil
	}
	if err != nil {
		return entities.Booking{}, fmt.Errorf("get booking %s: %w", paymentIntentID, err)
	}
	return row.toEntity(), nil
}
