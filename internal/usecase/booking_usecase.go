package usecase

//go:generate mockgen -source=booking_usecase.go -destination=../adapter/http/handlers/mocks/booking_usecase_mock.go -package=mocks

import (
	"context"
	"log/slog"
	"strings"

	"master_booking/internal/domain/entities"
	"master_booking/internal/domain/pricing"
	"master_booking/internal/domain/validation"
	"master_booking/internal/usecase/interfaces"
)

// MaxPayLaterPounds caps the estimate stored on a pay-later booking.
const MaxPayLaterPounds = 50_000

// PayLaterInput books a job without taking a card. Amount is in pounds and may be zero
// when the price is agreed later.
type PayLaterInput struct {
	Booking *BookingDetails
	Amount  any
}

type IBookingUseCase interface {
	CreatePayLater(ctx context.Context, in PayLaterInput) (entities.Booking, error)
}

type BookingUseCase struct {
	repo interfaces.IBookingRepository
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository) *BookingUseCase {
	return &BookingUseCase{repo: repo}
}

func (u *BookingUseCase) CreatePayLater(ctx context.Context, in PayLaterInput) (entities.Booking, error) {
	if in.Booking == nil {
		return entities.Booking{}, invalid("booking_data is required")
	}

	b, email := normalizeBooking(*in.Booking)
	if !email.Valid {
		return entities.Booking{}, invalid("Valid email is required")
	}

	amount, err := payLaterAmount(in.Amount)
	if err != nil {
		return entities.Booking{}, err
	}

	if u.repo == nil {
		return entities.Booking{}, missingConfig("DATABASE_URL")
	}

	b.BookingRef = entities.NewBookingRef()
	b.AmountPence = amount
	b.Currency = pricing.Currency
	b.Status = entities.BookingStatusPending
	b.PaymentStatus = entities.PaymentStatusPayLater

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		slog.ErrorContext(ctx, "[booking][usecase] pay-later insert failed", "booking_ref", b.BookingRef, "error", err)
		return entities.Booking{}, err
	}
	slog.InfoContext(ctx, "[booking][usecase] pay-later created", "booking_ref", created.BookingRef, "id", created.ID)
	return created, nil
}

func payLaterAmount(raw any) (int64, error) {
	if isZeroAmount(raw) {
		return 0, nil
	}
	res := validation.Amount(raw, MaxPayLaterPounds)
	if !res.Valid {
		return 0, invalid(res.Error)
	}
	return poundsToPence(res.Value), nil
}

func isZeroAmount(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case float64:
		return v == 0
	case int:
		return v == 0
	case int64:
		return v == 0
	case string:
		s := strings.TrimSpace(v)
		return s == "" || s == "0" || s == "0.00"
	}
	return false
}
