package usecase

//go:generate mockgen -source=payment_intent_usecase.go -destination=../adapter/http/handlers/mocks/payment_intent_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"time"

	"master_booking/internal/domain/entities"
	"master_booking/internal/domain/pricing"
	"master_booking/internal/domain/validation"
	"master_booking/internal/usecase/interfaces"
)

// MaxPaymentPence caps a single card payment at £50,000.
const MaxPaymentPence = 5_000_000

const createdViaWebsite = "website"

// PaymentIntentInput is a checkout request. AmountPence is taken as sent by the
// browser and re-checked against the quote when Category and Selection are present.
type PaymentIntentInput struct {
	AmountPence     any
	Currency        string
	ReceiptEmail    string
	Category        string
	Selection       *pricing.Selection
	CouponCode      string
	AddSubscription bool
	Booking         *BookingDetails
}

type PaymentIntentResult struct {
	ClientSecret string
	ID           string
	AmountPence  int64
	Currency     string
	BookingRef   string
}

type IPaymentIntentUseCase interface {
	Create(ctx context.Context, in PaymentIntentInput) (PaymentIntentResult, error)
}

type PaymentIntentUseCase struct {
	gateway  interfaces.IPaymentGateway
	bookings interfaces.IBookingRepository
	coupons  interfaces.ICouponRepository
	quotes   IQuoteUseCase
	now      func() time.Time
}

var _ IPaymentIntentUseCase = (*PaymentIntentUseCase)(nil)

func NewPaymentIntentUseCase(gateway interfaces.IPaymentGateway, bookings interfaces.IBookingRepository, coupons interfaces.ICouponRepository, quotes IQuoteUseCase) *PaymentIntentUseCase {
	if quotes == nil {
		quotes = NewQuoteUseCase(nil)
	}
	return &PaymentIntentUseCase{gateway: gateway, bookings: bookings, coupons: coupons, quotes: quotes, now: time.Now}
}

func (u *PaymentIntentUseCase) Create(ctx context.Context, in PaymentIntentInput) (PaymentIntentResult, error) {
	slog.InfoContext(ctx, "[payment][usecase] create start", "category", in.Category, "has_booking", in.Booking != nil)

	amount, err := chargeAmount(in.AmountPence)
	if err != nil {
		return PaymentIntentResult{}, err
	}

	currency := strings.ToLower(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = pricing.Currency
	}
	if currency != pricing.Currency {
		return PaymentIntentResult{}, invalid("Only GBP payments are supported")
	}

	var receipt string
	if strings.TrimSpace(in.ReceiptEmail) != "" {
		res := validation.Email(in.ReceiptEmail)
		if !res.Valid {
			return PaymentIntentResult{}, invalid(res.Error)
		}
		receipt = res.Sanitized
	}

	discount, coupon, err := u.checkQuotedAmount(ctx, in, amount)
	if err != nil {
		return PaymentIntentResult{}, err
	}

	booking := entities.Booking{Postcode: unknownPostcode, CustomerName: unknownCustomer, ServiceName: defaultServiceName}
	if in.Booking != nil {
		var email validation.Result
		booking, email = normalizeBooking(*in.Booking)
		if receipt == "" && email.Valid {
			receipt = email.Sanitized
		}
	}
	booking.BookingRef = entities.NewBookingRef()
	booking.AmountPence = amount
	booking.Currency = currency
	booking.CouponCode = coupon
	booking.DiscountPence = discount

	if u.gateway == nil {
		return PaymentIntentResult{}, missingConfig("STRIPE_SECRET_KEY")
	}

	md := bookingMetadata(booking)
	md["created_via"] = createdViaWebsite
	if in.AddSubscription {
		md["add_subscription"] = "true"
	}

	intent, err := u.gateway.CreatePaymentIntent(ctx, entities.PaymentIntentRequest{
		AmountPence:   amount,
		Currency:      currency,
		ReceiptEmail:  receipt,
		Description:   truncateRunes(booking.ServiceName+" - "+booking.BookingRef, 200),
		Metadata:      md,
		IdempotencyID: booking.BookingRef,
	})
	if err != nil {
		slog.ErrorContext(ctx, "[payment][usecase] gateway error", "booking_ref", booking.BookingRef, "error", err)
		if errors.Is(err, interfaces.ErrPaymentRejected) {
			return PaymentIntentResult{}, invalid("Payment could not be created. Please check your details and try again.")
		}
		return PaymentIntentResult{}, upstream(ProviderStripe, err)
	}

	booking.StripePaymentIntentID = intent.ID
	booking.Status = entities.BookingStatusPending
	booking.PaymentStatus = entities.PaymentStatusPending
	if booking.CustomerEmail == "" {
		booking.CustomerEmail = receipt
	}
	u.savePending(ctx, booking)

	slog.InfoContext(ctx, "[payment][usecase] create done",
		"payment_intent_id", intent.ID,
		"booking_ref", booking.BookingRef,
		"amount_pence", amount,
	)
	return PaymentIntentResult{
		ClientSecret: intent.ClientSecret,
		ID:           intent.ID,
		AmountPence:  amount,
		Currency:     currency,
		BookingRef:   booking.BookingRef,
	}, nil
}

// checkQuotedAmount recomputes the price server-side when the request names a
// category. It returns the coupon discount and the normalized coupon code.
func (u *PaymentIntentUseCase) checkQuotedAmount(ctx context.Context, in PaymentIntentInput, amount int64) (int64, string, error) {
	if strings.TrimSpace(in.Category) == "" || in.Selection == nil {
		return 0, "", nil
	}
	quote, err := u.quotes.Calculate(ctx, in.Category, *in.Selection)
	if err != nil {
		return 0, "", err
	}

	expected := quote.TotalPence
	var discount int64
	var code string
	if c := strings.ToUpper(strings.TrimSpace(in.CouponCode)); c != "" && u.coupons != nil {
		coupon, err := u.coupons.GetByCode(ctx, c)
		if err != nil {
			slog.WarnContext(ctx, "[payment][usecase] coupon lookup failed", "code", c, "error", err)
		}
		if d := coupon.Resolve(quote.TotalPence, u.now()); err == nil && d.Valid {
			expected = d.FinalTotalPence
			discount = d.DiscountPence
			code = d.Code
		}
	}

	if amount != expected {
		slog.WarnContext(ctx, "[payment][usecase] amount mismatch", "amount_pence", amount, "expected_pence", expected)
		return 0, "", invalid("Amount does not match the quoted price")
	}
	return discount, code, nil
}

func (u *PaymentIntentUseCase) savePending(ctx context.Context, b entities.Booking) {
	if u.bookings == nil || b.CustomerEmail == "" {
		return
	}
	if _, err := u.bookings.Upsert(ctx, b); err != nil {
		slog.ErrorContext(ctx, "[payment][usecase] pending booking upsert failed",
			"payment_intent_id", b.StripePaymentIntentID,
			"error", err,
		)
	}
}

func chargeAmount(raw any) (int64, error) {
	res := validation.Amount(raw, MaxPaymentPence)
	if !res.Valid {
		return 0, invalid("Invalid amount. Amount must be greater than 0.")
	}
	if res.Value != math.Trunc(res.Value) {
		return 0, invalid("Amount must be a whole number of pence")
	}
	amount := int64(res.Value)
	if amount < entities.MinChargePence {
		return 0, invalid("Amount must be at least £0.50")
	}
	return amount, nil
}
