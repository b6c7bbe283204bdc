package entities

import (
	"fmt"
	"math"
	"time"
)

// MinChargePence is the smallest amount the payment provider will charge in GBP.
const MinChargePence int64 = 50

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// Coupon is read-only from the booking flow.
// DiscountValue is a percentage for percent coupons and pounds for fixed ones.
type Coupon struct {
	ID            string
	Code          string
	DiscountType  DiscountType
	DiscountValue float64
	ValidFrom     *time.Time
	ValidUntil    *time.Time
	MaxUses       *int
	UsesCount     int
	MinOrderPence int64
	Active        bool
}

// CouponDecision is the outcome of applying a coupon to a subtotal.
type CouponDecision struct {
	Valid           bool
	Code            string
	DiscountType    DiscountType
	DiscountValue   float64
	DiscountPence   int64
	FinalTotalPence int64
	Label           string
	Reason          string
}

const (
	CouponReasonInvalid  = "Invalid coupon code"
	CouponReasonNotYet   = "This coupon is not yet valid"
	CouponReasonExpired  = "This coupon has expired"
	CouponReasonUsedUp   = "This coupon has reached its usage limit"
	couponReasonMinOrder = "Minimum order of £%.2f required"
)

// Resolve checks the coupon against now and the order subtotal and computes the discount.
// The discount never takes the order below MinChargePence.
func (c Coupon) Resolve(subtotalPence int64, now time.Time) CouponDecision {
	if c.ID == "" || !c.Active {
		return CouponDecision{Reason: CouponReasonInvalid}
	}
	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return CouponDecision{Code: c.Code, Reason: CouponReasonNotYet}
	}
	if c.ValidUntil != nil && now.After(*c.ValidUntil) {
		return CouponDecision{Code: c.Code, Reason: CouponReasonExpired}
	}
	if c.MaxUses != nil && c.UsesCount >= *c.MaxUses {
		return CouponDecision{Code: c.Code, Reason: CouponReasonUsedUp}
	}
	if subtotalPence < c.MinOrderPence {
		return CouponDecision{Code: c.Code, Reason: fmt.Sprintf(couponReasonMinOrder, float64(c.MinOrderPence)/100)}
	}

	var discount int64
	switch c.DiscountType {
	case DiscountPercent:
		pct := math.Min(100, math.Max(0, c.DiscountValue))
		discount = int64(math.Round(float64(subtotalPence) * pct / 100))
	default:
		discount = int64(math.Round(math.Max(0, c.DiscountValue) * 100))
	}

	if ceiling := subtotalPence - MinChargePence; discount > ceiling {
		discount = ceiling
	}
	if discount < 0 {
		discount = 0
	}

	return CouponDecision{
		Valid:           true,
		Code:            c.Code,
		DiscountType:    c.DiscountType,
		DiscountValue:   c.DiscountValue,
		DiscountPence:   discount,
		FinalTotalPence: subtotalPence - discount,
		Label:           c.Label(),
	}
}

// Label is the short text shown next to the discount.
func (c Coupon) Label() string {
	if c.DiscountType == DiscountPercent {
		return fmt.Sprintf("%s%% off", trimFloat(c.DiscountValue))
	}
	return fmt.Sprintf("£%.2f off", c.DiscountValue)
}

func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
