package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestCoupon_Resolve(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("percent", func(t *testing.T) {
		c := Coupon{ID: "c1", Code: "SPRING10", DiscountType: DiscountPercent, DiscountValue: 10, Active: true}
		d := c.Resolve(10000, now)
		assert.True(t, d.Valid)
		assert.Equal(t, int64(1000), d.DiscountPence)
		assert.Equal(t, int64(9000), d.FinalTotalPence)
		assert.Equal(t, "10% off", d.Label)
	})

	t.Run("fixed", func(t *testing.T) {
		c := Coupon{ID: "c2", Code: "TWENTY", DiscountType: DiscountFixed, DiscountValue: 20, Active: true}
		d := c.Resolve(10000, now)
		assert.True(t, d.Valid)
		assert.Equal(t, int64(2000), d.DiscountPence)
		assert.Equal(t, "£20.00 off", d.Label)
	})

	t.Run("minimum order", func(t *testing.T) {
		c := Coupon{ID: "c3", Code: "BIG", DiscountType: DiscountFixed, DiscountValue: 5, MinOrderPence: 5000, Active: true}
		d := c.Resolve(3000, now)
		assert.False(t, d.Valid)
		assert.Equal(t, "Minimum order of £50.00 required", d.Reason)
	})

	t.Run("clamped to the minimum charge", func(t *testing.T) {
		c := Coupon{ID: "c4", Code: "HUGE", DiscountType: DiscountFixed, DiscountValue: 500, Active: true}
		d := c.Resolve(10000, now)
		assert.True(t, d.Valid)
		assert.Equal(t, int64(9950), d.DiscountPence)
		assert.Equal(t, MinChargePence, d.FinalTotalPence)
	})

	t.Run("percent above 100 is clamped", func(t *testing.T) {
		c := Coupon{ID: "c5", Code: "ALL", DiscountType: DiscountPercent, DiscountValue: 150, Active: true}
		d := c.Resolve(2000, now)
		assert.Equal(t, int64(1950), d.DiscountPence)
	})

	t.Run("tiny order gets no discount", func(t *testing.T) {
		c := Coupon{ID: "c6", Code: "FIVE", DiscountType: DiscountFixed, DiscountValue: 5, Active: true}
		d := c.Resolve(40, now)
		assert.True(t, d.Valid)
		assert.Zero(t, d.DiscountPence)
		assert.Equal(t, int64(40), d.FinalTotalPence)
	})

	rejections := []struct {
		name   string
		coupon Coupon
		reason string
	}{
		{"not found", Coupon{}, CouponReasonInvalid},
		{"inactive", Coupon{ID: "x", Code: "OFF"}, CouponReasonInvalid},
		{"not yet valid", Coupon{ID: "x", Code: "OFF", Active: true, ValidFrom: timePtr(now.Add(time.Hour))}, CouponReasonNotYet},
		{"expired", Coupon{ID: "x", Code: "OFF", Active: true, ValidUntil: timePtr(now.Add(-time.Hour))}, CouponReasonExpired},
		{"used up", Coupon{ID: "x", Code: "OFF", Active: true, MaxUses: intPtr(3), UsesCount: 3}, CouponReasonUsedUp},
	}
	for _, tc := range rejections {
		t.Run(tc.name, func(t *testing.T) {
			d := tc.coupon.Resolve(10000, now)
			assert.False(t, d.Valid)
			assert.Equal(t, tc.reason, d.Reason)
			assert.Zero(t, d.DiscountPence)
		})
	}
}
