package repository

import (
	"context"
	"fmt"
	"time"

	"master_booking/internal/domain/entities"
	"master_booking/internal/usecase/interfaces"
)

// CouponPostgresRepository reads the coupons table. Codes match case-insensitively.
type CouponPostgresRepository struct {
	db DBTX
}

var _ interfaces.ICouponRepository = (*CouponPostgresRepository)(nil)

func NewCouponPostgresRepository(db DBTX) *CouponPostgresRepository {
	return &CouponPostgresRepository{db: db}
}

func (r *CouponPostgresRepository) GetByCode(ctx context.Context, code string) (entities.Coupon, error) {
	var (
		c            entities.Coupon
		discountType string
		validFrom    *time.Time
		validUntil   *time.Time
		maxUses      *int32
		usesCount    int32
	)
	err := r.db.QueryRow(ctx, `SELECT id::text, code, discount_type, discount_value::float8,
		valid_from, valid_until, max_uses, uses_count, min_order_pence, is_active
		FROM coupons WHERE upper(code) = upper($1) LIMIT 1`, code,
	).Scan(&c.ID, &c.Code, &discountType, &c.DiscountValue, &validFrom, &validUntil,
		&maxUses, &usesCount, &c.MinOrderPence, &c.Active)
	if notFound(err) {
		return entities.Coupon{}, nil
	}
	if err != nil {
		return entities.Coupon{}, fmt.Errorf("get coupon: %w", err)
	}

	c.DiscountType = entities.DiscountType(discountType)
	c.ValidFrom = validFrom
	c.ValidUntil = validUntil
	c.UsesCount = int(usesCount)
	if maxUses != nil {
		n := int(*maxUses)
		c.MaxUses = &n
	}
	return c, nil
}
