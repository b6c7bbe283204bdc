package usecase

//go:generate mockgen -source=coupon_usecase.go -destination=../adapter/http/handlers/mocks/coupon_usecase_mock.go -package=mocks

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"master_booking/internal/domain/entities"
	"master_booking/internal/usecase/interfaces"
)

// ICouponUseCase checks a coupon code against an order subtotal.
// An unusable code is reported in the decision, never as an error.
type ICouponUseCase interface {
	Validate(ctx context.Context, code string, subtotalPence int64) entities.CouponDecision
}

type CouponUseCase struct {
	repo interfaces.ICouponRepository
	now  func() time.Time
}

var _ ICouponUseCase = (*CouponUseCase)(nil)

func NewCouponUseCase(repo interfaces.ICouponRepository) *CouponUseCase {
	return &CouponUseCase{repo: repo, now: time.Now}
}

func (u *CouponUseCase) Validate(ctx context.Context, code string, subtotalPence int64) entities.CouponDecision {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || len(code) > 50 || u.repo == nil {
		return entities.CouponDecision{Reason: entities.CouponReasonInvalid}
	}

	coupon, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		slog.ErrorContext(ctx, "[coupon][usecase] lookup failed", "code", code, "error", err)
		return entities.CouponDecision{Code: code, Reason: entities.CouponReasonInvalid}
	}

	decision := coupon.Resolve(subtotalPence, u.now())
	if decision.Code == "" {
		decision.Code = code
	}
	slog.InfoContext(ctx, "[coupon][usecase] validated",
		"code", code,
		"valid", decision.Valid,
		"discount_pence", decision.DiscountPence,
	)
	return decision
}
