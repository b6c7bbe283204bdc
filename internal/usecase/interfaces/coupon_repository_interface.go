package interfaces

//go:generate mockgen -source=coupon_repository_interface.go -destination=mocks/coupon_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"master_booking/internal/domain/entities"
)

// ICouponRepository looks coupons up by code, case-insensitively.
// A zero Coupon means the code does not exist.
type ICouponRepository interface {
	GetByCode(ctx context.Context, code string) (entities.Coupon, error)
}
