package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"master_booking/internal/adapter/http/handlers/mocks"
	"master_booking/internal/domain/entities"
)

func TestCouponHandler_ValidateCoupon(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid coupon", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		uc.EXPECT().Validate(gomock.Any(), "ten", int64(10000)).Return(entities.CouponDecision{
			Valid: true, Code: "TEN", DiscountType: entities.DiscountPercent, DiscountValue: 10,
			DiscountPence: 1000, FinalTotalPence: 9000, Label: "10% off",
		})

		w := serve(http.MethodPost, `{"code":"ten","order_total_pence":10000}`, h.ValidateCoupon, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		out := decode(t, w)
		if out["valid"] != true || out["discount_pence"] != float64(1000) || out["label"] != "10% off" {
			t.Fatalf("unexpected body %v", out)
		}
	})

	t.Run("rejection is still 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)

		uc.EXPECT().Validate(gomock.Any(), "OLD", int64(3000)).Return(entities.CouponDecision{Valid: false, Reason: entities.CouponReasonExpired})

		w := serve(http.MethodPost, `{"code":"OLD","order_total_pence":3000}`, h.ValidateCoupon, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		out := decode(t, w)
		if out["valid"] != false || out["error"] != entities.CouponReasonExpired {
			t.Fatalf("unexpected body %v", out)
		}
	})

	t.Run("malformed total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewCouponHandler(mocks.NewMockICouponUseCase(ctrl))

		w := serve(http.MethodPost, `{"code":"TEN","order_total_pence":"lots"}`, h.ValidateCoupon, nil)
		if w.Code != http.StatusOK || decode(t, w)["valid"] != false {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
