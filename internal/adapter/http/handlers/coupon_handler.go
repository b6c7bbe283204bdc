package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "master_booking/internal/adapter/http/dto/request"
	response "master_booking/internal/adapter/http/dto/response"
	"master_booking/internal/adapter/http/middleware"
	"master_booking/internal/domain/entities"
	"master_booking/internal/usecase"
)

type CouponHandler struct {
	usecase usecase.ICouponUseCase
}

func NewCouponHandler(uc usecase.ICouponUseCase) *CouponHandler {
	return &CouponHandler{usecase: uc}
}

// ValidateCoupon godoc
// @Summary      Check a coupon against an order total
// @Description  Always answers 200; a rejected code has valid=false and an error message.
// @Tags         coupons
// @Accept       json
// @Produce      json
// @Param        body  body      request.ValidateCouponRequest  true  "Code and order total in pence"
// @Success      200   {object}  response.CouponResponse
// @Router       /functions/v1/validate-coupon [post]
func (h *CouponHandler) ValidateCoupon(c *gin.Context) {
	var payload request.ValidateCouponRequest
	if err := middleware.DecodeBody(c, &payload); err != nil {
		c.JSON(http.StatusOK, response.CouponResponse{Valid: false, Error: entities.CouponReasonInvalid})
		return
	}

	d := h.usecase.Validate(c.Request.Context(), payload.Code, payload.OrderTotalPence)
	c.JSON(http.StatusOK, response.FromCouponDecision(d))
}
