package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "master_booking/internal/adapter/http/dto/request"
	response "master_booking/internal/adapter/http/dto/response"
	"master_booking/internal/adapter/http/middleware"
	"master_booking/internal/usecase"
)

// CheckoutHandler records abandoned checkouts and runs the recovery emails on demand.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// TrackCheckout godoc
// @Summary      Record an abandoned checkout
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      request.TrackCheckoutRequest  true  "Checkout details"
// @Success      200   {object}  response.TrackCheckoutResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /functions/v1/track-checkout [post]
func (h *CheckoutHandler) TrackCheckout(c *gin.Context) {
	var payload request.TrackCheckoutRequest
	if err := middleware.DecodeBody(c, &payload); err != nil {
		c.JSON(errInvalidBody.HTTPStatus, errInvalidBody.ToHTTPError())
		return
	}

	res, err := h.usecase.TrackAbandon(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTrackedCheckout(res))
}

// SendRecoveryEmails godoc
// @Summary      Send the 1h and 24h checkout reminders
// @Tags         internal
// @Produce      json
// @Security     InternalKey
// @Success      200  {object}  response.RecoveryResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /functions/v1/send-recovery-emails [post]
func (h *CheckoutHandler) SendRecoveryEmails(c *gin.Context) {
	res, err := h.usecase.SendRecoveryEmails(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecovery(res))
}
