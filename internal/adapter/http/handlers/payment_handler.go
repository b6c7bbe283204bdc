package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	request "master_booking/internal/adapter/http/dto/request"
	response "master_booking/internal/adapter/http/dto/response"
	"master_booking/internal/adapter/http/middleware"
	"master_booking/internal/usecase"
)

// PaymentHandler serves the two checkout paths: card now or pay later.
type PaymentHandler struct {
	intents  usecase.IPaymentIntentUseCase
	bookings usecase.IBookingUseCase
}

func NewPaymentHandler(intents usecase.IPaymentIntentUseCase, bookings usecase.IBookingUseCase) *PaymentHandler {
	return &PaymentHandler{intents: intents, bookings: bookings}
}

// CreatePaymentIntent godoc
// @Summary      Start a card payment for a booking
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.PaymentIntentRequest  true  "Amount in pence and booking data"
// @Success      200   {object}  response.PaymentIntentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /functions/v1/create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var payload request.PaymentIntentRequest
	if err := middleware.DecodeBody(c, &payload); err != nil {
		c.JSON(errInvalidBody.HTTPStatus, errInvalidBody.ToHTTPError())
		return
	}

	res, err := h.intents.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}

	slog.InfoContext(c.Request.Context(), "[payment][handler] intent created",
		"payment_intent_id", res.ID,
		"booking_ref", res.BookingRef,
		"client", middleware.ClientIdentity(c),
	)
	c.JSON(http.StatusOK, response.FromPaymentIntent(res))
}

// CreateBookingPayLater godoc
// @Summary      Book a job without taking a card
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.PayLaterRequest  true  "Amount in pounds and booking data"
// @Success      200   {object}  response.PayLaterResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /functions/v1/create-booking-pay-later [post]
func (h *PaymentHandler) CreateBookingPayLater(c *gin.Context) {
	var payload request.PayLaterRequest
	if err := middleware.DecodeBody(c, &payload); err != nil {
		c.JSON(errInvalidBody.HTTPStatus, errInvalidBody.ToHTTPError())
		return
	}

	booking, err := h.bookings.CreatePayLater(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayLaterBooking(booking))
}
