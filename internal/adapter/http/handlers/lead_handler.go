package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "master_booking/internal/adapter/http/dto/request"
	response "master_booking/internal/adapter/http/dto/response"
	"master_booking/internal/adapter/http/middleware"
	"master_booking/internal/usecase"
)

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// SaveHeroLead godoc
// @Summary      Save a lead from the landing page form
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      request.HeroLeadRequest  true  "Lead"
// @Success      200   {object}  response.SuccessResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /functions/v1/save-hero-lead [post]
func (h *LeadHandler) SaveHeroLead(c *gin.Context) {
	var payload request.HeroLeadRequest
	if err := middleware.DecodeBody(c, &payload); err != nil {
		c.JSON(errInvalidBody.HTTPStatus, errInvalidBody.ToHTTPError())
		return
	}

	if _, err := h.usecase.SaveHeroLead(c.Request.Context(), payload.ToInput()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

// NotifyBookingLead godoc
// @Summary      Tell the team about a quote started in the booking flow
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      request.BookingLeadRequest  true  "Lead"
// @Success      200   {object}  response.SuccessResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /functions/v1/notify-booking-lead [post]
func (h *LeadHandler) NotifyBookingLead(c *gin.Context) {
	var payload request.BookingLeadRequest
	if err := middleware.DecodeBody(c, &payload); err != nil {
		c.JSON(errInvalidBody.HTTPStatus, errInvalidBody.ToHTTPError())
		return
	}

	if err := h.usecase.NotifyBookingLead(c.Request.Context(), payload.ToInput()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}
