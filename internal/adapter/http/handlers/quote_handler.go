package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "master_booking/internal/adapter/http/dto/request"
	"master_booking/internal/adapter/http/middleware"
	"master_booking/internal/usecase"
)

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CalculateQuote godoc
// @Summary      Price a service selection
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body  body      request.CalculateQuoteRequest  true  "Category and selection"
// @Success      200   {object}  pricing.Quote
// @Failure      400   {object}  pkg.HTTPError
// @Router       /functions/v1/calculate-quote [post]
func (h *QuoteHandler) CalculateQuote(c *gin.Context) {
	var payload request.CalculateQuoteRequest
	if err := middleware.DecodeBody(c, &payload); err != nil {
		c.JSON(errInvalidBody.HTTPStatus, errInvalidBody.ToHTTPError())
		return
	}

	quote, err := h.usecase.Calculate(c.Request.Context(), payload.Category, payload.Selection)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// RateTables godoc
// @Summary      Published rate card
// @Tags         pricing
// @Produce      json
// @Success      200  {object}  usecase.RateCard
// @Router       /functions/v1/rate-tables [get]
func (h *QuoteHandler) RateTables(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.RateCard(c.Request.Context()))
}
