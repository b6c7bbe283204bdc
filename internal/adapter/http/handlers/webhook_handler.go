package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "master_booking/internal/adapter/http/dto/response"
	"master_booking/internal/adapter/http/middleware"
	"master_booking/internal/infrastructure/metrics"
	"master_booking/internal/usecase"
)

const stripeSignatureHeader = "Stripe-Signature"

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// StripeWebhook godoc
// @Summary      Receive Stripe events
// @Description  The raw body is verified against the Stripe-Signature header before anything else.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header    string  true  "Stripe signature"
// @Success      200               {object}  response.WebhookResponse
// @Failure      400               {object}  pkg.HTTPError
// @Router       /functions/v1/stripe-webhook [post]
func (h *WebhookHandler) StripeWebhook(c *gin.Context) {
	payload, err := middleware.RawBody(c)
	if err != nil {
		c.JSON(errInvalidBody.HTTPStatus, errInvalidBody.ToHTTPError())
		return
	}

	res, err := h.usecase.Handle(c.Request.Context(), payload, c.GetHeader(stripeSignatureHeader))
	if err != nil {
		eventType := res.Type
		if eventType == "" {
			eventType = "unknown"
		}
		metrics.WebhookEvents.WithLabelValues(eventType, metrics.OutcomeFailed).Inc()
		respondError(c, err)
		return
	}

	outcome := metrics.OutcomeOK
	if !res.Handled {
		outcome = metrics.OutcomeIgnored
	}
	metrics.WebhookEvents.WithLabelValues(res.Type, outcome).Inc()
	c.JSON(http.StatusOK, response.WebhookResponse{Received: true, Type: res.Type})
}
