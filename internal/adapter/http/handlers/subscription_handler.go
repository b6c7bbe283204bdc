package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "master_booking/internal/adapter/http/dto/request"
	response "master_booking/internal/adapter/http/dto/response"
	"master_booking/internal/adapter/http/middleware"
	"master_booking/internal/usecase"
)

// SubscriptionHandler exposes the Master Club membership endpoints.
type SubscriptionHandler struct {
	usecase usecase.ISubscriptionUseCase
}

func NewSubscriptionHandler(uc usecase.ISubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{usecase: uc}
}

// CheckSubscription godoc
// @Summary      Look up the active membership for an email
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        body  body      request.CheckSubscriptionRequest  true  "Email"
// @Success      200   {object}  response.SubscriptionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /functions/v1/check-subscription [post]
func (h *SubscriptionHandler) CheckSubscription(c *gin.Context) {
	var payload request.CheckSubscriptionRequest
	if err := middleware.DecodeBody(c, &payload); err != nil {
		c.JSON(errInvalidBody.HTTPStatus, errInvalidBody.ToHTTPError())
		return
	}

	view, err := h.usecase.Check(c.Request.Context(), payload.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSubscriptionView(view))
}

// CreateSubscription godoc
// @Summary      Start a Master Club membership
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateSubscriptionRequest  true  "Customer and payment method"
// @Success      200   {object}  response.CreateSubscriptionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /functions/v1/create-subscription [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var payload request.CreateSubscriptionRequest
	if err := middleware.DecodeBody(c, &payload); err != nil {
		c.JSON(errInvalidBody.HTTPStatus, errInvalidBody.ToHTTPError())
		return
	}

	res, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCreatedSubscription(res))
}

// ManageSubscription godoc
// @Summary      Pause, resume, cancel or update a membership
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        body  body      request.ManageSubscriptionRequest  true  "Action"
// @Success      200   {object}  response.ManageSubscriptionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /functions/v1/manage-subscription [post]
func (h *SubscriptionHandler) ManageSubscription(c *gin.Context) {
	var payload request.ManageSubscriptionRequest
	if err := middleware.DecodeBody(c, &payload); err != nil {
		c.JSON(errInvalidBody.HTTPStatus, errInvalidBody.ToHTTPError())
		return
	}

	res, err := h.usecase.Manage(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromManagedSubscription(res))
}
