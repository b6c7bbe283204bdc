package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "master_booking/internal/adapter/http/dto/request"
	response "master_booking/internal/adapter/http/dto/response"
	"master_booking/internal/adapter/http/middleware"
	"master_booking/internal/usecase"
)

type EmailHandler struct {
	usecase usecase.IEmailUseCase
}

func NewEmailHandler(uc usecase.IEmailUseCase) *EmailHandler {
	return &EmailHandler{usecase: uc}
}

// SendEmail godoc
// @Summary      Render and send a transactional email
// @Tags         internal
// @Accept       json
// @Produce      json
// @Security     InternalKey
// @Param        body  body      request.SendEmailRequest  true  "Template, recipient and data"
// @Success      200   {object}  response.SendEmailResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Router       /functions/v1/send-email [post]
func (h *EmailHandler) SendEmail(c *gin.Context) {
	var payload request.SendEmailRequest
	if err := middleware.DecodeBody(c, &payload); err != nil {
		c.JSON(errInvalidBody.HTTPStatus, errInvalidBody.ToHTTPError())
		return
	}

	res, err := h.usecase.Send(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SendEmailResponse{Success: true, Message: "Email sent successfully", EmailID: res.ID})
}
