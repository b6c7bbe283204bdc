package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "master_booking/internal/adapter/http/dto/request"
	response "master_booking/internal/adapter/http/dto/response"
	"master_booking/internal/adapter/http/middleware"
	"master_booking/internal/usecase"
)

type PartnerApplicationHandler struct {
	usecase usecase.IPartnerApplicationUseCase
}

func NewPartnerApplicationHandler(uc usecase.IPartnerApplicationUseCase) *PartnerApplicationHandler {
	return &PartnerApplicationHandler{usecase: uc}
}

// SubmitPartnerApplication godoc
// @Summary      Submit or complete a partner application
// @Description  Without complete the application is created and upload URLs are returned.
// @Description  With complete and id the uploaded documents are attached.
// @Tags         partners
// @Accept       json
// @Produce      json
// @Param        body  body      request.PartnerApplicationRequest  true  "Application"
// @Success      200   {object}  response.PartnerSubmissionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /functions/v1/submit-partner-application [post]
func (h *PartnerApplicationHandler) SubmitPartnerApplication(c *gin.Context) {
	var payload request.PartnerApplicationRequest
	if err := middleware.DecodeBody(c, &payload); err != nil {
		c.JSON(errInvalidBody.HTTPStatus, errInvalidBody.ToHTTPError())
		return
	}

	if payload.Complete {
		if _, err := h.usecase.Complete(c.Request.Context(), payload.ID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
		return
	}

	res, err := h.usecase.Submit(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPartnerSubmission(res))
}
