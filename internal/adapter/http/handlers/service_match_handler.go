package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "master_booking/internal/adapter/http/dto/request"
	response "master_booking/internal/adapter/http/dto/response"
	"master_booking/internal/adapter/http/middleware"
	"master_booking/internal/usecase"
)

type ServiceMatchHandler struct {
	usecase usecase.IServiceMatchUseCase
}

func NewServiceMatchHandler(uc usecase.IServiceMatchUseCase) *ServiceMatchHandler {
	return &ServiceMatchHandler{usecase: uc}
}

// MatchServices godoc
// @Summary      Rank catalogue services against a free-text request
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      request.MatchServicesRequest  true  "Query and candidates"
// @Success      200   {object}  response.MatchServicesResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /functions/v1/match-services-ai [post]
func (h *ServiceMatchHandler) MatchServices(c *gin.Context) {
	var payload request.MatchServicesRequest
	if err := middleware.DecodeBody(c, &payload); err != nil {
		c.JSON(errInvalidBody.HTTPStatus, errInvalidBody.ToHTTPError())
		return
	}

	ids, err := h.usecase.Match(c.Request.Context(), payload.UserQuery, payload.ServiceList)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMatchedIDs(ids))
}
