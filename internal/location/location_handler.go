package location

import (
	"net/http"

	"github.com/JSON-FX/lgu-sso/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (ctrl *Handler) Regions(c *gin.Context) {
	resp, err := ctrl.service.Regions(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Single(c, http.StatusOK, resp)
}

func (ctrl *Handler) Provinces(c *gin.Context) {
	resp, err := ctrl.service.Provinces(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Single(c, http.StatusOK, resp)
}

func (ctrl *Handler) Cities(c *gin.Context) {
	resp, err := ctrl.service.Cities(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Single(c, http.StatusOK, resp)
}

func (ctrl *Handler) Barangays(c *gin.Context) {
	resp, err := ctrl.service.Barangays(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Single(c, http.StatusOK, resp)
}
