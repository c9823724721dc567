package application

import (
	"net/http"

	"github.com/JSON-FX/lgu-sso/internal/shared/apperror"
	"github.com/JSON-FX/lgu-sso/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (ctrl *Handler) List(c *gin.Context) {
	apps, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	// Application count is bounded in practice, so the list is unpaginated.
	response.Single(c, http.StatusOK, apps)
}

func (ctrl *Handler) Get(c *gin.Context) {
	resp, err := ctrl.service.Get(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Single(c, http.StatusOK, resp)
}

func (ctrl *Handler) Create(c *gin.Context) {
	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Single(c, http.StatusCreated, resp)
}

func (ctrl *Handler) Update(c *gin.Context) {
	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := ctrl.service.Update(c.Request.Context(), c.Param("uuid"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Single(c, http.StatusOK, resp)
}

func (ctrl *Handler) Delete(c *gin.Context) {
	if err := ctrl.service.Delete(c.Request.Context(), c.Param("uuid")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Application deleted.")
}

func (ctrl *Handler) RegenerateSecret(c *gin.Context) {
	resp, err := ctrl.service.RegenerateSecret(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Single(c, http.StatusOK, resp)
}
