package employee

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
	var query ListEmployeesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	employees, total, err := ctrl.service.List(c.Request.Context(), query)
	if err != nil {
		response.FromError(c, err)
		return
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	perPage := query.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	meta, links := response.NewPaginationMeta(total, page, perPage, len(employees))
	response.List(c, http.StatusOK, employees, meta, links)
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
	var req CreateEmployeeRequest
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
	var req UpdateEmployeeRequest
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

	response.Message(c, http.StatusOK, "Employee deleted.")
}
