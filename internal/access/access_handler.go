package access

import (
	"net/http"

	"github.com/JSON-FX/lgu-sso/internal/shared/apperror"
	"github.com/JSON-FX/lgu-sso/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Handler serves both orientations of the grant relation. The employee-side
// methods hang off /employees/:uuid/applications, the application-side ones
// off /applications/:uuid/employees; both write the same ledger.
type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (ctrl *Handler) ListByEmployee(c *gin.Context) {
	resp, err := ctrl.service.ListByEmployee(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Single(c, http.StatusOK, resp)
}

func (ctrl *Handler) GrantForEmployee(c *gin.Context) {
	var req GrantForEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := ctrl.service.Grant(c.Request.Context(), c.Param("uuid"), req.ApplicationUUID, req.Role)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Single(c, http.StatusCreated, resp)
}

func (ctrl *Handler) UpdateForEmployee(c *gin.Context) {
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := ctrl.service.UpdateRole(c.Request.Context(), c.Param("uuid"), c.Param("app_uuid"), req.Role)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Single(c, http.StatusOK, resp)
}

func (ctrl *Handler) RevokeForEmployee(c *gin.Context) {
	if err := ctrl.service.Revoke(c.Request.Context(), c.Param("uuid"), c.Param("app_uuid")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Access revoked.")
}

func (ctrl *Handler) ListByApplication(c *gin.Context) {
	resp, err := ctrl.service.ListByApplication(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Single(c, http.StatusOK, resp)
}

func (ctrl *Handler) GrantForApplication(c *gin.Context) {
	var req GrantForApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := ctrl.service.Grant(c.Request.Context(), req.EmployeeUUID, c.Param("uuid"), req.Role)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Single(c, http.StatusCreated, resp)
}

func (ctrl *Handler) UpdateForApplication(c *gin.Context) {
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := ctrl.service.UpdateRole(c.Request.Context(), c.Param("emp_uuid"), c.Param("uuid"), req.Role)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Single(c, http.StatusOK, resp)
}

func (ctrl *Handler) RevokeForApplication(c *gin.Context) {
	if err := ctrl.service.Revoke(c.Request.Context(), c.Param("emp_uuid"), c.Param("uuid")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Access revoked.")
}
