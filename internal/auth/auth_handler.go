package auth

import (
	"net/http"

	autherrors "github.com/JSON-FX/lgu-sso/internal/auth/errors"
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

func (ctrl *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := ctrl.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Single(c, http.StatusOK, resp)
}

func (ctrl *Handler) Logout(c *gin.Context) {
	employeeUUID := c.GetString("employee_uuid")
	jti := c.GetString("token_jti")
	if employeeUUID == "" || jti == "" {
		response.FromError(c, autherrors.ErrInvalidToken)
		return
	}

	if err := ctrl.service.Logout(c.Request.Context(), employeeUUID, jti); err != nil {
		response.FromError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Logged out.")
}

func (ctrl *Handler) LogoutAll(c *gin.Context) {
	employeeUUID := c.GetString("employee_uuid")
	if employeeUUID == "" {
		response.FromError(c, autherrors.ErrInvalidToken)
		return
	}

	if err := ctrl.service.LogoutAll(c.Request.Context(), employeeUUID); err != nil {
		response.FromError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Logged out of all sessions.")
}

func (ctrl *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := ctrl.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Single(c, http.StatusOK, resp)
}

func (ctrl *Handler) Me(c *gin.Context) {
	employeeUUID := c.GetString("employee_uuid")
	if employeeUUID == "" {
		response.FromError(c, autherrors.ErrInvalidToken)
		return
	}

	resp, err := ctrl.service.Me(c.Request.Context(), employeeUUID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Single(c, http.StatusOK, resp)
}
