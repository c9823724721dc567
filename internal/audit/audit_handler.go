package audit

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
	var query ListAuditLogsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	entries, total, err := ctrl.service.List(c.Request.Context(), query)
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

	meta, links := response.NewPaginationMeta(total, page, perPage, len(entries))
	response.List(c, http.StatusOK, entries, meta, links)
}
