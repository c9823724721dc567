package application

import (
	"github.com/JSON-FX/lgu-sso/internal/access"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, accessHandler *access.Handler) {
	apps := r.Group("/applications")
	{
		apps.GET("", handler.List)
		apps.POST("", handler.Create)
		apps.GET("/:uuid", handler.Get)
		apps.PUT("/:uuid", handler.Update)
		apps.DELETE("/:uuid", handler.Delete)
		apps.POST("/:uuid/regenerate-secret", handler.RegenerateSecret)

		apps.GET("/:uuid/employees", accessHandler.ListByApplication)
		apps.POST("/:uuid/employees", accessHandler.GrantForApplication)
		apps.PUT("/:uuid/employees/:emp_uuid", accessHandler.UpdateForApplication)
		apps.DELETE("/:uuid/employees/:emp_uuid", accessHandler.RevokeForApplication)
	}
}
