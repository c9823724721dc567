package employee

import (
	"github.com/JSON-FX/lgu-sso/internal/access"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, accessHandler *access.Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.List)
		employees.POST("", handler.Create)
		employees.GET("/:uuid", handler.Get)
		employees.PUT("/:uuid", handler.Update)
		employees.DELETE("/:uuid", handler.Delete)

		employees.GET("/:uuid/applications", accessHandler.ListByEmployee)
		employees.POST("/:uuid/applications", accessHandler.GrantForEmployee)
		employees.PUT("/:uuid/applications/:app_uuid", accessHandler.UpdateForEmployee)
		employees.DELETE("/:uuid/applications/:app_uuid", accessHandler.RevokeForEmployee)
	}
}
