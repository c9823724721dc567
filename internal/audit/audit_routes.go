package audit

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	logs := r.Group("/audit")
	{
		logs.GET("/logs", handler.List)
	}
}
