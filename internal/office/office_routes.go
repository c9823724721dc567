package office

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	offices := r.Group("/offices")
	{
		offices.GET("", handler.List)
		offices.GET("/:id", handler.Get)
	}
}
