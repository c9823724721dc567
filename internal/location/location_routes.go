package location

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	locations := r.Group("/locations")
	{
		locations.GET("/regions", handler.Regions)
		locations.GET("/regions/:code/provinces", handler.Provinces)
		locations.GET("/provinces/:code/cities-municipalities", handler.Cities)
		locations.GET("/cities-municipalities/:code/barangays", handler.Barangays)
	}
}
