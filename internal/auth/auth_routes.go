package auth

import (
	"github.com/JSON-FX/lgu-sso/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the session endpoints. Login sits outside the authn
// gate and behind an IP limiter; everything else requires a live access
// token.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/refresh", middleware.RateLimitByIP(0.5, 10), handler.Refresh)
		auth.POST("/logout", authn, handler.Logout)
		auth.POST("/logout-all", authn, handler.LogoutAll)
		auth.GET("/me", authn, middleware.RateLimitByUser(2, 5), handler.Me)
	}
}
