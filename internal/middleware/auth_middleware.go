package middleware

import (
	"context"
	"strings"

	autherrors "github.com/JSON-FX/lgu-sso/internal/auth/errors"
	"github.com/JSON-FX/lgu-sso/internal/shared/contextutil"
	"github.com/JSON-FX/lgu-sso/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const accessTokenType = "access"

// TokenVerifier is what Auth needs from the session store: parse the
// presented token and confirm its jti is still allowlisted.
type TokenVerifier interface {
	Verify(ctx context.Context, token, tokenType string) (employeeUUID string, jti string, err error)
}

// SuperAdminChecker reports whether the employee holds a super_administrator
// grant on any application.
type SuperAdminChecker interface {
	HasSuperAdmin(ctx context.Context, employeeUUID string) (bool, error)
}

// Auth requires a live Bearer access token and stamps the employee onto both
// the gin context and the request context.
func Auth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			response.FromError(c, autherrors.ErrInvalidToken)
			c.Abort()
			return
		}

		employeeUUID, jti, err := tokens.Verify(c.Request.Context(), tokenString, accessTokenType)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		c.Set("employee_uuid", employeeUUID)
		c.Set("token_jti", jti)

		ctx := contextutil.WithActorID(c.Request.Context(), employeeUUID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireSuperAdmin gates the management surface. Auth must run first; the
// grant is re-checked per request so a revoked super administrator loses the
// dashboard as soon as the grant row is gone, not when the token expires.
func RequireSuperAdmin(grants SuperAdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeUUID := c.GetString("employee_uuid")
		if employeeUUID == "" {
			response.FromError(c, autherrors.ErrInvalidToken)
			c.Abort()
			return
		}

		isSuperAdmin, err := grants.HasSuperAdmin(c.Request.Context(), employeeUUID)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}
		if !isSuperAdmin {
			response.FromError(c, autherrors.ErrSuperAdminRequired)
			c.Abort()
			return
		}

		c.Next()
	}
}
