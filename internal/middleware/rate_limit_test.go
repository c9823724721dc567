package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JSON-FX/lgu-sso/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitByIP(t *testing.T) {
	router := setupMiddlewareRouter()
	router.GET("/login", middleware.RateLimitByIP(1, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.RemoteAddr = ip + ":51000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	// burst of 2 per caller, then 429
	assert.Equal(t, http.StatusOK, do("203.0.113.7"))
	assert.Equal(t, http.StatusOK, do("203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, do("203.0.113.7"))

	// a different caller has its own bucket
	assert.Equal(t, http.StatusOK, do("198.51.100.9"))
}

func TestRateLimitByUser(t *testing.T) {
	t.Run("buckets per employee", func(t *testing.T) {
		router := setupMiddlewareRouter()
		router.GET("/me", func(c *gin.Context) {
			c.Set("employee_uuid", c.GetHeader("X-Test-Employee"))
			c.Next()
		}, middleware.RateLimitByUser(1, 1), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		do := func(emp string) int {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			req.Header.Set("X-Test-Employee", emp)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			return w.Code
		}

		empA := uuid.NewString()
		empB := uuid.NewString()

		assert.Equal(t, http.StatusOK, do(empA))
		assert.Equal(t, http.StatusTooManyRequests, do(empA))
		assert.Equal(t, http.StatusOK, do(empB))
	})

	t.Run("no actor falls through", func(t *testing.T) {
		router := setupMiddlewareRouter()
		router.GET("/open", middleware.RateLimitByUser(1, 1), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}
