package middleware

import (
	"net/http"
	"sync"

	"github.com/JSON-FX/lgu-sso/internal/shared/apperror"
	"github.com/JSON-FX/lgu-sso/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errTooManyRequests = apperror.New(
	apperror.CodeRateLimited,
	"Too many requests.",
	http.StatusTooManyRequests,
)

// keyedLimiter keeps one token bucket per key. Entries live for the process
// lifetime; the key cardinality here is employees and caller IPs, both small
// for a single LGU.
type keyedLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit
	b        int
}

func newKeyedLimiter(r rate.Limit, b int) *keyedLimiter {
	return &keyedLimiter{
		limiters: make(map[string]*rate.Limiter),
		r:        r,
		b:        b,
	}
}

func (k *keyedLimiter) get(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	limiter, exists := k.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(k.r, k.b)
		k.limiters[key] = limiter
	}
	return limiter
}

// RateLimitByIP buckets by caller address. Used on the unauthenticated
// surface, login above all.
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := newKeyedLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.get(c.ClientIP()).Allow() {
			response.FromError(c, errTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimitByUser buckets by the authenticated employee. Requests without an
// actor fall through; the IP limiter covers those.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := newKeyedLimiter(r, b)
	return func(c *gin.Context) {
		employeeUUID := c.GetString("employee_uuid")
		if employeeUUID == "" {
			c.Next()
			return
		}
		if !limiter.get(employeeUUID).Allow() {
			response.FromError(c, errTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
