package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"shoplist/pkg/apierrors"
)

const (
	maxTrackedClients = 10000
	clientIdleTTL     = 10 * time.Minute
)

// RateLimitMiddleware applies a token bucket per client IP. A bucket is
// evicted once its client has been idle for clientIdleTTL.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	return rateLimit(rps, burst, clientIdleTTL)
}

func rateLimit(rps float64, burst int, idleTTL time.Duration) gin.HandlerFunc {
	if burst < 1 {
		burst = 1
	}
	limiters := expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, idleTTL)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		limiter, ok := limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
		// Add on every hit restarts the entry's TTL; Get alone does not.
		limiters.Add(ip, limiter)

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierrors.CreateError(http.StatusTooManyRequests, apierrors.MsgRateLimited, GetLang(c)))
			return
		}

		c.Next()
	}
}
