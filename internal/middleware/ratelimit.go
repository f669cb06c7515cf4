package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiters hands out one token bucket per client IP.
type clientLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func (cl *clientLimiters) get(ip string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	l, ok := cl.limiters[ip]
	if !ok {
		l = rate.NewLimiter(cl.rps, cl.burst)
		cl.limiters[ip] = l
	}
	return l
}

// RateLimit returns a middleware limiting each client IP to rps requests per
// second with the given burst. Rejected requests get 429 with a Retry-After
// hint.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	cl := &clientLimiters{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}

	return func(c *gin.Context) {
		if !cl.get(c.ClientIP()).Allow() {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   gin.H{"code": "RATE_LIMITED", "message": "too many requests"},
			})
			return
		}
		c.Next()
	}
}
