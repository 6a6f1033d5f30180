package http

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type RateLimitSettings struct {
	RequestsPerSecond float64 `envconfig:"REQUESTS_PER_SECOND" default:"5"`
	Burst             int     `envconfig:"BURST" default:"10"`
}

// RateLimiter throttles each caller separately: by user id once
// authenticated, by client address otherwise.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewRateLimiter(settings RateLimitSettings) *RateLimiter {
	return &RateLimiter{
		limit:    rate.Limit(settings.RequestsPerSecond),
		burst:    settings.Burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (rl *RateLimiter) GetMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if claims, ok := claimsFromContext(c); ok {
			key = "user:" + claims.UserID
		}

		if !rl.limiter(key).Allow() {
			abortWithMessage(c, http.StatusTooManyRequests, "too many requests")
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[key] = limiter
	}

	return limiter
}
