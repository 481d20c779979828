package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rosterd/internal/infrastructure/ratelimit"
	"rosterd/internal/shared/logger"
	"rosterd/internal/shared/utils"
)

// LoginRateLimiter throttles authentication attempts per client IP.
type LoginRateLimiter struct {
	limiter ratelimit.Limiter
	logger  logger.Interface
}

// NewLoginRateLimiter creates a login rate limiter backed by the given limiter.
func NewLoginRateLimiter(limiter ratelimit.Limiter, logger logger.Interface) *LoginRateLimiter {
	return &LoginRateLimiter{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit returns a Gin middleware that rejects clients exceeding the
// configured attempt rate with 429.
func (rl *LoginRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		allowed, err := rl.limiter.Allow(c.Request.Context(), clientIP)
		if err != nil {
			// If the limiter backend is unavailable, allow the request
			// to avoid blocking all logins
			rl.logger.Warnw("rate limiter unavailable, allowing request",
				"client_ip", clientIP,
				"error", err)
			c.Next()
			return
		}

		if !allowed {
			rl.logger.Warnw("login rate limit exceeded",
				"client_ip", clientIP,
				"path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many login attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
