package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rosterd/internal/shared/metrics"
)

// Metrics returns a Gin middleware that records request latency by
// method, matched route and status code.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
