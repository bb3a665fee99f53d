package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo-app/kakeibo-backend/internal/metrics"
)

// MetricsMiddleware records request counts and latency per route.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		// Use the route template so path params don't explode cardinality
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.HTTPRequestDuration.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
		m.HTTPRequestsTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
