package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"blogging-service/internal/metrics"
)

// Metrics records request counters and latency per route pattern.
func Metrics(provider metrics.MetricsProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		provider.IncrementHTTPRequests(c.Request.Method, path, strconv.Itoa(c.Writer.Status()))
		provider.RecordHTTPRequestDuration(c.Request.Method, path, time.Since(start).Seconds())
	}
}
