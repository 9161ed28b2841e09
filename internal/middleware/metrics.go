package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shareit/internal/metrics"
)

// Metrics records a counter and latency histogram per route. The route
// template is used as the label, not the raw path, to keep cardinality low.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTP(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
