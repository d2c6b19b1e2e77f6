// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"comment-threads/internal/metrics"
)

// unmeteredPaths are probe and scrape routes left out of HTTP metrics.
var unmeteredPaths = map[string]struct{}{
	"/metrics": {},
	"/live":    {},
}

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP requests.
// Requests are labelled by route template, so /api/v1/:kind/:id/comments is one
// series regardless of content item.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, skip := unmeteredPaths[c.FullPath()]; skip {
			c.Next()
			return
		}

		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}
