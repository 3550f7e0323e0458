package main

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger logs end-to-end request duration and response status for
// basic observability
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.RequestURI(),
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur_ms", time.Since(start).Milliseconds(),
		)
	}
}
