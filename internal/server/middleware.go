// File: middleware.go
// Title: HTTP Middleware
// Description: Request ID assignment and structured request logging.
// Version: v0.1.0
// Created: 2025-11-18

package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	lokalog "github.com/lokascript/semantic-go/core/log"
)

// requestIDHeader carries the request ID on responses
const requestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key holding the request ID
const requestIDKey = "request_id"

// requestID assigns each request an ID, honoring one supplied by the
// caller
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// requestLogger logs each request with its ID, status and duration
func requestLogger(logger *lokalog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithRequestID(c.GetString(requestIDKey))
		fields := lokalog.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}
		if c.Writer.Status() >= 500 {
			entry.Error("request failed", fields)
			return
		}
		entry.Info("request handled", fields)
	}
}
