package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vibecommerce/vibecommerce-backend/pkg/logger"
)

const (
	requestIDKey     = "request_id"
	requestLoggerKey = "request_logger"
)

// RequestLogger tags every request with a request id, logs it on completion
// and exposes a field-scoped logger to downstream handlers.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		reqLogger := logger.WithContext(map[string]interface{}{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		})
		c.Set(requestLoggerKey, reqLogger)

		c.Next()

		fields := map[string]interface{}{
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"client_ip":   c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		if c.Writer.Status() >= 500 {
			reqLogger.Error("Request failed", nil, fields)
		} else {
			reqLogger.Info("Request completed", fields)
		}
	}
}

// GetRequestLogger returns the request-scoped logger, or the global one
// outside the middleware chain
func GetRequestLogger(c *gin.Context) *logger.Logger {
	if v, exists := c.Get(requestLoggerKey); exists {
		if l, ok := v.(*logger.Logger); ok {
			return l
		}
	}
	return logger.Get()
}

// GetRequestID returns the request id assigned by RequestLogger
func GetRequestID(c *gin.Context) string {
	if v, exists := c.Get(requestIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
