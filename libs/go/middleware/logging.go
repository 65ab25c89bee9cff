package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxLoggedBody caps how much of a request body is echoed in debug logs
const maxLoggedBody = 4096

// RequestLoggingMiddleware logs one line per completed request. In development
// the request body is logged too, which helps when replaying calculation
// payloads.
func RequestLoggingMiddleware(isDevelopment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		log := logger.WithComponent(logger.ComponentMiddleware)

		if isDevelopment && c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err == nil {
				c.Request.Body = io.NopCloser(bytes.NewReader(body))
				logged := body
				if len(logged) > maxLoggedBody {
					logged = logged[:maxLoggedBody]
				}
				log.Debug("Request body",
					zap.String("correlation_id", GetCorrelationID(c)),
					zap.String("path", c.Request.URL.Path),
					zap.ByteString("body", logged),
					zap.Int("body_size", len(body)))
			}
		}

		c.Next()

		fields := []zap.Field{
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		for _, ginErr := range c.Errors {
			fields = append(fields, zap.NamedError("request_error", ginErr.Err))
		}

		if c.Writer.Status() >= 500 {
			log.Error("Request failed", fields...)
			return
		}
		log.Info("Request completed", fields...)
	}
}

// MaxBodySizeMiddleware rejects request bodies larger than limit bytes
func MaxBodySizeMiddleware(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = io.NopCloser(io.LimitReader(c.Request.Body, limit))
		}
		c.Next()
	}
}
