package middleware

import (
	"context"

	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"
	correlationIDKey    = "correlationID"
)

type contextKey string

const correlationIDContextKey contextKey = "correlationID"

// CorrelationIDMiddleware tags every request with a correlation id, reusing the
// caller's X-Correlation-ID when present.
func CorrelationIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(CorrelationIDHeader)
		if correlationID == "" {
			correlationID = uuid.New().String()
		}

		c.Set(correlationIDKey, correlationID)
		c.Header(CorrelationIDHeader, correlationID)
		c.Request = c.Request.WithContext(WithCorrelationID(c.Request.Context(), correlationID))

		c.Next()
	}
}

// GetCorrelationID returns the correlation id stored on the gin context
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(correlationIDKey)
}

// WithCorrelationID stores a correlation id on ctx
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDContextKey, correlationID)
}

// CorrelationIDFromContext returns the correlation id stored on ctx, if any
func CorrelationIDFromContext(ctx context.Context) string {
	if correlationID, ok := ctx.Value(correlationIDContextKey).(string); ok {
		return correlationID
	}
	return ""
}

// LoggerFromContext returns the component logger enriched with the request's
// correlation id.
func LoggerFromContext(ctx context.Context, component logger.LogComponent) *zap.Logger {
	log := logger.WithComponent(component)
	if correlationID := CorrelationIDFromContext(ctx); correlationID != "" {
		return log.With(zap.String("correlation_id", correlationID))
	}
	return log
}
