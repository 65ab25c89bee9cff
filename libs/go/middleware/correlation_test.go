package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name                 string
		requestCorrelationID string
		expectNewID          bool
	}{
		{
			name:        "New ID generated when header not present",
			expectNewID: true,
		},
		{
			name:                 "Existing ID preserved when header present",
			requestCorrelationID: "calc-correlation-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CorrelationIDMiddleware())

			var fromGin, fromContext string
			router.POST("/expense-invoices/calculate", func(c *gin.Context) {
				fromGin = GetCorrelationID(c)
				fromContext = CorrelationIDFromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/expense-invoices/calculate", nil)
			if tt.requestCorrelationID != "" {
				req.Header.Set(CorrelationIDHeader, tt.requestCorrelationID)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			responseID := w.Header().Get(CorrelationIDHeader)
			assert.Equal(t, responseID, fromGin)
			assert.Equal(t, responseID, fromContext)

			if tt.expectNewID {
				assert.Len(t, responseID, 36)
			} else {
				assert.Equal(t, tt.requestCorrelationID, responseID)
			}
		})
	}
}

func TestCorrelationIDFromContext_Missing(t *testing.T) {
	assert.Empty(t, CorrelationIDFromContext(context.Background()))
	assert.NotNil(t, LoggerFromContext(context.Background(), logger.ComponentAPI))
}
