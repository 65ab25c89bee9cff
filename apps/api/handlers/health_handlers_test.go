package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/cyphera/cyphera-expense/libs/go/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_Health(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := testutil.PerformJSONRequest(t, router, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Concurrency(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHealthHandler()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, w := testutil.TestContext(t)
			c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

			handler.Health(c)

			var response HealthResponse
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, "ok", response.Status)
		}()
	}
	wg.Wait()
}

func BenchmarkHealthHandler_Health(b *testing.B) {
	gin.SetMode(gin.TestMode)
	handler := NewHealthHandler()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

		handler.Health(c)
	}
}
