package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cyphera/cyphera-expense/apps/api/handlers"
	"github.com/cyphera/cyphera-expense/libs/go/constants"
	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/cyphera/cyphera-expense/libs/go/services"
	"github.com/cyphera/cyphera-expense/libs/go/testutil"
	"github.com/cyphera/cyphera-expense/libs/go/types/api/responses"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, tracker *services.SequenceTracker) (*gin.Engine, *testutil.MockDatabase) {
	t.Helper()
	mockDB := testutil.NewMockDatabase(t)
	initializeWithCommon(handlers.NewCommonServicesWithQuerier(mockDB.Querier, sequenceSourceOrNil(tracker)))

	router := gin.New()
	InitializeRoutes(router)
	return router, mockDB
}

func TestInitializeRoutes_Health(t *testing.T) {
	router, _ := newTestServer(t, nil)

	w := testutil.PerformJSONRequest(t, router, http.MethodGet, "/health", nil)
	testutil.AssertStatusCode(t, w, http.StatusOK)
	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"), "health checks are not rate limited")

	var body responses.HealthResponse
	testutil.DecodeJSON(t, w, &body)
	assert.Equal(t, "ok", body.Status)
}

func TestInitializeRoutes_ExpenseInvoiceSequential(t *testing.T) {
	seq := business.Sequential{Prefix: "DEP", DynamicSequence: business.DateFormatYYYY, Next: 9}

	t.Run("reads the store without a live tracker", func(t *testing.T) {
		router, mockDB := newTestServer(t, nil)
		mockDB.ExpectSequentialConfig(constants.ExpenseInvoiceSequenceConfigKey, seq)

		w := testutil.PerformJSONRequest(t, router, http.MethodGet, "/api/v1/sequentials/expense-invoice", nil)
		testutil.AssertStatusCode(t, w, http.StatusOK)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))

		var body responses.SequentialResponse
		testutil.DecodeJSON(t, w, &body)
		assert.Equal(t, 9, body.Next)
		assert.Contains(t, body.Formatted, "DEP-")
	})

	t.Run("prefers the live tracker", func(t *testing.T) {
		tracker := services.NewSequenceTracker(seq)
		tracker.Apply(business.SequenceUpdate{Value: 15})
		router, _ := newTestServer(t, tracker)

		w := testutil.PerformJSONRequest(t, router, http.MethodGet, "/api/v1/sequentials/expense-invoice", nil)
		testutil.AssertStatusCode(t, w, http.StatusOK)

		var body responses.SequentialResponse
		testutil.DecodeJSON(t, w, &body)
		assert.Equal(t, 15, body.Next)
		assert.Contains(t, body.Formatted, "-0015")
	})
}

func TestInitializeRoutes_ParseSequential(t *testing.T) {
	router, _ := newTestServer(t, nil)

	w := testutil.PerformJSONRequest(t, router, http.MethodPost, "/api/v1/sequentials/parse", map[string]string{
		"value": "DEP-25-03-0042",
	})
	testutil.AssertStatusCode(t, w, http.StatusOK)

	var body responses.SequentialResponse
	testutil.DecodeJSON(t, w, &body)
	assert.Equal(t, "DEP", body.Prefix)
	assert.Equal(t, "yy-MM", body.DynamicSequence)
	assert.Equal(t, 42, body.Next)
}

func TestInitializeRoutes_RejectsOversizedBody(t *testing.T) {
	router, _ := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sequentials/parse", nil)
	req.ContentLength = maxRequestBodyBytes + 1
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestConfigureCORS(t *testing.T) {
	t.Setenv(constants.EnvCORSOrigins, "https://app.example.com, https://admin.example.com")

	router := gin.New()
	router.Use(configureCORS())
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name        string
		origin      string
		wantAllowed bool
	}{
		{name: "configured origin", origin: "https://admin.example.com", wantAllowed: true},
		{name: "unknown origin", origin: "https://evil.example.com", wantAllowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/health", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if tt.wantAllowed {
				assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestSplitEnvList(t *testing.T) {
	fallback := []string{"GET"}

	t.Setenv("TEST_SPLIT_LIST", "")
	assert.Equal(t, fallback, splitEnvList("TEST_SPLIT_LIST", fallback))

	t.Setenv("TEST_SPLIT_LIST", " GET , POST,OPTIONS ")
	require.Equal(t, []string{"GET", "POST", "OPTIONS"}, splitEnvList("TEST_SPLIT_LIST", fallback))
}
