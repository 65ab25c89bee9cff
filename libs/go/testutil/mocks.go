package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/cyphera/cyphera-expense/libs/go/types/business"
)

// MockSequenceSink records pushed sequence updates
type MockSequenceSink struct {
	mock.Mock
}

func (m *MockSequenceSink) Apply(update business.SequenceUpdate) {
	m.Called(update)
}

// MockSequenceSource serves a fixed numbering scheme
type MockSequenceSource struct {
	mock.Mock
}

func (m *MockSequenceSource) Current() business.Sequential {
	args := m.Called()
	return args.Get(0).(business.Sequential)
}

// TestContext creates a test Gin context
func TestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	return ctx, recorder
}

// PerformJSONRequest sends body, JSON-encoded unless nil, through router
func PerformJSONRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// DecodeJSON decodes a recorded response body into out
func DecodeJSON(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	t.Helper()

	if err := json.Unmarshal(recorder.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", recorder.Body.String(), err)
	}
}

// AssertStatusCode checks HTTP status code
func AssertStatusCode(t *testing.T, recorder *httptest.ResponseRecorder, expected int) {
	t.Helper()

	if recorder.Code != expected {
		t.Errorf("Expected status code %d, got %d. Response body: %s",
			expected, recorder.Code, recorder.Body.String())
	}
}
