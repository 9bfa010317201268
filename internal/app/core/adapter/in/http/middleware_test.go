package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRecoveryMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := recoveryMiddleware(zap.NewNop())(panicking)

	req := httptest.NewRequest(http.MethodGet, "/accounts/123456789/balance", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// panic 收斂成標準 500 錯誤回應，不中斷程序
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Equal(t, "internal server error", body.Error)
	assert.Equal(t, "/accounts/123456789/balance", body.Path)
	assert.Equal(t, http.MethodGet, body.Method)
	assert.NotEmpty(t, body.Timestamp)
}

func TestRecoveryMiddlewarePassthrough(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := recoveryMiddleware(zap.NewNop())(ok)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
