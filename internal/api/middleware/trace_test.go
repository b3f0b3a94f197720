package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/recruit-api/internal/api/middleware"
	"github.com/phrazzld/recruit-api/internal/api/shared"
	"github.com/phrazzld/recruit-api/internal/platform/logger"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	base, logBuf := logger.NewTestLogger(t)

	var seenTraceID string
	handler := middleware.TraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
	}))

	t.Run("generates a trace ID", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/candidates", nil))

		_, err := uuid.Parse(seenTraceID)
		require.NoError(t, err)
		assert.Equal(t, seenTraceID, rec.Header().Get(shared.TraceIDHeader))
		logger.AssertLogContains(t, logBuf, `"trace_id":"`+seenTraceID+`"`)
	})

	t.Run("reuses a valid client trace ID", func(t *testing.T) {
		given := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
		req.Header.Set(shared.TraceIDHeader, given)

		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, given, seenTraceID)
	})

	t.Run("replaces a malformed client trace ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
		req.Header.Set(shared.TraceIDHeader, "not a uuid\n")

		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.NotEqual(t, "not a uuid\n", seenTraceID)
		_, err := uuid.Parse(seenTraceID)
		assert.NoError(t, err)
	})
}
