package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivekmishra161/AKC-autoparts-1/pkg/metrics"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/middleware"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/sse"
)

func TestMiddlewareRecordsStatus(t *testing.T) {
	h := metrics.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RequestTotal.WithLabelValues("GET", "/missing", "404")))
}

// The full production stack wraps handlers in both the metrics and the
// logging writer; an SSE event must still reach the client through them.
func TestMiddlewarePreservesFlusher(t *testing.T) {
	h := metrics.Middleware()(middleware.Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stream := sse.New(w, r)
		require.NotNil(t, stream)
		require.NoError(t, stream.Send("order.placed", map[string]string{"id": "o1"}))
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/events", nil))

	assert.True(t, rec.Flushed)
	assert.Contains(t, rec.Body.String(), "event: order.placed")
}
