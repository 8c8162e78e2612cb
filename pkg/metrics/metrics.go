// Package metrics provides Prometheus instrumentation.
//
// Wire it up once when building the handler:
//
//	r.Use(metrics.Middleware())
//	r.Get("/metrics", "metrics", metrics.Handler())
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks how long each HTTP request takes,
	// broken down by method, route path, and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "akc",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "akc",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestInFlight tracks how many requests are currently being served.
	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "akc",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	// OrdersPlaced counts successfully placed orders by payment method.
	OrdersPlaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "akc",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Total orders placed.",
		},
		[]string{"payment_method"},
	)

	// OrderValue tracks the total price of placed orders.
	OrderValue = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "akc",
		Subsystem: "orders",
		Name:      "value",
		Help:      "Total price of placed orders.",
		Buckets:   []float64{100, 500, 1_000, 5_000, 10_000, 50_000},
	})

	// ReviewsCreated counts submitted product reviews.
	ReviewsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "akc",
		Subsystem: "reviews",
		Name:      "created_total",
		Help:      "Total reviews submitted.",
	})

	// SignInFailures counts rejected sign-in attempts per realm.
	SignInFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "akc",
			Subsystem: "auth",
			Name:      "signin_failures_total",
			Help:      "Total failed sign-in attempts.",
		},
		[]string{"realm"}, // "customer" | "admin"
	)

	// CatalogFetches counts catalog refreshes from the upstream source.
	CatalogFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "akc",
			Subsystem: "catalog",
			Name:      "fetches_total",
			Help:      "Total catalog fetches from the upstream source.",
		},
		[]string{"result"}, // "ok" | "error"
	)

	// CatalogCacheHits counts catalog reads served from cache.
	CatalogCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "akc",
		Subsystem: "catalog",
		Name:      "cache_hits_total",
		Help:      "Total catalog reads served from the Redis cache.",
	})
)

// DefaultRegistry is the Prometheus registry for the application.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		OrdersPlaced,
		OrderValue,
		ReviewsCreated,
		SignInFailures,
		CatalogFetches,
		CatalogCacheHits,
	)
}

// responseRecorder wraps http.ResponseWriter to capture the status code.
type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush keeps SSE streaming working through the wrapper.
func (r *responseRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Middleware records the duration histogram, total counter and in-flight
// gauge for every request.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			path := r.URL.Path

			RequestInFlight.Inc()
			defer RequestInFlight.Dec()

			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rr, r)

			status := strconv.Itoa(rr.status)
			RequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
			RequestTotal.WithLabelValues(r.Method, path, status).Inc()
		})
	}
}

// Handler exposes the Prometheus metrics page. Mount it on GET /metrics.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	return h.ServeHTTP
}
