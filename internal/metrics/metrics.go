package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CacheMetrics counts entity cache events per collection.
type CacheMetrics struct {
	hits   *prometheus.CounterVec
	misses *prometheus.CounterVec
	loads  *prometheus.CounterVec
}

func NewCacheMetrics(reg prometheus.Registerer) *CacheMetrics {
	factory := promauto.With(reg)
	return &CacheMetrics{
		hits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "signflow_cache_hits_total",
			Help: "Cache reads served from a resolved entry.",
		}, []string{"collection"}),
		misses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "signflow_cache_misses_total",
			Help: "Cache reads that triggered or joined an upstream fetch.",
		}, []string{"collection"}),
		loads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "signflow_cache_loads_total",
			Help: "Completed upstream fetches by outcome.",
		}, []string{"collection", "outcome"}),
	}
}

func (m *CacheMetrics) Hit(collection string) {
	m.hits.WithLabelValues(collection).Inc()
}

func (m *CacheMetrics) Miss(collection string) {
	m.misses.WithLabelValues(collection).Inc()
}

func (m *CacheMetrics) LoadFinished(collection string, ok bool) {
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.loads.WithLabelValues(collection, outcome).Inc()
}

// Handler exposes the registry in Prometheus text format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Middleware records request duration per route pattern and status code.
func Middleware(reg prometheus.Registerer) func(http.Handler) http.Handler {
	duration := promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "signflow_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			duration.WithLabelValues(r.Method, route, strconv.Itoa(recorder.status)).
				Observe(time.Since(start).Seconds())
		})
	}
}
