package httptransport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Amalina-Hashim/eCommerceAPIs/internal/pkg/logging"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Metrics holds the HTTP-level instruments, registered by the caller.
type Metrics struct {
	Requests  *prometheus.CounterVec   // method, path, status
	Durations *prometheus.HistogramVec // method, path
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		Durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP request handling in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
	reg.MustRegister(m.Requests, m.Durations)
	return m
}

// ObservabilityMiddleware extracts W3C trace context, assigns an
// X-Request-ID, stores a request-scoped logger in the context, and records
// request metrics.
func ObservabilityMiddleware(base *zap.Logger, metrics *Metrics) func(http.Handler) http.Handler {
	prop := otel.GetTextMapPropagator()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := prop.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", requestID)

			logger := base.With(zap.String("request_id", requestID))
			if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
				logger = logger.With(
					zap.String("trace_id", sc.TraceID().String()),
					zap.String("span_id", sc.SpanID().String()),
				)
			}
			ctx = logging.ContextWithLogger(ctx, logger)

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(ctx))

			path := r.URL.Path
			if pattern := r.Pattern; pattern != "" {
				path = pattern
			}
			if metrics != nil {
				metrics.Requests.WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).Inc()
				metrics.Durations.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
			}
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
