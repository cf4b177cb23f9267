package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "elhamas", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "elhamas", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	SafeFetchFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "elhamas", Name: "safe_fetch_fallbacks_total", Help: "Public reads answered with a fallback value."},
		[]string{"op", "reason"}, // reason: unconfigured|error|panic
	)
	SessionEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "elhamas", Name: "session_events_total", Help: "Admin session logins/logouts/rejections."},
		[]string{"event"},
	)
	Uploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "elhamas", Name: "uploads_total", Help: "Image uploads by result."},
		[]string{"result"},
	)
	Inquiries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "elhamas", Name: "inquiries_total", Help: "Accepted public inquiries by type."},
		[]string{"type"},
	)
)

// Serve exposes reg on its own listener. An empty addr disables it.
func Serve(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, SafeFetchFallbacks, SessionEvents, Uploads, Inquiries)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveFallback(op, reason string) {
	SafeFetchFallbacks.WithLabelValues(op, reason).Inc()
}

func ObserveSession(event string) { // event: login|logout|rejected|failed
	SessionEvents.WithLabelValues(event).Inc()
}

func ObserveUpload(result string) { Uploads.WithLabelValues(result).Inc() }

func ObserveInquiry(kind string) { Inquiries.WithLabelValues(kind).Inc() }
