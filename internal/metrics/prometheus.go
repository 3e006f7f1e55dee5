package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder reports gateway metrics using Prometheus primitives.
type PrometheusRecorder struct {
	requests      *prometheus.CounterVec
	providerCalls *prometheus.HistogramVec
	modelRetries  *prometheus.CounterVec
}

func NewPrometheusRecorder(registry *prometheus.Registry) (*PrometheusRecorder, error) {
	if registry == nil {
		return nil, fmt.Errorf("prometheus registry is nil")
	}

	r := &PrometheusRecorder{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ai_gateway_requests_total",
			Help: "Total HTTP requests by endpoint and status code",
		}, []string{"endpoint", "status"}),
		providerCalls: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ai_gateway_provider_call_duration_seconds",
			Help:    "Provider call latency in seconds by outcome",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider", "outcome"}),
		modelRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ai_gateway_model_retries_total",
			Help: "Fallback attempts to the next candidate model",
		}, []string{"model"}),
	}

	for _, collector := range []prometheus.Collector{r.requests, r.providerCalls, r.modelRetries} {
		if err := registry.Register(collector); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return r, nil
}

func (r *PrometheusRecorder) ObserveRequest(endpoint string, status int, _ time.Duration) {
	r.requests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}

func (r *PrometheusRecorder) ObserveProviderCall(provider string, outcome string, duration time.Duration) {
	r.providerCalls.WithLabelValues(provider, outcome).Observe(duration.Seconds())
}

func (r *PrometheusRecorder) ObserveModelRetry(model string) {
	r.modelRetries.WithLabelValues(model).Inc()
}

// Handler exposes the registry in Prometheus exposition format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
