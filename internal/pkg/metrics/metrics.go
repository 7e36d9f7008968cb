package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Upstream service labels.
const (
	ServiceNominatim = "nominatim"
	ServiceOverpass  = "overpass"
)

// Upstream outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeEmpty    = "empty"
	OutcomeError    = "error"
	OutcomeGaveUp   = "gave_up"
	OutcomeNotFound = "not_found"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "restaurant_finder",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "restaurant_finder",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"method", "path"})

	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "restaurant_finder",
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "Calls to upstream geographic services by outcome",
	}, []string{"service", "outcome"})

	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "restaurant_finder",
		Subsystem: "upstream",
		Name:      "request_duration_seconds",
		Help:      "Latency of single upstream HTTP attempts",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 40},
	}, []string{"service"})

	OverpassAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "restaurant_finder",
		Subsystem: "overpass",
		Name:      "attempts_total",
		Help:      "Overpass attempts by attempt number and result",
	}, []string{"attempt", "result"})

	DroppedFeatures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "restaurant_finder",
		Subsystem: "pipeline",
		Name:      "dropped_features_total",
		Help:      "Raw features excluded for lacking a resolvable coordinate",
	})

	SearchResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "restaurant_finder",
		Subsystem: "pipeline",
		Name:      "results_per_search",
		Help:      "Number of POIs returned per search",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})
)

// ObserveUpstream records one finished upstream attempt.
func ObserveUpstream(service, outcome string, started time.Time) {
	UpstreamRequests.WithLabelValues(service, outcome).Inc()
	UpstreamDuration.WithLabelValues(service).Observe(time.Since(started).Seconds())
}

// Middleware records request metrics.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		method := c.Method()
		status := strconv.Itoa(c.Response().StatusCode())

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler returns a Fiber handler serving the Prometheus /metrics endpoint.
func Handler() fiber.Handler {
	handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c *fiber.Ctx) error {
		handler(c.Context())
		return nil
	}
}
