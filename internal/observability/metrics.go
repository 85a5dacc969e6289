package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthlog",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of HTTP requests handled, labeled by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "healthlog",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Time spent handling HTTP requests.",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
	}, []string{"method", "route"})

	recordMutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthlog",
		Subsystem: "records",
		Name:      "mutations_total",
		Help:      "Number of record mutations, labeled by record kind and action.",
	}, []string{"kind", "action"})

	eventFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "healthlog",
		Subsystem: "events",
		Name:      "publish_failures_total",
		Help:      "Number of record events that could not be published.",
	})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, recordMutations, eventFailures)
}

// ObserveRequest records one handled HTTP request
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordMutation counts a successful create, update or delete
func RecordMutation(kind, action string) {
	recordMutations.WithLabelValues(kind, action).Inc()
}

// RecordEventFailure counts an event that was dropped
func RecordEventFailure() {
	eventFailures.Inc()
}

// Handler serves the default Prometheus registry
func Handler() http.Handler {
	return promhttp.Handler()
}
