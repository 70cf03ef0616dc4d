// Package metrics exposes Prometheus instrumentation for the HTTP surface
// and the dataset loader.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signaldeck_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "signaldeck_http_request_duration_seconds",
			Help:    "HTTP request duration by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	datasetLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signaldeck_dataset_loads_total",
			Help: "Dataset load attempts by region and outcome",
		},
		[]string{"region", "outcome"},
	)
)

// Register registers all collectors. Must be called once at startup.
func Register() {
	prometheus.MustRegister(httpRequests, httpDuration, datasetLoads)
}

// Handler is a gin middleware recording per-request metrics.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// ObserveDatasetLoad records one dataset load attempt.
func ObserveDatasetLoad(region string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	datasetLoads.WithLabelValues(region, outcome).Inc()
}
