package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry *prometheus.Registry

	// HTTPRequestsTotal counts served requests by route template
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration is the latency of served requests
	HTTPRequestDuration *prometheus.HistogramVec

	// UpstreamRequestsTotal counts calls to the INMET services by host and status class
	UpstreamRequestsTotal *prometheus.CounterVec

	// UpstreamRequestDuration is the latency of each upstream attempt
	UpstreamRequestDuration *prometheus.HistogramVec

	// UpstreamRetriesTotal counts retried upstream attempts
	UpstreamRetriesTotal *prometheus.CounterVec

	// CatalogCacheTotal counts cache lookups by catalog and result (hit, miss, error)
	CatalogCacheTotal *prometheus.CounterVec

	// RequisitionsTotal counts requisitions by mode (submit, enqueue, process) and outcome
	RequisitionsTotal *prometheus.CounterVec

	// WarmupRunsTotal counts catalog warm-up runs by outcome (ok, partial, skipped)
	WarmupRunsTotal *prometheus.CounterVec
)

func init() {
	registry = prometheus.NewRegistry()

	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bdmep_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bdmep_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bdmep_upstream_requests_total",
			Help: "Total number of requests sent to the INMET services",
		},
		[]string{"host", "status"},
	)
	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bdmep_upstream_request_duration_seconds",
			Help:    "INMET service latency in seconds per attempt",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"host"},
	)
	UpstreamRetriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bdmep_upstream_retries_total",
			Help: "Total number of retried requests to the INMET services",
		},
		[]string{"host"},
	)
	CatalogCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bdmep_catalog_cache_total",
			Help: "Catalog cache lookups by result",
		},
		[]string{"catalog", "result"},
	)
	RequisitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bdmep_requisitions_total",
			Help: "Requisitions by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)
	WarmupRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bdmep_catalog_warmup_runs_total",
			Help: "Catalog warm-up runs by outcome",
		},
		[]string{"outcome"},
	)

	registry.MustRegister(
		HTTPRequestsTotal, HTTPRequestDuration,
		UpstreamRequestsTotal, UpstreamRequestDuration, UpstreamRetriesTotal,
		CatalogCacheTotal, RequisitionsTotal, WarmupRunsTotal,
	)
}

// StatusClass groups a status code as 2xx, 4xx, ...; zero means no response was received
func StatusClass(status int) string {
	if status <= 0 {
		return "error"
	}
	return strconv.Itoa(status/100) + "xx"
}

// Outcome labels an operation result
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Handler serves application and runtime metrics
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
