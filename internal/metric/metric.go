/*
 * Copyright (c) YugabyteDB, Inc.
 */

package metric

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

var instance *Metrics

func init() {
	instance = newMetrics()
}

// GetInstance returns the singleton metrics.
func GetInstance() *Metrics {
	return instance
}

// Metrics struct contains all the metrics.
type Metrics struct {
	registry         *prometheus.Registry
	dispatchCounter  *prometheus.CounterVec
	requestHistogram *prometheus.HistogramVec
	httpCounter      *prometheus.CounterVec
	httpHistogram    *prometheus.HistogramVec
}

func newMetrics() *Metrics {
	metrics := &Metrics{
		registry: prometheus.NewRegistry(),
		// Start of all metrics.
		dispatchCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ybaconsole_dispatch_total",
				Help: "Total number of dispatched actions.",
			}, []string{"action", "outcome"}),
		requestHistogram: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ybaconsole_platform_request_seconds",
			Help:    "Histogram of platform request time per action.",
			Buckets: prometheus.DefBuckets,
		}, []string{"action"}),
		httpCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ybaconsole_http_requests_total",
				Help: "Total number of console HTTP requests.",
			}, []string{"method", "path", "response_code"}),
		httpHistogram: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ybaconsole_http_response_seconds",
			Help:    "Histogram of console HTTP response time.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		// End of all metrics.
	}
	metrics.registry.MustRegister(metrics)
	return metrics
}

// HTTPHandler returns the HTTP handler.
func (metrics *Metrics) HTTPHandler() http.Handler {
	return promhttp.HandlerFor(metrics.registry, promhttp.HandlerOpts{})
}

// Describe implements the method in prometheus Collector.
func (metrics *Metrics) Describe(ch chan<- *prometheus.Desc) {
	metrics.dispatchCounter.Describe(ch)
	metrics.requestHistogram.Describe(ch)
	metrics.httpCounter.Describe(ch)
	metrics.httpHistogram.Describe(ch)
}

// Collect implements the method in prometheus Collector.
func (metrics *Metrics) Collect(ch chan<- prometheus.Metric) {
	metrics.dispatchCounter.Collect(ch)
	metrics.requestHistogram.Collect(ch)
	metrics.httpCounter.Collect(ch)
	metrics.httpHistogram.Collect(ch)
}

// Instrument is a store middleware counting dispatched actions and timing the
// platform requests they carry.
func (metrics *Metrics) Instrument(next store.Dispatcher) store.Dispatcher {
	return func(ctx context.Context, action store.Action) store.Response {
		startTime := time.Now()
		r := next(ctx, action)
		outcome := "success"
		if r.Err != nil {
			outcome = "failure"
		}
		metrics.dispatchCounter.WithLabelValues(string(action.Type), outcome).Inc()
		if action.Request != nil {
			metrics.requestHistogram.WithLabelValues(string(action.Type)).
				Observe(time.Since(startTime).Seconds())
		}
		return r
	}
}

// PublishHTTPStats publishes console HTTP server related metrics.
func (metrics *Metrics) PublishHTTPStats(
	elapsed time.Duration,
	method, path string,
	responseCode int,
) {
	metrics.httpCounter.WithLabelValues(method, path, strconv.Itoa(responseCode)).Inc()
	metrics.httpHistogram.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// DispatchCount is the number of dispatched actions of a type and outcome
func (metrics *Metrics) DispatchCount(action store.ActionType, outcome string) float64 {
	return counterValue(metrics.dispatchCounter.WithLabelValues(string(action), outcome))
}

// HTTPCount is the number of console requests served for a route and status
func (metrics *Metrics) HTTPCount(method, path string, responseCode int) float64 {
	return counterValue(
		metrics.httpCounter.WithLabelValues(method, path, strconv.Itoa(responseCode)))
}
