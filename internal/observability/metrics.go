// Package observability bundles the Prometheus metrics exported by the
// tutorial server.
package observability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the service metrics and provides helpers to record them
// and to expose the scrape handler.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests    *prometheus.CounterVec
	ComputeDuration *prometheus.HistogramVec
	SimulationRuns  *prometheus.CounterVec
	CatalogSize     prometheus.Gauge
}

// NewCollector registers the metrics against reg, defaulting to the global
// Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "phystutor_http_requests_total",
		Help: "Total handled HTTP requests, labeled by route and status code.",
	}, []string{"route", "code"})
	requests, err := registerCounterVec(reg, requests)
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "phystutor_compute_duration_seconds",
		Help:    "Kernel compute latency in seconds.",
		Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
	}, []string{"simulation"})
	durations, err = registerHistogramVec(reg, durations)
	if err != nil {
		return nil, err
	}

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "phystutor_simulation_runs_total",
		Help: "Total completed simulation runs, labeled by simulation id.",
	}, []string{"simulation"})
	runs, err = registerCounterVec(reg, runs)
	if err != nil {
		return nil, err
	}

	size := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "phystutor_catalog_size",
		Help: "Number of simulations in the catalog.",
	})
	if err := reg.Register(size); err != nil {
		are := prometheus.AlreadyRegisteredError{}
		if !errors.As(err, &are) {
			return nil, err
		}
		size = are.ExistingCollector.(prometheus.Gauge)
	}

	return &Collector{
		gatherer:        gatherer,
		HTTPRequests:    requests,
		ComputeDuration: durations,
		SimulationRuns:  runs,
		CatalogSize:     size,
	}, nil
}

// Handler returns the scrape endpoint for the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// RecordRequest counts one handled HTTP request.
func (c *Collector) RecordRequest(route string, code int) {
	if c == nil {
		return
	}
	c.HTTPRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// RecordRun counts one completed computation and its latency.
func (c *Collector) RecordRun(simulation string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.SimulationRuns.WithLabelValues(simulation).Inc()
	c.ComputeDuration.WithLabelValues(simulation).Observe(elapsed.Seconds())
}

func registerCounterVec(reg prometheus.Registerer, cv *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(cv); err != nil {
		are := prometheus.AlreadyRegisteredError{}
		if !errors.As(err, &are) {
			return nil, err
		}
		return are.ExistingCollector.(*prometheus.CounterVec), nil
	}
	return cv, nil
}

func registerHistogramVec(reg prometheus.Registerer, hv *prometheus.HistogramVec) (*prometheus.HistogramVec, error) {
	if err := reg.Register(hv); err != nil {
		are := prometheus.AlreadyRegisteredError{}
		if !errors.As(err, &are) {
			return nil, err
		}
		return are.ExistingCollector.(*prometheus.HistogramVec), nil
	}
	return hv, nil
}
