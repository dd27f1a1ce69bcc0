package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/gebusstephane-bit/fleet-master-pro-sub000/core/metrics"
)

// PromSink records planner activity in Prometheus metrics.
type PromSink struct {
	routes      *prometheus.CounterVec
	latency     prometheus.Histogram
	distance    prometheus.Histogram
	breaks      prometheus.Counter
	assignments *prometheus.CounterVec
}

// NewPromSink registers the planner metrics on the default registerer.
func NewPromSink(namespace string) (*PromSink, error) {
	return NewPromSinkWithRegistry(namespace, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers the planner metrics on reg. A nil reg
// means the default registerer. Metrics already registered by an earlier
// sink are reused.
func NewPromSinkWithRegistry(namespace string, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		routes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "routes_optimized_total",
			Help:      "Number of optimized routes",
		}, []string{"category", "feasible"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_optimization_seconds",
			Help:      "Time spent sequencing and checking a route",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		distance: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_distance_km",
			Help:      "Total great-circle distance of optimized routes",
			Buckets:   []float64{10, 25, 50, 100, 200, 400, 700, 1000, 1500},
		}),
		breaks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_breaks_inserted_total",
			Help:      "Regulatory breaks placed in route timelines",
		}),
		assignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assignments_total",
			Help:      "Vehicle/driver pairing searches by outcome",
		}, []string{"outcome"}),
	}

	var err error
	if s.routes, err = register(reg, s.routes); err != nil {
		return nil, err
	}
	if s.latency, err = register(reg, s.latency); err != nil {
		return nil, err
	}
	if s.distance, err = register(reg, s.distance); err != nil {
		return nil, err
	}
	if s.breaks, err = register(reg, s.breaks); err != nil {
		return nil, err
	}
	if s.assignments, err = register(reg, s.assignments); err != nil {
		return nil, err
	}
	return s, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordRoute updates the route counters and histograms.
func (s *PromSink) RecordRoute(r coremetrics.RouteResult) error {
	s.routes.WithLabelValues(r.Category.String(), strconv.FormatBool(r.Feasible)).Inc()
	s.latency.Observe(r.Elapsed.Seconds())
	s.distance.Observe(r.DistanceKm)
	s.breaks.Add(float64(r.Breaks))
	return nil
}

// RecordAssignment counts the search under its outcome.
func (s *PromSink) RecordAssignment(a coremetrics.AssignmentResult) error {
	outcome := "none"
	if a.Found {
		outcome = "found"
	}
	s.assignments.WithLabelValues(outcome).Inc()
	return nil
}
