// Package metrics provides the concrete sinks assignment runs are recorded
// to: Prometheus collectors, InfluxDB points and a fan-out combinator.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coremetrics "github.com/ajoux/workplan/core/metrics"
)

// PromSink records assignment runs in Prometheus metrics.
type PromSink struct {
	runs       *prometheus.CounterVec
	tasks      *prometheus.CounterVec
	unassigned prometheus.Gauge
	duration   prometheus.Histogram
}

// NewPromSink registers the assignment metrics on the default Prometheus
// registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers the metrics on the provided registerer.
// A nil registerer defaults to the global one.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assignment_runs_total",
		Help: "Total number of assignment runs",
	}, []string{"plan", "plan_known"})
	tasks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assignment_tasks_total",
		Help: "Total number of tasks processed, by outcome",
	}, []string{"outcome"})
	unassigned := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "assignment_unassigned_tasks",
		Help: "Unassigned tasks in the most recent run",
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "assignment_run_duration_seconds",
		Help:    "Wall time of one assignment run",
		Buckets: prometheus.DefBuckets,
	})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(tasks); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			tasks = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(unassigned); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			unassigned = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	return &PromSink{runs: runs, tasks: tasks, unassigned: unassigned, duration: duration}, nil
}

// RecordRun updates run-level collectors.
func (s *PromSink) RecordRun(ev coremetrics.RunEvent) {
	known := "true"
	if !ev.PlanKnown {
		known = "false"
	}
	s.runs.WithLabelValues(ev.PlanLabel, known).Inc()
	s.unassigned.Set(float64(ev.Unassigned))
	s.duration.Observe(ev.Duration.Seconds())
}

// RecordTasks counts task outcomes.
func (s *PromSink) RecordTasks(events []coremetrics.TaskEvent) {
	for _, ev := range events {
		s.tasks.WithLabelValues(ev.Outcome).Inc()
	}
}

// StartPromServer serves /metrics on the given port. Blocks.
func StartPromServer(port string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(":"+port, mux)
}
