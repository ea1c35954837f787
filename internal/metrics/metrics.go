// Package metrics counts findings and evaluation passes with Prometheus
// collectors and exports them in the node-exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mj1618/a11y-cli/finding"
)

const namespace = "a11y"

// Recorder holds one run's collectors in its own registry. It is also a
// finding.Sink.
type Recorder struct {
	registry *prometheus.Registry

	findingsTotal    *prometheus.CounterVec
	evaluationsTotal *prometheus.CounterVec
	elementsTotal    prometheus.Counter
	evaluationTime   prometheus.Histogram
}

// NewRecorder creates a recorder with a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		findingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "findings_total",
				Help:      "Total number of findings reported, partitioned by rule and severity.",
			},
			[]string{"rule", "severity"},
		),
		evaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evaluations_total",
				Help:      "Total number of evaluation passes, partitioned by outcome.",
			},
			[]string{"outcome"},
		),
		elementsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "elements_evaluated_total",
				Help:      "Total number of elements evaluated.",
			},
		),
		evaluationTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "evaluation_seconds",
				Help:      "Evaluation pass latency in seconds.",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
	}
	r.registry.MustRegister(r.findingsTotal, r.evaluationsTotal, r.elementsTotal, r.evaluationTime)
	return r
}

// Registry exposes the recorder's registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Report counts f.
func (r *Recorder) Report(f finding.Finding) {
	r.findingsTotal.WithLabelValues(f.Rule, string(f.Severity)).Inc()
}

// ObservePass records one evaluation pass over elements.
func (r *Recorder) ObservePass(elements int, duration time.Duration, failed bool) {
	outcome := "passed"
	if failed {
		outcome = "failed"
	}
	r.evaluationsTotal.WithLabelValues(outcome).Inc()
	r.elementsTotal.Add(float64(elements))
	if duration < 0 {
		duration = 0
	}
	r.evaluationTime.Observe(duration.Seconds())
}

// WriteTextfile writes all collected metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
