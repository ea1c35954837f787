package finding

import (
	"log/slog"
	"sync"
)

// Sink receives every finding the reporter forwards.
type Sink interface {
	Report(f Finding)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(f Finding)

// Report calls fn(f).
func (fn SinkFunc) Report(f Finding) { fn(f) }

// Reporter normalizes findings, logs them and fans them out to sinks.
// It is the only place that knows where findings end up.
type Reporter struct {
	logger *slog.Logger
	sinks  []Sink

	mu       sync.Mutex
	failures int
	warnings int
}

// NewReporter creates a reporter. A nil logger uses slog.Default().
func NewReporter(logger *slog.Logger, sinks ...Sink) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{logger: logger, sinks: sinks}
}

// AddSink registers another sink.
func (r *Reporter) AddSink(s Sink) {
	r.sinks = append(r.sinks, s)
}

// Report logs f and forwards it to all sinks. Findings without a
// severity are treated as failures.
func (r *Reporter) Report(f Finding) {
	if f.Severity != SeverityWarning {
		f.Severity = SeverityFailure
	}

	r.mu.Lock()
	if f.IsFailure() {
		r.failures++
	} else {
		r.warnings++
	}
	r.mu.Unlock()

	attrs := []any{
		slog.String("rule", f.Rule),
		slog.Int("elements", len(f.Elements)),
	}
	if f.Reason != "" {
		attrs = append(attrs, slog.String("reason", f.Reason))
	}
	if f.IsFailure() {
		r.logger.Error(f.Message, attrs...)
	} else {
		r.logger.Warn(f.Message, attrs...)
	}

	for _, s := range r.sinks {
		s.Report(f)
	}
}

// ReportAll reports each finding in order.
func (r *Reporter) ReportAll(findings []Finding) {
	for _, f := range findings {
		r.Report(f)
	}
}

// Failed reports whether any failure was seen.
func (r *Reporter) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failures > 0
}

// Counts returns the number of failures and warnings reported so far.
func (r *Reporter) Counts() (failures, warnings int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failures, r.warnings
}

// Collector is a sink that keeps findings in report order.
type Collector struct {
	mu       sync.Mutex
	findings []Finding
}

// Report appends f.
func (c *Collector) Report(f Finding) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.findings = append(c.findings, f)
}

// Findings returns a copy of the collected findings.
func (c *Collector) Findings() []Finding {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Finding, len(c.findings))
	copy(out, c.findings)
	return out
}

// Failures returns only the collected failures.
func (c *Collector) Failures() []Finding {
	return c.filter(SeverityFailure)
}

// Warnings returns only the collected warnings.
func (c *Collector) Warnings() []Finding {
	return c.filter(SeverityWarning)
}

func (c *Collector) filter(sev Severity) []Finding {
	var out []Finding
	for _, f := range c.Findings() {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}
