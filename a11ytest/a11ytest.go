// Package a11ytest runs accessibility audits and snapshot comparisons
// from Go tests. Failures fail the test; warnings are logged.
//
//	func TestLoginScreen(t *testing.T) {
//		elements := loadScreen(t, "testdata/login.json")
//		a11ytest.Audit(t, elements)
//	}
package a11ytest

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/mj1618/a11y-cli/finding"
	"github.com/mj1618/a11y-cli/internal/logging"
	"github.com/mj1618/a11y-cli/model"
	"github.com/mj1618/a11y-cli/rules"
	"github.com/mj1618/a11y-cli/snapshot"
)

// Sink reports findings against a test.
type Sink struct {
	t        testing.TB
	location finding.Location
}

// NewSink creates a sink that attributes findings without a location
// to loc.
func NewSink(t testing.TB, loc finding.Location) *Sink {
	return &Sink{t: t, location: loc}
}

// Report fails the test for failures and logs warnings.
func (s *Sink) Report(f finding.Finding) {
	s.t.Helper()
	if f.Location.File == "" {
		f.Location = s.location
	}
	msg := f.String()
	if f.Location.File != "" {
		msg = fmt.Sprintf("%s:%d: %s", filepath.Base(f.Location.File), f.Location.Line, msg)
	}
	if f.IsFailure() {
		s.t.Errorf("%s", msg)
	} else {
		s.t.Logf("%s", msg)
	}
}

type options struct {
	config rules.Config
	logger *slog.Logger
	sinks  []finding.Sink
}

// Option customizes Audit.
type Option func(*options)

// WithConfig replaces the default rule configuration.
func WithConfig(cfg rules.Config) Option {
	return func(o *options) { o.config = cfg }
}

// WithTests restricts the audit to tests.
func WithTests(tests ...rules.Test) Option {
	return func(o *options) { o.config.Tests = tests }
}

// WithLogger sends reporter logs to logger instead of discarding them.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithSink forwards findings to an extra sink, e.g. a metrics recorder.
func WithSink(s finding.Sink) Option {
	return func(o *options) { o.sinks = append(o.sinks, s) }
}

func newOptions(opts []Option) options {
	o := options{
		config: rules.DefaultConfig(),
		logger: logging.New("error", false, io.Discard),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Audit evaluates elements with a fresh engine and reports every finding
// against t. It returns the findings in report order.
func Audit(t testing.TB, elements []model.Element, opts ...Option) []finding.Finding {
	t.Helper()
	o := newOptions(opts)
	sinks := append([]finding.Sink{NewSink(t, caller(1))}, o.sinks...)
	reporter := finding.NewReporter(o.logger, sinks...)
	return rules.NewEngine(o.config).Evaluate(elements, reporter)
}

// Snapshot compares elements with the reference stored for the running
// test and reports the differences against t. The suite is the
// top-level test name and the test is the subtest path, or the
// top-level name again when t is not a subtest.
func Snapshot(t testing.TB, s *snapshot.Snapshotter, elements []model.Element) []finding.Finding {
	t.Helper()
	suite, test := Names(t.Name())
	sink := NewSink(t, caller(1))
	findings := s.Capture(suite, test, elements)
	for _, f := range findings {
		sink.Report(f)
	}
	return findings
}

// Names splits a test name into suite and test parts.
func Names(name string) (suite, test string) {
	suite, test, ok := strings.Cut(name, "/")
	if !ok {
		return name, name
	}
	return suite, test
}

func caller(skip int) finding.Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return finding.Location{}
	}
	return finding.Location{File: file, Line: line}
}
