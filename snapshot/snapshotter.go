package snapshot

import (
	"errors"
	"time"

	"github.com/mj1618/a11y-cli/finding"
	"github.com/mj1618/a11y-cli/model"
)

const (
	msgMissing        = "No reference snapshot. Generated new snapshot."
	msgMissingFailed  = "No reference snapshot. Unable to create new reference"
	msgOutdated       = "Reference snapshot is outdated. Generated new snapshot. Check for regressions before replacing as reference."
	msgOutdatedFailed = "Reference snapshot is outdated. Unable to create new reference"
	msgLoadFailed     = "Unable to load reference snapshot."
)

// Snapshotter captures screens, compares them with stored references
// and regenerates references that are missing or outdated. Findings go
// through the reporter. A Snapshotter numbers repeated captures, so use
// one per test run and not concurrently.
type Snapshotter struct {
	store    Store
	reporter *finding.Reporter
	namer    Namer
	differ   Differ
	now      func() time.Time
}

// NewSnapshotter creates a snapshotter backed by store. A nil reporter
// gets a default one.
func NewSnapshotter(store Store, reporter *finding.Reporter) *Snapshotter {
	if reporter == nil {
		reporter = finding.NewReporter(nil)
	}
	return &Snapshotter{
		store:    store,
		reporter: reporter,
		now:      time.Now,
	}
}

// Reporter returns the reporter findings are sent to.
func (s *Snapshotter) Reporter() *finding.Reporter {
	return s.reporter
}

// Capture snapshots elements for suite/test, reports and returns the
// findings.
func (s *Snapshotter) Capture(suite, test string, elements []model.Element) []finding.Finding {
	name := s.namer.Next(suite, test)
	current := NewCapture(name, model.FlattenElements(elements))

	findings := s.compare(current)
	s.reporter.ReportAll(findings)
	return findings
}

func (s *Snapshotter) compare(current Capture) []finding.Finding {
	baseline, err := s.store.Load(current.Filename)
	if err == nil {
		var findings []finding.Finding
		if findings, err = s.differ.Compare(baseline, current); err == nil {
			return findings
		}
	}
	switch {
	case errors.Is(err, ErrOutdated):
		return s.regenerate(current, msgOutdated, msgOutdatedFailed)
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalid):
		return s.regenerate(current, msgMissing, msgMissingFailed)
	default:
		return []finding.Finding{finding.Failure(Rule, msgLoadFailed, err.Error())}
	}
}

func (s *Snapshotter) regenerate(current Capture, generated, failed string) []finding.Finding {
	path, err := s.store.Save(current.Document(s.now()))
	if err != nil {
		return []finding.Finding{finding.Failure(Rule, failed, err.Error())}
	}
	return []finding.Finding{finding.Warning(Rule, generated, "Check "+path)}
}
