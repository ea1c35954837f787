package rules

import (
	"github.com/mj1618/a11y-cli/finding"
	"github.com/mj1618/a11y-cli/model"
)

// Engine runs the rule catalog over one screen at a time. Each pass
// starts from a clean state; an Engine must not be shared between
// goroutines.
type Engine struct {
	cfg       Config
	analyzer  *Analyzer
	hasHeader bool
}

// NewEngine creates an engine for cfg.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:      cfg,
		analyzer: NewAnalyzer(cfg),
	}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Reset clears the header flag and all pairwise state.
func (e *Engine) Reset() {
	e.hasHeader = false
	e.analyzer.Reset()
}

// Check runs every enabled single-element rule against el. All rules
// run even when an earlier one fails.
func (e *Engine) Check(el model.Element) []finding.Finding {
	if el.Traits.Has(model.TraitHeader) {
		e.hasHeader = true
	}

	var out []finding.Finding
	if e.cfg.Enabled(TestMinimumSize) {
		out = append(out, MinimumSize(el, e.cfg.MinSize)...)
	}
	if e.cfg.Enabled(TestMinimumInteractiveSize) {
		out = append(out, MinimumInteractiveSize(el, e.cfg.MinInteractiveSize, e.cfg.AllControls)...)
	}
	if e.cfg.Enabled(TestLabelPresence) {
		out = append(out, LabelPresence(el, e.cfg.MinLabelLength)...)
	}
	if e.cfg.Enabled(TestButtonLabel) {
		out = append(out, ButtonLabel(el, e.cfg.nondescriptivePhrases())...)
	}
	if e.cfg.Enabled(TestImageLabel) {
		out = append(out, ImageLabel(el, e.cfg.imageNouns(), e.cfg.filenameTokens())...)
	}
	if e.cfg.Enabled(TestLabelLength) {
		out = append(out, LabelLength(el, e.cfg.MaxLabelLength)...)
	}
	if e.cfg.Enabled(TestImageTrait) {
		out = append(out, ImageTrait(el)...)
	}
	if e.cfg.Enabled(TestButtonTrait) {
		out = append(out, ButtonTrait(el)...)
	}
	if e.cfg.Enabled(TestConflictingTraits) {
		out = append(out, ConflictingTraits(el)...)
	}
	if e.cfg.Enabled(TestDisabled) {
		out = append(out, Disabled(el)...)
	}
	return out
}

// Run evaluates one screen: single-element rules in element order, the
// screen-level header check, then the pairwise findings. Nested
// children are evaluated too, and elements are given distinct IDs
// first so the pairwise rules can tell them apart.
func (e *Engine) Run(elements []model.Element) []finding.Finding {
	e.Reset()
	elements = model.FlattenElements(elements)

	var out []finding.Finding
	for _, el := range elements {
		out = append(out, e.Check(el)...)
	}
	if e.cfg.Enabled(TestHeader) && !e.hasHeader {
		out = append(out, MissingHeader())
	}

	e.analyzer.ObserveAll(elements)
	out = append(out, e.analyzer.Flush()...)
	return out
}

// Evaluate runs a pass and reports every finding through r. It returns
// the findings produced by this pass.
func (e *Engine) Evaluate(elements []model.Element, r *finding.Reporter) []finding.Finding {
	findings := e.Run(elements)
	r.ReportAll(findings)
	return findings
}
