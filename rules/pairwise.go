package rules

import (
	"fmt"

	"github.com/mj1618/a11y-cli/finding"
	"github.com/mj1618/a11y-cli/model"
)

// PairKey identifies an unordered pair of element IDs.
type PairKey struct {
	Low  string
	High string
}

// NewPairKey returns the same key for (a, b) and (b, a).
func NewPairKey(a, b string) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{Low: a, High: b}
}

type labelGroup struct {
	label    string
	ids      map[string]bool
	elements []model.Element
}

type pairFinding struct {
	first, second model.Element
}

// Analyzer accumulates duplicate, overlap and spacing state across the
// control pairs of one evaluation pass. It is not safe for concurrent
// use; evaluate independent screens with separate analyzers.
type Analyzer struct {
	duplicates bool
	overlap    bool
	spacing    bool
	padding    float64

	groups     map[string]*labelGroup
	groupOrder []string
	classified map[PairKey]struct{}
	overlaps   []pairFinding
	close      []pairFinding
}

// NewAnalyzer creates an analyzer for the pairwise tests enabled in cfg.
func NewAnalyzer(cfg Config) *Analyzer {
	a := &Analyzer{
		duplicates: cfg.Enabled(TestDuplicated),
		overlap:    cfg.Enabled(TestControlOverlap),
		spacing:    cfg.Enabled(TestControlSpacing),
		padding:    cfg.Padding(),
	}
	a.Reset()
	return a
}

// Reset clears all accumulated state.
func (a *Analyzer) Reset() {
	a.groups = make(map[string]*labelGroup)
	a.groupOrder = nil
	a.classified = make(map[PairKey]struct{})
	a.overlaps = nil
	a.close = nil
}

// Observe records one pair. Pairs that are not two distinct controls
// are ignored. A pair is classified as overlapping or closely spaced at
// most once, whichever order it is observed in.
func (a *Analyzer) Observe(first, second model.Element) {
	if !first.IsControl() || !second.IsControl() || first.ID == second.ID {
		return
	}
	if a.duplicates {
		a.observeLabels(first, second)
	}
	a.observeSpacing(first, second)
}

// ObserveAll visits every unordered pair of elements once.
func (a *Analyzer) ObserveAll(elements []model.Element) {
	controls := model.Controls(elements)
	for i := range controls {
		for j := i + 1; j < len(controls); j++ {
			a.Observe(controls[i], controls[j])
		}
	}
}

func (a *Analyzer) observeLabels(first, second model.Element) {
	if first.Label == "" || second.Label == "" || first.Label != second.Label {
		return
	}
	g, ok := a.groups[first.Label]
	if !ok {
		g = &labelGroup{label: first.Label, ids: make(map[string]bool)}
		a.groups[first.Label] = g
		a.groupOrder = append(a.groupOrder, first.Label)
	}
	for _, el := range []model.Element{first, second} {
		if !g.ids[el.ID] {
			g.ids[el.ID] = true
			g.elements = append(g.elements, el)
		}
	}
}

func (a *Analyzer) observeSpacing(first, second model.Element) {
	key := NewPairKey(first.ID, second.ID)
	if _, done := a.classified[key]; done {
		return
	}

	if first.Frame.Intersects(second.Frame) {
		if a.overlap {
			a.classified[key] = struct{}{}
			a.overlaps = append(a.overlaps, pairFinding{first, second})
		}
		return
	}

	if a.spacing && first.Frame.Expand(a.padding).Intersects(second.Frame) {
		a.classified[key] = struct{}{}
		a.close = append(a.close, pairFinding{first, second})
	}
}

// Flush returns the accumulated findings: duplicate label groups,
// then overlapping pairs, then closely spaced pairs, each in the order
// first recorded. Flush does not reset the analyzer.
func (a *Analyzer) Flush() []finding.Finding {
	var out []finding.Finding
	for _, label := range a.groupOrder {
		g := a.groups[label]
		out = append(out, finding.Warning(string(TestDuplicated),
			"Elements have duplicated labels.",
			fmt.Sprintf("Label: %q", g.label),
			g.elements...))
	}
	for _, p := range a.overlaps {
		out = append(out, finding.Failure(string(TestControlOverlap),
			"Controls are overlapping.", "", p.first, p.second))
	}
	for _, p := range a.close {
		out = append(out, finding.Warning(string(TestControlSpacing),
			"Controls are closely spaced.",
			fmt.Sprintf("Minimum spacing: %s", model.FormatNumber(a.padding)),
			p.first, p.second))
	}
	return out
}
