package snapshot

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mj1618/a11y-cli/finding"
	"github.com/mj1618/a11y-cli/model"
)

// Rule is the rule name attached to snapshot findings.
const Rule = "snapshot"

// Differ compares a capture with its baseline position by position.
type Differ struct {
	// Tolerance for frame values; zero means model.Tolerance.
	Tolerance float64
}

// Compare returns one failure per mismatching field. A baseline older
// than CurrentVersion is not compared and yields ErrOutdated.
func (d Differ) Compare(baseline Document, current Capture) ([]finding.Finding, error) {
	outdated, err := IsOutdated(baseline.Version)
	if err != nil {
		return nil, fmt.Errorf("compare snapshot: %w: %v", ErrInvalid, err)
	}
	if outdated {
		return nil, ErrOutdated
	}

	var out []finding.Finding
	if len(baseline.Snapshot) != len(current.Records) {
		out = append(out, finding.Failure(Rule,
			"Snapshots contain a different number of items. This screen has changed",
			fmt.Sprintf("Reference: %d. Snapshot: %d", len(baseline.Snapshot), len(current.Records))))
	}

	n := min(len(baseline.Snapshot), len(current.Records), len(current.Elements))
	for i := 0; i < n; i++ {
		out = append(out, d.compareRecord(baseline.Snapshot[i], current.Records[i], current.Elements[i])...)
	}
	return out, nil
}

func (d Differ) compareRecord(ref, snap Record, el model.Element) []finding.Finding {
	var out []finding.Finding
	mismatch := func(message, reason string) {
		out = append(out, finding.Failure(Rule, message, reason, el))
	}

	if ref.Label != snap.Label {
		mismatch("Label does not match reference snapshot",
			fmt.Sprintf("Reference: %s. Snapshot: %s", ref.Label, snap.Label))
	}
	if ref.Type != snap.Type {
		mismatch("Type does not match reference snapshot",
			fmt.Sprintf("Reference: %s. Snapshot: %s", ref.Type, snap.Type))
	}
	if !sameTraits(ref.Traits, snap.Traits) {
		mismatch("Traits do not match reference snapshot",
			fmt.Sprintf("Reference: %s. Snapshot: %s", strings.Join(ref.Traits, ", "), strings.Join(snap.Traits, ", ")))
	}
	if ref.Enabled != snap.Enabled {
		mismatch("Enabled status does not match reference snapshot",
			fmt.Sprintf("Reference: %t. Snapshot: %t", ref.Enabled, snap.Enabled))
	}

	frames := []struct {
		name      string
		ref, snap float64
	}{
		{"x", ref.Frame.X, snap.Frame.X},
		{"y", ref.Frame.Y, snap.Frame.Y},
		{"width", ref.Frame.Width, snap.Frame.Width},
		{"height", ref.Frame.Height, snap.Frame.Height},
	}
	for _, f := range frames {
		if !d.within(f.ref, f.snap) {
			mismatch("Frame does not match reference snapshot",
				fmt.Sprintf("Reference %s: %s. Snapshot %s: %s",
					f.name, model.FormatNumber(f.ref), f.name, model.FormatNumber(f.snap)))
		}
	}
	return out
}

func (d Differ) within(a, b float64) bool {
	if d.Tolerance <= 0 {
		return model.ApproxEqual(a, b)
	}
	return math.Abs(a-b) <= d.Tolerance
}

func sameTraits(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa := append([]string(nil), a...)
	sb := append([]string(nil), b...)
	sort.Strings(sa)
	sort.Strings(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}
