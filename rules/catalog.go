package rules

import "github.com/mj1618/a11y-cli/finding"

// Entry describes one test for listings.
type Entry struct {
	Test        Test
	Severity    finding.Severity // Highest severity the test can report
	Description string
}

var catalog = map[Test]Entry{
	TestMinimumSize:            {TestMinimumSize, finding.SeverityWarning, "Element width and height reach the minimum size."},
	TestMinimumInteractiveSize: {TestMinimumInteractiveSize, finding.SeverityFailure, "Enabled controls reach the minimum touch target size."},
	TestLabelPresence:          {TestLabelPresence, finding.SeverityFailure, "Elements have a label that is long enough and not uppercased."},
	TestButtonLabel:            {TestButtonLabel, finding.SeverityFailure, "Button labels are descriptive, capitalized, unpunctuated and do not repeat the element type."},
	TestImageLabel:             {TestImageLabel, finding.SeverityFailure, "Image labels do not describe the medium or look like file names."},
	TestLabelLength:            {TestLabelLength, finding.SeverityWarning, "Labels stay under the maximum length."},
	TestHeader:                 {TestHeader, finding.SeverityFailure, "The screen has at least one element with the header trait."},
	TestImageTrait:             {TestImageTrait, finding.SeverityFailure, "Images carry the image trait."},
	TestButtonTrait:            {TestButtonTrait, finding.SeverityFailure, "Buttons carry the button or link trait."},
	TestConflictingTraits:      {TestConflictingTraits, finding.SeverityFailure, "Elements do not combine button with link or static text with updates frequently."},
	TestDisabled:               {TestDisabled, finding.SeverityWarning, "Disabled elements are reported for review."},
	TestDuplicated:             {TestDuplicated, finding.SeverityWarning, "No two elements share a label."},
	TestControlSpacing:         {TestControlSpacing, finding.SeverityWarning, "Controls keep the platform padding between each other."},
	TestControlOverlap:         {TestControlOverlap, finding.SeverityFailure, "Control frames do not intersect."},
}

// Catalog returns an entry per test in evaluation order.
func Catalog() []Entry {
	out := make([]Entry, 0, len(AllTests))
	for _, t := range AllTests {
		out = append(out, catalog[t])
	}
	return out
}
