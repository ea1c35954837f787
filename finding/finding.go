// Package finding defines rule outcomes and the reporter that forwards
// them to sinks such as test frameworks, metrics and CLI output.
package finding

import (
	"fmt"
	"strings"

	"github.com/mj1618/a11y-cli/model"
)

// Severity grades a finding.
type Severity string

const (
	// SeverityWarning is logged but does not fail the evaluation.
	SeverityWarning Severity = "warning"
	// SeverityFailure marks the evaluation as failed.
	SeverityFailure Severity = "failure"
)

// Location is the source position a finding is reported against.
type Location struct {
	File string `yaml:"file,omitempty" json:"file,omitempty"`
	Line int    `yaml:"line,omitempty" json:"line,omitempty"`
}

// Finding is one rule or diff outcome.
type Finding struct {
	Rule     string          `yaml:"rule"               json:"rule"`
	Message  string          `yaml:"message"            json:"message"`
	Reason   string          `yaml:"reason,omitempty"   json:"reason,omitempty"`
	Severity Severity        `yaml:"severity"           json:"severity"`
	Elements []model.Element `yaml:"elements,omitempty" json:"elements,omitempty"`
	Location Location        `yaml:"location,omitempty" json:"location,omitempty"`
}

// Warning builds a warning finding for the given elements.
func Warning(rule, message, reason string, elements ...model.Element) Finding {
	return Finding{Rule: rule, Message: message, Reason: reason, Severity: SeverityWarning, Elements: elements}
}

// Failure builds a failure finding for the given elements.
func Failure(rule, message, reason string, elements ...model.Element) Finding {
	return Finding{Rule: rule, Message: message, Reason: reason, Severity: SeverityFailure, Elements: elements}
}

// IsFailure reports whether the finding fails the evaluation.
func (f Finding) IsFailure() bool {
	return f.Severity == SeverityFailure
}

// String renders the finding on one line, e.g.
// `failure: Controls are overlapping. [button "Save", button "Cancel"]`.
func (f Finding) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", f.Severity, f.Message)
	if f.Reason != "" {
		fmt.Fprintf(&b, " %s", f.Reason)
	}
	if len(f.Elements) > 0 {
		parts := make([]string, len(f.Elements))
		for i, el := range f.Elements {
			parts[i] = Describe(el)
		}
		fmt.Fprintf(&b, " [%s]", strings.Join(parts, ", "))
	}
	return b.String()
}

// Describe returns a brief human-readable description of an element.
func Describe(el model.Element) string {
	if el.Label == "" {
		return fmt.Sprintf("%s id=%s", el.Type.Name(), el.ID)
	}
	return fmt.Sprintf("%s %q", el.Type.Name(), el.Label)
}
