package output

import (
	"github.com/mj1618/a11y-cli/finding"
	"github.com/mj1618/a11y-cli/rules"
)

// AuditResult is the top-level output of the `audit` command.
type AuditResult struct {
	Files    []FileResult `yaml:"files"    json:"files"`
	Failures int          `yaml:"failures" json:"failures"`
	Warnings int          `yaml:"warnings" json:"warnings"`
	Passed   bool         `yaml:"passed"   json:"passed"`
}

// FileResult holds the findings for one audited element file.
type FileResult struct {
	Path     string            `yaml:"path"               json:"path"`
	Elements int               `yaml:"elements"           json:"elements"`
	Failures int               `yaml:"failures"           json:"failures"`
	Warnings int               `yaml:"warnings"           json:"warnings"`
	Findings []finding.Finding `yaml:"findings,omitempty" json:"findings,omitempty"`
	Error    string            `yaml:"error,omitempty"    json:"error,omitempty"` // Set when the file could not be read
}

// SnapshotResult is the output of the `snapshot` command.
type SnapshotResult struct {
	Suite    string            `yaml:"suite"              json:"suite"`
	Test     string            `yaml:"test"               json:"test"`
	Path     string            `yaml:"path"               json:"path"`
	Failures int               `yaml:"failures"           json:"failures"`
	Warnings int               `yaml:"warnings"           json:"warnings"`
	Findings []finding.Finding `yaml:"findings,omitempty" json:"findings,omitempty"`
}

// CleanResult is the output of `snapshot clean`.
type CleanResult struct {
	Dir     string `yaml:"dir"     json:"dir"`
	Removed int    `yaml:"removed" json:"removed"`
}

// RuleInfo describes one test in the catalog.
type RuleInfo struct {
	ID          string `yaml:"id"          json:"id"`
	Severity    string `yaml:"severity"    json:"severity"`
	Description string `yaml:"description" json:"description"`
}

// RulesResult is the output of the `rules` command.
type RulesResult struct {
	Tests  []RuleInfo          `yaml:"tests"  json:"tests"`
	Suites map[string][]string `yaml:"suites" json:"suites"`
}

// Count returns the number of failures and warnings in findings.
func Count(findings []finding.Finding) (failures, warnings int) {
	for _, f := range findings {
		if f.IsFailure() {
			failures++
		} else {
			warnings++
		}
	}
	return failures, warnings
}

// NewFileResult summarizes the findings for one file.
func NewFileResult(path string, elements int, findings []finding.Finding) FileResult {
	failures, warnings := Count(findings)
	return FileResult{
		Path:     path,
		Elements: elements,
		Failures: failures,
		Warnings: warnings,
		Findings: findings,
	}
}

// NewAuditResult totals per-file results. An audit passes when no file
// has failures or read errors.
func NewAuditResult(files []FileResult) AuditResult {
	res := AuditResult{Files: files, Passed: true}
	for _, f := range files {
		res.Failures += f.Failures
		res.Warnings += f.Warnings
		if f.Failures > 0 || f.Error != "" {
			res.Passed = false
		}
	}
	return res
}

// NewRulesResult lists the rule catalog and its suites.
func NewRulesResult() RulesResult {
	res := RulesResult{Suites: make(map[string][]string, len(rules.Suites))}
	for _, e := range rules.Catalog() {
		res.Tests = append(res.Tests, RuleInfo{
			ID:          string(e.Test),
			Severity:    string(e.Severity),
			Description: e.Description,
		})
	}
	for name, tests := range rules.Suites {
		ids := make([]string, len(tests))
		for i, t := range tests {
			ids[i] = string(t)
		}
		res.Suites[name] = ids
	}
	return res
}
