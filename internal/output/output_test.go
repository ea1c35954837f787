package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/mj1618/a11y-cli/finding"
	"github.com/mj1618/a11y-cli/model"
	"github.com/mj1618/a11y-cli/rules"
)

func sampleResult() AuditResult {
	el := model.Element{ID: "go", Label: "Go", Type: model.TypeButton, Frame: model.Rect{X: 10, Y: 20, Width: 30, Height: 30}}
	findings := []finding.Finding{
		finding.Failure("minimumInteractiveSize", "Interactive element not tall enough.", "Minimum height: 44. Current height: 30", el),
		finding.Warning("disabled", "Element disabled.", "", el),
	}
	return NewAuditResult([]FileResult{NewFileResult("login.json", 4, findings)})
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintYAML(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	// YAML output should be multi-line
	if strings.Count(out, "\n") <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}

	var decoded AuditResult
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded.Files) != 1 || decoded.Files[0].Path != "login.json" {
		t.Errorf("files: got %+v", decoded.Files)
	}
	if decoded.Files[0].Findings[0].Elements[0].Type != model.TypeButton {
		t.Errorf("element type not preserved: %+v", decoded.Files[0].Findings[0].Elements[0])
	}
}

func TestPrintJSON_Compact(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintJSON(&buf, sampleResult(), false); err != nil {
		t.Fatal(err)
	}
	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "\n") {
		t.Errorf("compact JSON should be a single line, got:\n%s", out)
	}
	var decoded AuditResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Failures != 1 || decoded.Warnings != 1 || decoded.Passed {
		t.Errorf("totals: got %+v", decoded)
	}
}

func TestPrintJSON_PrettyAndNoHTMLEscape(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintJSON(&buf, map[string]string{"label": "<b>Save</b>"}, true); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\n  \"label\"") {
		t.Errorf("pretty JSON should be indented, got:\n%s", out)
	}
	if !strings.Contains(out, "<b>Save</b>") {
		t.Errorf("HTML should not be escaped, got:\n%s", out)
	}
}

func TestFprint_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Fprint(&buf, Format("xml"), sampleResult()); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestPrint_UsesGlobals(t *testing.T) {
	var buf bytes.Buffer
	oldWriter, oldFormat := Writer, OutputFormat
	Writer, OutputFormat = &buf, FormatJSON
	defer func() { Writer, OutputFormat = oldWriter, oldFormat }()

	if err := Print(CleanResult{Dir: "/tmp/snapshots", Removed: 2}); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != `{"dir":"/tmp/snapshots","removed":2}` {
		t.Errorf("got %s", got)
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"yaml", "json"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q): %v", s, err)
		}
	}
	if _, err := ParseFormat("toml"); err == nil {
		t.Error("expected error for toml")
	}
}

func TestFileResult_OmitEmpty(t *testing.T) {
	data, err := yaml.Marshal(NewFileResult("clean.json", 3, nil))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["findings"]; ok {
		t.Error("empty findings should be omitted")
	}
	if _, ok := m["error"]; ok {
		t.Error("empty error should be omitted")
	}
}

func TestNewAuditResult(t *testing.T) {
	clean := NewAuditResult([]FileResult{NewFileResult("a.json", 1, nil)})
	if !clean.Passed {
		t.Error("audit without failures should pass")
	}

	warnOnly := NewAuditResult([]FileResult{NewFileResult("a.json", 1, []finding.Finding{finding.Warning("disabled", "Element disabled.", "")})})
	if !warnOnly.Passed || warnOnly.Warnings != 1 {
		t.Errorf("warnings must not fail the audit: %+v", warnOnly)
	}

	broken := NewAuditResult([]FileResult{{Path: "b.json", Error: "read elements: no such file"}})
	if broken.Passed {
		t.Error("read errors should fail the audit")
	}
}

func TestNewRulesResult(t *testing.T) {
	res := NewRulesResult()
	if len(res.Tests) != len(rules.AllTests) {
		t.Fatalf("expected %d tests, got %d", len(rules.AllTests), len(res.Tests))
	}
	if res.Tests[0].ID != string(rules.TestMinimumSize) || res.Tests[0].Severity != "warning" {
		t.Errorf("first entry: got %+v", res.Tests[0])
	}
	if got := res.Suites["labels"]; len(got) != 2 || got[1] != "labelPresence" {
		t.Errorf("labels suite: got %v", got)
	}
}
