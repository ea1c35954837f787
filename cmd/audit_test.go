package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/mj1618/a11y-cli/internal/metrics"
	"github.com/mj1618/a11y-cli/internal/output"
	"github.com/mj1618/a11y-cli/internal/platform"
	"github.com/mj1618/a11y-cli/rules"
)

const passingScreen = `{"elements":[
  {"id":"title","label":"Sign in","type":"staticText","traits":["header","staticText"],"frame":{"x":16,"y":40,"width":200,"height":30}},
  {"id":"submit","label":"Continue","type":"button","traits":["button"],"frame":{"x":16,"y":100,"width":120,"height":48}}
]}`

const failingScreen = `[
  {"id":"go","label":"Go","type":"button","traits":["button"],"frame":{"x":0,"y":0,"width":30,"height":30}}
]`

func writeScreen(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAuditCommand_Flags(t *testing.T) {
	flags := auditCmd.Flags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"tests", "string"},
		{"platform", "string"},
		{"elements-path", "string"},
		{"types", "string"},
		{"region", "string"},
		{"overlay", "string"},
		{"background", "string"},
		{"scale", "float64"},
		{"concurrency", "int"},
		{"metrics-file", "string"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestAuditCommand_Passes(t *testing.T) {
	path := writeScreen(t, "login.json", passingScreen)
	out, err := execute(t, "audit", path)
	if err != nil {
		t.Fatalf("expected audit to pass, got %v\n%s", err, out)
	}

	var res output.AuditResult
	if err := yaml.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if !res.Passed || res.Failures != 0 || len(res.Files) != 1 {
		t.Errorf("unexpected result: %+v", res)
	}
	if res.Files[0].Elements != 2 {
		t.Errorf("expected 2 elements, got %d", res.Files[0].Elements)
	}
}

func TestAuditCommand_FailuresExitNonZero(t *testing.T) {
	good := writeScreen(t, "good.json", passingScreen)
	bad := writeScreen(t, "bad.json", failingScreen)

	out, err := execute(t, "audit", "--format", "json", "--tests", "minimumInteractiveSize", good, bad)
	if !errors.Is(err, errFailures) {
		t.Fatalf("expected errFailures, got %v", err)
	}

	var res output.AuditResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(res.Files) != 2 || res.Files[0].Path != good || res.Files[1].Path != bad {
		t.Fatalf("results should follow argument order: %+v", res.Files)
	}
	if res.Files[0].Failures != 0 || res.Files[1].Failures != 2 {
		t.Errorf("unexpected failures: %+v", res.Files)
	}
}

func TestAuditCommand_ReadErrorRecorded(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	out, err := execute(t, "audit", missing)
	if !errors.Is(err, errFailures) {
		t.Fatalf("expected errFailures, got %v", err)
	}
	var res output.AuditResult
	if err := yaml.Unmarshal([]byte(out), &res); err != nil {
		t.Fatal(err)
	}
	if res.Files[0].Error == "" {
		t.Error("expected the read error on the file result")
	}
}

func TestAuditCommand_UnknownTest(t *testing.T) {
	path := writeScreen(t, "login.json", passingScreen)
	if _, err := execute(t, "audit", "--tests", "colorContrast", path); err == nil || errors.Is(err, errFailures) {
		t.Errorf("expected a configuration error, got %v", err)
	}
}

func TestAuditCommand_OverlayAndMetrics(t *testing.T) {
	path := writeScreen(t, "checkout.json", failingScreen)
	dir := t.TempDir()
	metricsFile := filepath.Join(dir, "a11y.prom")

	_, err := execute(t, "audit", "--overlay", filepath.Join(dir, "overlays"), "--metrics-file", metricsFile, path)
	if !errors.Is(err, errFailures) {
		t.Fatalf("expected errFailures, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "overlays", "checkout.png")); err != nil {
		t.Errorf("overlay not written: %v", err)
	}
	data, err := os.ReadFile(metricsFile)
	if err != nil {
		t.Fatalf("metrics not written: %v", err)
	}
	if !strings.Contains(string(data), `a11y_evaluations_total{outcome="failed"} 1`) {
		t.Errorf("unexpected metrics:\n%s", data)
	}
}

func TestAuditFile(t *testing.T) {
	path := writeScreen(t, "login.json", failingScreen)
	cfg := rules.DefaultConfig()
	cfg.Tests = []rules.Test{rules.TestMinimumInteractiveSize}

	job := auditFile(platform.FileReader{}, path, platform.ReadOptions{}, cfg, metrics.NewRecorder())
	if job.result.Failures != 2 || len(job.elements) != 1 {
		t.Errorf("unexpected job: %+v", job.result)
	}
}
