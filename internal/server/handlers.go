package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/a11y-cli/finding"
	"github.com/mj1618/a11y-cli/internal/output"
	"github.com/mj1618/a11y-cli/internal/platform"
	"github.com/mj1618/a11y-cli/model"
	"github.com/mj1618/a11y-cli/rules"
	"github.com/mj1618/a11y-cli/snapshot"
)

// inlineSource names elements passed as a tool argument.
const inlineSource = "inline"

// resultToText serializes a tool result to YAML for the MCP response.
func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// readElements resolves the elements for a call, either inline or from
// an element dump on disk. It returns the source name for results.
func (s *Server) readElements(params map[string]interface{}) ([]model.Element, string, error) {
	opts := platform.ReadOptions{
		ElementsPath: stringParam(params, "elements_path", ""),
		Types:        platform.ParseTypes(stringParam(params, "types", "")),
	}

	if inline := stringParam(params, "elements", ""); inline != "" {
		elements, err := platform.DecodeElements([]byte(inline), opts)
		return elements, inlineSource, err
	}

	path := stringParam(params, "path", "")
	if path == "" {
		return nil, "", errors.New("either elements or path is required")
	}
	if path == "-" {
		return nil, "", errors.New("stdin is not available to MCP tools")
	}
	opts.Path = path
	if boolParam(params, "refresh", false) {
		s.cache.InvalidatePath(path)
	}
	elements, err := s.cache.ReadElements(s.reader, opts)
	return elements, path, err
}

// rulesConfig applies per-call overrides to the server's rule config.
func (s *Server) rulesConfig(params map[string]interface{}) (rules.Config, error) {
	cfg := s.cfg.Rules
	if tests := stringParam(params, "tests", ""); tests != "" {
		resolved, err := rules.ResolveTests(strings.Split(tests, ","))
		if err != nil {
			return cfg, err
		}
		cfg.Tests = resolved
	}
	if p := stringParam(params, "platform", ""); p != "" {
		cfg.Platform = rules.Platform(p)
	}
	return cfg, cfg.Validate()
}

func (s *Server) reporter(sinks ...finding.Sink) *finding.Reporter {
	if s.cfg.Recorder != nil {
		sinks = append(sinks, s.cfg.Recorder)
	}
	return finding.NewReporter(s.logger, sinks...)
}

func (s *Server) handleAudit(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	cfg, err := s.rulesConfig(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	elements, source, err := s.readElements(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	start := time.Now()
	reporter := s.reporter()
	findings := rules.NewEngine(cfg).Evaluate(elements, reporter)
	if s.cfg.Recorder != nil {
		s.cfg.Recorder.ObservePass(len(elements), time.Since(start), reporter.Failed())
	}

	s.logger.Debug("audit tool finished",
		slog.String("source", source),
		slog.Int("elements", len(elements)),
		slog.Int("findings", len(findings)))
	return mcp.NewToolResultText(resultToText(output.NewFileResult(source, len(elements), findings))), nil
}

func (s *Server) handleSnapshotDiff(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	suite := stringParam(params, "suite", "")
	test := stringParam(params, "test", "")
	if suite == "" || test == "" {
		return mcp.NewToolResultError("suite and test are required"), nil
	}
	if s.cfg.Store == nil {
		return mcp.NewToolResultError("no snapshot store configured"), nil
	}

	elements, _, err := s.readElements(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Each call is a fresh run, so the counter always starts at zero.
	findings := snapshot.NewSnapshotter(s.cfg.Store, s.reporter()).Capture(suite, test, elements)
	failures, warnings := output.Count(findings)
	return mcp.NewToolResultText(resultToText(output.SnapshotResult{
		Suite:    suite,
		Test:     test,
		Path:     snapshot.Filename(suite, test, 0),
		Failures: failures,
		Warnings: warnings,
		Findings: findings,
	})), nil
}

func (s *Server) handleRules(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(resultToText(output.NewRulesResult())), nil
}
