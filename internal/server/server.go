// Package server exposes the audit and snapshot engines as MCP tools.
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mj1618/a11y-cli/internal/metrics"
	"github.com/mj1618/a11y-cli/internal/platform"
	"github.com/mj1618/a11y-cli/internal/version"
	"github.com/mj1618/a11y-cli/rules"
	"github.com/mj1618/a11y-cli/snapshot"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
	Rules     rules.Config
	Store     snapshot.Store
	Reader    platform.Reader   // Defaults to platform.FileReader
	Recorder  *metrics.Recorder // Optional; served on /metrics over HTTP
	Logger    *slog.Logger
}

// Server wraps the MCP server with the element reader and cache.
type Server struct {
	cfg    Config
	reader platform.Reader
	cache  *ElementCache
	logger *slog.Logger
	mcp    *mcpserver.MCPServer
}

// New creates and configures an MCP server with all a11y-cli tools.
func New(cfg Config) *Server {
	s := &Server{
		cfg:    cfg,
		reader: cfg.Reader,
		cache:  NewElementCache(cfg.CacheTTL),
		logger: cfg.Logger,
	}
	if s.reader == nil {
		s.reader = platform.FileReader{}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.mcp = mcpserver.NewMCPServer(
		"a11y-cli",
		version.Version,
	)

	s.registerTools()
	return s
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *mcpserver.MCPServer {
	return s.mcp
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve() error {
	switch s.cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		addr := fmt.Sprintf(":%d", s.cfg.Port)
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		if s.cfg.Recorder == nil {
			return httpServer.Start(addr)
		}
		mux := http.NewServeMux()
		mux.Handle("/mcp", httpServer)
		mux.Handle("/metrics", promhttp.HandlerFor(s.cfg.Recorder.Registry(), promhttp.HandlerOpts{}))
		s.logger.Info("serving MCP and metrics", slog.String("address", addr))
		return http.ListenAndServe(addr, mux)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", s.cfg.Transport)
	}
}

func (s *Server) registerTools() {
	// audit
	s.mcp.AddTool(
		mcp.NewTool("audit",
			mcp.WithDescription("Evaluate accessibility rules against a screen's UI elements. Pass the elements inline as JSON or point at an element dump on disk. Returns findings with rule, severity, message and the offending elements."),
			mcp.WithString("elements", mcp.Description("JSON array of elements, or an object holding them under 'elements'")),
			mcp.WithString("path", mcp.Description("Path to a .json, .yaml or .yml element dump")),
			mcp.WithString("elements_path", mcp.Description("gjson path to the element array (default: root array or 'elements')")),
			mcp.WithString("types", mcp.Description("Only keep these element types (comma-separated, e.g. 'button,image')")),
			mcp.WithString("tests", mcp.Description("Tests or suites to run (comma-separated, default: all)")),
			mcp.WithString("platform", mcp.Description("Spacing platform: phone, pad")),
			mcp.WithBoolean("refresh", mcp.Description("Re-read the element dump instead of using the cache")),
		),
		s.handleAudit,
	)

	// snapshot_diff
	s.mcp.AddTool(
		mcp.NewTool("snapshot_diff",
			mcp.WithDescription("Compare a screen's elements with its reference snapshot. Missing or outdated references are regenerated and reported as warnings."),
			mcp.WithString("suite", mcp.Description("Suite name used in the snapshot filename"), mcp.Required()),
			mcp.WithString("test", mcp.Description("Test name used in the snapshot filename"), mcp.Required()),
			mcp.WithString("elements", mcp.Description("JSON array of elements, or an object holding them under 'elements'")),
			mcp.WithString("path", mcp.Description("Path to a .json, .yaml or .yml element dump")),
			mcp.WithString("elements_path", mcp.Description("gjson path to the element array")),
			mcp.WithBoolean("refresh", mcp.Description("Re-read the element dump instead of using the cache")),
		),
		s.handleSnapshotDiff,
	)

	// rules
	s.mcp.AddTool(
		mcp.NewTool("rules",
			mcp.WithDescription("List the accessibility tests, their severities and the predefined suites"),
		),
		s.handleRules,
	)
}
