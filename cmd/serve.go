package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/a11y-cli/internal/metrics"
	"github.com/mj1618/a11y-cli/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing a11y-cli tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the audit,
snapshot_diff and rules tools. AI agents can call tools directly without shell
overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport on /mcp, with Prometheus metrics on /metrics

Examples:
  a11y-cli serve
  a11y-cli serve --transport streamable-http --port 8080
  a11y-cli serve --cache-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", 500, "Element dump cache TTL in milliseconds (0 to disable)")
	serveCmd.Flags().String("reference-dir", "", "Directory holding reference snapshots (default from config)")
	serveCmd.Flags().String("output-dir", "", "Directory for regenerated snapshots (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	cfg := server.Config{
		Transport: transport,
		Port:      port,
		CacheTTL:  time.Duration(cacheTTLMs) * time.Millisecond,
		Rules:     appConfig.Rules,
		Store:     snapshotStore(cmd),
		Logger:    logger,
	}
	if transport == "streamable-http" {
		cfg.Recorder = metrics.NewRecorder()
	}

	return server.New(cfg).Serve()
}
