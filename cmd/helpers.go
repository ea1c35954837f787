package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mj1618/a11y-cli/internal/metrics"
	"github.com/mj1618/a11y-cli/internal/platform"
)

// errFailures is returned after printing results that contain failures,
// so the process exits non-zero.
var errFailures = errors.New("accessibility failures found")

// addReadFlags registers the element dump flags shared by audit and snapshot.
func addReadFlags(cmd *cobra.Command) {
	cmd.Flags().String("elements-path", "", "gjson path to the element array (default: root array or \"elements\")")
	cmd.Flags().String("types", "", "Comma-separated element types to include (e.g. \"button,image\")")
	cmd.Flags().String("region", "", "Only include elements intersecting this region (x,y,w,h)")
}

// getReadOptions builds read options from the flags added by addReadFlags.
func getReadOptions(cmd *cobra.Command) (platform.ReadOptions, error) {
	elementsPath, _ := cmd.Flags().GetString("elements-path")
	types, _ := cmd.Flags().GetString("types")
	region, _ := cmd.Flags().GetString("region")

	opts := platform.ReadOptions{
		ElementsPath: elementsPath,
		Types:        platform.ParseTypes(types),
	}
	if region != "" {
		r, err := platform.ParseRegion(region)
		if err != nil {
			return opts, err
		}
		opts.Region = r
	}
	return opts, nil
}

// addMetricsFlag registers --metrics-file.
func addMetricsFlag(cmd *cobra.Command) {
	cmd.Flags().String("metrics-file", "", "Write Prometheus metrics to this textfile (default from config)")
}

// writeMetrics exports the recorder when a textfile is configured.
func writeMetrics(cmd *cobra.Command, recorder *metrics.Recorder) error {
	path, _ := cmd.Flags().GetString("metrics-file")
	if path == "" {
		path = appConfig.Metrics.Textfile
	}
	if path == "" {
		return nil
	}
	if err := recorder.WriteTextfile(path); err != nil {
		return err
	}
	logger.Debug("metrics written", slog.String("path", path))
	return nil
}

// overlayName derives the PNG name for an element dump, e.g.
// "screens/login.json" -> "login.png".
func overlayName(path string) string {
	if path == "-" {
		return "stdin.png"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
}

// splitList splits a comma-separated flag value.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func requireFlag(cmd *cobra.Command, name string) (string, error) {
	v, _ := cmd.Flags().GetString(name)
	if strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("--%s is required", name)
	}
	return v, nil
}
