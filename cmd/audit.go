package cmd

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mj1618/a11y-cli/finding"
	"github.com/mj1618/a11y-cli/internal/metrics"
	"github.com/mj1618/a11y-cli/internal/output"
	"github.com/mj1618/a11y-cli/internal/overlay"
	"github.com/mj1618/a11y-cli/internal/platform"
	"github.com/mj1618/a11y-cli/model"
	"github.com/mj1618/a11y-cli/rules"
)

var auditCmd = &cobra.Command{
	Use:   "audit <file>...",
	Short: "Evaluate accessibility rules against element dumps",
	Long: `Evaluate the accessibility rule catalog against one or more element dumps
(.json, .yaml or .yml; "-" reads stdin). Files are audited concurrently and
reported in argument order. Exits non-zero when any failure is found.

Examples:
  a11y-cli audit screens/login.json
  a11y-cli audit --tests interactive,header screens/*.json
  a11y-cli audit --overlay out/ --background login.png screens/login.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
	addReadFlags(auditCmd)
	addMetricsFlag(auditCmd)
	auditCmd.Flags().String("tests", "", "Comma-separated tests or suites to run (default from config)")
	auditCmd.Flags().String("platform", "", "Spacing platform: phone, pad (default from config)")
	auditCmd.Flags().String("overlay", "", "Write a PNG overlay of flagged elements per file into this directory")
	auditCmd.Flags().String("background", "", "Screenshot to draw overlays on (PNG or JPEG)")
	auditCmd.Flags().Float64("scale", 1, "Pixels per element point for overlays")
	auditCmd.Flags().Int("concurrency", 4, "Max files audited at once")
}

// auditJob holds what one file's audit produced.
type auditJob struct {
	result   output.FileResult
	elements []model.Element
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := auditRulesConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := getReadOptions(cmd)
	if err != nil {
		return err
	}
	overlayDir, _ := cmd.Flags().GetString("overlay")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	var background image.Image
	if path, _ := cmd.Flags().GetString("background"); path != "" {
		if background, err = overlay.LoadBackground(path); err != nil {
			return err
		}
	}
	scale, _ := cmd.Flags().GetFloat64("scale")

	reader := platform.FileReader{Stdin: cmd.InOrStdin()}
	recorder := metrics.NewRecorder()
	jobs := make([]auditJob, len(args))

	g := new(errgroup.Group)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, path := range args {
		g.Go(func() error {
			jobs[i] = auditFile(reader, path, opts, cfg, recorder)
			if overlayDir == "" || jobs[i].result.Error != "" {
				return nil
			}
			return writeOverlay(filepath.Join(overlayDir, overlayName(path)), jobs[i], overlay.Options{
				Background: background,
				Scale:      scale,
			})
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	results := make([]output.FileResult, len(jobs))
	for i, job := range jobs {
		results[i] = job.result
	}
	res := output.NewAuditResult(results)
	if err := output.Print(res); err != nil {
		return err
	}
	if err := writeMetrics(cmd, recorder); err != nil {
		return err
	}
	if !res.Passed {
		return errFailures
	}
	return nil
}

// auditRulesConfig applies --tests and --platform to the configured rules.
func auditRulesConfig(cmd *cobra.Command) (rules.Config, error) {
	cfg := appConfig.Rules
	if tests, _ := cmd.Flags().GetString("tests"); tests != "" {
		resolved, err := rules.ResolveTests(splitList(tests))
		if err != nil {
			return cfg, err
		}
		cfg.Tests = resolved
	}
	if p, _ := cmd.Flags().GetString("platform"); p != "" {
		cfg.Platform = rules.Platform(p)
	}
	return cfg, cfg.Validate()
}

// auditFile reads and evaluates one element dump with its own engine
// and reporter. Read errors are recorded on the result.
func auditFile(reader platform.Reader, path string, opts platform.ReadOptions, cfg rules.Config, recorder *metrics.Recorder) auditJob {
	log := logger.With(slog.String("file", path))
	opts.Path = path
	elements, err := reader.ReadElements(opts)
	if err != nil {
		log.Error("read elements failed", slog.Any("error", err))
		return auditJob{result: output.FileResult{Path: path, Error: err.Error()}}
	}

	collector := &finding.Collector{}
	reporter := finding.NewReporter(log, collector, recorder)
	start := time.Now()
	rules.NewEngine(cfg).Evaluate(elements, reporter)
	recorder.ObservePass(len(elements), time.Since(start), reporter.Failed())

	log.Debug("audit finished", slog.Int("elements", len(elements)))
	return auditJob{
		result:   output.NewFileResult(path, len(elements), collector.Findings()),
		elements: elements,
	}
}

func writeOverlay(path string, job auditJob, opts overlay.Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create overlay dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create overlay: %w", err)
	}
	defer f.Close()
	return overlay.WritePNG(f, overlay.Render(job.elements, job.result.Findings, opts))
}
