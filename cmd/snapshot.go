package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mj1618/a11y-cli/finding"
	"github.com/mj1618/a11y-cli/internal/metrics"
	"github.com/mj1618/a11y-cli/internal/output"
	"github.com/mj1618/a11y-cli/internal/platform"
	"github.com/mj1618/a11y-cli/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <file>",
	Short: "Compare an element dump with its reference snapshot",
	Long: `Capture the elements in an element dump as a snapshot and compare it with the
reference stored for --suite and --test. Missing or outdated references are
regenerated into the output directory and reported as warnings; review them
before copying them into the reference directory. Exits non-zero on any
difference.

Examples:
  a11y-cli snapshot --suite Login --test signIn screens/login.json
  a11y-cli snapshot --suite Login --test signIn --reference-dir testdata/snapshots -`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshot,
}

var snapshotCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove old generated snapshots",
	Long:  "Remove generated snapshots in the output directory older than --max-age. References are never touched.",
	Args:  cobra.NoArgs,
	RunE:  runSnapshotClean,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotCleanCmd)

	addReadFlags(snapshotCmd)
	addMetricsFlag(snapshotCmd)
	snapshotCmd.Flags().String("suite", "", "Suite name used in the snapshot filename (required)")
	snapshotCmd.Flags().String("test", "", "Test name used in the snapshot filename (required)")
	snapshotCmd.PersistentFlags().String("reference-dir", "", "Directory holding reference snapshots (default from config)")
	snapshotCmd.PersistentFlags().String("output-dir", "", "Directory for regenerated snapshots (default from config)")

	snapshotCleanCmd.Flags().Duration("max-age", 0, "Remove snapshots older than this (default from config)")
}

// snapshotStore builds the file store from flags and config.
func snapshotStore(cmd *cobra.Command) snapshot.FileStore {
	store := snapshot.FileStore{
		ReferenceDir: appConfig.Snapshot.ReferenceDir,
		OutputDir:    appConfig.Snapshot.OutputDir,
	}
	if dir, _ := cmd.Flags().GetString("reference-dir"); dir != "" {
		store.ReferenceDir = dir
	}
	if dir, _ := cmd.Flags().GetString("output-dir"); dir != "" {
		store.OutputDir = dir
	}
	return store
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	suite, err := requireFlag(cmd, "suite")
	if err != nil {
		return err
	}
	test, err := requireFlag(cmd, "test")
	if err != nil {
		return err
	}
	opts, err := getReadOptions(cmd)
	if err != nil {
		return err
	}
	opts.Path = args[0]

	elements, err := platform.FileReader{Stdin: cmd.InOrStdin()}.ReadElements(opts)
	if err != nil {
		return err
	}

	recorder := metrics.NewRecorder()
	reporter := finding.NewReporter(logger.With(slog.String("suite", suite), slog.String("test", test)), recorder)
	findings := snapshot.NewSnapshotter(snapshotStore(cmd), reporter).Capture(suite, test, elements)

	failures, warnings := reporter.Counts()
	if err := output.Print(output.SnapshotResult{
		Suite:    suite,
		Test:     test,
		Path:     snapshot.Filename(suite, test, 0),
		Failures: failures,
		Warnings: warnings,
		Findings: findings,
	}); err != nil {
		return err
	}
	if err := writeMetrics(cmd, recorder); err != nil {
		return err
	}
	if reporter.Failed() {
		return errFailures
	}
	return nil
}

func runSnapshotClean(cmd *cobra.Command, args []string) error {
	maxAge, _ := cmd.Flags().GetDuration("max-age")
	if maxAge == 0 {
		maxAge = appConfig.Snapshot.MaxAge
	}
	store := snapshotStore(cmd)
	removed, err := store.Clean(maxAge)
	if err != nil {
		return err
	}
	logger.Info("cleaned snapshots", slog.String("dir", store.OutputDir), slog.Int("removed", removed))
	return output.Print(output.CleanResult{Dir: store.OutputDir, Removed: removed})
}
