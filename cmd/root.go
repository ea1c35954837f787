package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/a11y-cli/internal/config"
	"github.com/mj1618/a11y-cli/internal/logging"
	"github.com/mj1618/a11y-cli/internal/output"
	"github.com/mj1618/a11y-cli/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "a11y-cli",
	Short: "Audit UI element trees for accessibility issues",
	Long: `A CLI tool that evaluates accessibility rules against UI element dumps and
compares screens with reference snapshots to catch unintended changes.`,
	SilenceUsage: true,
}

// Set by the root command's persistent pre-run.
var (
	appConfig = config.Defaults()
	logger    = slog.Default()
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json (default from config)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path, _ := rootCmd.PersistentFlags().GetString("config")
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		if level, _ := rootCmd.PersistentFlags().GetString("log-level"); level != "" {
			if !logging.ValidLevel(level) {
				return fmt.Errorf("unsupported log level: %s (use debug, info, warn or error)", level)
			}
			cfg.Logging.Level = level
		}

		// Use the root persistent flag directly so a subcommand flag of
		// the same name cannot shadow it.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		if format == "" {
			format = cfg.Output.Format
		}
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		appConfig = *cfg
		logger = logging.New(cfg.Logging.Level, cfg.Logging.JSON, cmd.ErrOrStderr())
		slog.SetDefault(logger)
		return nil
	}
}
