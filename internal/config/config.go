// Package config loads CLI settings from defaults, an optional YAML
// file and A11Y_* environment variables, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/mj1618/a11y-cli/internal/logging"
	"github.com/mj1618/a11y-cli/rules"
)

// EnvPrefix prefixes every environment override, e.g. A11Y_RULES_MIN_SIZE.
const EnvPrefix = "A11Y"

// Config is the full CLI configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"  yaml:"logging"`
	Rules    rules.Config   `mapstructure:"rules"    yaml:"rules"`
	Snapshot SnapshotConfig `mapstructure:"snapshot" yaml:"snapshot"`
	Metrics  MetricsConfig  `mapstructure:"metrics"  yaml:"metrics"`
	Output   OutputConfig   `mapstructure:"output"   yaml:"output"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	JSON  bool   `mapstructure:"json"  yaml:"json"`
}

// SnapshotConfig locates reference and regenerated snapshots.
type SnapshotConfig struct {
	ReferenceDir string        `mapstructure:"reference_dir" yaml:"reference_dir"`
	OutputDir    string        `mapstructure:"output_dir"    yaml:"output_dir"`
	MaxAge       time.Duration `mapstructure:"max_age"       yaml:"max_age"` // Used by "snapshot clean"
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile" yaml:"textfile"` // Empty disables the export
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Rules:   rules.DefaultConfig(),
		Snapshot: SnapshotConfig{
			ReferenceDir: "snapshots",
			OutputDir:    filepath.Join(os.TempDir(), "a11y-cli-snapshots"),
			MaxAge:       24 * time.Hour,
		},
		Output: OutputConfig{Format: "yaml"},
	}
}

// Load reads path (optional) on top of the defaults and applies
// environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v, Defaults())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file failed (%s): %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}

	names := make([]string, len(cfg.Rules.Tests))
	for i, t := range cfg.Rules.Tests {
		names[i] = string(t)
	}
	tests, err := rules.ResolveTests(names)
	if err != nil {
		return nil, fmt.Errorf("rules.tests: %w", err)
	}
	cfg.Rules.Tests = tests

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	if err := c.Rules.Validate(); err != nil {
		return fmt.Errorf("rules: %w", err)
	}
	switch c.Output.Format {
	case "yaml", "json":
	default:
		return fmt.Errorf("output.format: unknown format %q (use yaml or json)", c.Output.Format)
	}
	if c.Snapshot.MaxAge < 0 {
		return fmt.Errorf("snapshot.max_age must not be negative")
	}
	return nil
}

func setDefaults(v *viper.Viper, d Config) {
	tests := make([]string, len(d.Rules.Tests))
	for i, t := range d.Rules.Tests {
		tests[i] = string(t)
	}

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.json", d.Logging.JSON)

	v.SetDefault("rules.tests", tests)
	v.SetDefault("rules.min_size", d.Rules.MinSize)
	v.SetDefault("rules.min_interactive_size", d.Rules.MinInteractiveSize)
	v.SetDefault("rules.min_label_length", d.Rules.MinLabelLength)
	v.SetDefault("rules.max_label_length", d.Rules.MaxLabelLength)
	v.SetDefault("rules.platform", string(d.Rules.Platform))
	v.SetDefault("rules.all_controls", d.Rules.AllControls)
	v.SetDefault("rules.nondescriptive_phrases", d.Rules.NondescriptivePhrases)
	v.SetDefault("rules.image_nouns", d.Rules.ImageNouns)
	v.SetDefault("rules.filename_tokens", d.Rules.FilenameTokens)

	v.SetDefault("snapshot.reference_dir", d.Snapshot.ReferenceDir)
	v.SetDefault("snapshot.output_dir", d.Snapshot.OutputDir)
	v.SetDefault("snapshot.max_age", d.Snapshot.MaxAge)

	v.SetDefault("metrics.textfile", d.Metrics.Textfile)
	v.SetDefault("output.format", d.Output.Format)
}
