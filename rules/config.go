// Package rules evaluates accessibility heuristics against UI elements,
// one element at a time and across every pair of controls on a screen.
package rules

import (
	"fmt"
	"strings"
)

// Test identifies one check in the catalog.
type Test string

const (
	TestMinimumSize            Test = "minimumSize"
	TestMinimumInteractiveSize Test = "minimumInteractiveSize"
	TestLabelPresence          Test = "labelPresence"
	TestButtonLabel            Test = "buttonLabel"
	TestImageLabel             Test = "imageLabel"
	TestLabelLength            Test = "labelLength"
	TestHeader                 Test = "header"
	TestImageTrait             Test = "imageTrait"
	TestButtonTrait            Test = "buttonTrait"
	TestConflictingTraits      Test = "conflictingTraits"
	TestDisabled               Test = "disabled"
	TestDuplicated             Test = "duplicated"
	TestControlSpacing         Test = "controlSpacing"
	TestControlOverlap         Test = "controlOverlap"
)

// AllTests lists the whole catalog in evaluation order.
var AllTests = []Test{
	TestMinimumSize,
	TestMinimumInteractiveSize,
	TestLabelPresence,
	TestButtonLabel,
	TestImageLabel,
	TestLabelLength,
	TestHeader,
	TestImageTrait,
	TestButtonTrait,
	TestConflictingTraits,
	TestDisabled,
	TestDuplicated,
	TestControlSpacing,
	TestControlOverlap,
}

// Suites are named groups of tests suited to a kind of element.
var Suites = map[string][]Test{
	"all":         AllTests,
	"images":      {TestMinimumSize, TestLabelPresence, TestImageLabel, TestLabelLength, TestImageTrait},
	"interactive": {TestMinimumInteractiveSize, TestLabelPresence, TestButtonLabel, TestLabelLength, TestDuplicated},
	"labels":      {TestMinimumSize, TestLabelPresence},
}

// Platform selects platform-dependent spacing constants.
type Platform string

const (
	// PlatformPhone uses touch-sized spacing.
	PlatformPhone Platform = "phone"
	// PlatformPad has more pointer precision and pads controls further.
	PlatformPad Platform = "pad"
)

const (
	phonePadding = 8
	padPadding   = 12
)

// Default word lists. English only; replace through Config.
var (
	DefaultNondescriptivePhrases = []string{"click here", "tap here", "more"}
	DefaultImageNouns            = []string{"image", "picture", "graphic", "icon", "photo"}
	DefaultFilenameTokens        = []string{"_", "-", "png", "jpg", "jpeg", "pdf", "avci", "heic", "heif", "svg"}
)

// Config tunes the rule catalog.
type Config struct {
	Tests                 []Test   `mapstructure:"tests"                  yaml:"tests"`
	MinSize               float64  `mapstructure:"min_size"               yaml:"min_size"`
	MinInteractiveSize    float64  `mapstructure:"min_interactive_size"   yaml:"min_interactive_size"`
	MinLabelLength        int      `mapstructure:"min_label_length"       yaml:"min_label_length"`
	MaxLabelLength        int      `mapstructure:"max_label_length"       yaml:"max_label_length"`
	Platform              Platform `mapstructure:"platform"               yaml:"platform"`
	AllControls           bool     `mapstructure:"all_controls"           yaml:"all_controls"` // Size-check disabled controls too
	NondescriptivePhrases []string `mapstructure:"nondescriptive_phrases" yaml:"nondescriptive_phrases"`
	ImageNouns            []string `mapstructure:"image_nouns"            yaml:"image_nouns"`
	FilenameTokens        []string `mapstructure:"filename_tokens"        yaml:"filename_tokens"`
}

// DefaultConfig returns the built-in catalog settings.
func DefaultConfig() Config {
	return Config{
		Tests:                 append([]Test(nil), AllTests...),
		MinSize:               14,
		MinInteractiveSize:    44,
		MinLabelLength:        2,
		MaxLabelLength:        40,
		Platform:              PlatformPhone,
		NondescriptivePhrases: append([]string(nil), DefaultNondescriptivePhrases...),
		ImageNouns:            append([]string(nil), DefaultImageNouns...),
		FilenameTokens:        append([]string(nil), DefaultFilenameTokens...),
	}
}

// Validate rejects unknown tests and platforms and negative limits.
func (c Config) Validate() error {
	known := make(map[Test]bool, len(AllTests))
	for _, t := range AllTests {
		known[t] = true
	}
	for _, t := range c.Tests {
		if !known[t] {
			return fmt.Errorf("unknown test: %q", t)
		}
	}
	switch c.Platform {
	case "", PlatformPhone, PlatformPad:
	default:
		return fmt.Errorf("unknown platform: %q (use phone or pad)", c.Platform)
	}
	if c.MinSize < 0 || c.MinInteractiveSize < 0 {
		return fmt.Errorf("minimum sizes must not be negative")
	}
	if c.MinLabelLength < 0 || c.MaxLabelLength < 0 {
		return fmt.Errorf("label lengths must not be negative")
	}
	return nil
}

// Enabled reports whether t should run. An empty test list runs everything.
func (c Config) Enabled(t Test) bool {
	if len(c.Tests) == 0 {
		return true
	}
	for _, candidate := range c.Tests {
		if candidate == t {
			return true
		}
	}
	return false
}

// Padding is the margin added around a control before testing whether
// a neighbour sits too close.
func (c Config) Padding() float64 {
	if c.Platform == PlatformPad {
		return padPadding
	}
	return phonePadding
}

func (c Config) nondescriptivePhrases() []string {
	if len(c.NondescriptivePhrases) == 0 {
		return DefaultNondescriptivePhrases
	}
	return c.NondescriptivePhrases
}

func (c Config) imageNouns() []string {
	if len(c.ImageNouns) == 0 {
		return DefaultImageNouns
	}
	return c.ImageNouns
}

func (c Config) filenameTokens() []string {
	if len(c.FilenameTokens) == 0 {
		return DefaultFilenameTokens
	}
	return c.FilenameTokens
}

// ResolveTests expands a list of suite names and test ids into tests,
// dropping duplicates while keeping first-seen order.
func ResolveTests(names []string) ([]Test, error) {
	seen := make(map[Test]bool)
	var tests []Test
	add := func(t Test) {
		if !seen[t] {
			seen[t] = true
			tests = append(tests, t)
		}
	}
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if suite, ok := Suites[strings.ToLower(name)]; ok {
			for _, t := range suite {
				add(t)
			}
			continue
		}
		t, ok := lookupTest(name)
		if !ok {
			return nil, fmt.Errorf("unknown test or suite: %q", name)
		}
		add(t)
	}
	return tests, nil
}

func lookupTest(name string) (Test, bool) {
	for _, t := range AllTests {
		if strings.EqualFold(string(t), name) {
			return t, true
		}
	}
	return "", false
}
