package rules

import (
	"fmt"
	"strings"

	"github.com/mj1618/a11y-cli/finding"
	"github.com/mj1618/a11y-cli/model"
)

// MinimumSize warns when a visible element is smaller than minimum in
// either dimension.
func MinimumSize(el model.Element, minimum float64) []finding.Finding {
	if el.ShouldIgnore() {
		return nil
	}
	var out []finding.Finding
	if !model.AtLeast(el.Frame.Height, minimum) {
		out = append(out, finding.Warning(string(TestMinimumSize),
			"Element may not be tall enough.",
			fmt.Sprintf("Minimum height: %s. Current height: %s", model.FormatNumber(minimum), model.FormatNumber(el.Frame.Height)),
			el))
	}
	if !model.AtLeast(el.Frame.Width, minimum) {
		out = append(out, finding.Warning(string(TestMinimumSize),
			"Element may not be wide enough.",
			fmt.Sprintf("Minimum width: %s. Current width: %s", model.FormatNumber(minimum), model.FormatNumber(el.Frame.Width)),
			el))
	}
	return out
}

// MinimumInteractiveSize fails controls smaller than the interactive
// minimum. Disabled controls are only checked when allControls is set.
func MinimumInteractiveSize(el model.Element, minimum float64, allControls bool) []finding.Finding {
	if !el.IsControl() || (!allControls && !el.IsInteractive()) {
		return nil
	}
	var out []finding.Finding
	if !model.AtLeast(el.Frame.Height, minimum) {
		out = append(out, finding.Failure(string(TestMinimumInteractiveSize),
			"Interactive element not tall enough.",
			fmt.Sprintf("Minimum height: %s. Current height: %s", model.FormatNumber(minimum), model.FormatNumber(el.Frame.Height)),
			el))
	}
	if !model.AtLeast(el.Frame.Width, minimum) {
		out = append(out, finding.Failure(string(TestMinimumInteractiveSize),
			"Interactive element not wide enough.",
			fmt.Sprintf("Minimum width: %s. Current width: %s", model.FormatNumber(minimum), model.FormatNumber(el.Frame.Width)),
			el))
	}
	return out
}

// LabelPresence checks that the label is present, long enough to be
// meaningful and not written in capitals. Cells are skipped.
func LabelPresence(el model.Element, minLength int) []finding.Finding {
	if el.ShouldIgnore() || el.Type == model.TypeCell {
		return nil
	}
	var out []finding.Finding
	if el.Placeholder != "" && el.Label == "" {
		out = append(out, finding.Failure(string(TestLabelPresence),
			fmt.Sprintf("No label for element with placeholder %q.", el.Placeholder),
			"", el))
	} else if runeCount(el.Label) <= minLength {
		out = append(out, finding.Warning(string(TestLabelPresence),
			"Label may not be meaningful.",
			fmt.Sprintf("Minimum length: %d", minLength),
			el))
	}
	if isUppercased(el.Label) {
		out = append(out, finding.Warning(string(TestLabelPresence), "Label is uppercased.", "", el))
	}
	return out
}

// LabelLength warns when a non-text element's label exceeds maximum.
func LabelLength(el model.Element, maximum int) []finding.Finding {
	if el.Type == model.TypeStaticText || el.Type == model.TypeTextView || el.ShouldIgnore() {
		return nil
	}
	if runeCount(el.Label) <= maximum {
		return nil
	}
	return []finding.Finding{finding.Warning(string(TestLabelLength),
		"Label may be too long.",
		fmt.Sprintf("Max length: %d", maximum),
		el)}
}

// ButtonLabel fails control labels that are vague, repeat the control
// type, do not start with a capital or contain a period.
func ButtonLabel(el model.Element, nondescriptive []string) []finding.Finding {
	if !el.IsControl() {
		return nil
	}
	rule := string(TestButtonLabel)
	var out []finding.Finding

	for _, phrase := range ContainsWords(el.Label, nondescriptive) {
		out = append(out, finding.Failure(rule,
			"Button label may not be descriptive.",
			fmt.Sprintf("Offending word: %s", phrase),
			el))
	}
	if containsFold(el.Label, "button") {
		out = append(out, finding.Failure(rule,
			"Button should not contain the word 'button' in the accessibility label.", "", el))
	}
	if el.Label != "" && !startsUppercase(el.Label) {
		out = append(out, finding.Failure(rule, "Buttons should begin with a capital letter.", "", el))
	}
	if strings.Contains(el.Label, ".") {
		out = append(out, finding.Failure(rule, "Button accessibility labels shouldn't contain punctuation.", "", el))
	}

	out = append(out, typeRedundantWording(el)...)
	return out
}

func typeRedundantWording(el model.Element) []finding.Finding {
	rule := string(TestButtonLabel)
	var out []finding.Finding
	if el.IsTextEntry() && containsFold(el.Label, "field") {
		out = append(out, finding.Failure(rule, "Text fields should not include their type in the label.", "", el))
	}
	if (el.Type == model.TypeLink || el.Traits.Has(model.TraitLink)) && containsFold(el.Label, "link") {
		out = append(out, finding.Failure(rule, "Links should not include their type in the label.", "", el))
	}
	if el.Type == model.TypeSlider || el.Traits.Has(model.TraitAdjustable) {
		for _, word := range []string{"adjustable", "slider"} {
			if containsFold(el.Label, word) {
				out = append(out, finding.Failure(rule,
					"Adjustable elements should not include their type in the label.",
					fmt.Sprintf("Offending word: %s", word),
					el))
			}
		}
	}
	return out
}

// ImageLabel fails image labels that describe the medium or look like a
// file name. Each category yields at most one finding listing every
// offending token.
func ImageLabel(el model.Element, nouns, filenameTokens []string) []finding.Finding {
	if el.Type != model.TypeImage {
		return nil
	}
	var out []finding.Finding
	if found := ContainsWords(el.Label, nouns); len(found) > 0 {
		out = append(out, finding.Failure(string(TestImageLabel),
			"Images should not contain image words in the accessibility label.",
			fmt.Sprintf("Offending words: %s", strings.Join(found, ", ")),
			el))
	}
	if found := ContainsWords(el.Label, filenameTokens); len(found) > 0 {
		out = append(out, finding.Failure(string(TestImageLabel),
			"Image file name is used as the accessibility label.",
			fmt.Sprintf("Offending words: %s", strings.Join(found, ", ")),
			el))
	}
	return out
}

// ImageTrait fails images without the image trait.
func ImageTrait(el model.Element) []finding.Finding {
	if el.Type != model.TypeImage || el.Traits.Has(model.TraitImage) {
		return nil
	}
	return []finding.Finding{finding.Failure(string(TestImageTrait), "Image should have Image trait.", "", el)}
}

// ButtonTrait fails buttons that carry neither the button nor link trait.
func ButtonTrait(el model.Element) []finding.Finding {
	if el.Type != model.TypeButton || el.Traits.Has(model.TraitButton) || el.Traits.Has(model.TraitLink) {
		return nil
	}
	return []finding.Finding{finding.Failure(string(TestButtonTrait), "Button should have Button or Link trait.", "", el)}
}

// ConflictingTraits fails trait combinations assistive technology
// cannot announce sensibly.
func ConflictingTraits(el model.Element) []finding.Finding {
	if el.Traits.Len() == 0 {
		return nil
	}
	var out []finding.Finding
	if el.Traits.Has(model.TraitButton) && el.Traits.Has(model.TraitLink) {
		out = append(out, finding.Failure(string(TestConflictingTraits),
			"Elements shouldn't have both Button and Link traits.", "", el))
	}
	if el.Traits.Has(model.TraitStaticText) && el.Traits.Has(model.TraitUpdatesFrequently) {
		out = append(out, finding.Failure(string(TestConflictingTraits),
			"Elements shouldn't have both Static Text and Updates Frequently traits.", "", el))
	}
	return out
}

// Disabled warns about disabled controls.
func Disabled(el model.Element) []finding.Finding {
	if !el.IsControl() || el.IsEnabled() {
		return nil
	}
	return []finding.Finding{finding.Warning(string(TestDisabled), "Element disabled.", "", el)}
}

// MissingHeader is reported once per pass when no element is a header.
func MissingHeader() finding.Finding {
	return finding.Failure(string(TestHeader), "Screen has no element with a header trait.", "")
}
