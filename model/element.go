package model

// Element describes one UI element at evaluation time.
type Element struct {
	ID          string      `yaml:"id,omitempty"          json:"id,omitempty"`          // Unique within one evaluation pass
	Label       string      `yaml:"label,omitempty"       json:"label,omitempty"`       // Accessibility label
	Placeholder string      `yaml:"placeholder,omitempty" json:"placeholder,omitempty"` // Hint text shown when empty
	Type        ElementType `yaml:"type"                  json:"type"`
	Traits      TraitSet    `yaml:"traits,omitempty"      json:"traits,omitempty"`
	Frame       Rect        `yaml:"frame"                 json:"frame"`
	Enabled     *bool       `yaml:"enabled,omitempty"     json:"enabled,omitempty"`  // nil or true = enabled; false = disabled
	Ignored     bool        `yaml:"ignored,omitempty"     json:"ignored,omitempty"`  // Marked non-accessible by the provider
	Children    []Element   `yaml:"children,omitempty"    json:"children,omitempty"` // Only present in tree-shaped input
}

// controlTypes are element types a user can operate directly.
var controlTypes = map[ElementType]bool{
	TypeButton:           true,
	TypeLink:             true,
	TypeSlider:           true,
	TypeTextField:        true,
	TypeSearchField:      true,
	TypeSecureTextField:  true,
	TypeTextView:         true,
	TypeSwitch:           true,
	TypeToggle:           true,
	TypeStepper:          true,
	TypePicker:           true,
	TypeSegmentedControl: true,
	TypeMenuItem:         true,
	TypeCheckBox:         true,
	TypeRadioButton:      true,
	TypeTab:              true,
}

// controlTraits mark otherwise static elements (e.g. cells) as controls.
var controlTraits = []Trait{TraitButton, TraitLink, TraitAdjustable, TraitSearchField, TraitKeyboardKey}

// IsEnabled reports whether the element accepts interaction.
func (e Element) IsEnabled() bool {
	return e.Enabled == nil || *e.Enabled
}

// ShouldIgnore reports whether the provider excluded the element from
// the accessibility tree. Ignored elements skip size and label checks.
func (e Element) ShouldIgnore() bool {
	return e.Ignored
}

// IsControl reports whether the element is an interactive target by type
// or by trait.
func (e Element) IsControl() bool {
	if controlTypes[e.Type] {
		return true
	}
	for _, t := range controlTraits {
		if e.Traits.Has(t) {
			return true
		}
	}
	return false
}

// IsInteractive reports whether the element is a control a user can
// operate right now.
func (e Element) IsInteractive() bool {
	return e.IsControl() && e.IsEnabled() && !e.ShouldIgnore()
}

// IsTextEntry reports whether the element accepts typed text.
func (e Element) IsTextEntry() bool {
	switch e.Type {
	case TypeTextField, TypeSearchField, TypeSecureTextField, TypeTextView:
		return true
	}
	return false
}

// Bool returns a pointer to b, for building Enabled values.
func Bool(b bool) *bool {
	return &b
}
