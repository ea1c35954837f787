package model

import "strings"

// ElementType is the closed set of element kinds the rules understand.
type ElementType string

const (
	TypeImage            ElementType = "image"
	TypeButton           ElementType = "button"
	TypeCell             ElementType = "cell"
	TypeStaticText       ElementType = "staticText"
	TypeTextView         ElementType = "textView"
	TypeTextField        ElementType = "textField"
	TypeSearchField      ElementType = "searchField"
	TypeSecureTextField  ElementType = "secureTextField"
	TypeLink             ElementType = "link"
	TypeSlider           ElementType = "slider"
	TypeSwitch           ElementType = "switch"
	TypeToggle           ElementType = "toggle"
	TypeStepper          ElementType = "stepper"
	TypePicker           ElementType = "picker"
	TypeSegmentedControl ElementType = "segmentedControl"
	TypeMenuItem         ElementType = "menuItem"
	TypeCheckBox         ElementType = "checkBox"
	TypeRadioButton      ElementType = "radioButton"
	TypeTab              ElementType = "tab"
	TypeOther            ElementType = "other"
)

// KnownTypes lists every canonical element type.
var KnownTypes = []ElementType{
	TypeImage, TypeButton, TypeCell, TypeStaticText, TypeTextView,
	TypeTextField, TypeSearchField, TypeSecureTextField, TypeLink,
	TypeSlider, TypeSwitch, TypeToggle, TypeStepper, TypePicker,
	TypeSegmentedControl, TypeMenuItem, TypeCheckBox, TypeRadioButton,
	TypeTab, TypeOther,
}

// TypeAliases maps platform role names and compact codes to element types.
// Keys are lower-cased.
var TypeAliases = map[string]ElementType{
	"axbutton":       TypeButton,
	"btn":            TypeButton,
	"axstatictext":   TypeStaticText,
	"txt":            TypeStaticText,
	"text":           TypeStaticText,
	"label":          TypeStaticText,
	"axlink":         TypeLink,
	"lnk":            TypeLink,
	"aximage":        TypeImage,
	"img":            TypeImage,
	"axtextfield":    TypeTextField,
	"input":          TypeTextField,
	"axtextarea":     TypeTextView,
	"textarea":       TypeTextView,
	"axsearchfield":  TypeSearchField,
	"axcheckbox":     TypeCheckBox,
	"chk":            TypeCheckBox,
	"axswitch":       TypeSwitch,
	"axradiobutton":  TypeRadioButton,
	"radio":          TypeRadioButton,
	"axslider":       TypeSlider,
	"axmenuitem":     TypeMenuItem,
	"menuitem":       TypeMenuItem,
	"axcell":         TypeCell,
	"axrow":          TypeCell,
	"row":            TypeCell,
	"axtabgroup":     TypeTab,
	"axpopupbutton":  TypePicker,
	"axincrementor":  TypeStepper,
	"securetextbox":  TypeSecureTextField,
	"segmented":      TypeSegmentedControl,
	"axsegmentedctl": TypeSegmentedControl,
}

// ParseType converts a raw type or role name to an ElementType.
// Canonical names match case-insensitively; unknown names map to TypeOther.
func ParseType(raw string) ElementType {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return TypeOther
	}
	for _, t := range KnownTypes {
		if strings.ToLower(string(t)) == lower {
			return t
		}
	}
	if t, ok := TypeAliases[lower]; ok {
		return t
	}
	return TypeOther
}

// Name returns the canonical name used in snapshots.
func (t ElementType) Name() string {
	if t == "" {
		return string(TypeOther)
	}
	return string(t)
}

// UnmarshalText normalizes aliases while decoding JSON and YAML input.
func (t *ElementType) UnmarshalText(text []byte) error {
	*t = ParseType(string(text))
	return nil
}
