package model

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestElement_JSONKeys(t *testing.T) {
	el := Element{
		ID:     "a",
		Label:  "OK",
		Type:   TypeButton,
		Traits: NewTraitSet(TraitButton),
		Frame:  Rect{X: 10, Y: 20, Width: 100, Height: 44},
	}
	data, err := json.Marshal(el)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "label", "type", "traits", "frame"} {
		if _, ok := m[key]; !ok {
			t.Errorf("expected key %q in JSON output", key)
		}
	}
	// Enabled=nil, ignored=false and no children should be omitted
	for _, key := range []string{"enabled", "ignored", "children", "placeholder"} {
		if _, ok := m[key]; ok {
			t.Errorf("unexpected key %q in JSON output", key)
		}
	}
}

func TestElement_DecodeJSONNormalizesType(t *testing.T) {
	input := `{"id":"1","label":"Go","type":"AXButton","traits":["button","button","link"],"frame":{"x":1,"y":2,"width":3,"height":4},"enabled":false}`
	var el Element
	if err := json.Unmarshal([]byte(input), &el); err != nil {
		t.Fatal(err)
	}
	if el.Type != TypeButton {
		t.Errorf("expected type button, got %q", el.Type)
	}
	if el.Traits.Len() != 2 {
		t.Errorf("expected duplicate traits to collapse, got %v", el.Traits.Names())
	}
	if el.IsEnabled() {
		t.Error("expected element to be disabled")
	}
	if el.Frame.Height != 4 {
		t.Errorf("expected height 4, got %v", el.Frame.Height)
	}
}

func TestElement_DecodeYAML(t *testing.T) {
	input := `
id: hdr
label: Settings
type: staticText
traits: [header, staticText]
frame: {x: 0, y: 0, width: 320, height: 44}
`
	var el Element
	if err := yaml.Unmarshal([]byte(input), &el); err != nil {
		t.Fatal(err)
	}
	if el.Type != TypeStaticText {
		t.Errorf("expected staticText, got %q", el.Type)
	}
	if !el.Traits.Has(TraitHeader) {
		t.Error("expected header trait")
	}
	if !el.IsEnabled() {
		t.Error("missing enabled should mean enabled")
	}
}

func TestElement_IsControl(t *testing.T) {
	tests := []struct {
		name string
		el   Element
		want bool
	}{
		{"button type", Element{Type: TypeButton}, true},
		{"text field", Element{Type: TypeTextField}, true},
		{"static text", Element{Type: TypeStaticText}, false},
		{"plain cell", Element{Type: TypeCell}, false},
		{"cell with button trait", Element{Type: TypeCell, Traits: NewTraitSet(TraitButton)}, true},
		{"other with adjustable trait", Element{Type: TypeOther, Traits: NewTraitSet(TraitAdjustable)}, true},
		{"image", Element{Type: TypeImage, Traits: NewTraitSet(TraitImage)}, false},
	}
	for _, tt := range tests {
		if got := tt.el.IsControl(); got != tt.want {
			t.Errorf("%s: IsControl() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestElement_IsInteractive(t *testing.T) {
	if !(Element{Type: TypeButton}).IsInteractive() {
		t.Error("enabled button should be interactive")
	}
	if (Element{Type: TypeButton, Enabled: Bool(false)}).IsInteractive() {
		t.Error("disabled button should not be interactive")
	}
	if (Element{Type: TypeButton, Ignored: true}).IsInteractive() {
		t.Error("ignored button should not be interactive")
	}
	if (Element{Type: TypeStaticText}).IsInteractive() {
		t.Error("static text should not be interactive")
	}
}

func TestElement_IsTextEntry(t *testing.T) {
	for _, typ := range []ElementType{TypeTextField, TypeSearchField, TypeSecureTextField, TypeTextView} {
		if !(Element{Type: typ}).IsTextEntry() {
			t.Errorf("%s should be text entry", typ)
		}
	}
	if (Element{Type: TypeButton}).IsTextEntry() {
		t.Error("button should not be text entry")
	}
}
