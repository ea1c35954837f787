package model

import "testing"

func TestFlattenElements_Basic(t *testing.T) {
	elements := []Element{
		{ID: "1", Type: TypeButton, Label: "OK"},
		{ID: "2", Type: TypeStaticText, Label: "Hello"},
	}
	result := FlattenElements(elements)
	if len(result) != 2 {
		t.Fatalf("expected 2 flat elements, got %d", len(result))
	}
	if result[0].ID != "1" || result[1].ID != "2" {
		t.Errorf("expected order preserved, got %q, %q", result[0].ID, result[1].ID)
	}
}

func TestFlattenElements_DepthFirst(t *testing.T) {
	elements := []Element{
		{
			ID: "window", Type: TypeOther,
			Children: []Element{
				{
					ID: "toolbar", Type: TypeOther,
					Children: []Element{
						{ID: "back", Type: TypeButton, Label: "Back"},
					},
				},
				{ID: "title", Type: TypeStaticText, Label: "Inbox"},
			},
		},
	}
	result := FlattenElements(elements)
	want := []string{"window", "toolbar", "back", "title"}
	if len(result) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(result))
	}
	for i, id := range want {
		if result[i].ID != id {
			t.Errorf("position %d: expected %q, got %q", i, id, result[i].ID)
		}
		if result[i].Children != nil {
			t.Errorf("position %d: children should be cleared", i)
		}
	}
}

func TestFlattenElements_AssignsIDs(t *testing.T) {
	elements := []Element{
		{Type: TypeButton, Label: "A"},
		{Type: TypeButton, Label: "B"},
		{ID: "keep", Type: TypeButton, Label: "C"},
	}
	result := FlattenElements(elements)
	if result[0].ID == "" || result[1].ID == "" {
		t.Fatal("expected generated IDs")
	}
	if result[0].ID == result[1].ID {
		t.Error("generated IDs should be unique")
	}
	if result[2].ID != "keep" {
		t.Errorf("existing ID should be kept, got %q", result[2].ID)
	}
}

func TestFlattenElements_ReassignsRepeatedIDs(t *testing.T) {
	elements := []Element{
		{ID: "row", Type: TypeCell, Children: []Element{
			{ID: "row", Type: TypeButton, Label: "Edit"},
		}},
		{ID: "row", Type: TypeButton, Label: "Delete"},
	}
	result := FlattenElements(elements)
	if len(result) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(result))
	}
	if result[0].ID != "row" {
		t.Errorf("first occurrence should keep its ID, got %q", result[0].ID)
	}
	seen := map[string]bool{}
	for _, el := range result {
		if seen[el.ID] {
			t.Errorf("ID %q appears twice", el.ID)
		}
		seen[el.ID] = true
	}
}

func TestFlattenElements_NormalizesFrames(t *testing.T) {
	elements := []Element{{ID: "x", Frame: Rect{X: 5, Y: 5, Width: -10, Height: 20}}}
	result := FlattenElements(elements)
	if result[0].Frame.Width != 0 {
		t.Errorf("negative width should clamp to 0, got %v", result[0].Frame.Width)
	}
	if result[0].Frame.Height != 20 {
		t.Errorf("height should be untouched, got %v", result[0].Frame.Height)
	}
}

func TestFlattenElements_Empty(t *testing.T) {
	if result := FlattenElements(nil); len(result) != 0 {
		t.Errorf("expected empty result, got %d", len(result))
	}
}
