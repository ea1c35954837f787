package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/a11y-cli/model"
)

func sampleElements() []model.Element {
	return []model.Element{
		{ID: "1", Label: "Settings", Type: model.TypeStaticText, Traits: model.NewTraitSet(model.TraitHeader), Frame: model.Rect{X: 16, Y: 40, Width: 200, Height: 30}},
		{ID: "2", Label: "Save", Type: model.TypeButton, Traits: model.NewTraitSet(model.TraitButton), Frame: model.Rect{X: 16, Y: 100, Width: 88, Height: 44}},
		{ID: "3", Label: "Delete", Type: model.TypeButton, Traits: model.NewTraitSet(model.TraitLink, model.TraitButton), Enabled: model.Bool(false), Frame: model.Rect{X: 16, Y: 160, Width: 88, Height: 44}},
	}
}

func TestNewRecord(t *testing.T) {
	r := NewRecord(sampleElements()[2])

	assert.Equal(t, "Delete", r.Label)
	assert.Equal(t, "button", r.Type)
	assert.Equal(t, []string{"button", "link"}, r.Traits)
	assert.False(t, r.Enabled)
	assert.Equal(t, 44.0, r.Frame.Height)
}

func TestNewRecord_NoTraitsIsEmptyList(t *testing.T) {
	r := NewRecord(model.Element{Type: model.TypeOther})
	assert.NotNil(t, r.Traits)
	assert.Empty(t, r.Traits)
	assert.True(t, r.Enabled)
}

func TestNewCapture_SkipsIgnored(t *testing.T) {
	elements := sampleElements()
	elements[1].Ignored = true

	c := NewCapture("screen.json", elements)
	require.Len(t, c.Records, 2)
	require.Len(t, c.Elements, 2)
	assert.Equal(t, "Settings", c.Records[0].Label)
	assert.Equal(t, "Delete", c.Records[1].Label)
	assert.Equal(t, "3", c.Elements[1].ID)
}

func TestCapture_Document(t *testing.T) {
	generated := time.Date(2024, 3, 1, 12, 30, 15, 999, time.FixedZone("CET", 3600))
	doc := NewCapture("screen.json", nil).Document(generated)

	assert.Equal(t, "screen.json", doc.Filename)
	assert.Equal(t, CurrentVersion, doc.Version)
	assert.True(t, time.Date(2024, 3, 1, 11, 30, 15, 0, time.UTC).Equal(doc.Generated))
	assert.Equal(t, time.UTC, doc.Generated.Location())
	assert.NotNil(t, doc.Snapshot)
}

func TestCurrentVersion(t *testing.T) {
	assert.Equal(t, "1.2", CurrentVersion)
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.10", "1.9", 1},
		{"1.9", "1.10", -1},
		{"1.2", "1.2", 0},
		{"1.1", "1.2", -1},
		{"2.0", "1.9", 1},
	}
	for _, tt := range tests {
		got, err := CompareVersions(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s vs %s", tt.a, tt.b)
	}

	_, err := CompareVersions("latest", "1.2")
	assert.Error(t, err)
}

func TestIsOutdated(t *testing.T) {
	outdated, err := IsOutdated("1.1")
	require.NoError(t, err)
	assert.True(t, outdated)

	outdated, err = IsOutdated(CurrentVersion)
	require.NoError(t, err)
	assert.False(t, outdated)

	outdated, err = IsOutdated("1.10")
	require.NoError(t, err)
	assert.False(t, outdated)
}
