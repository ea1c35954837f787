package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/a11y-cli/model"
)

// ReadOptions controls what elements to read and how to filter them.
type ReadOptions struct {
	Path         string              // Element dump; "-" reads stdin
	ElementsPath string              // gjson path to the element array (empty = root array or "elements")
	Types        []model.ElementType // Only include these types (empty = all)
	Region       *model.Rect         // Only include elements intersecting this region (nil = no filter)
}

// ParseRegion parses a "x,y,w,h" string into a Rect.
func ParseRegion(s string) (*model.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid region %q: expected x,y,w,h", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid region %q: %w", s, err)
		}
		vals[i] = v
	}
	if vals[2] < 0 || vals[3] < 0 {
		return nil, fmt.Errorf("invalid region %q: negative size", s)
	}
	return &model.Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// ParseTypes splits a comma-separated type list. Aliases are accepted;
// unknown names map to "other".
func ParseTypes(s string) []model.ElementType {
	var types []model.ElementType
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		types = append(types, model.ParseType(part))
	}
	return types
}
