// Package snapshot records the accessibility-relevant state of a screen,
// stores it as a versioned JSON document and compares later captures
// against it.
package snapshot

import (
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/mj1618/a11y-cli/model"
)

const (
	wrapperVersion = 1
	recordVersion  = 2
)

// CurrentVersion is "<wrapper>.<record>" for documents written by this
// package. Bump recordVersion whenever Record gains or changes a field.
var CurrentVersion = fmt.Sprintf("%d.%d", wrapperVersion, recordVersion)

// Record is the persisted form of one element.
type Record struct {
	Label   string     `yaml:"label"   json:"label"`
	Type    string     `yaml:"type"    json:"type"`
	Traits  []string   `yaml:"traits"  json:"traits"`
	Enabled bool       `yaml:"enabled" json:"enabled"`
	Frame   model.Rect `yaml:"frame"   json:"frame"`
}

// NewRecord captures el. Traits are sorted by name.
func NewRecord(el model.Element) Record {
	return Record{
		Label:   el.Label,
		Type:    el.Type.Name(),
		Traits:  el.Traits.Names(),
		Enabled: el.IsEnabled(),
		Frame:   el.Frame,
	}
}

// Document is one stored snapshot.
type Document struct {
	Filename  string    `yaml:"filename"  json:"filename"`
	Version   string    `yaml:"version"   json:"version"`
	Generated time.Time `yaml:"generated" json:"generated"`
	Snapshot  []Record  `yaml:"snapshot"  json:"snapshot"`
}

// Capture is a freshly observed screen: the elements that made it into
// the snapshot and their records, index for index.
type Capture struct {
	Filename string
	Elements []model.Element
	Records  []Record
}

// NewCapture builds a capture from elements, leaving out ignored ones.
func NewCapture(filename string, elements []model.Element) Capture {
	c := Capture{Filename: filename}
	for _, el := range elements {
		if el.ShouldIgnore() {
			continue
		}
		c.Elements = append(c.Elements, el)
		c.Records = append(c.Records, NewRecord(el))
	}
	return c
}

// Document returns the capture as a current-version document.
func (c Capture) Document(generated time.Time) Document {
	records := c.Records
	if records == nil {
		records = []Record{}
	}
	return Document{
		Filename:  c.Filename,
		Version:   CurrentVersion,
		Generated: generated.UTC().Truncate(time.Second),
		Snapshot:  records,
	}
}

// CompareVersions orders two "major.minor" version strings numerically,
// so "1.10" sorts after "1.9". It returns -1, 0 or 1.
func CompareVersions(a, b string) (int, error) {
	va, err := semver.NewVersion(a)
	if err != nil {
		return 0, fmt.Errorf("parse version %q: %w", a, err)
	}
	vb, err := semver.NewVersion(b)
	if err != nil {
		return 0, fmt.Errorf("parse version %q: %w", b, err)
	}
	return va.Compare(vb), nil
}

// IsOutdated reports whether version predates CurrentVersion.
func IsOutdated(version string) (bool, error) {
	cmp, err := CompareVersions(version, CurrentVersion)
	if err != nil {
		return false, err
	}
	return cmp < 0, nil
}
