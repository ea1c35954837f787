package platform

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/a11y-cli/model"
)

// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported element file format")

// defaultElementsKey is used when the document root is an object and no
// path is given.
const defaultElementsKey = "elements"

// FileReader reads element dumps from .json, .yaml or .yml files.
type FileReader struct {
	Stdin io.Reader // Used for Path "-"; defaults to os.Stdin
}

// ReadElements loads opts.Path and applies the filters in opts.
func (r FileReader) ReadElements(opts ReadOptions) ([]model.Element, error) {
	if opts.Path == "-" {
		in := r.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		if !gjson.ValidBytes(data) {
			if data, err = yamlToJSON(data); err != nil {
				return nil, err
			}
		}
		return DecodeElements(data, opts)
	}

	data, err := os.ReadFile(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("read elements: %w", err)
	}
	switch strings.ToLower(filepath.Ext(opts.Path)) {
	case ".json":
	case ".yaml", ".yml":
		if data, err = yamlToJSON(data); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, opts.Path)
	}
	return DecodeElements(data, opts)
}

// DecodeElements extracts the element array from a JSON document,
// flattens nested children and applies the type and region filters.
func DecodeElements(data []byte, opts ReadOptions) ([]model.Element, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse elements: invalid JSON")
	}

	var list gjson.Result
	switch root := gjson.ParseBytes(data); {
	case opts.ElementsPath != "":
		list = root.Get(opts.ElementsPath)
	case root.IsArray():
		list = root
	default:
		list = root.Get(defaultElementsKey)
	}
	if !list.Exists() {
		return nil, fmt.Errorf("parse elements: nothing at %q", elementsPathOrDefault(opts.ElementsPath))
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("parse elements: %q is not an array", elementsPathOrDefault(opts.ElementsPath))
	}

	var tree []model.Element
	if err := json.Unmarshal([]byte(list.Raw), &tree); err != nil {
		return nil, fmt.Errorf("parse elements: %w", err)
	}
	return model.FilterElements(model.FlattenElements(tree), opts.Types, opts.Region), nil
}

func elementsPathOrDefault(path string) string {
	if path == "" {
		return defaultElementsKey
	}
	return path
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert yaml: %w", err)
	}
	return out, nil
}
