package snapshot

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"
)

// ErrOutdated is returned alongside a document whose version predates
// CurrentVersion. Such documents are never compared.
var ErrOutdated = errors.New("snapshot version is outdated")

// ErrInvalid is returned for documents that cannot be parsed or do not
// match the snapshot schema.
var ErrInvalid = errors.New("invalid snapshot")

//go:embed schema.json
var schemaJSON string

const schemaURL = "https://a11y-cli.local/snapshot.schema.json"

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

func documentSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("snapshot schema load failed: %w", err)
			return
		}
		schemaCompiled, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("snapshot schema compile failed: %w", schemaErr)
		}
	})
	return schemaCompiled, schemaErr
}

// Encode renders doc as indented JSON.
func Encode(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a stored document. A document older than CurrentVersion
// is returned on a best-effort basis together with ErrOutdated; current
// documents must match the snapshot schema.
func Decode(data []byte) (Document, error) {
	if !gjson.ValidBytes(data) {
		return Document{}, fmt.Errorf("unmarshal snapshot: %w: malformed JSON", ErrInvalid)
	}
	version := gjson.GetBytes(data, "version")
	if version.Type != gjson.String {
		return Document{}, fmt.Errorf("unmarshal snapshot: %w: missing version", ErrInvalid)
	}
	outdated, err := IsOutdated(version.String())
	if err != nil {
		return Document{}, fmt.Errorf("unmarshal snapshot: %w: %v", ErrInvalid, err)
	}
	if outdated {
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			doc = Document{
				Filename: gjson.GetBytes(data, "filename").String(),
				Version:  version.String(),
			}
		}
		return doc, ErrOutdated
	}

	schema, err := documentSchema()
	if err != nil {
		return Document{}, err
	}
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("unmarshal snapshot: %w: %v", ErrInvalid, err)
	}
	if err := schema.Validate(raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("unmarshal snapshot: %w: %v", ErrInvalid, err)
	}
	return doc, nil
}
