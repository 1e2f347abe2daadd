// Package catalog validates registry catalog documents: the JSON (or YAML)
// files a source points at. Validation covers document shape via JSON schema
// and semantic checks such as duplicate server names.
package catalog

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"sigs.k8s.io/yaml"
)

// schemaJSON is the shape every catalog document must satisfy.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["servers"],
  "properties": {
    "version": {"type": "string"},
    "last_updated": {"type": "string"},
    "servers": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "image": {"type": "string"},
          "transport": {"type": "string"},
          "url": {"type": "string"}
        }
      }
    }
  }
}`

// Document is a parsed catalog document.
type Document struct {
	Version     string   `json:"version,omitempty"`
	LastUpdated string   `json:"last_updated,omitempty"`
	Servers     []Server `json:"servers"`
}

// Server is a single catalog entry.
type Server struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Transport   string `json:"transport,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Validator validates catalog documents against the registry schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the catalog schema. Compilation of the embedded
// schema cannot fail at runtime short of a programming error, so the error
// is returned for the caller to treat as fatal.
func NewValidator() (*Validator, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("registry.schema.json", doc); err != nil {
		return nil, fmt.Errorf("failed to add catalog schema resource: %w", err)
	}

	schema, err := compiler.Compile("registry.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile catalog schema: %w", err)
	}

	return &Validator{schema: schema}, nil
}

// Validate checks a catalog document and returns its parsed form. YAML input
// is accepted and converted before schema validation. Server names must be
// unique within a document.
func (v *Validator) Validate(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("catalog document cannot be empty")
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("catalog document is not valid JSON or YAML: %w", err)
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog document: %w", err)
	}

	if err := v.schema.Validate(instance); err != nil {
		return nil, fmt.Errorf("catalog document failed schema validation: %w", err)
	}

	var document Document
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("failed to parse catalog document: %w", err)
	}

	seen := make(map[string]struct{}, len(document.Servers))
	for _, server := range document.Servers {
		if _, dup := seen[server.Name]; dup {
			return nil, fmt.Errorf("duplicate server name %q in catalog", server.Name)
		}
		seen[server.Name] = struct{}{}
	}

	return &document, nil
}
