package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"rorepo/repo"
)

// Document is the root of a YAML schema file: the authoritative, reviewable
// field table for one repository type.
type Document struct {
	// Version of the document schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Fields lists the declared fields in order.
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef declares one field of a schema document.
type FieldDef struct {
	Name     string `yaml:"name"`
	Required bool   `yaml:"required,omitempty"`
	Hidden   bool   `yaml:"hidden,omitempty"`
	Default  any    `yaml:"default,omitempty"`
}

// LoadFile loads and parses a YAML schema document from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&doc)

	for i, f := range doc.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("schema field %d has no name", i)
		}
	}

	return &doc, nil
}

// applyDefaults fills in default values for optional document fields.
func applyDefaults(doc *Document) {
	if doc.Version == "" {
		doc.Version = "1"
	}
}

// Marshal serializes a Document to YAML.
func Marshal(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// Schema converts the document into a field table. Name collisions are left
// in place for repo.New to reject, matching the construction-time contract.
func (d *Document) Schema() *repo.Schema {
	fields := make([]repo.Field, len(d.Fields))

	for i, fd := range d.Fields {
		fields[i] = repo.Field{
			Name:     fd.Name,
			Required: fd.Required,
			Hidden:   fd.Hidden,
			Default:  fd.Default,
		}
	}

	return repo.NewSchema(fields...)
}
