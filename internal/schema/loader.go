package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a schema document from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Parse parses YAML data into a Document and checks its structure.
func Parse(data []byte) (*Document, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	if err := validate(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func validate(doc *Document) error {
	for i, e := range doc.Controls {
		switch {
		case e.Name == "":
			return fmt.Errorf("control #%d has an empty name", i)
		case e.Type == "":
			return fmt.Errorf("control %s has no type", e.Name)
		}

		for j, item := range e.Enum {
			if item.Name == "" {
				return fmt.Errorf("control %s: enumerator #%d has an empty name", e.Name, j)
			}
		}
	}

	return nil
}

// EffectiveVendor is the vendor an entry belongs to: the document vendor,
// else "draft" for draft entries, else core.
func (d *Document) EffectiveVendor(e Entry, core string) string {
	switch {
	case d.Vendor != "":
		return d.Vendor
	case e.Draft:
		return "draft"
	default:
		return core
	}
}
