package schema

import (
	"fmt"
	"path"
	"strings"
)

// Category is the kind of catalogue a document contributes to.
type Category int

const (
	_ Category = iota

	Controls
	Properties
)

// Categories lists every category in generation order.
var Categories = []Category{Controls, Properties}

func (c Category) String() string {
	switch c {
	case Controls:
		return "controls"
	case Properties:
		return "properties"
	}

	return fmt.Sprintf("Category(%d)", int(c))
}

// FilePrefix is the file name prefix of the category's documents.
func (c Category) FilePrefix() string {
	switch c {
	case Controls:
		return "control_ids"
	case Properties:
		return "property_ids"
	}

	return ""
}

// ParseCategory is the inverse of String.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if c.String() == s {
			return c, nil
		}
	}

	return 0, fmt.Errorf("unknown category %q", s)
}

// CategoryOf classifies a schema file name, e.g. "control_ids_rpi.yaml".
func CategoryOf(name string) (Category, bool) {
	base := path.Base(name)
	if path.Ext(base) != ".yaml" {
		return 0, false
	}

	for _, c := range Categories {
		if strings.HasPrefix(base, c.FilePrefix()) {
			return c, true
		}
	}

	return 0, false
}
