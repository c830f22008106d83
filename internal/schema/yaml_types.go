package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"camctl/primitive"
)

// UnmarshalYAML decodes a single-key mapping `Name: {type: ..., ...}`.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: control entry must be a mapping with exactly one name", node.Line)
	}

	var name string
	if err := node.Content[0].Decode(&name); err != nil {
		return fmt.Errorf("line %d: control name: %w", node.Line, err)
	}

	var body entryBody
	if err := node.Content[1].Decode(&body); err != nil {
		return fmt.Errorf("control %s: %w", name, err)
	}

	*e = Entry{
		Name:        name,
		Type:        body.Type,
		Description: body.Description,
		Direction:   body.Direction,
		Size:        body.Size,
		Enum:        body.Enum,
		Draft:       body.Draft,
	}

	return nil
}

// UnmarshalYAML accepts a sequence of positive integers and the "n" marker.
func (s *SizeSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: size must be a sequence, got %s", node.Line, kindName(node.Kind))
	}

	dims := make([]int, 0, len(node.Content))

	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: size item must be a scalar", item.Line)
		}

		if strings.EqualFold(item.Value, "n") {
			dims = append(dims, primitive.Dynamic)

			continue
		}

		var n int
		if err := item.Decode(&n); err != nil {
			return fmt.Errorf("line %d: size item %q is neither an integer nor \"n\"", item.Line, item.Value)
		}

		dims = append(dims, n)
	}

	s.Dims = dims

	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}

	return "unknown"
}
