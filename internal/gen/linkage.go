package gen

import (
	"fmt"

	"camctl/internal/linkage"
	"camctl/internal/schema"
)

type linkageData struct {
	PackageName string
	Noun        string
	Source      string
	Prefix      string
	Version     string
	Entries     []linkage.Entry
}

// GenerateLinkage generates the package holding the runtime ids of one
// category, one untyped constant per header enumerator.
func (g *Generator) GenerateLinkage(t *linkage.Table, c schema.Category) (*GeneratedFile, error) {
	if t.Version == "" {
		return nil, fmt.Errorf("header %s does not declare the runtime version", t.Source)
	}

	data := &linkageData{
		PackageName: g.config.PackageName,
		Noun:        noun(c),
		Source:      t.Source,
		Prefix:      t.Prefix,
		Version:     t.Version,
		Entries:     t.Entries,
	}

	filename := g.config.PackageName + "_gen.go"

	file, err := g.render(linkageTemplate, filename, data)
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", filename, err)
	}

	return file, nil
}

// DefaultLinkageConfig returns the configuration GenerateLinkage expects
// for a category.
func DefaultLinkageConfig(c schema.Category) GeneratorConfig {
	cfg := DefaultGeneratorConfig(c)

	switch c {
	case schema.Controls:
		cfg.PackageName = "controlid"
		cfg.OutputDir = "./native/controlid"
	case schema.Properties:
		cfg.PackageName = "propertyid"
		cfg.OutputDir = "./native/propertyid"
	}

	return cfg
}
