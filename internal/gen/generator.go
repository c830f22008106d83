package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"maps"
	"path"
	"slices"

	"camctl/internal/diagnostic"
	"camctl/internal/match"
	"camctl/internal/plan"
	"camctl/internal/schema"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// IDType is the name of the generated discriminant type.
	IDType string
	// ControlPkg is the import path of the runtime value package.
	ControlPkg string
	// LinkagePkg is the import path of the package holding the runtime ids.
	LinkagePkg string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// Linkage, when set, is the set of linkage names the runtime declares.
	// Controls missing from it fail generation.
	Linkage map[string]bool
}

// DefaultGeneratorConfig returns the default generator configuration for a
// category.
func DefaultGeneratorConfig(c schema.Category) GeneratorConfig {
	cfg := GeneratorConfig{
		ControlPkg: "camctl/control",
	}

	switch c {
	case schema.Controls:
		cfg.PackageName = "controls"
		cfg.IDType = "ControlID"
		cfg.LinkagePkg = "camctl/native/controlid"
		cfg.OutputDir = "./controls"
	case schema.Properties:
		cfg.PackageName = "properties"
		cfg.IDType = "PropertyID"
		cfg.LinkagePkg = "camctl/native/propertyid"
		cfg.OutputDir = "./properties"
	}

	return cfg
}

// Generator generates Go code from a normalized snapshot.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "controls_vendor_rpi_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Filename returns the name of the file generated for vendor.
func Filename(c schema.Category, vendor string) string {
	if vendor == plan.CoreVendor {
		return c.String() + "_gen.go"
	}

	return c.String() + "_vendor_" + vendor + "_gen.go"
}

// Generate generates the catalogue of one category: the core file first,
// then one file per vendor in name order.
func (g *Generator) Generate(snap *plan.Snapshot, c schema.Category) ([]GeneratedFile, error) {
	controls := snap.Of(c)

	var diags diagnostic.Diagnostics

	g.checkNames(controls, &diags)
	g.checkLinkage(controls, &diags)

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("generating %s %s: %w", c, snap.Version, err)
	}

	vendors := append([]string{plan.CoreVendor}, snap.Vendors(c)...)

	files := make([]GeneratedFile, 0, len(vendors))

	for _, vendor := range vendors {
		data, err := g.buildFileData(snap, c, vendor)
		if err != nil {
			return nil, fmt.Errorf("generating %s for vendor %s: %w", c, vendor, err)
		}

		file, err := g.render(catalogueTemplate, data.Filename, data)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", data.Filename, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// reserved lists the package-level identifiers every catalogue declares.
func (g *Generator) reserved() []string {
	return []string{
		g.config.IDType, "Registry", "MakeDyn", "Lookup", "All", "Version", "SchemaDigest",
		"register", "catalogue", "order", "entry", "registry",
		path.Base(g.config.ControlPkg), path.Base(g.config.LinkagePkg), "slices", "strconv",
	}
}

// checkNames reports generated identifiers declared twice. All vendors
// share one package, so the check spans every vendor.
func (g *Generator) checkNames(controls []*plan.Control, diags *diagnostic.Diagnostics) {
	owners := map[string]string{}
	for _, name := range g.reserved() {
		owners[name] = "the catalogue"
	}

	claim := func(name string, ctrl *plan.Control) {
		if owner, taken := owners[name]; taken {
			diags.AddError(diagnostic.CodeNameCollision,
				fmt.Sprintf("generated identifier %s is already declared by %s", name, owner),
				ctrl.Origin, ctrl.Name)

			return
		}

		owners[name] = ctrl.Name
	}

	for _, ctrl := range controls {
		claim(ctrl.Name, ctrl)
		claim(idName(ctrl), ctrl)

		for _, v := range ctrl.Enum {
			claim(variantConst(ctrl, v), ctrl)
		}
	}
}

func (g *Generator) checkLinkage(controls []*plan.Control, diags *diagnostic.Diagnostics) {
	if g.config.Linkage == nil {
		return
	}

	declared := slices.Collect(maps.Keys(g.config.Linkage))

	for _, ctrl := range controls {
		if !g.config.Linkage[ctrl.LinkageName()] {
			diags.AddError(diagnostic.CodeMissingLinkage,
				fmt.Sprintf("%s.%s is not declared by the linked runtime%s",
					path.Base(g.config.LinkagePkg), ctrl.LinkageName(), match.Hint(ctrl.LinkageName(), declared)),
				ctrl.Origin, ctrl.Name)
		}
	}
}

func (g *Generator) render(tmpl templateExecutor, filename string, data any) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

// Names returns the file names Generate produces for snap, in order.
func Names(snap *plan.Snapshot, c schema.Category) []string {
	res := []string{Filename(c, plan.CoreVendor)}
	for _, v := range snap.Vendors(c) {
		res = append(res, Filename(c, v))
	}

	return res
}
