package plan

import (
	"fmt"
	"strings"

	"camctl/internal/diagnostic"
	"camctl/internal/ident"
	"camctl/internal/schema"
	"camctl/internal/source"
	"camctl/primitive"
)

// Build normalizes every document of raw. All problems are collected before
// failing so one run reports them together.
func Build(raw *source.Snapshot) (*Snapshot, error) {
	snap := &Snapshot{
		Version: raw.Version,
		Digest:  raw.Digest(),
	}

	var diags diagnostic.Diagnostics

	for _, c := range schema.Categories {
		controls := buildCategory(raw.Files[c], &diags)

		switch c {
		case schema.Controls:
			snap.Controls = controls
		case schema.Properties:
			snap.Properties = controls
		}
	}

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", raw.Version, err)
	}

	snap.Diagnostics = diags

	return snap, nil
}

func buildCategory(files []source.File, diags *diagnostic.Diagnostics) []*Control {
	var res []*Control

	seen := map[string]string{}

	for _, f := range files {
		for _, e := range f.Doc.Controls {
			if prev, dup := seen[e.Name]; dup {
				diags.AddError(diagnostic.CodeDuplicateControl,
					"already declared in "+prev, f.Name, e.Name)

				continue
			}

			seen[e.Name] = f.Name

			if ctrl, ok := buildControl(f, e, diags); ok {
				res = append(res, ctrl)
			}
		}
	}

	return res
}

func buildControl(f source.File, e schema.Entry, diags *diagnostic.Diagnostics) (*Control, bool) {
	ok := true
	fail := func(code, msg string) {
		diags.AddError(code, msg, f.Name, e.Name)
		ok = false
	}

	if !ident.IsExported(e.Name) {
		fail(diagnostic.CodeInvalidName, "control name is not a valid exported identifier")
	}

	if strings.TrimSpace(e.Description) == "" {
		diags.AddWarning(diagnostic.CodeEmptyDescription, "control has no description", f.Name, e.Name)
	}

	kind, err := primitive.ParseKind(e.Type)
	if err != nil {
		fail(diagnostic.CodeUnknownType, err.Error())
	}

	dims, err := primitive.MapDims(e.Size.Dims)
	if err != nil {
		fail(diagnostic.CodeInvalidSize, err.Error())
	}

	if !ok {
		return nil, false
	}

	shape, err := primitive.Shape(kind, dims, e.Enum != nil)
	if err != nil {
		code := diagnostic.CodeInvalidSize
		if e.Enum != nil {
			code = diagnostic.CodeInvalidEnum
		}

		fail(code, err.Error())

		return nil, false
	}

	ctrl := &Control{
		Name:        e.Name,
		Vendor:      f.Doc.EffectiveVendor(e, CoreVendor),
		Kind:        kind,
		Dims:        dims,
		Shape:       shape,
		Description: e.Description,
		Direction:   e.Direction,
		Origin:      f.Name,
	}

	if !ident.IsExported(ident.Upper(ctrl.Vendor)) {
		fail(diagnostic.CodeInvalidName, fmt.Sprintf("vendor %q is not a valid identifier", ctrl.Vendor))
	}

	ctrl.Enum = buildVariants(f, e, kind, fail, diags)

	return ctrl, ok
}

func buildVariants(f source.File, e schema.Entry, kind primitive.KindEnum,
	fail func(code, msg string), diags *diagnostic.Diagnostics,
) []Variant {
	if e.Enum == nil {
		return nil
	}

	if len(e.Enum) == 0 {
		fail(diagnostic.CodeInvalidEnum, "enum declares no variants")

		return nil
	}

	res := make([]Variant, 0, len(e.Enum))
	names := map[string]string{}
	values := map[int64]string{}

	for _, item := range e.Enum {
		v := Variant{
			Name:        ident.VariantName(e.Name, item.Name),
			SchemaName:  item.Name,
			Value:       item.Value,
			Description: item.Description,
		}

		if !strings.Contains(item.Name, e.Name) {
			diags.AddInfo(diagnostic.CodeUnprefixedVariant,
				fmt.Sprintf("enumerator %s does not carry the control name", item.Name), f.Name, e.Name)
		}

		if !ident.IsExported(v.Name) {
			fail(diagnostic.CodeInvalidName,
				fmt.Sprintf("enumerator %s gives invalid variant name %q", item.Name, v.Name))
		}

		if prev, dup := names[v.Name]; dup {
			fail(diagnostic.CodeDuplicateVariant,
				fmt.Sprintf("enumerators %s and %s both map to variant %s", prev, item.Name, v.Name))
		}

		if prev, dup := values[v.Value]; dup {
			fail(diagnostic.CodeDuplicateVariant,
				fmt.Sprintf("enumerators %s and %s share value %d", prev, item.Name, v.Value))
		}

		if !kind.FitsInt(v.Value) {
			fail(diagnostic.CodeEnumValueRange,
				fmt.Sprintf("enumerator %s value %d does not fit %s", item.Name, v.Value, kind))
		}

		names[v.Name] = item.Name
		values[v.Value] = item.Name

		res = append(res, v)
	}

	return res
}
