package plan

import (
	"slices"

	"camctl/internal/diagnostic"
	"camctl/internal/ident"
	"camctl/internal/schema"
	"camctl/primitive"
)

// CoreVendor is the vendor of controls compiled into every build.
const CoreVendor = "libcamera"

// Snapshot is the normalized schema of one release.
type Snapshot struct {
	// Version is the release version without the "v" prefix.
	Version string
	// Digest identifies the raw documents the snapshot was built from.
	Digest string
	// Controls and Properties hold definitions in generation order.
	Controls   []*Control
	Properties []*Control
	// Diagnostics contains the warnings and notes of a successful build.
	Diagnostics diagnostic.Diagnostics
}

// Control is one normalized control or property definition.
type Control struct {
	Name        string
	Vendor      string
	Kind        primitive.KindEnum
	Dims        primitive.Dims
	Shape       primitive.ShapeEnum
	Description string
	Direction   string
	Enum        []Variant
	// Origin is the schema file the control was declared in.
	Origin string
}

// Variant is one enumerator of an enum control.
type Variant struct {
	// Name is the enumerator name without the owning control's name.
	Name        string
	SchemaName  string
	Value       int64
	Description string
}

// Of returns the definitions of one category.
func (s *Snapshot) Of(c schema.Category) []*Control {
	switch c {
	case schema.Controls:
		return s.Controls
	case schema.Properties:
		return s.Properties
	}

	return nil
}

// Vendors returns the non-core vendors of a category, sorted.
func (s *Snapshot) Vendors(c schema.Category) []string {
	var res []string

	for _, ctrl := range s.Of(c) {
		if !ctrl.IsCore() && !slices.Contains(res, ctrl.Vendor) {
			res = append(res, ctrl.Vendor)
		}
	}

	slices.Sort(res)

	return res
}

// ByVendor returns the definitions of a category that belong to vendor.
func (s *Snapshot) ByVendor(c schema.Category, vendor string) []*Control {
	var res []*Control

	for _, ctrl := range s.Of(c) {
		if ctrl.Vendor == vendor {
			res = append(res, ctrl)
		}
	}

	return res
}

func (c *Control) IsEnum() bool {
	return c.Shape == primitive.ShapeEnumeration
}

func (c *Control) IsCore() bool {
	return c.Vendor == CoreVendor
}

// LinkageName is the runtime constant holding the control's numeric id.
func (c *Control) LinkageName() string {
	return ident.LinkageName(c.Name)
}

// BuildTag is the build constraint gating a non-core vendor.
func BuildTag(vendor string) string {
	return "vendor_" + vendor
}
