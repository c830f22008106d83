package gen_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camctl/internal/gen"
	"camctl/internal/linkage"
	"camctl/internal/plan"
	"camctl/internal/schema"
	"camctl/internal/source"
)

const coreDoc = `
vendor: libcamera
controls:
  - AeEnable:
      type: bool
      description: Enable or disable the AE.
  - ExposureTime:
      type: int32_t
      description: Exposure time in microseconds.
  - ColourGains:
      type: float
      size: [2]
      description: Red and blue colour gains.
  - ColourCorrectionMatrix:
      type: float
      size: [3, 3]
      description: |
        The 3x3 matrix that converts camera RGB to sRGB.

        Row-major.
  - AfWindows:
      type: Rectangle
      size: [n]
      description: AF windows.
  - AfMode:
      type: int32_t
      description: AF mode.
      enum:
        - name: AfModeManual
          value: 0
          description: Manual.
        - name: AfModeAuto
          value: 1
          description: Auto.
        - name: AfModeContinuous
          value: 2
          description: Continuous.
`

const rpiDoc = `
vendor: rpi
controls:
  - StatsOutputEnable:
      type: bool
      description: Statistics output.
  - PispStatsBin32Output:
      type: uint8_t
      size: [n]
      description: Raw statistics.
`

const propertyDoc = `
controls:
  - Location:
      type: int32_t
      description: Camera location.
      enum:
        - name: CameraLocationFront
          value: 0
          description: Front.
  - Model:
      type: string
      description: Model name.
`

func buildSnapshot(t *testing.T, controls map[string]string, properties map[string]string) *plan.Snapshot {
	t.Helper()

	raw := &source.Snapshot{Version: "0.5.2", Tag: "v0.5.2", Files: map[schema.Category][]source.File{}}

	add := func(c schema.Category, name, data string) {
		doc, err := schema.Parse([]byte(data))
		require.NoError(t, err, name)

		raw.Files[c] = append(raw.Files[c], source.File{Name: name, Data: []byte(data), Doc: doc})
	}

	for _, name := range []string{"control_ids_core.yaml", "control_ids_rpi.yaml"} {
		if data, ok := controls[name]; ok {
			add(schema.Controls, name, data)
		}
	}

	for name, data := range properties {
		add(schema.Properties, name, data)
	}

	snap, err := plan.Build(raw)
	require.NoError(t, err)

	return snap
}

func defaultSnapshot(t *testing.T) *plan.Snapshot {
	t.Helper()

	return buildSnapshot(t,
		map[string]string{"control_ids_core.yaml": coreDoc, "control_ids_rpi.yaml": rpiDoc},
		map[string]string{"property_ids_core.yaml": propertyDoc},
	)
}

func generate(t *testing.T, snap *plan.Snapshot, c schema.Category) map[string]string {
	t.Helper()

	cfg := gen.DefaultGeneratorConfig(c)
	cfg.OutputDir = t.TempDir()

	files, err := gen.NewGenerator(cfg).Generate(snap, c)
	require.NoError(t, err)

	res := map[string]string{}
	for _, f := range files {
		res[f.Filename] = string(f.Content)
	}

	return res
}

func TestGenerateFiles(t *testing.T) {
	snap := defaultSnapshot(t)

	files := generate(t, snap, schema.Controls)
	require.Len(t, files, 2, spew.Sdump(files))

	core := files["controls_gen.go"]
	require.NotEmpty(t, core)

	assert.True(t, strings.HasPrefix(core, "// Code generated by camctl-generator. DO NOT EDIT.\n"))
	assert.Contains(t, core, "// Source: libcamera 0.5.2, schema blake3 "+snap.Digest+".")
	assert.Contains(t, core, `const Version = "0.5.2"`)
	assert.Contains(t, core, "type ControlID uint32")
	assert.Contains(t, core, "AeEnableID ControlID = controlid.AE_ENABLE")
	assert.Contains(t, core, "ColourCorrectionMatrixID ControlID = controlid.COLOUR_CORRECTION_MATRIX")

	assert.Contains(t, core, "type AeEnable bool")
	assert.Contains(t, core, "type ExposureTime int32")
	assert.Contains(t, core, "type ColourGains [2]float32")
	assert.Contains(t, core, "type ColourCorrectionMatrix [3][3]float32")
	assert.Contains(t, core, "type AfWindows []control.Rectangle")
	assert.Contains(t, core, "type AfMode int32")

	assert.Contains(t, core, "// The 3x3 matrix that converts camera RGB to sRGB.\n//\n// Row-major.\n")
	assert.Contains(t, core, "AfModeContinuous AfMode = 2")
	assert.Contains(t, core, "case AfModeManual, AfModeAuto, AfModeContinuous:")
	assert.Contains(t, core, `return "AfMode(" + strconv.FormatInt(int64(c), 10) + ")"`)
	assert.Contains(t, core, "return &control.UnknownVariantError{Value: v}")
	assert.Contains(t, core, "return control.OfMatrix[float32](c[0][:], c[1][:], c[2][:])")
	assert.Contains(t, core, "func (AfMode) IsControl() {}")
	assert.NotContains(t, core, "IsProperty")

	assert.Contains(t, core, "case AfModeID:\n\t\treturn control.Dyn[AfMode](v)")
	assert.Contains(t, core, `register(AeEnableID, "AeEnable", "libcamera", nil)`)
	assert.Contains(t, core, "var Registry control.Registry = registry{}")

	assert.NotContains(t, core, "//go:build")
	assert.NotContains(t, core, "StatsOutputEnable")
}

func TestVendorGating(t *testing.T) {
	snap := defaultSnapshot(t)
	files := generate(t, snap, schema.Controls)

	name := gen.Filename(schema.Controls, "rpi")
	assert.Equal(t, "controls_vendor_rpi_gen.go", name)

	src := files[name]
	require.NotEmpty(t, src)
	assert.Contains(t, src, "\n//go:build vendor_rpi\n\npackage controls\n")

	fset := token.NewFileSet()

	coreDecls := declaredNames(t, fset, "core", files["controls_gen.go"])
	vendorDecls := declaredNames(t, fset, "vendor", src)

	// Every vendor identifier lives in the gated file and nowhere else.
	for _, ctrl := range snap.ByVendor(schema.Controls, "rpi") {
		for _, ident := range []string{ctrl.Name, ctrl.Name + "ID"} {
			assert.True(t, vendorDecls[ident], ident)
			assert.False(t, coreDecls[ident], ident)
		}

		assert.Contains(t, src, "register("+ctrl.Name+"ID, \""+ctrl.Name+"\", \"rpi\", control.Dyn["+ctrl.Name+", *"+ctrl.Name+"])")
	}

	for _, ctrl := range snap.ByVendor(schema.Controls, plan.CoreVendor) {
		assert.False(t, vendorDecls[ctrl.Name], ctrl.Name)
	}

	// No enums in the vendor file, so no strconv import.
	assert.NotContains(t, src, `"strconv"`)
	assert.NotContains(t, src, "func MakeDyn")
}

func declaredNames(t *testing.T, fset *token.FileSet, name, src string) map[string]bool {
	t.Helper()

	f, err := parser.ParseFile(fset, name+".go", src, parser.ParseComments)
	require.NoError(t, err, src)

	res := map[string]bool{}

	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}

		for _, spec := range gd.Specs {
			switch s := spec.(type) {
			case *ast.TypeSpec:
				res[s.Name.Name] = true
			case *ast.ValueSpec:
				for _, n := range s.Names {
					res[n.Name] = true
				}
			}
		}
	}

	return res
}

func TestGenerateProperties(t *testing.T) {
	snap := defaultSnapshot(t)
	files := generate(t, snap, schema.Properties)

	require.Len(t, files, 1)

	src := files["properties_gen.go"]
	assert.Contains(t, src, "package properties")
	assert.Contains(t, src, "type PropertyID uint32")
	assert.Contains(t, src, "LocationID PropertyID = propertyid.LOCATION")
	assert.Contains(t, src, "func (Location) IsProperty() {}")
	assert.NotContains(t, src, "IsControl")
	assert.Contains(t, src, `"camctl/native/propertyid"`)
	assert.Contains(t, src, "LocationCameraFront Location = 0")
	assert.Contains(t, src, "type Model string")
	assert.Contains(t, src, "return control.OfString(string(c))")
}

func TestGenerateEmptyCategory(t *testing.T) {
	snap := buildSnapshot(t, map[string]string{"control_ids_core.yaml": coreDoc}, nil)

	files := generate(t, snap, schema.Properties)
	src := files["properties_gen.go"]

	assert.NotContains(t, src, "native/propertyid")
	assert.Contains(t, src, "func MakeDyn(id PropertyID")
}

func TestGenerateNameCollision(t *testing.T) {
	snap := buildSnapshot(t, map[string]string{"control_ids_core.yaml": `
controls:
  - Registry:
      type: bool
      description: x
  - Gain:
      type: float
      description: y
  - GainID:
      type: float
      description: z
`}, nil)

	_, err := gen.NewGenerator(gen.DefaultGeneratorConfig(schema.Controls)).Generate(snap, schema.Controls)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[name-collision] generated identifier Registry is already declared by the catalogue")
	assert.Contains(t, err.Error(), "generated identifier GainID is already declared by Gain")
}

func TestGenerateMissingLinkage(t *testing.T) {
	snap := defaultSnapshot(t)

	cfg := gen.DefaultGeneratorConfig(schema.Controls)
	cfg.Linkage = map[string]bool{"AE_ENABLE": true, "EXPOSURE_TIMES": true}

	_, err := gen.NewGenerator(cfg).Generate(snap, schema.Controls)
	require.Error(t, err)
	assert.Contains(t, err.Error(),
		"[missing-linkage] controlid.EXPOSURE_TIME is not declared by the linked runtime (did you mean EXPOSURE_TIMES?)")
	assert.Contains(t, err.Error(), "controlid.AF_MODE is not declared by the linked runtime")
	assert.NotContains(t, err.Error(), "AE_ENABLE")
}

func TestGenerateLinkage(t *testing.T) {
	tab, err := linkage.Parse(strings.NewReader(`
#define LIBCAMERA_VERSION_MAJOR 0
#define LIBCAMERA_VERSION_MINOR 5
#define LIBCAMERA_VERSION_PATCH 2
enum libcamera_control_id {
	LIBCAMERA_CONTROL_ID_AE_ENABLE = 1,
	LIBCAMERA_CONTROL_ID_AF_MODE,
};
`), linkage.ControlPrefix)
	require.NoError(t, err)

	tab.Source = "control_ids.h"

	file, err := gen.NewGenerator(gen.DefaultLinkageConfig(schema.Controls)).GenerateLinkage(tab, schema.Controls)
	require.NoError(t, err)

	assert.Equal(t, "controlid_gen.go", file.Filename)

	src := string(file.Content)
	assert.Contains(t, src, "// Source: control_ids.h.")
	assert.Contains(t, src, "package controlid")
	assert.Contains(t, src, `const Version = "0.5.2"`)
	assert.Contains(t, src, "// AF_MODE is LIBCAMERA_CONTROL_ID_AF_MODE.\nconst AF_MODE = 2\n")

	tab.Version = ""
	_, err = gen.NewGenerator(gen.DefaultLinkageConfig(schema.Controls)).GenerateLinkage(tab, schema.Controls)
	assert.Error(t, err)
}

func TestWriteAndClean(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "controls")

	files := []gen.GeneratedFile{
		{Filename: "controls_gen.go", Content: []byte("package controls\n")},
		{Filename: "controls_vendor_rpi_gen.go", Content: []byte("package controls\n")},
	}
	require.NoError(t, gen.WriteFiles(files, dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.go"), []byte("package controls\n"), 0o600))

	info, err := os.Stat(filepath.Join(dir, "controls_gen.go"))
	require.NoError(t, err)

	files[0].Content = []byte("package controls\n\nconst Version = \"0.5.2\"\n")
	require.NoError(t, gen.WriteFiles(files, dir))

	content, err := os.ReadFile(filepath.Join(dir, "controls_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, files[0].Content, content)
	assert.Equal(t, info.Mode(), mustStat(t, filepath.Join(dir, "controls_gen.go")).Mode())

	removed, err := gen.Clean(dir, "controls_gen.go")
	require.NoError(t, err)
	assert.Equal(t, []string{"controls_vendor_rpi_gen.go"}, removed)

	removed, err = gen.Clean(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"controls_gen.go"}, removed)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doc.go", entries[0].Name())

	removed, err = gen.Clean(filepath.Join(dir, "missing"))
	assert.NoError(t, err)
	assert.Empty(t, removed)
}

func mustStat(t *testing.T, path string) os.FileInfo {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err)

	return info
}

func TestNames(t *testing.T) {
	snap := defaultSnapshot(t)

	assert.Equal(t, []string{"controls_gen.go", "controls_vendor_rpi_gen.go"}, gen.Names(snap, schema.Controls))
	assert.Equal(t, []string{"properties_gen.go"}, gen.Names(snap, schema.Properties))
}
