package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camctl/primitive"
)

const sampleDoc = `
vendor: libcamera
controls:
  - AeEnable:
      type: bool
      direction: in
      description: |
        Enable or disable the AE.
  - AfMode:
      type: int32_t
      description: Control to set the mode of the AF algorithm.
      enum:
        - name: AfModeManual
          value: 0
          description: Manual mode.
        - name: AfModeAuto
          value: 1
          description: Auto mode.
  - ColourCorrectionMatrix:
      type: float
      size: [3, 3]
      description: Colour correction matrix.
  - AfWindows:
      type: Rectangle
      size: [n]
      description: AF windows.
`

func TestParse(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	assert.Equal(t, "libcamera", doc.Vendor)
	require.Len(t, doc.Controls, 4)

	names := make([]string, len(doc.Controls))
	for i, c := range doc.Controls {
		names[i] = c.Name
	}

	assert.Equal(t, []string{"AeEnable", "AfMode", "ColourCorrectionMatrix", "AfWindows"}, names)

	ae := doc.Controls[0]
	assert.Equal(t, "bool", ae.Type)
	assert.Equal(t, "in", ae.Direction)
	assert.Equal(t, "Enable or disable the AE.\n", ae.Description)
	assert.False(t, ae.Size.IsSet())

	af := doc.Controls[1]
	require.Len(t, af.Enum, 2)
	assert.Equal(t, EnumItem{Name: "AfModeAuto", Value: 1, Description: "Auto mode."}, af.Enum[1])

	assert.Equal(t, []int{3, 3}, doc.Controls[2].Size.Dims)
	assert.Equal(t, []int{primitive.Dynamic}, doc.Controls[3].Size.Dims)
}

func TestParseDraftAndVendor(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`
controls:
  - NoiseReductionMode:
      type: int32_t
      draft: true
      description: x
  - Brightness:
      type: float
      description: y
`))
	require.NoError(t, err)

	assert.Empty(t, doc.Vendor)
	assert.Equal(t, "draft", doc.EffectiveVendor(doc.Controls[0], "libcamera"))
	assert.Equal(t, "libcamera", doc.EffectiveVendor(doc.Controls[1], "libcamera"))

	doc.Vendor = "rpi"
	assert.Equal(t, "rpi", doc.EffectiveVendor(doc.Controls[0], "libcamera"))
}

func TestParseEmptySize(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`
controls:
  - Broken:
      type: float
      size: []
      description: x
`))
	require.NoError(t, err)
	assert.True(t, doc.Controls[0].Size.IsSet())
	assert.Empty(t, doc.Controls[0].Size.Dims)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"not yaml", "controls: [", "failed to parse"},
		{"two names", "controls:\n  - A:\n      type: bool\n    B:\n      type: bool\n", "exactly one name"},
		{"missing type", "controls:\n  - A:\n      description: x\n", "has no type"},
		{"bad size item", "controls:\n  - A:\n      type: float\n      size: [m]\n", `"m"`},
		{"scalar size", "controls:\n  - A:\n      type: float\n      size: 3\n", "must be a sequence"},
		{"unnamed enumerator", "controls:\n  - A:\n      type: int32\n      enum:\n        - value: 1\n", "empty name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "control_ids_core.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Controls, 4)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "missing.yaml")
}
