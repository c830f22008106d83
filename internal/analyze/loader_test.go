package analyze

import (
	"go/constant"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_LinkagePackage(t *testing.T) {
	info, err := NewAnalyzer("").LoadPackage("camctl/native/controlid")
	require.NoError(t, err)

	assert.Equal(t, "controlid", info.Name)
	assert.NotEmpty(t, info.Version())

	ae, ok := info.Constants["AE_ENABLE"]
	require.True(t, ok)
	assert.Equal(t, "untyped int", ae.Type)

	id, ok := ae.Uint32()
	assert.True(t, ok)
	assert.Equal(t, uint32(1), id)

	assert.True(t, info.Names()["AF_MODE"])
	assert.Empty(t, info.Entries)
}

func TestAnalyzer_Catalogue(t *testing.T) {
	info, err := NewAnalyzer("").LoadPackage("camctl/controls")
	require.NoError(t, err)

	assert.Contains(t, info.Entries, "AeEnable")
	assert.Contains(t, info.Entries, "AfMode")
	assert.NotContains(t, info.Entries, "ControlID")
	assert.NotContains(t, info.Entries, "StatsOutputEnable")

	var ids []string
	for _, c := range info.OfType("ControlID") {
		ids = append(ids, c.Name)
	}

	assert.Contains(t, ids, "AeEnableID")
	assert.NotContains(t, ids, "StatsOutputEnableID")

	variants := info.OfType("AfMode")
	assert.NotEmpty(t, variants)
}

func TestAnalyzer_VendorTags(t *testing.T) {
	info, err := NewAnalyzer("", "vendor_rpi").LoadPackage("camctl/controls")
	require.NoError(t, err)

	assert.Contains(t, info.Entries, "StatsOutputEnable")
	assert.Contains(t, info.Constants, "StatsOutputEnableID")
}

func TestAnalyzer_LoadErrors(t *testing.T) {
	_, err := NewAnalyzer("").LoadPackage("camctl/does/not/exist")
	assert.Error(t, err)
}

func TestConstInfo(t *testing.T) {
	c := ConstInfo{Name: "Version", Value: constant.MakeString("0.5.2")}

	s, ok := c.Str()
	assert.True(t, ok)
	assert.Equal(t, "0.5.2", s)

	_, ok = c.Uint32()
	assert.False(t, ok)

	big := ConstInfo{Value: constant.MakeUint64(1 << 40)}
	_, ok = big.Uint32()
	assert.False(t, ok)

	_, ok = ConstInfo{Value: constant.MakeInt64(7)}.Str()
	assert.False(t, ok)
}
