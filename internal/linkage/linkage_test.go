package linkage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camctl/internal/linkage"
)

const header = `/* SPDX-License-Identifier: LGPL-2.1-or-later */
#define LIBCAMERA_VERSION_MAJOR 0
#define LIBCAMERA_VERSION_MINOR 5
#define LIBCAMERA_VERSION_PATCH 2

enum libcamera_control_id {
	/**
	 * LIBCAMERA_CONTROL_ID_BOGUS = 99,
	 */
	LIBCAMERA_CONTROL_ID_AE_ENABLE = 1,
	LIBCAMERA_CONTROL_ID_AE_LOCKED,
	LIBCAMERA_CONTROL_ID_AF_MODE = 0x10, // hex
	LIBCAMERA_CONTROL_ID_AF_STATE /* trailing */,
};

enum libcamera_af_mode {
	LIBCAMERA_AF_MODE_MANUAL = 0,
	LIBCAMERA_AF_MODE_AUTO = 1,
};
`

func TestParse(t *testing.T) {
	tab, err := linkage.Parse(strings.NewReader(header), linkage.ControlPrefix)
	require.NoError(t, err)

	assert.Equal(t, "0.5.2", tab.Version)
	assert.Equal(t, []linkage.Entry{
		{Name: "AE_ENABLE", Value: 1},
		{Name: "AE_LOCKED", Value: 2},
		{Name: "AF_MODE", Value: 16},
		{Name: "AF_STATE", Value: 17},
	}, tab.Entries)

	v, ok := tab.Lookup("AF_MODE")
	assert.True(t, ok)
	assert.Equal(t, uint32(16), v)

	_, ok = tab.Lookup("BOGUS")
	assert.False(t, ok)

	assert.Equal(t, []string{"SHARPNESS"}, tab.Missing([]string{"AE_ENABLE", "SHARPNESS"}))
	assert.Len(t, tab.Names(), 4)
}

func TestParseOtherPrefix(t *testing.T) {
	tab, err := linkage.Parse(strings.NewReader(header), linkage.PropertyPrefix)
	require.NoError(t, err)
	assert.Empty(t, tab.Entries)
}

func TestParseDuplicate(t *testing.T) {
	src := "LIBCAMERA_PROPERTY_ID_LOCATION = 1,\nLIBCAMERA_PROPERTY_ID_LOCATION = 2,\n"

	_, err := linkage.Parse(strings.NewReader(src), linkage.PropertyPrefix)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "control_ids.h")
	require.NoError(t, os.WriteFile(path, []byte(header), 0o600))

	tab, err := linkage.ParseFile(path, linkage.ControlPrefix)
	require.NoError(t, err)
	assert.Equal(t, "control_ids.h", tab.Source)
	assert.Len(t, tab.Entries, 4)

	_, err = linkage.ParseFile(filepath.Join(t.TempDir(), "missing.h"), linkage.ControlPrefix)
	assert.Error(t, err)
}
