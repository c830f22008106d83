package resolve_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camctl/internal/resolve"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		linked    string
		mode      resolve.Mode
		want      string
	}{
		{"caret picks same major below linked", []string{"0.4.0", "1.0.0", "1.2.0"}, "1.1.5", resolve.Caret, "1.0.0"},
		{"caret picks greatest", []string{"1.0.0", "1.1.0", "1.1.6"}, "1.1.5", resolve.Caret, "1.1.0"},
		{"caret major zero keeps minor", []string{"0.4.0", "0.5.0", "0.5.2"}, "0.5.3", resolve.Caret, "0.5.2"},
		{"exact", []string{"0.4.0", "0.5.2"}, "0.5.2", resolve.Exact, "0.5.2"},
		{"exact ignores prerelease", []string{"0.5.2"}, "0.5.2-rc1", resolve.Exact, "0.5.2"},
		{"linked with v prefix", []string{"0.5.2"}, "v0.5.2", resolve.Exact, "0.5.2"},
		{"caret 0.0.z is exact", []string{"0.0.3"}, "0.0.3", resolve.Caret, "0.0.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolve.Resolve(tt.available, tt.linked, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveNoCompatible(t *testing.T) {
	available := []string{"0.4.0", "1.0.0", "1.2.0"}

	tests := []struct {
		name   string
		linked string
		mode   resolve.Mode
	}{
		{"exact", "1.1.5", resolve.Exact},
		{"caret major zero different minor", "0.5.0", resolve.Caret},
		{"caret newer snapshot only", "1.0.0-rc1", resolve.Caret},
		{"caret other major", "2.0.0", resolve.Caret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolve.Resolve(available, tt.linked, tt.mode)
			require.Error(t, err)

			var nce *resolve.NoCompatibleError
			require.True(t, errors.As(err, &nce))
			assert.Equal(t, available, nce.Available)
			assert.Contains(t, err.Error(), "available: 0.4.0, 1.0.0, 1.2.0")
		})
	}

	_, err := resolve.Resolve(nil, "0.5.2", resolve.Caret)
	assert.EqualError(t, err, "no schema snapshot is compatible with libcamera 0.5.2 (mode caret); available: none")
}

func TestResolveInvalid(t *testing.T) {
	_, err := resolve.Resolve([]string{"0.5.2"}, "0.5", resolve.Exact)
	assert.ErrorContains(t, err, "linked version")

	_, err = resolve.Resolve([]string{"latest"}, "0.5.2", resolve.Exact)
	assert.ErrorContains(t, err, "available version")

	_, err = resolve.Resolve([]string{"0.5.2"}, "0.5.2", resolve.Mode(0))
	assert.ErrorContains(t, err, "invalid resolution mode")
}

func TestCompatible(t *testing.T) {
	assert.True(t, resolve.Compatible("1.0.0", "1.1.5", resolve.Caret))
	assert.False(t, resolve.Compatible("1.0.0", "1.1.5", resolve.Exact))
	assert.False(t, resolve.Compatible("0.0.2", "0.0.3", resolve.Caret))
	assert.False(t, resolve.Compatible("bogus", "0.0.3", resolve.Caret))
}

func TestParseMode(t *testing.T) {
	m, err := resolve.ParseMode(" Caret ")
	require.NoError(t, err)
	assert.Equal(t, resolve.Caret, m)
	assert.Equal(t, "caret", m.String())

	m, err = resolve.ParseMode("exact")
	require.NoError(t, err)
	assert.Equal(t, resolve.Exact, m)

	_, err = resolve.ParseMode("tilde")
	assert.Error(t, err)
}

func TestAvailable(t *testing.T) {
	dir := t.TempDir()
	for _, v := range []string{"0.5.2", "0.4.0", "scratch"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, v), 0o755))
	}

	got, err := resolve.Available(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"0.4.0", "0.5.2"}, got)
}
