package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camctl/internal/gen"
)

func TestDiffDir(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "controls_gen.go"), []byte("package controls\n\nconst A = 1\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "controls_vendor_old_gen.go"), []byte("package controls\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.go"), []byte("package controls\n"), 0o600))

	files := []gen.GeneratedFile{
		{Filename: "controls_gen.go", Content: []byte("package controls\n\nconst A = 2\n")},
		{Filename: "controls_vendor_rpi_gen.go", Content: []byte("package controls\n")},
	}

	var out bytes.Buffer

	n, err := diffDir(&out, dir, files)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Contains(t, out.String(), "-const A = 1\n+const A = 2\n")
	assert.Contains(t, out.String(), "stale generated file "+filepath.Join(dir, "controls_vendor_old_gen.go"))
	assert.NotContains(t, out.String(), "doc.go")

	out.Reset()

	n, err = diffDir(&out, dir, []gen.GeneratedFile{
		{Filename: "controls_gen.go", Content: []byte("package controls\n\nconst A = 1\n")},
		{Filename: "controls_vendor_old_gen.go", Content: []byte("package controls\n")},
	})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, out.String())
}

func TestDiffDirMissing(t *testing.T) {
	var out bytes.Buffer

	n, err := diffDir(&out, filepath.Join(t.TempDir(), "missing"), []gen.GeneratedFile{
		{Filename: "properties_gen.go", Content: []byte("package properties\n")},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, out.String(), "+package properties")
}
