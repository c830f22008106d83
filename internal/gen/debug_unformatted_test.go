package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDebugUnformatted(t *testing.T) {
	dir := t.TempDir()

	src := "// Code generated by camctl-generator. DO NOT EDIT.\n\n//go:build vendor_rpi\n\npackage controls\nfunc broken( {\n"
	require.NoError(t, writeDebugUnformatted(dir, "controls_vendor_rpi_gen.go", []byte(src)))

	data, err := os.ReadFile(filepath.Join(dir, "controls_vendor_rpi_gen.unformatted.go"))
	require.NoError(t, err)

	assert.Contains(t, string(data), "//go:build ignore\n\n// Code generated")
	assert.NotContains(t, string(data), "vendor_rpi\n")
	assert.True(t, IsGenerated("controls_vendor_rpi_gen.unformatted.go"))

	assert.NoError(t, writeDebugUnformatted("", "x.go", nil))
}

func TestComment(t *testing.T) {
	assert.Equal(t, "// A.\n//\n// B.", comment("A.\n\nB.  \n", "", "fallback"))
	assert.Equal(t, "\t// fallback", comment("  ", "\t", "fallback"))
}

func TestCommentLayout(t *testing.T) {
	t.Run("code", func(t *testing.T) {
		got := comment("Crop:\n\n    +--o--+\n      | x |\n\n\nDone.", "", "")
		assert.Equal(t, "// Crop:\n//\n//\t+--o--+\n//\t  | x |\n//\n// Done.", got)
	})

	t.Run("mixed", func(t *testing.T) {
		got := comment("\\todo Rename\n      later", "\t", "")
		assert.Equal(t, "\t//\t\\todo Rename\n\t//\t      later", got)
	})

	t.Run("heading", func(t *testing.T) {
		got := comment("Intro.\n\nExamples\n\nMore text.\n\nNot a heading.", "", "")
		assert.Equal(t, "// Intro.\n//\n// # Examples\n//\n// More text.\n//\n// Not a heading.", got)

		assert.Equal(t, "// Intro.\n//\n// Trailing", comment("Intro.\n\nTrailing", "", ""))
	})

	t.Run("list", func(t *testing.T) {
		got := comment("For example:\n\n- 0 is infinity.\n* 2 is 50cm\naway.", "", "")
		assert.Equal(t, "// For example:\n//\n//   - 0 is infinity.\n//   - 2 is 50cm\n//     away.", got)
	})
}
