package source

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camctl/internal/schema"
)

const coreControls = `
controls:
  - AeEnable:
      type: bool
      description: Enable or disable the AE.
`

const rpiControls = `
vendor: rpi
controls:
  - StatsOutputEnable:
      type: bool
      description: Toggle statistics output.
`

const coreProperties = `
controls:
  - Location:
      type: int32_t
      description: Camera mounting location.
`

// memSource is a Source over in-memory releases.
type memSource struct {
	tags  []string
	files map[string]map[string]string
}

func (m *memSource) Releases(context.Context) ([]string, error) {
	return m.tags, nil
}

func (m *memSource) Files(_ context.Context, release string) ([]string, error) {
	var res []string
	for name := range m.files[release] {
		res = append(res, name)
	}

	return res, nil
}

func (m *memSource) ReadFile(_ context.Context, release, name string) ([]byte, error) {
	return []byte(m.files[release][name]), nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func release() map[string]string {
	return map[string]string{
		"control_ids_core.yaml":  coreControls,
		"control_ids_rpi.yaml":   rpiControls,
		"property_ids_core.yaml": coreProperties,
		"formats.yaml":           "formats: []",
	}
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want string
		ok   bool
	}{
		{"v0.5.2", "0.5.2", true},
		{"refs/tags/v0.4.0", "0.4.0", true},
		{"release/v1.2.3-rc1", "1.2.3-rc1", true},
		{"v0.0.0", "0.0.0", true},
		{"0.5.2", "", false},
		{"v0.5", "", false},
		{"v1", "", false},
		{"vfoo", "", false},
		{"latest", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseTag(tt.tag)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	src := &memSource{
		tags: []string{"v0.5.2", "v0.0.0", "not-a-version", "v0.4.0", "mirror/v0.4.0", "v0.3"},
		files: map[string]map[string]string{
			"v0.5.2":        release(),
			"v0.0.0":        release(),
			"v0.4.0":        {"control_ids_core.yaml": coreControls},
			"mirror/v0.4.0": release(),
		},
	}

	snaps, err := Load(context.Background(), src, discard())
	require.NoError(t, err)
	require.Len(t, snaps, 2)

	assert.Equal(t, "0.4.0", snaps[0].Version)
	assert.Equal(t, "v0.4.0", snaps[0].Tag)
	assert.Len(t, snaps[0].Files[schema.Controls], 1)
	assert.Empty(t, snaps[0].Files[schema.Properties])

	latest := snaps[1]
	assert.Equal(t, "0.5.2", latest.Version)
	require.Len(t, latest.Files[schema.Controls], 2)
	assert.Equal(t, "control_ids_core.yaml", latest.Files[schema.Controls][0].Name)
	assert.Equal(t, "control_ids_rpi.yaml", latest.Files[schema.Controls][1].Name)
	assert.Equal(t, "rpi", latest.Files[schema.Controls][1].Doc.Vendor)
	require.Len(t, latest.Files[schema.Properties], 1)
	assert.Equal(t, "Location", latest.Files[schema.Properties][0].Doc.Controls[0].Name)
}

func TestLoadParseFailureIsFatal(t *testing.T) {
	t.Parallel()

	src := &memSource{
		tags: []string{"v0.4.0", "v0.5.0"},
		files: map[string]map[string]string{
			"v0.4.0": release(),
			"v0.5.0": {"control_ids_core.yaml": "controls:\n  - Broken:\n      description: no type\n"},
		},
	}

	_, err := Load(context.Background(), src, discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "v0.5.0")
	assert.Contains(t, err.Error(), "control_ids_core.yaml")
}

func TestDigest(t *testing.T) {
	t.Parallel()

	src := &memSource{
		tags: []string{"v0.4.0", "v0.5.0", "v0.6.0"},
		files: map[string]map[string]string{
			"v0.4.0": release(),
			"v0.5.0": release(),
			"v0.6.0": {"control_ids_core.yaml": coreControls},
		},
	}

	snaps, err := Load(context.Background(), src, discard())
	require.NoError(t, err)
	require.Len(t, snaps, 3)

	assert.Len(t, snaps[0].Digest(), 64)
	assert.Equal(t, snaps[0].Digest(), snaps[1].Digest())
	assert.NotEqual(t, snaps[0].Digest(), snaps[2].Digest())
}

func TestStoreAndDirSource(t *testing.T) {
	t.Parallel()

	src := &memSource{
		tags: []string{"v0.5.2", "v0.4.0"},
		files: map[string]map[string]string{
			"v0.5.2": release(),
			"v0.4.0": {"control_ids_core.yaml": coreControls},
		},
	}

	snaps, err := Load(context.Background(), src, discard())
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "0.4.0"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0.4.0", "stale.yaml"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scratch"), 0o755))

	require.NoError(t, Store(dir, snaps))
	assert.NoFileExists(t, filepath.Join(dir, "0.4.0", "stale.yaml"))
	assert.NoFileExists(t, filepath.Join(dir, "0.5.2", "formats.yaml"))

	versions, err := Versions(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"0.4.0", "0.5.2"}, versions)

	again, err := Load(context.Background(), NewDirSource(dir), discard())
	require.NoError(t, err)
	require.Len(t, again, 2)

	for i := range snaps {
		assert.Equal(t, snaps[i].Version, again[i].Version)
		assert.Equal(t, snaps[i].Digest(), again[i].Digest())
	}

	found, err := Find(again, "v0.5.2")
	require.NoError(t, err)
	assert.Equal(t, "0.5.2", found.Version)

	_, err = Find(again, "9.9.9")
	assert.Error(t, err)

	_, err = NewDirSource(dir).ReadFile(context.Background(), "v0.5.2", "../0.4.0/control_ids_core.yaml")
	assert.Error(t, err)

	one, err := LoadVersion(context.Background(), NewDirSource(dir), "0.5.2")
	require.NoError(t, err)
	assert.Equal(t, snaps[1].Digest(), one.Digest())

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "0.6.0"), 0o755))

	_, err = LoadVersion(context.Background(), NewDirSource(dir), "0.6.0")
	assert.ErrorContains(t, err, "no schema documents")

	_, err = LoadVersion(context.Background(), NewDirSource(dir), "9.9.9")
	assert.Error(t, err)
}

func TestGitSource(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	git := func(args ...string) {
		t.Helper()

		cmd := exec.Command("git", append([]string{"-C", dir,
			"-c", "user.name=test", "-c", "user.email=test@example.com", "-c", "commit.gpgsign=false"}, args...)...)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
	}

	git("init", "-q")

	schemaDir := filepath.Join(dir, filepath.FromSlash(SchemaDir))
	require.NoError(t, os.MkdirAll(schemaDir, 0o755))

	for name, content := range release() {
		require.NoError(t, os.WriteFile(filepath.Join(schemaDir, name), []byte(content), 0o644))
	}

	git("add", ".")
	git("commit", "-q", "-m", "initial")
	git("tag", "v0.5.2")
	git("tag", "unrelated")

	src := NewGitSource(dir)

	snaps, err := Load(context.Background(), src, discard())
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "0.5.2", snaps[0].Version)
	assert.Len(t, snaps[0].Files[schema.Controls], 2)
	assert.Len(t, snaps[0].Files[schema.Properties], 1)

	_, err = src.ReadFile(context.Background(), "v0.5.2", "missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stderr")
}
