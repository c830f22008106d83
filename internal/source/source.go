package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/mod/semver"

	"camctl/internal/schema"
)

// Source is a set of upstream releases and their schema files.
type Source interface {
	// Releases returns release identifiers (tag names) in listing order.
	Releases(ctx context.Context) ([]string, error)
	// Files returns the base names of the schema files in a release.
	Files(ctx context.Context, release string) ([]string, error)
	ReadFile(ctx context.Context, release, name string) ([]byte, error)
}

// SchemaDir is where libcamera keeps its schema documents.
const SchemaDir = "src/libcamera"

// GitSource reads releases from a libcamera clone through the git CLI. It
// only reads objects and never touches the working tree.
type GitSource struct {
	dir string
}

func NewGitSource(dir string) *GitSource {
	return &GitSource{dir: dir}
}

func (g *GitSource) Dir() string {
	return g.dir
}

// Fetch updates the clone's tags from its default remote.
func (g *GitSource) Fetch(ctx context.Context) error {
	_, err := runGit(ctx, g.dir, "fetch", "--tags", "--force")

	return err
}

func (g *GitSource) Releases(ctx context.Context) ([]string, error) {
	out, err := runGit(ctx, g.dir, "tag", "--list")
	if err != nil {
		return nil, err
	}

	return lines(out), nil
}

func (g *GitSource) Files(ctx context.Context, release string) ([]string, error) {
	out, err := runGit(ctx, g.dir, "ls-tree", "--name-only", "refs/tags/"+release+":"+SchemaDir)
	if err != nil {
		return nil, err
	}

	var res []string

	for _, name := range lines(out) {
		if strings.HasSuffix(name, ".yaml") {
			res = append(res, name)
		}
	}

	return res, nil
}

func (g *GitSource) ReadFile(ctx context.Context, release, name string) ([]byte, error) {
	out, err := runGit(ctx, g.dir, "show", "refs/tags/"+release+":"+SchemaDir+"/"+name)
	if err != nil {
		return nil, err
	}

	return []byte(out), nil
}

// DirSource reads a snapshot store written by Store. Every version directory
// is one release, reported as tag "v<version>".
type DirSource struct {
	root string
}

func NewDirSource(root string) *DirSource {
	return &DirSource{root: root}
}

func (d *DirSource) Releases(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot store %s: %w", d.root, err)
	}

	var res []string

	for _, e := range entries {
		if e.IsDir() {
			res = append(res, "v"+e.Name())
		}
	}

	return res, nil
}

func (d *DirSource) Files(_ context.Context, release string) ([]string, error) {
	entries, err := os.ReadDir(d.versionDir(release))
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", release, err)
	}

	var res []string

	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".yaml") {
			res = append(res, e.Name())
		}
	}

	return res, nil
}

func (d *DirSource) ReadFile(_ context.Context, release, name string) ([]byte, error) {
	if name != filepath.Base(name) {
		return nil, fmt.Errorf("invalid schema file name %q", name)
	}

	return os.ReadFile(filepath.Join(d.versionDir(release), name))
}

func (d *DirSource) versionDir(release string) string {
	return filepath.Join(d.root, strings.TrimPrefix(release, "v"))
}

// Store writes snapshots as <dir>/<version>/<file>. Each version directory
// is replaced as a whole; other versions are left alone.
func Store(dir string, snapshots []*Snapshot) error {
	for _, s := range snapshots {
		vdir := filepath.Join(dir, s.Version)

		if err := os.RemoveAll(vdir); err != nil {
			return fmt.Errorf("clearing %s: %w", vdir, err)
		}

		if err := os.MkdirAll(vdir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", vdir, err)
		}

		for _, c := range schema.Categories {
			for _, f := range s.Files[c] {
				path := filepath.Join(vdir, f.Name)
				if err := os.WriteFile(path, f.Data, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
			}
		}
	}

	return nil
}

// Versions lists the versions held by a snapshot store, sorted ascending.
// Directories that are not a version are ignored.
func Versions(dir string) ([]string, error) {
	releases, err := NewDirSource(dir).Releases(context.Background())
	if err != nil {
		return nil, err
	}

	var res []string

	for _, r := range releases {
		if v, ok := ParseTag(r); ok {
			res = append(res, v)
		}
	}

	slices.SortFunc(res, CompareVersions)

	return res, nil
}

// ParseTag extracts the version from a release tag: the last path component
// must be "v" followed by a full major.minor.patch version with an optional
// pre-release. The result has no "v".
func ParseTag(tag string) (string, bool) {
	name := tag[strings.LastIndex(tag, "/")+1:]
	if !strings.HasPrefix(name, "v") || !semver.IsValid(name) {
		return "", false
	}

	// semver.IsValid accepts v1 and v1.2 shorthands.
	if semver.Canonical(name) != strings.SplitN(name, "+", 2)[0] {
		return "", false
	}

	return name[1:], true
}

// CompareVersions orders versions without the "v" prefix.
func CompareVersions(a, b string) int {
	return semver.Compare("v"+a, "v"+b)
}

func lines(s string) []string {
	var res []string

	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			res = append(res, l)
		}
	}

	return res
}
