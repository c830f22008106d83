package source

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/zeebo/blake3"

	"camctl/internal/schema"
)

// File is one parsed schema document of a release.
type File struct {
	Name string
	Data []byte
	Doc  *schema.Document
}

// Snapshot is the raw schema of one release: every document per category,
// sorted by file name.
type Snapshot struct {
	Version string
	Tag     string
	Files   map[schema.Category][]File
}

// digestKey separates snapshot digests from any other BLAKE3 use.
var digestKey = [32]byte{
	'c', 'a', 'm', 'c', 't', 'l', '.', 's', 'c', 'h', 'e', 'm', 'a', '.',
	's', 'n', 'a', 'p', 's', 'h', 'o', 't',
}

// Digest is a hex BLAKE3 digest over every document name and content. Two
// snapshots with the same documents have the same digest regardless of the
// tag they were read from.
func (s *Snapshot) Digest() string {
	hasher, err := blake3.NewKeyed(digestKey[:])
	if err != nil {
		panic("source: BLAKE3 keyed hash initialization failed: " + err.Error())
	}

	for _, c := range schema.Categories {
		for _, f := range s.Files[c] {
			fmt.Fprintf(hasher, "%s\x00%s\x00%d\x00", c, f.Name, len(f.Data))
			_, _ = hasher.Write(f.Data)
		}
	}

	return hex.EncodeToString(hasher.Sum(nil))
}

// Load reads every release of src into snapshots sorted by version.
//
// Tags whose last path component is not v<semver>, the v0.0.0 tag and
// repeated versions are skipped. A schema document that fails to parse
// aborts the load.
func Load(ctx context.Context, src Source, logger *slog.Logger) ([]*Snapshot, error) {
	releases, err := src.Releases(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing releases: %w", err)
	}

	seen := map[string]string{}

	var res []*Snapshot

	for _, tag := range releases {
		version, ok := ParseTag(tag)
		if !ok {
			logger.Debug("skipping tag", "tag", tag, "reason", "not a version")

			continue
		}

		if version == "0.0.0" {
			logger.Debug("skipping tag", "tag", tag, "reason", "empty initial version")

			continue
		}

		if prev, dup := seen[version]; dup {
			logger.Debug("skipping tag", "tag", tag, "reason", "duplicate of "+prev)

			continue
		}

		seen[version] = tag

		snap, err := loadRelease(ctx, src, tag, version)
		if err != nil {
			return nil, err
		}

		if len(snap.Files) == 0 {
			logger.Debug("skipping tag", "tag", tag, "reason", "no schema documents")

			continue
		}

		logger.Info("loaded release", "version", version,
			"controls", len(snap.Files[schema.Controls]), "properties", len(snap.Files[schema.Properties]))

		res = append(res, snap)
	}

	slices.SortFunc(res, func(a, b *Snapshot) int {
		return CompareVersions(a.Version, b.Version)
	})

	return res, nil
}

func loadRelease(ctx context.Context, src Source, tag, version string) (*Snapshot, error) {
	names, err := src.Files(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("listing schema files of %s: %w", tag, err)
	}

	slices.Sort(names)

	snap := &Snapshot{Version: version, Tag: tag, Files: map[schema.Category][]File{}}

	for _, name := range names {
		c, ok := schema.CategoryOf(name)
		if !ok {
			continue
		}

		data, err := src.ReadFile(ctx, tag, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s of %s: %w", name, tag, err)
		}

		doc, err := schema.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("release %s: %s: %w", tag, name, err)
		}

		snap.Files[c] = append(snap.Files[c], File{Name: name, Data: data, Doc: doc})
	}

	return snap, nil
}

// Find returns the snapshot with the given version.
func Find(snapshots []*Snapshot, version string) (*Snapshot, error) {
	version = strings.TrimPrefix(version, "v")

	for _, s := range snapshots {
		if s.Version == version {
			return s, nil
		}
	}

	return nil, fmt.Errorf("no snapshot for version %s", version)
}

// LoadVersion reads a single release of a snapshot store without parsing
// the others.
func LoadVersion(ctx context.Context, src *DirSource, version string) (*Snapshot, error) {
	version = strings.TrimPrefix(version, "v")

	snap, err := loadRelease(ctx, src, "v"+version, version)
	if err != nil {
		return nil, err
	}

	if len(snap.Files) == 0 {
		return nil, fmt.Errorf("no schema documents for version %s", version)
	}

	return snap, nil
}
