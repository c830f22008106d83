package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/pmezard/go-difflib/difflib"

	"camctl/internal/gen"
)

func checkCmd(ctx context.Context, args []string, logger *slog.Logger) error {
	flagSet := newFlagSet("check")
	loadConfig := configFlag(flagSet)
	version := flagSet.String("version", "", "snapshot version to compare against (default: resolve like select)")
	linked := flagSet.String("linked-version", "", "linked libcamera version used for resolution")
	mode := flagSet.String("mode", "", "resolution mode, exact or caret")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	want := *version
	if want == "" {
		want, err = resolveVersion(ctx, cfg, *linked, *mode, logger)
		if err != nil {
			return err
		}
	}

	linkageOutputs, err := generateLinkage(cfg)
	if err != nil {
		return err
	}

	snap, err := loadSnapshot(ctx, cfg, want, logger)
	if err != nil {
		return err
	}

	outputs, err := generateAll(snap, cfg, "", logger)
	if err != nil {
		return err
	}

	for dir, files := range linkageOutputs {
		outputs[dir] = files
	}

	dirs := make([]string, 0, len(outputs))
	for dir := range outputs {
		dirs = append(dirs, dir)
	}

	slices.Sort(dirs)

	drift := 0

	for _, dir := range dirs {
		n, err := diffDir(os.Stdout, dir, outputs[dir])
		if err != nil {
			return err
		}

		drift += n
	}

	if drift > 0 {
		logger.Error("generated files are out of date", "files", drift, "snapshot", want)

		return &exitError{code: 1}
	}

	logger.Info("generated files are up to date", "snapshot", want)

	return nil
}

// diffDir writes a unified diff per drifted file of dir and returns how
// many files drifted. Generated files on disk that a fresh run would not
// produce count as drift.
func diffDir(w io.Writer, dir string, files []gen.GeneratedFile) (int, error) {
	onDisk := map[string]bool{}

	entries, err := os.ReadDir(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return 0, err
	}

	for _, e := range entries {
		if !e.IsDir() && gen.IsGenerated(e.Name()) {
			onDisk[e.Name()] = true
		}
	}

	drift := 0

	for _, f := range files {
		path := filepath.Join(dir, f.Filename)
		delete(onDisk, f.Filename)

		current, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return drift, err
		}

		if bytes.Equal(current, f.Content) {
			continue
		}

		drift++

		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(current)),
			B:        difflib.SplitLines(string(f.Content)),
			FromFile: path,
			ToFile:   path + " (regenerated)",
			Context:  3,
		})
		if err != nil {
			return drift, err
		}

		fmt.Fprint(w, diff)
	}

	stale := make([]string, 0, len(onDisk))
	for name := range onDisk {
		stale = append(stale, name)
	}

	slices.Sort(stale)

	for _, name := range stale {
		drift++

		fmt.Fprintf(w, "stale generated file %s\n", filepath.Join(dir, name))
	}

	return drift, nil
}
