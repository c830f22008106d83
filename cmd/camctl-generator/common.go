package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/pflag"

	"camctl/internal/analyze"
	"camctl/internal/config"
	"camctl/internal/diagnostic"
	"camctl/internal/gen"
	"camctl/internal/plan"
	"camctl/internal/schema"
	"camctl/internal/source"
)

// configFlag registers --config and returns a loader for it.
func configFlag(flagSet *pflag.FlagSet) func() (*config.Config, error) {
	path := flagSet.String("config", "", "path to camctl.jsonc (default: search from the working directory)")

	return func() (*config.Config, error) {
		file := *path
		if file == "" {
			found, err := config.Find(".")
			if err != nil {
				return nil, err
			}

			file = found
		}

		return config.Load(file)
	}
}

// loadSnapshot reads and normalizes one version of the snapshot store.
func loadSnapshot(ctx context.Context, cfg *config.Config, version string, logger *slog.Logger) (*plan.Snapshot, error) {
	raw, err := source.LoadVersion(ctx, source.NewDirSource(cfg.Path(cfg.SchemaDir)), version)
	if err != nil {
		return nil, err
	}

	snap, err := plan.Build(raw)
	if err != nil {
		return nil, err
	}

	logDiagnostics(logger, snap.Diagnostics)
	logger.Info("loaded snapshot", "version", snap.Version, "digest", snap.Digest,
		"controls", len(snap.Controls), "properties", len(snap.Properties))

	return snap, nil
}

func logDiagnostics(logger *slog.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		logger.Warn(d.Message, "code", d.Code, "origin", d.Origin, "control", d.Control)
	}

	for _, d := range diags.Infos {
		logger.Debug(d.Message, "code", d.Code, "origin", d.Origin, "control", d.Control)
	}
}

// generateAll renders both categories of snap. outDir, when set, replaces
// the configured output package directories with <outDir>/<category>.
func generateAll(snap *plan.Snapshot, cfg *config.Config, outDir string, logger *slog.Logger) (map[string][]gen.GeneratedFile, error) {
	res := map[string][]gen.GeneratedFile{}

	for _, c := range schema.Categories {
		gcfg := gen.DefaultGeneratorConfig(c)
		gcfg.ControlPkg = cfg.ImportPath("control")
		gcfg.LinkagePkg = cfg.ImportPath(cfg.Linkage.Of(c))
		gcfg.OutputDir = cfg.Path(cfg.Outputs.Of(c))

		if outDir != "" {
			gcfg.OutputDir = filepath.Join(outDir, c.String())
		}

		if cfg.VerifyLinkage {
			names, err := linkageNames(cfg, gcfg.LinkagePkg)
			if err != nil {
				return nil, fmt.Errorf("verifying linkage of %s: %w", c, err)
			}

			gcfg.Linkage = names
		}

		files, err := gen.NewGenerator(gcfg).Generate(snap, c)
		if err != nil {
			return nil, err
		}

		logger.Debug("generated catalogue", "category", c, "files", len(files), "dir", gcfg.OutputDir)

		res[gcfg.OutputDir] = files
	}

	return res, nil
}

// linkageNames loads the compiled linkage package and returns its constant
// names.
func linkageNames(cfg *config.Config, importPath string) (map[string]bool, error) {
	info, err := analyze.NewAnalyzer(cfg.Root).LoadPackage(importPath)
	if err != nil {
		return nil, err
	}

	return info.Names(), nil
}

// writeAll replaces the generated files of every output directory.
func writeAll(outputs map[string][]gen.GeneratedFile, logger *slog.Logger) error {
	for dir, files := range outputs {
		if err := gen.WriteFiles(files, dir); err != nil {
			return err
		}

		keep := make([]string, len(files))
		for i, f := range files {
			keep[i] = f.Filename
		}

		removed, err := gen.Clean(dir, keep...)
		if err != nil {
			return err
		}

		logger.Info("wrote catalogue", "dir", dir, "files", len(files), "stale", removed)
	}

	return nil
}
