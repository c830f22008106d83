package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"camctl/internal/config"
	"camctl/internal/gen"
	"camctl/internal/linkage"
	"camctl/internal/schema"
)

var linkagePrefixes = map[schema.Category]string{
	schema.Controls:   linkage.ControlPrefix,
	schema.Properties: linkage.PropertyPrefix,
}

func linkageCmd(args []string, logger *slog.Logger) error {
	flagSet := newFlagSet("linkage")
	loadConfig := configFlag(flagSet)

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputs, err := generateLinkage(cfg)
	if err != nil {
		return err
	}

	return writeAll(outputs, logger)
}

// generateLinkage renders the native id packages of both categories from
// the configured headers.
func generateLinkage(cfg *config.Config) (map[string][]gen.GeneratedFile, error) {
	res := map[string][]gen.GeneratedFile{}

	var version string

	for _, c := range schema.Categories {
		table, err := linkage.ParseFile(cfg.Path(cfg.Headers.Of(c)), linkagePrefixes[c])
		if err != nil {
			return nil, err
		}

		if len(table.Entries) == 0 {
			return nil, fmt.Errorf("%s declares no %s ids", table.Source, c)
		}

		if version != "" && table.Version != "" && table.Version != version {
			return nil, fmt.Errorf("%s declares libcamera %s, expected %s", table.Source, table.Version, version)
		}

		if table.Version == "" {
			table.Version = version
		}

		version = table.Version

		gcfg := gen.DefaultLinkageConfig(c)
		gcfg.PackageName = filepath.Base(cfg.Linkage.Of(c))
		gcfg.OutputDir = cfg.Path(cfg.Linkage.Of(c))

		file, err := gen.NewGenerator(gcfg).GenerateLinkage(table, c)
		if err != nil {
			return nil, err
		}

		res[gcfg.OutputDir] = []gen.GeneratedFile{*file}
	}

	return res, nil
}
