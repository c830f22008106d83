package main

import (
	"context"
	"errors"
	"log/slog"

	"camctl/internal/source"
)

func syncCmd(ctx context.Context, args []string, logger *slog.Logger) error {
	flagSet := newFlagSet("sync")
	loadConfig := configFlag(flagSet)
	repo := flagSet.String("repo", "", "path to a libcamera git clone")
	fetch := flagSet.Bool("fetch", false, "fetch tags from the clone's remote first")
	out := flagSet.String("out", "", "snapshot store to write (default: schema_dir from the config)")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if *repo == "" {
		return errors.New("sync: --repo is required")
	}

	storeDir := *out
	if storeDir == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		storeDir = cfg.Path(cfg.SchemaDir)
	}

	src := source.NewGitSource(*repo)

	if *fetch {
		logger.Info("fetching tags", "repo", src.Dir())

		if err := src.Fetch(ctx); err != nil {
			return err
		}
	}

	snaps, err := source.Load(ctx, src, logger)
	if err != nil {
		return err
	}

	if err := source.Store(storeDir, snaps); err != nil {
		return err
	}

	for _, s := range snaps {
		logger.Debug("stored snapshot", "version", s.Version, "tag", s.Tag, "digest", s.Digest())
	}

	logger.Info("snapshot store updated", "dir", storeDir, "versions", len(snaps))

	return nil
}
