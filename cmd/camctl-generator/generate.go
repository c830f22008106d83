package main

import (
	"context"
	"errors"
	"log/slog"

	"camctl/internal/config"
	"camctl/internal/resolve"
)

func genCmd(ctx context.Context, args []string, logger *slog.Logger) error {
	flagSet := newFlagSet("gen")
	loadConfig := configFlag(flagSet)
	version := flagSet.String("version", "", "snapshot version to generate")
	out := flagSet.String("out", "", "write <out>/controls and <out>/properties instead of the configured packages")
	verify := flagSet.Bool("verify-linkage", true, "check every id against the compiled linkage packages")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if *version == "" {
		return errors.New("gen: --version is required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cfg.VerifyLinkage = cfg.VerifyLinkage && *verify

	snap, err := loadSnapshot(ctx, cfg, *version, logger)
	if err != nil {
		return err
	}

	outputs, err := generateAll(snap, cfg, *out, logger)
	if err != nil {
		return err
	}

	return writeAll(outputs, logger)
}

func selectCmd(ctx context.Context, args []string, logger *slog.Logger) error {
	flagSet := newFlagSet("select")
	loadConfig := configFlag(flagSet)
	linked := flagSet.String("linked-version", "", "linked libcamera version (default: $LIBCAMERA_VERSION, config, pkg-config)")
	mode := flagSet.String("mode", "", "resolution mode, exact or caret (default: from the config)")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	version, err := resolveVersion(ctx, cfg, *linked, *mode, logger)
	if err != nil {
		return err
	}

	snap, err := loadSnapshot(ctx, cfg, version, logger)
	if err != nil {
		return err
	}

	outputs, err := generateAll(snap, cfg, "", logger)
	if err != nil {
		return err
	}

	return writeAll(outputs, logger)
}

// resolveVersion picks the snapshot for the linked runtime.
func resolveVersion(ctx context.Context, cfg *config.Config, linkedFlag, modeFlag string, logger *slog.Logger) (string, error) {
	if modeFlag != "" {
		cfg.Mode = modeFlag
	}

	mode, err := cfg.ResolveMode()
	if err != nil {
		return "", err
	}

	linked, err := cfg.Linked(ctx, linkedFlag, config.HostEnv())
	if err != nil {
		return "", err
	}

	available, err := resolve.Available(cfg.Path(cfg.SchemaDir))
	if err != nil {
		return "", err
	}

	version, err := resolve.Resolve(available, linked.Version, mode)
	if err != nil {
		return "", err
	}

	logger.Info("resolved snapshot", "linked", linked.Version, "from", linked.Origin, "mode", mode, "snapshot", version)

	return version, nil
}
