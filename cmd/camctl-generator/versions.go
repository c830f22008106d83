package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"camctl/internal/resolve"
	"camctl/internal/schema"
	"camctl/internal/source"
)

func versionsCmd(ctx context.Context, args []string, logger *slog.Logger) error {
	flagSet := newFlagSet("versions")
	loadConfig := configFlag(flagSet)
	linked := flagSet.String("linked-version", "", "linked libcamera version")
	mode := flagSet.String("mode", "", "resolution mode, exact or caret")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	snaps, err := source.Load(ctx, source.NewDirSource(cfg.Path(cfg.SchemaDir)), logger)
	if err != nil {
		return err
	}

	selected, err := resolveVersion(ctx, cfg, *linked, *mode, logger)
	if err != nil {
		var nce *resolve.NoCompatibleError
		if !errors.As(err, &nce) {
			return err
		}

		logger.Warn("no snapshot resolves", "error", err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tCONTROLS\tPROPERTIES\tDIGEST\t")

	for _, s := range snaps {
		mark := ""
		if s.Version == selected {
			mark = "selected"
		}

		fmt.Fprintf(tw, "%s\t%d\t%d\t%.16s\t%s\n", s.Version,
			count(s, schema.Controls), count(s, schema.Properties), s.Digest(), mark)
	}

	return tw.Flush()
}

func count(s *source.Snapshot, c schema.Category) int {
	n := 0
	for _, f := range s.Files[c] {
		n += len(f.Doc.Controls)
	}

	return n
}
