// camctl-generator compiles libcamera control and property schemas into
// typed Go catalogues.
//
// Usage:
//
//	camctl-generator sync --repo <libcamera clone> [flags]
//	camctl-generator gen --version <v> [flags]
//	camctl-generator select [flags]
//	camctl-generator linkage [flags]
//	camctl-generator check [flags]
//	camctl-generator versions [flags]
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"camctl/internal/match"
)

var commands = []string{"sync", "gen", "select", "linkage", "check", "versions", "help"}

// exitError carries a non-zero exit status without an error message.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if os.Getenv("CAMCTL_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error

	switch cmd {
	case "sync":
		err = syncCmd(ctx, args, logger)
	case "gen":
		err = genCmd(ctx, args, logger)
	case "select":
		err = selectCmd(ctx, args, logger)
	case "linkage":
		err = linkageCmd(args, logger)
	case "check":
		err = checkCmd(ctx, args, logger)
	case "versions":
		err = versionsCmd(ctx, args, logger)
	case "help", "--help", "-h":
		printUsage()

		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s%s\n\n", cmd, match.Hint(cmd, commands))
		printUsage()
		os.Exit(1)
	}

	if errors.Is(err, pflag.ErrHelp) {
		return
	}

	var exit *exitError
	if errors.As(err, &exit) {
		stop()
		os.Exit(exit.code)
	}

	if err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`camctl-generator - typed Go catalogues for libcamera controls and properties

USAGE
    camctl-generator <command> [flags]

COMMANDS
    sync      Read schema releases from a libcamera clone into the snapshot store
    gen       Generate the catalogues of one snapshot into a directory
    select    Resolve the snapshot for the linked runtime and generate it
    linkage   Regenerate the native id packages from the runtime headers
    check     Report drift between generated files and a fresh generation
    versions  List snapshots and the one that resolves

EXAMPLES
    # Refresh the snapshot store from an upstream clone
    camctl-generator sync --repo ../libcamera --fetch

    # Build step, run by go generate ./controls
    camctl-generator select

    # Resolve against a newer runtime in caret mode
    camctl-generator select --linked-version 0.5.3 --mode caret

ENVIRONMENT
    LIBCAMERA_VERSION  Linked runtime version (overrides camctl.jsonc)
    CAMCTL_DEBUG       Enable debug logging

Commands read camctl.jsonc from the working directory or its parents
unless --config is given.
`)
}

func newFlagSet(name string) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("camctl-generator "+name, pflag.ContinueOnError)
	flagSet.SortFlags = false

	return flagSet
}
