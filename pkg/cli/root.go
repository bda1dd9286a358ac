/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/hashver/pkg/codec"
	"github.com/NVIDIA/hashver/pkg/logging"
	"github.com/NVIDIA/hashver/pkg/serializer"
)

const (
	name           = "hashver"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Flags are built fresh per Root() call: urfave/cli flag instances are
// stateful across runs, so sharing them between commands leaks values
// set by one run into the next.
func bpcFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "bpc",
		Aliases: []string{"b"},
		Usage: `Bits per component, a dot separated list of bit-widths, one per
	version component (e.g. "8.8.16.8"). Defines both the expected number of
	components and the maximum value each may hold.`,
		Sources: cli.EnvVars("HASHVER_BPC"),
		Value:   codec.Default().String(),
	}
}

func strictFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "strict",
		Usage: "Reject component values that do not fit their allotted bits",
	}
}

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() *cli.StringFlag {
	formats := append([]string{string(formatText)}, serializer.SupportedFormats()...)
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("Output format: %s", strings.Join(formats, ", ")),
		Value:   string(formatText),
	}
}

func logLevelFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars("LOG_LEVEL"),
		Value:   "info",
	}
}

// Root builds the hashver root command. Bare arguments are converted in
// place: decimal integers are decoded, anything else is encoded.
func Root() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Convert version strings to sortable integers and back",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `hashver maps dotted version strings (e.g. "8.20.1300.14") to single
unsigned integers whose ordering matches the component-wise version
ordering, and maps such integers back to version strings.

Each argument is converted based on its shape: a decimal integer is
decoded into a version string, anything else is encoded into an integer.
Use the encode or decode subcommands to force a direction.

# Examples

Convert with the default 16.16.16 profile:
  hashver 1.2.3 4295098371

Four-component builds:
  hashver --bpc 16.16.16.16 8.20.1300.14

Reject components that overflow their bits:
  hashver --bpc 8.8.8 --strict 1.2.300`,
		Flags: []cli.Flag{
			bpcFlag(),
			strictFlag(),
			outputFlag(),
			formatFlag(),
			logLevelFlag(),
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			convertCmd(),
			encodeCmd(),
			decodeCmd(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return cli.ShowAppHelp(cmd)
			}
			return runConvert(ctx, cmd, directionAuto)
		},
	}
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := Root().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
