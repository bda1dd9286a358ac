/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/hashver/pkg/codec"
	"github.com/NVIDIA/hashver/pkg/serializer"
)

// formatText is the line-oriented default output format. The structured
// formats are handled by pkg/serializer.
const formatText = serializer.Format("text")

type direction int

const (
	// directionAuto decodes decimal integer arguments and encodes
	// everything else.
	directionAuto direction = iota
	directionEncode
	directionDecode
)

// Result is the outcome of converting a single argument. Exactly one of
// Output and Error is set.
type Result struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Line renders the result in the text output format.
func (r Result) Line() string {
	if r.Error != "" {
		return fmt.Sprintf("%s : ERROR: %s", r.Input, r.Error)
	}
	return fmt.Sprintf("%s : %s", r.Input, r.Output)
}

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:                  "convert",
		EnableShellCompletion: true,
		Usage:                 "Convert arguments, detecting the direction per argument",
		ArgsUsage:             "<version|integer> [<version|integer>...]",
		Description: `Convert each argument under the configured bits-per-component profile.
Arguments that parse as decimal unsigned integers are decoded into
version strings; all other arguments are encoded into integers.

A failing argument is reported inline and does not stop the remaining
arguments from being processed.

# Examples

  hashver convert 1.2.3 4295098371
  hashver convert --bpc 16.16.16.16 8.20.1300.14 0.6.4-rc1`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runConvert(ctx, cmd, directionAuto)
		},
	}
}

func encodeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "encode",
		EnableShellCompletion: true,
		Usage:                 "Encode version strings into integers",
		ArgsUsage:             "<version> [<version>...]",
		Description: `Encode each version string into its numeric equivalent under the
configured bits-per-component profile. The last component may carry a
hyphen-separated suffix (e.g. "4-rc1"); the suffix is ignored.

# Examples

  hashver encode 1.2.3
  hashver encode --bpc 8.8.16 --strict 1.2.3`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runConvert(ctx, cmd, directionEncode)
		},
	}
}

func decodeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "decode",
		EnableShellCompletion: true,
		Usage:                 "Decode integers into version strings",
		ArgsUsage:             "<integer> [<integer>...]",
		Description: `Decode each integer back into its version string under the configured
bits-per-component profile. Fails for values holding bits beyond the
profile's total capacity.

# Examples

  hashver decode 4295098371
  hashver decode --bpc 16.16.16.16 2251885798227982`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runConvert(ctx, cmd, directionDecode)
		},
	}
}

// runConvert implements all three conversion commands. A malformed
// profile or output format fails the whole command; a malformed
// argument only fails its own line.
func runConvert(ctx context.Context, cmd *cli.Command, dir direction) error {
	profile, err := codec.ParseProfile(cmd.String("bpc"))
	if err != nil {
		return fmt.Errorf("invalid bpc profile %q: %w", cmd.String("bpc"), err)
	}
	if bits := profile.Bits(); bits > 64 {
		slog.Warn("profile exceeds 64-bit capacity, high components will truncate",
			"profile", profile.String(),
			"bits", bits)
	}

	format := serializer.Format(cmd.String("format"))
	if format != formatText && format.IsUnknown() {
		return fmt.Errorf("unknown output format: %q", format)
	}

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("at least one argument is required")
	}

	slog.Debug("converting",
		"profile", profile.String(),
		"strict", cmd.Bool("strict"),
		"args", len(args))

	results := convert(ctx, profile, cmd.Bool("strict"), dir, args)
	return emit(ctx, cmd, format, results)
}

// convert fans the arguments out over a bounded errgroup. Results keep
// the argument order regardless of completion order.
func convert(ctx context.Context, profile codec.Profile, strict bool, dir direction, args []string) []Result {
	results := make([]Result, len(args))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, arg := range args {
		i, arg := i, arg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Input: arg, Error: err.Error()}
				return nil
			}
			results[i] = convertOne(profile, strict, dir, arg)
			return nil
		})
	}
	// Conversion failures are carried per-result, never as a group error.
	_ = g.Wait()

	return results
}

func convertOne(profile codec.Profile, strict bool, dir direction, arg string) Result {
	result := Result{Input: arg}

	num, numErr := strconv.ParseUint(arg, 10, 64)
	switch {
	case dir == directionDecode && numErr != nil:
		result.Error = fmt.Sprintf("%q is not an unsigned integer", arg)
	case dir == directionDecode || (dir == directionAuto && numErr == nil):
		version, err := profile.Decode(num)
		if err != nil {
			result.Error = err.Error()
			return result
		}
		result.Output = version
	default:
		encode := profile.Encode
		if strict {
			encode = profile.EncodeStrict
		}
		value, err := encode(arg)
		if err != nil {
			result.Error = err.Error()
			return result
		}
		result.Output = strconv.FormatUint(value, 10)
	}
	return result
}

// emit writes the results in the requested format to --output or stdout.
func emit(ctx context.Context, cmd *cli.Command, format serializer.Format, results []Result) error {
	out := outWriter(cmd)

	if path := strings.TrimSpace(cmd.String("output")); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file %q: %w", path, err)
		}
		defer file.Close()
		out = file
	}

	if format == formatText {
		for _, r := range results {
			fmt.Fprintln(out, r.Line())
		}
		return nil
	}

	return serializer.NewWriter(format, out).Serialize(ctx, results)
}

func outWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
