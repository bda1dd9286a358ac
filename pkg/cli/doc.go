// Package cli implements the command-line interface for the hashver tool.
//
// # Overview
//
// hashver converts dotted version strings into single unsigned integers
// whose ordering matches the component-wise version ordering, and
// converts such integers back into version strings. The conversion is
// shaped by a bits-per-component profile supplied with --bpc.
//
// # Commands
//
// convert (also the default action for bare arguments):
//
//	hashver [convert] [--bpc WIDTHS] <version|integer>...
//
// Decodes arguments that parse as decimal unsigned integers and encodes
// everything else. Each argument produces one output line; a failing
// argument reports its error inline and does not abort the rest.
//
// encode / decode force the direction for all arguments:
//
//	hashver encode --bpc 8.8.16 1.2.3
//	hashver decode 4295098371
//
// # Global Flags
//
//	--bpc, -b      Bits-per-component profile (default: 16.16.16)
//	--strict       Reject component values that overflow their bits
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: text, json, yaml, table (default: text)
//	--log-level    Log level (debug, info, warn, error)
//
// # Output
//
// The text format prints one line per argument:
//
//	1.2.3 : 4295098371
//	1.x.3 : ERROR: Parsing Error: ...
//
// The structured formats route through pkg/serializer and render the
// full result records including input, output, and error fields.
//
// # Environment Variables
//
//	HASHVER_BPC  Default bits-per-component profile
//	LOG_LEVEL    Logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success (including per-argument conversion failures)
//	1  Command failure (bad profile, bad format, no arguments)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/hashver/pkg/cli.version=1.0.0'"
package cli
