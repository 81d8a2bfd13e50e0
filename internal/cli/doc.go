// Package cli implements the dagsvg command-line interface.
//
// Running dagsvg with no arguments builds the fixed example graph and writes
// dag.svg to the current directory.
//
// # Commands
//
//   - render: render the example graph to SVG (also the default action)
//   - config: print the effective rendering configuration as TOML
//
// # Configuration
//
// Styling comes from built-in defaults, optionally overlaid by a TOML file
// given with --config, and finally by individual flags such as --radius or
// --node-color.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging through
// charmbracelet/log on stderr.
package cli
