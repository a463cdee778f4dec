// Package cmd provides the command-line interface implementation for tzip.
//
// This package contains all the subcommand implementations for the tzip CLI tool.
// It uses the Cobra library for command structure and Fang for styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - compress: Parallel compression of a directory into one archive
//   - inspect: Frame listing and truncation checks for an archive
//   - count: Counting the files a compress run would pick up
//   - seed: Test file generation
//
// Each command is implemented as a separate file with its own constructor function
// that returns a *cobra.Command. The work itself lives in the tzip and util packages.
package cmd
