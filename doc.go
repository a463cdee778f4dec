// Package main provides the tzip command-line interface.
//
// tzip compresses every .txt file directly inside a directory into a single
// archive. Files are compressed in parallel by a bounded worker pool, and the
// archive always holds them in byte-wise filename order, so any number of
// workers produces the same bytes.
//
// The main binary supports multiple subcommands:
//   - compress: Compress a directory into an archive
//   - inspect: List and check the frames of an archive
//   - count: Count the files compress would pick up
//   - seed: Generate test files
package main
