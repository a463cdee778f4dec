package cmd

import (
	"github.com/dendrascience/tzip/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the tzip CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tzip",
		Short: "tzip - A parallel, deterministic archiver for directories of text files",
		Long: `tzip compresses every .txt file in a directory into one archive.

Files are compressed in parallel by a bounded pool of workers, and the archive
always lists them in byte-wise filename order, so the same directory produces
the same archive regardless of how many workers ran.

Use subcommands to perform different operations:
  - compress: Compress a directory into an archive
  - inspect: List and check the frames of an archive
  - count: Count the files compress would pick up
  - seed: Generate test files`,
		Version: version.GetFullVersion(),
	}

	groupArchive := "archive"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupArchive,
		Title: "Archive Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	compressCmd := NewCompressCmd()
	inspectCmd := NewInspectCmd()
	countCmd := NewCountCmd()
	seedCmd := NewSeedCmd()

	compressCmd.GroupID = groupArchive
	inspectCmd.GroupID = groupArchive
	countCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
