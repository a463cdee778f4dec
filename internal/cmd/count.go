package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/dendrascience/tzip/util"
	"github.com/spf13/cobra"
)

// NewCountCmd creates and returns the count subcommand for the tzip CLI.
// It reports how many files compress would pick up.
func NewCountCmd() *cobra.Command {
	var (
		path      string
		showNames bool
	)

	cmd := &cobra.Command{
		Use:   "count [PATH]",
		Short: "Count the .txt files compress would archive",
		Long: `Count the files directly inside a directory whose names end in ".txt".

Uses the same rules as compress: subdirectories are neither counted nor
traversed, and names are matched case-sensitively.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				path = args[0]
			}
			if err := runCount(cmd.OutOrStdout(), path, showNames); err != nil {
				log.Fatalf("Error counting files: %v", err)
			}
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "./", "Path to count files in")
	cmd.Flags().BoolVar(&showNames, "list", false, "Print each matching name in archive order")

	return cmd
}

func runCount(out io.Writer, path string, showNames bool) error {
	catalog, err := util.NewCatalog(path)
	if err != nil {
		return err
	}
	if showNames {
		for _, name := range catalog.Iterate {
			fmt.Fprintln(out, name)
		}
	}
	fmt.Fprintf(out, "Total files: %d\n", catalog.Len())
	fmt.Fprintf(out, "Total bytes: %d\n", catalog.TotalSize())
	return nil
}
