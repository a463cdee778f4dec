package cmd

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/dendrascience/tzip/codec"
	"github.com/dendrascience/tzip/tzip"
	"github.com/dendrascience/tzip/util"
	"github.com/spf13/cobra"
)

// NewCompressCmd creates and returns the compress subcommand for the tzip CLI.
// It archives the text files of one directory into a single framed archive.
func NewCompressCmd() *cobra.Command {
	var (
		cfg          = tzip.DefaultConfig()
		onError      string
		metadataPath string
		verbose      bool
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "compress DIR",
		Short: "Compress the .txt files of a directory into one archive",
		Long: `Compress every file directly inside DIR whose name ends in ".txt".

Files are compressed in parallel by a fixed pool of workers and written to the
archive in byte-wise filename order, so the archive is identical no matter how
many workers were used. Each file becomes one frame: a 4-byte little-endian
length followed by the compressed bytes.

Subdirectories are not traversed. By default a single unreadable file aborts
the run and no archive is written; use --on-error=skip to leave such files out.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			policy, err := tzip.ParsePolicy(onError)
			if err != nil {
				log.Fatalf("Invalid --on-error: %v", err)
			}
			cfg.OnError = policy
			if verbose {
				cfg.Logf = log.Printf
			}
			out := cmd.OutOrStdout()
			if dryRun {
				err = runCompressDryRun(out, args[0], cfg)
			} else {
				err = runCompress(cmd.Context(), out, args[0], cfg, metadataPath)
			}
			if err != nil {
				log.Fatalf("Compression failed: %v", err)
			}
		},
	}

	cmd.Flags().IntVarP(&cfg.MaxWorkers, "workers", "w", tzip.DefaultMaxWorkers, "Maximum number of concurrent workers")
	cmd.Flags().StringVarP(&cfg.Output, "output", "o", tzip.DefaultArchiveName, "Path of the archive to write")
	cmd.Flags().StringVarP(&cfg.Codec, "codec", "c", codec.Default, fmt.Sprintf("Compression codec %v", codec.Names()))
	cmd.Flags().StringVar(&onError, "on-error", string(tzip.PolicyAbort), "What to do when a file cannot be compressed (abort|skip)")
	cmd.Flags().StringVar(&metadataPath, "metadata", "", "Also write a JSON metadata file to this path or directory")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every compressed file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List the files that would be archived without compressing")

	return cmd
}

func runCompress(ctx context.Context, out io.Writer, dir string, cfg tzip.Config, metadataPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	sum, err := tzip.Compress(ctx, dir, cfg)
	if err != nil {
		return err
	}
	for _, fe := range sum.Failed {
		fmt.Fprintf(out, "Skipped %s: %v\n", fe.Name, fe.Err)
	}
	fmt.Fprintln(out, sum.RatioLine())

	if metadataPath == "" {
		return nil
	}
	fp, err := util.FingerprintFile(sum.Output)
	if err != nil {
		return fmt.Errorf("fingerprint archive: %w", err)
	}
	if err := sum.Metadata(fp).Save(metadataPath); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	if cfg.Logf != nil {
		cfg.Logf("archive %s fingerprint %s", sum.Output, fp)
	}
	return nil
}

func runCompressDryRun(out io.Writer, dir string, cfg tzip.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	catalog, err := util.NewCatalog(dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "DRY RUN - no archive will be written")
	for i, name := range catalog.Iterate {
		fmt.Fprintf(out, "%6d  %s\n", i, name)
	}
	fmt.Fprintf(out, "%d files, %d bytes, %d workers, codec %s -> %s\n",
		catalog.Len(), catalog.TotalSize(), min(catalog.Len(), cfg.MaxWorkers), cfg.Codec, cfg.Output)
	return nil
}
