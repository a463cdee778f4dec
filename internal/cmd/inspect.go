package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dendrascience/tzip/tzip"
	"github.com/dendrascience/tzip/util"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates and returns the inspect subcommand for the tzip CLI.
// It walks the frames of an archive and checks them for truncation.
func NewInspectCmd() *cobra.Command {
	var (
		metadataPath string
		quiet        bool
	)

	cmd := &cobra.Command{
		Use:   "inspect ARCHIVE",
		Short: "List the frames of an archive and check it for truncation",
		Long: `Walk the frames of a tzip archive without decompressing them.

Prints the index, offset and length of every frame followed by totals. An
archive that ends in the middle of a frame is reported as corrupt. When a
metadata file written by "compress --metadata" is given, the frame count,
sizes and fingerprint are checked against it as well.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			problems, err := runInspect(cmd.OutOrStdout(), args[0], metadataPath, quiet)
			if err != nil {
				log.Fatalf("Inspection failed: %v", err)
			}
			if len(problems) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Archive %s has %d problems:\n", args[0], len(problems))
				for _, p := range problems {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", p)
				}
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVarP(&metadataPath, "metadata", "m", "", "Metadata file to check the archive against")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print totals")

	return cmd
}

// runInspect returns the consistency problems found in the archive. The
// error is reserved for failures to open the inputs.
func runInspect(out io.Writer, archivePath, metadataPath string, quiet bool) ([]string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		problems []string
		frames   int
		payload  int64
	)
	fr := tzip.NewFrameReader(f)
	for {
		frame, _, err := fr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			problems = append(problems, err.Error())
			break
		}
		frames++
		payload += int64(frame.Length)
		if !quiet {
			fmt.Fprintf(out, "%6d  offset %-10d  %d bytes\n", frame.Index, frame.Offset, frame.Length)
		}
	}
	fmt.Fprintf(out, "Frames: %d\n", frames)
	fmt.Fprintf(out, "Compressed bytes: %d\n", payload)

	if metadataPath == "" {
		return problems, nil
	}
	m, err := util.ReadMetadata(metadataPath)
	if err != nil {
		return problems, fmt.Errorf("read metadata: %w", err)
	}
	if m.FrameCount != frames {
		problems = append(problems, fmt.Sprintf("Metadata frame count mismatch: expected %d, got %d", m.FrameCount, frames))
	}
	if m.CompressedSize != payload {
		problems = append(problems, fmt.Sprintf("Metadata compressed size mismatch: expected %d, got %d", m.CompressedSize, payload))
	}
	fp, err := util.FingerprintFile(archivePath)
	if err != nil {
		return problems, fmt.Errorf("fingerprint archive: %w", err)
	}
	if fp != m.Fingerprint {
		problems = append(problems, fmt.Sprintf("Fingerprint mismatch: expected %s, got %s", m.Fingerprint, fp))
	}
	fmt.Fprintf(out, "Original bytes: %d\n", m.UncompressedSize)
	fmt.Fprintln(out, tzip.FormatRatio(m.Ratio))
	return problems, nil
}
