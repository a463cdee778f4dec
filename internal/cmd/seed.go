package cmd

import (
	"crypto/rand"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the tzip CLI.
// It generates a directory of text files for trying out and benchmarking compress.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		maxLines   int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a directory of test .txt files",
		Long: `Generate text files for testing tzip compression.

Each file holds a random number of UUID lines. Most lines are drawn from a
small shared pool so the files compress well; roughly one file in ten is
filled with fresh random bytes instead and barely compresses at all. A few
entries compress must ignore are added too: a .json file, an upper-case
.TXT file and a subdirectory whose name ends in .txt.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runSeed(cmd.OutOrStdout(), outputPath, fileCount, maxLines, verbose); err != nil {
				log.Fatalf("Seeding failed: %v", err)
			}
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 1000, "Number of .txt files to generate")
	cmd.Flags().IntVarP(&maxLines, "lines", "l", 200, "Maximum number of lines per file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(out io.Writer, outputPath string, fileCount, maxLines int, verbose bool) error {
	if fileCount < 0 || maxLines < 1 {
		return fmt.Errorf("count must be >= 0 and lines >= 1, got %d and %d", fileCount, maxLines)
	}
	if verbose {
		fmt.Fprintf(out, "Generating %d test files in %s\n", fileCount, outputPath)
	}

	if err := os.MkdirAll(outputPath, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Generate pool of 50 UUIDs
	uuidPool := make([]string, 50)
	for i := range uuidPool {
		uuidPool[i] = uuid.New().String()
	}

	var totalBytes int64
	for i := range fileCount {
		content, err := seedContent(uuidPool, maxLines)
		if err != nil {
			return err
		}
		filePath := filepath.Join(outputPath, fmt.Sprintf("%06d-%s.txt", i, uuid.New().String()[:8]))
		if err := os.WriteFile(filePath, content, 0644); err != nil {
			return fmt.Errorf("write %s: %w", filePath, err)
		}
		totalBytes += int64(len(content))

		if verbose && (i+1)%1000 == 0 {
			fmt.Fprintf(out, "Created %d/%d files...\n", i+1, fileCount)
		}
	}

	if err := seedDistractors(outputPath); err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(out, "Successfully created %d files (%d bytes)\n", fileCount, totalBytes)
	}
	return nil
}

// seedContent returns between 1 and maxLines lines of pooled UUIDs, or an
// equally sized block of random bytes for about one file in ten.
func seedContent(uuidPool []string, maxLines int) ([]byte, error) {
	lines, err := randInt(maxLines)
	if err != nil {
		return nil, err
	}
	lines++

	kind, err := randInt(10)
	if err != nil {
		return nil, err
	}
	if kind == 0 {
		buf := make([]byte, lines*(len(uuidPool[0])+1))
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		return buf, nil
	}

	var sb strings.Builder
	for range lines {
		idx, err := randInt(len(uuidPool))
		if err != nil {
			return nil, err
		}
		sb.WriteString(uuidPool[idx])
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}

// seedDistractors adds entries compress has to skip.
func seedDistractors(outputPath string) error {
	files := map[string]string{
		"ignored.json":  `{"ignored": true}` + "\n",
		"IGNORED.TXT":   uuid.New().String() + "\n",
		"notes.txt.bak": uuid.New().String() + "\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(outputPath, name), []byte(content), 0644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	nested := filepath.Join(outputPath, "nested.txt")
	if err := os.MkdirAll(nested, 0755); err != nil {
		return fmt.Errorf("create %s: %w", nested, err)
	}
	return os.WriteFile(filepath.Join(nested, "inner.txt"), []byte(uuid.New().String()+"\n"), 0644)
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
