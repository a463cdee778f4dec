package tzip

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dendrascience/tzip/codec"
	"github.com/dendrascience/tzip/util"
)

// Summary reports the outcome of a Compress run.
type Summary struct {
	SourceDir string
	Output    string
	Codec     string
	Workers   int
	Files     int      // cataloged files
	Frames    []string // names written to the archive, in frame order
	Failed    []*FileError
	Stats     Stats
}

// Ratio returns the overall space saving in percent.
func (s Summary) Ratio() float64 {
	return s.Stats.Ratio()
}

// RatioLine is the one-line console report for a run.
func (s Summary) RatioLine() string {
	return FormatRatio(s.Ratio())
}

// FormatRatio renders a ratio with two decimal digits.
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("Compression rate: %.2f%%", ratio)
}

// Metadata converts the summary into the sidecar metadata record.
func (s Summary) Metadata(fp util.Fingerprint) util.Metadata {
	skipped := make([]string, 0, len(s.Failed))
	for _, fe := range s.Failed {
		skipped = append(skipped, fe.Name)
	}
	return util.Metadata{
		Archive:          s.Output,
		Codec:            s.Codec,
		CompressedSize:   s.Stats.CompressedBytes,
		FileCount:        s.Files,
		Fingerprint:      fp,
		FrameCount:       s.Stats.Frames,
		Frames:           s.Frames,
		Ratio:            s.Ratio(),
		Skipped:          skipped,
		SourceDir:        s.SourceDir,
		TzipVersion:      util.GetVersion(),
		UncompressedSize: s.Stats.OriginalBytes,
		Workers:          s.Workers,
	}
}

// Compress archives the ".txt" files directly inside dir into cfg.Output.
//
// If the directory cannot be scanned nothing is written. Under PolicyAbort a
// single failed file also means nothing is written and the returned error
// wraps ErrFilesFailed together with every FileError. Under PolicySkip the
// failed files are left out and listed in Summary.Failed.
//
// The archive is written to a temporary file next to cfg.Output and renamed
// over it once complete, so an existing archive is replaced atomically and a
// failed run never leaves a partial one behind.
func Compress(ctx context.Context, dir string, cfg Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	c, err := codec.New(cfg.Codec)
	if err != nil {
		return Summary{}, err
	}
	catalog, err := util.NewCatalog(dir)
	if err != nil {
		return Summary{}, err
	}

	pool, err := NewPool(catalog, c, cfg.MaxWorkers, cfg.Logf)
	if err != nil {
		return Summary{}, err
	}
	cfg.logf("compressing %d files from %s with %d workers (%s)", catalog.Len(), dir, pool.Size(), c.Name())

	results, err := pool.Run(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("compress %s: %w", dir, err)
	}

	sum := Summary{
		SourceDir: dir,
		Output:    cfg.Output,
		Codec:     c.Name(),
		Workers:   pool.Size(),
		Files:     catalog.Len(),
	}

	kept, failed := partition(results)
	sum.Failed = failed
	if len(failed) > 0 {
		switch cfg.OnError {
		case PolicySkip:
			for _, fe := range failed {
				cfg.logf("skipping %s: %v", fe.Name, fe.Err)
			}
		default:
			errs := []error{fmt.Errorf("%d of %d %w", len(failed), catalog.Len(), ErrFilesFailed)}
			for _, fe := range failed {
				errs = append(errs, fe)
			}
			return sum, errors.Join(errs...)
		}
	}

	for _, r := range kept {
		sum.Frames = append(sum.Frames, r.Name)
	}
	stats, err := writeArchive(cfg.Output, kept)
	if err != nil {
		return sum, err
	}
	sum.Stats = stats
	return sum, nil
}

// partition splits results into successes and failures, keeping index order.
func partition(results []Result) ([]Result, []*FileError) {
	kept := make([]Result, 0, len(results))
	var failed []*FileError
	for _, r := range results {
		if r.Err == nil {
			kept = append(kept, r)
			continue
		}
		var fe *FileError
		if !errors.As(r.Err, &fe) {
			fe = &FileError{Index: r.Index, Name: r.Name, Err: r.Err}
		}
		failed = append(failed, fe)
	}
	return kept, failed
}

// writeArchive writes results to a temporary file and renames it to path.
func writeArchive(path string, results []Result) (stats Stats, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return stats, fmt.Errorf("create archive: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	aw := NewArchiveWriter(tmp)
	if err = aw.WriteAll(results); err != nil {
		return stats, err
	}
	if err = aw.Flush(); err != nil {
		return stats, fmt.Errorf("flush archive: %w", err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return stats, fmt.Errorf("chmod archive: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return stats, fmt.Errorf("close archive: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return stats, fmt.Errorf("rename archive: %w", err)
	}
	return aw.Stats(), nil
}
