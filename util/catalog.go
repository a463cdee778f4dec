package util

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// TextSuffix is the exact, case-sensitive suffix a file name needs to be
// picked up by a Catalog.
const TextSuffix = ".txt"

// HasTextSuffix reports whether the last four bytes of name are ".txt".
func HasTextSuffix(name string) bool {
	return strings.HasSuffix(name, TextSuffix)
}

// Catalog is the sorted list of text files directly inside a directory.
// The position of a name in the catalog is its job index and also the
// position of its frame in the archive.
type Catalog struct {
	dir   string
	names []string
}

// NewCatalog scans dir (without recursing) and returns the matching file
// names sorted byte-wise ascending. Subdirectories, including ones whose
// name ends in ".txt", are skipped.
func NewCatalog(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open directory %s: %w", dir, ErrExpectedDirectory)
	}

	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(dirents))
	for _, d := range dirents {
		if !HasTextSuffix(d.Name()) {
			continue
		}
		isDir, err := entryIsDir(dir, d)
		if err != nil {
			return nil, err
		}
		if isDir {
			continue
		}
		names = append(names, d.Name())
	}
	// ReadDir already sorts, but the order is part of the archive format so
	// it is not left to the platform.
	slices.Sort(names)

	return &Catalog{dir: dir, names: names}, nil
}

// entryIsDir resolves symlinks so a link to a directory is skipped like the
// directory itself.
func entryIsDir(dir string, d fs.DirEntry) (bool, error) {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.IsDir(), nil
	}
	info, err := os.Stat(filepath.Join(dir, d.Name()))
	if err != nil {
		// dangling link: keep it so the worker reports the failure for this file
		return false, nil
	}
	return info.IsDir(), nil
}

// Dir returns the scanned directory.
func (c *Catalog) Dir() string {
	return c.dir
}

func (c *Catalog) Len() int {
	return len(c.names)
}

// Name returns the file name at index i.
func (c *Catalog) Name(i int) (string, error) {
	if i < 0 || i >= len(c.names) {
		return "", fmt.Errorf("catalog index %d: %w", i, ErrIndexOutOfRange)
	}
	return c.names[i], nil
}

// Path returns the full path of the file at index i.
func (c *Catalog) Path(i int) (string, error) {
	name, err := c.Name(i)
	if err != nil {
		return "", err
	}
	return filepath.Join(c.dir, name), nil
}

// Names returns a copy of the sorted names.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

func (c *Catalog) Iterate(yield func(int, string) bool) {
	for i, name := range c.names {
		if !yield(i, name) {
			return
		}
	}
}

// TotalSize sums the on-disk sizes of the cataloged files. Files that
// disappeared since the scan are ignored.
func (c *Catalog) TotalSize() int64 {
	var total int64
	for _, name := range c.names {
		info, err := os.Stat(filepath.Join(c.dir, name))
		if err != nil {
			continue
		}
		total += info.Size()
	}
	return total
}
