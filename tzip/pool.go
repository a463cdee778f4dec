package tzip

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/dendrascience/tzip/codec"
	"github.com/dendrascience/tzip/util"
	"golang.org/x/sync/errgroup"
)

// inputBuffers recycles the raw-file buffers between claims, so a worker
// holds at most one input buffer at a time.
var inputBuffers = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// Pool compresses every file of a catalog with a fixed number of workers.
type Pool struct {
	catalog *util.Catalog
	codec   codec.Codec
	size    int
	logf    Logf
}

// NewPool sizes the pool to min(catalog length, maxWorkers).
func NewPool(catalog *util.Catalog, c codec.Codec, maxWorkers int, logf Logf) (*Pool, error) {
	if maxWorkers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, maxWorkers)
	}
	return &Pool{
		catalog: catalog,
		codec:   c,
		size:    min(catalog.Len(), maxWorkers),
		logf:    logf,
	}, nil
}

// Size returns the number of workers Run starts.
func (p *Pool) Size() int {
	return p.size
}

// Run starts the workers and blocks until all of them have returned. The
// returned slice has one result per cataloged file, at the file's index.
// Per-file failures are reported in Result.Err; the returned error is only
// set when ctx is cancelled.
func (p *Pool) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, p.catalog.Len())
	if len(results) == 0 {
		return results, nil
	}

	cursor := util.NewWorkCursor(p.catalog.Len())
	out := make(chan Result, p.size)

	g, ctx := errgroup.WithContext(ctx)
	for id := range p.size {
		g.Go(func() error {
			return p.work(ctx, id, cursor, out)
		})
	}

	var runErr error
	go func() {
		runErr = g.Wait()
		close(out)
	}()

	// out is closed only after every worker returned, so ranging to the end
	// is the join barrier.
	for r := range out {
		results[r.Index] = r
	}
	if runErr != nil {
		return nil, runErr
	}
	return results, nil
}

func (p *Pool) work(ctx context.Context, id int, cursor *util.WorkCursor, out chan<- Result) error {
	done := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		index, ok := cursor.Claim()
		if !ok {
			break
		}
		r := p.compressIndex(index)
		if p.logf != nil {
			if r.Err != nil {
				p.logf("worker %d: %s failed: %v", id, r.Name, r.Err)
			} else {
				p.logf("worker %d: %s %d -> %d bytes", id, r.Name, r.OriginalSize, r.CompressedSize())
			}
		}
		select {
		case out <- r:
		case <-ctx.Done():
			return ctx.Err()
		}
		done++
	}
	if p.logf != nil {
		p.logf("worker %d: finished after %d files", id, done)
	}
	return nil
}

// compressIndex reads and compresses the file at index. It never panics on
// I/O errors; they are returned inside the Result.
func (p *Pool) compressIndex(index int) Result {
	r := Result{Index: index}
	name, err := p.catalog.Name(index)
	if err != nil {
		r.Err = &FileError{Index: index, Err: err}
		return r
	}
	r.Name = name
	path, _ := p.catalog.Path(index)

	buf := inputBuffers.Get().(*bytes.Buffer)
	buf.Reset()
	defer inputBuffers.Put(buf)

	if err := readFile(path, buf); err != nil {
		r.Err = &FileError{Index: index, Name: name, Err: err}
		return r
	}
	r.OriginalSize = int64(buf.Len())

	dst := make([]byte, 0, p.codec.MaxOutputSize(buf.Len()))
	data, err := p.codec.Compress(dst, buf.Bytes())
	if err != nil {
		r.Err = &FileError{Index: index, Name: name, Err: fmt.Errorf("compress: %w", err)}
		return r
	}
	r.Data = data
	return r
}

// readFile reads the whole file at path into buf.
func readFile(path string, buf *bytes.Buffer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return util.ErrExpectedFile
	}
	buf.Grow(int(info.Size()) + bytes.MinRead)
	if _, err := buf.ReadFrom(f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
