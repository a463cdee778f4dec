package tzip

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// FramePrefixSize is the width of the length field in front of each frame.
const FramePrefixSize = 4

var frameOrder = binary.LittleEndian

// Stats accumulates totals over the frames written by an ArchiveWriter.
type Stats struct {
	Frames          int
	OriginalBytes   int64
	CompressedBytes int64
}

// Ratio returns the space saving in percent, 0 for an empty run.
func (s Stats) Ratio() float64 {
	return Ratio(s.OriginalBytes, s.CompressedBytes)
}

// ArchiveWriter serializes results as length-prefixed frames.
type ArchiveWriter struct {
	w     *bufio.Writer
	stats Stats
}

func NewArchiveWriter(w io.Writer) *ArchiveWriter {
	return &ArchiveWriter{w: bufio.NewWriter(w)}
}

// WriteFrame appends one frame for r. The caller is responsible for
// presenting results in index order.
func (a *ArchiveWriter) WriteFrame(r Result) error {
	if r.Err != nil {
		return fmt.Errorf("write frame %d: %w", r.Index, r.Err)
	}
	if uint64(len(r.Data)) > math.MaxUint32 {
		return fmt.Errorf("frame %d (%s): %w", r.Index, r.Name, ErrFrameTooLarge)
	}
	var prefix [FramePrefixSize]byte
	frameOrder.PutUint32(prefix[:], uint32(len(r.Data)))
	if _, err := a.w.Write(prefix[:]); err != nil {
		return fmt.Errorf("write frame %d length: %w", r.Index, err)
	}
	if _, err := a.w.Write(r.Data); err != nil {
		return fmt.Errorf("write frame %d payload: %w", r.Index, err)
	}
	a.stats.Frames++
	a.stats.OriginalBytes += r.OriginalSize
	a.stats.CompressedBytes += r.CompressedSize()
	return nil
}

// WriteAll writes every result in slice order and releases each payload
// once it has been written.
func (a *ArchiveWriter) WriteAll(results []Result) error {
	for i := range results {
		if err := a.WriteFrame(results[i]); err != nil {
			return err
		}
		results[i].Data = nil
	}
	return nil
}

// Flush pushes buffered frames to the underlying writer.
func (a *ArchiveWriter) Flush() error {
	return a.w.Flush()
}

func (a *ArchiveWriter) Stats() Stats {
	return a.stats
}

// Frame describes one frame found while reading an archive.
type Frame struct {
	Index  int
	Offset int64 // offset of the length prefix
	Length uint32
}

// FrameReader walks the frames of an archive without decoding payloads.
type FrameReader struct {
	r      *bufio.Reader
	index  int
	offset int64
}

func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{r: bufio.NewReader(r)}
}

// Next returns the next frame and its payload. It returns io.EOF after the
// last complete frame and ErrTruncatedFrame if the archive ends inside one.
func (fr *FrameReader) Next() (Frame, []byte, error) {
	var prefix [FramePrefixSize]byte
	n, err := io.ReadFull(fr.r, prefix[:])
	switch {
	case err == io.EOF:
		return Frame{}, nil, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		return Frame{}, nil, fmt.Errorf("frame %d at offset %d: %d of %d prefix bytes: %w",
			fr.index, fr.offset, n, FramePrefixSize, ErrTruncatedFrame)
	case err != nil:
		return Frame{}, nil, fmt.Errorf("frame %d: %w", fr.index, err)
	}

	f := Frame{Index: fr.index, Offset: fr.offset, Length: frameOrder.Uint32(prefix[:])}
	// grow with the data; a corrupt prefix must not allocate 4 GiB up front
	payload, err := io.ReadAll(io.LimitReader(fr.r, int64(f.Length)))
	if err != nil {
		return Frame{}, nil, fmt.Errorf("frame %d: %w", f.Index, err)
	}
	if len(payload) != int(f.Length) {
		return Frame{}, nil, fmt.Errorf("frame %d at offset %d: %d of %d payload bytes: %w",
			f.Index, f.Offset, len(payload), f.Length, ErrTruncatedFrame)
	}
	fr.index++
	fr.offset += FramePrefixSize + int64(f.Length)
	return f, payload, nil
}

// ReadFrames reads every frame of an archive into memory.
func ReadFrames(r io.Reader) ([][]byte, error) {
	fr := NewFrameReader(r)
	var payloads [][]byte
	for {
		_, payload, err := fr.Next()
		if err == io.EOF {
			return payloads, nil
		}
		if err != nil {
			return payloads, err
		}
		payloads = append(payloads, payload)
	}
}
