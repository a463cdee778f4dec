package codec

import (
	"bytes"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

const (
	lz4BlockSize     = 4 << 20
	lz4FrameOverhead = 19 + 4 + 4 // max header, end mark, content checksum
	lz4BlockOverhead = 4 + 4 + 16 // block size, block checksum, per-block bound slack
)

// LZ4 writes a complete LZ4 frame per call.
type LZ4 struct {
	level lz4.CompressionLevel
}

func NewLZ4() *LZ4 {
	return &LZ4{level: lz4.Level9}
}

func (*LZ4) Name() string { return "lz4" }

func (c *LZ4) Compress(dst, src []byte) ([]byte, error) {
	buf := bytes.NewBuffer(dst)
	w := lz4.NewWriter(buf)
	if err := w.Apply(lz4.CompressionLevelOption(c.level), lz4.BlockSizeOption(lz4.Block4Mb)); err != nil {
		return nil, fmt.Errorf("lz4 options: %w", err)
	}
	if _, err := w.Write(src); err != nil {
		w.Close()
		return nil, fmt.Errorf("lz4 write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lz4 close: %w", err)
	}
	return buf.Bytes(), nil
}

func (*LZ4) MaxOutputSize(n int) int {
	blocks := n/lz4BlockSize + 1
	return lz4.CompressBlockBound(n) + blocks*lz4BlockOverhead + lz4FrameOverhead
}
