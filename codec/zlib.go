package codec

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zlib"
)

// Zlib is a deflate codec with the zlib wrapper, running at BestCompression.
type Zlib struct {
	level int
}

func NewZlib() *Zlib {
	return &Zlib{level: zlib.BestCompression}
}

func (*Zlib) Name() string { return "zlib" }

func (z *Zlib) Compress(dst, src []byte) ([]byte, error) {
	buf := bytes.NewBuffer(dst)
	w, err := zlib.NewWriterLevel(buf, z.level)
	if err != nil {
		return nil, fmt.Errorf("zlib writer: %w", err)
	}
	if _, err := w.Write(src); err != nil {
		w.Close()
		return nil, fmt.Errorf("zlib write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib close: %w", err)
	}
	return buf.Bytes(), nil
}

// MaxOutputSize matches zlib's compressBound.
func (*Zlib) MaxOutputSize(n int) int {
	return n + n>>12 + n>>14 + n>>25 + 13
}
