package codec

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Zstd wraps a shared zstd encoder. EncodeAll is safe for concurrent use.
type Zstd struct {
	enc *zstd.Encoder
}

func NewZstd() (*Zstd, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedBestCompression),
		zstd.WithZeroFrames(true),
	)
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	return &Zstd{enc: enc}, nil
}

func (*Zstd) Name() string { return "zstd" }

func (z *Zstd) Compress(dst, src []byte) ([]byte, error) {
	return z.enc.EncodeAll(src, dst), nil
}

// MaxOutputSize follows ZSTD_COMPRESSBOUND plus room for the frame checksum.
func (*Zstd) MaxOutputSize(n int) int {
	const blockSize = 128 << 10
	bound := n + n>>8
	if n < blockSize {
		bound += (blockSize - n) >> 11
	}
	return bound + 4
}
