package codec

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

func decode(t *testing.T, name string, data []byte) []byte {
	t.Helper()
	var r io.Reader
	switch name {
	case "zlib":
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("zlib.NewReader() error = %v", err)
		}
		defer zr.Close()
		r = zr
	case "zstd":
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("zstd.NewReader() error = %v", err)
		}
		defer zr.Close()
		r = zr
	case "lz4":
		r = lz4.NewReader(bytes.NewReader(data))
	default:
		t.Fatalf("no decoder for %q", name)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("decode %s: %v", name, err)
	}
	return out
}

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("rand.Read() error = %v", err)
	}
	return b
}

func TestCodecs_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"empty":      {},
		"single":     []byte("x"),
		"repetitive": bytes.Repeat([]byte("A"), 1000),
		"text":       bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog\n"), 300),
		"random":     randomBytes(t, 500),
		"large":      randomBytes(t, 256<<10),
	}

	for _, name := range Names() {
		c, err := New(name)
		if err != nil {
			t.Fatalf("New(%q) error = %v", name, err)
		}
		for label, src := range inputs {
			t.Run(name+"/"+label, func(t *testing.T) {
				dst := make([]byte, 0, c.MaxOutputSize(len(src)))
				out, err := c.Compress(dst, src)
				if err != nil {
					t.Fatalf("Compress() error = %v", err)
				}
				if len(out) > c.MaxOutputSize(len(src)) {
					t.Errorf("Compress() produced %d bytes, bound is %d", len(out), c.MaxOutputSize(len(src)))
				}
				got := decode(t, name, out)
				if !bytes.Equal(got, src) {
					t.Errorf("round trip mismatch: got %d bytes, want %d", len(got), len(src))
				}
			})
		}
	}
}

func TestCodecs_EmptyInputHasFormatOverhead(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			c, err := New(name)
			if err != nil {
				t.Fatalf("New(%q) error = %v", name, err)
			}
			out, err := c.Compress(nil, nil)
			if err != nil {
				t.Fatalf("Compress(empty) error = %v", err)
			}
			if len(out) == 0 {
				t.Errorf("Compress(empty) = 0 bytes, want a complete frame")
			}
		})
	}
}

func TestCodecs_Deterministic(t *testing.T) {
	src := bytes.Repeat([]byte("determinism "), 5000)
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			c, err := New(name)
			if err != nil {
				t.Fatalf("New(%q) error = %v", name, err)
			}
			first, err := c.Compress(nil, src)
			if err != nil {
				t.Fatalf("Compress() error = %v", err)
			}
			second, err := c.Compress(nil, src)
			if err != nil {
				t.Fatalf("Compress() error = %v", err)
			}
			if !bytes.Equal(first, second) {
				t.Error("two compressions of the same input differ")
			}
		})
	}
}

func TestZlib_CompressesRepetitiveInput(t *testing.T) {
	out, err := NewZlib().Compress(nil, bytes.Repeat([]byte("A"), 1000))
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if len(out) >= 100 {
		t.Errorf("Compress(1000 x 'A') = %d bytes, want far fewer than 1000", len(out))
	}
}

func TestMaxOutputSize(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"zero", 0},
		{"small", 17},
		{"block", 64 << 10},
		{"multi-block", 9 << 20},
	}
	for _, name := range Names() {
		c, _ := New(name)
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				if got := c.MaxOutputSize(tt.n); got <= tt.n {
					t.Errorf("MaxOutputSize(%d) = %d, want > input size", tt.n, got)
				}
			})
		}
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		wantErr error
	}{
		{name: "zlib"},
		{name: "zstd"},
		{name: "lz4"},
		{name: "brotli", wantErr: ErrUnknownCodec},
		{name: "", wantErr: ErrUnknownCodec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.name)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("New(%q) error = %v, want %v", tt.name, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.name, err)
			}
			if c.Name() != tt.name {
				t.Errorf("New(%q).Name() = %q", tt.name, c.Name())
			}
			if !Valid(tt.name) {
				t.Errorf("Valid(%q) = false", tt.name)
			}
		})
	}
}
