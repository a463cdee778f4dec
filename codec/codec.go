package codec

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrUnknownCodec is returned by New for names that are not registered.
var ErrUnknownCodec = errors.New("unknown codec")

// Default is the codec used when none is configured.
const Default = "zlib"

// Codec compresses a complete buffer in one call.
type Codec interface {
	// Name returns the registry name of the codec.
	Name() string
	// Compress appends the compressed form of src to dst and returns the
	// extended slice.
	Compress(dst, src []byte) ([]byte, error)
	// MaxOutputSize returns the worst-case compressed size for n input bytes.
	MaxOutputSize(n int) int
}

var registry = map[string]func() (Codec, error){
	"zlib": func() (Codec, error) { return NewZlib(), nil },
	"zstd": func() (Codec, error) { return NewZstd() },
	"lz4":  func() (Codec, error) { return NewLZ4(), nil },
}

// New returns the codec registered under name.
func New(name string) (Codec, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownCodec, name, Names())
	}
	return ctor()
}

// Names lists the registered codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Valid reports whether name is a registered codec.
func Valid(name string) bool {
	return slices.Contains(Names(), name)
}
