package tzip

// Result is the outcome of compressing one cataloged file. A worker builds
// it, sends it to the collector, and never touches it again.
type Result struct {
	Index        int
	Name         string
	Data         []byte // compressed payload; nil when Err is set
	OriginalSize int64
	Err          error
}

// CompressedSize is the payload length written to the frame prefix.
func (r Result) CompressedSize() int64 {
	return int64(len(r.Data))
}

func (r Result) Failed() bool {
	return r.Err != nil
}

// Ratio returns 100 * (original - compressed) / original, or 0 when there
// were no original bytes.
func Ratio(original, compressed int64) float64 {
	if original == 0 {
		return 0
	}
	return 100 * float64(original-compressed) / float64(original)
}
