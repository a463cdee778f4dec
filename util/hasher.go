package util

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"github.com/taigrr/colorhash"
)

// FingerprintBuckets is the number of buckets a fingerprint is spread over.
const FingerprintBuckets = 1000

// Fingerprint identifies an archive by content. Two runs over the same
// directory produce the same fingerprint regardless of worker count.
type Fingerprint struct {
	Bucket int    `json:"bucket"`
	Hash   string `json:"sha256"`
}

// NewFingerprint derives the bucket for a hex SHA-256 hash.
func NewFingerprint(hash string) Fingerprint {
	return Fingerprint{
		Bucket: colorhash.HashString(hash) % FingerprintBuckets,
		Hash:   hash,
	}
}

// String renders the fingerprint as "bucket-shorthash", e.g. "742-b94d27b9934d".
func (f Fingerprint) String() string {
	short := f.Hash
	if len(short) > 12 {
		short = short[:12]
	}
	return fmt.Sprintf("%03d-%s", f.Bucket, short)
}

// FingerprintFile hashes the file at path.
func FingerprintFile(path string) (Fingerprint, error) {
	hash, err := GetFileHash(path)
	if err != nil {
		return Fingerprint{}, err
	}
	return NewFingerprint(hash), nil
}

// Hashes a file and returns the hash as a hex string
func GetFileHash(path string) (hash string, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", ErrExpectedFile
	}
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return GetHash(file)
}

// GetHash calculates the SHA-256 hash of data from an io.Reader.
// It returns the hash as a hexadecimal string.
func GetHash(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
