// Package util provides the filesystem-facing building blocks for tzip.
//
// Key Components:
//
// Catalog:
//   - Non-recursive scan of one directory for names ending in ".txt"
//   - Byte-wise sorted names; a name's position is its job index and frame index
//
// Work distribution:
//   - WorkCursor hands out job indices with a lock-free compare-and-swap
//   - Every index is claimed exactly once and the counter never passes the total
//
// Fingerprints and metadata:
//   - SHA-256 hashing of files and readers
//   - Fingerprint buckets derived with colorhash
//   - JSON metadata sidecars describing one archive run
package util
