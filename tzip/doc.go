// Package tzip builds deterministic archives of the text files in a
// directory.
//
// A run has three phases:
//   - the catalog lists the directory's ".txt" files in byte-wise order
//   - a fixed-size pool of workers pulls indices from a shared cursor and
//     compresses one whole file per claim
//   - after every worker has returned, the archive writer emits one
//     length-prefixed frame per file in catalog order
//
// The archive layout is a plain concatenation of frames, each a 4-byte
// little-endian payload length followed by the payload. There is no header,
// footer, or per-frame metadata. Because frames are placed by claim index
// and written only after the join barrier, the archive bytes do not depend
// on worker count or scheduling.
//
// The main entry point is Compress.
package tzip
