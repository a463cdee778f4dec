// Package codec provides the one-shot compression transforms used to build
// tzip archive frames.
//
// Every codec compresses a whole buffer in a single call at its maximum
// compression effort and reports a worst-case output size for a given input
// size. Callers size their output buffers with MaxOutputSize before calling
// Compress, so a frame never has to grow mid-compression.
//
// Available codecs:
//   - zlib: deflate with a zlib wrapper at level 9 (the default)
//   - zstd: Zstandard at its best-compression level
//   - lz4: LZ4 frame format at level 9
//
// All codecs are safe for concurrent use by multiple workers.
package codec
