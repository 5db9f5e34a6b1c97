// Package source provides the inputs the counting engine reads from.
//
// A Store opens named inputs as Blobs: read-only byte buffers that are fully
// available before counting starts. Implementations must be safe for
// concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local files, memory-mapped with sequential read-ahead hints
//   - MemoryStore: in-memory inputs for tests and embedding
//   - s3.Store: Amazon S3 via the transfer manager's parallel downloader
//   - minio.Store: MinIO and other S3-compatible storage
//
// Compressed inputs (.zst, .gz, .lz4) are expanded into memory by Decompress;
// Open combines both steps.
package source
