// Package blobstore provides storage abstraction for peak lists and
// alignment results.
//
// Store is the interface for reading and writing named blobs. Blobs are
// written and read whole. Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with atomic writes
//   - MemoryStore: in-memory store for testing
//   - CachingStore: read-through cache in front of another Store
//   - s3.Store: Amazon S3 with multipart uploads
//   - minio.Store: MinIO and other S3-compatible endpoints
//
// # Custom Implementations
//
// Implement the Store interface to support custom storage backends:
//
//	type Store interface {
//	    Put(ctx, name, data) error         // Atomic write
//	    Get(ctx, name) ([]byte, error)     // Whole read
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	    Exists(ctx, name) (bool, error)
//	}
//
// Missing blobs must surface as an error satisfying
// `errors.Is(err, ErrNotFound)`.
package blobstore
