// Package source loads content into owned regions for line processing.
//
// A Source resolves a name to a *Region. The Region owns the bytes and the
// strslice views derived from it through Content; it must be closed only
// after every such view is done.
//
// # Built-in Implementations
//
//   - File: memory-mapped local files (zero copy)
//   - Memory: in-memory blobs, mostly for tests
//   - Decompress: wraps another Source and transparently decodes gzip, zstd and LZ4
//   - Limit: wraps another Source and charges loads against a resource.Controller
//
// Remote stores live in the s3 and minio subpackages.
//
// # Custom Implementations
//
//	type Source interface {
//	    Open(ctx context.Context, name string) (*Region, error)
//	}
//
// Implementations must return an error satisfying errors.Is(err, ErrNotFound)
// for missing names and must be safe for concurrent use.
package source
