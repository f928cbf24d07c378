// Package resource enforces limits on content that is loaded into owned memory.
//
// Three resources are governed:
//
//   - Memory: bytes held by decoded or downloaded regions (fail-fast)
//   - Loads: number of sources being opened at the same time
//   - IO: bytes per second pulled from sources (token bucket)
//
// Mapped files are charged as well; they are backed by the page cache rather
// than the heap, but they still count against the address-space budget.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes:   256 << 20,
//	    MaxConcurrentLoads: 4,
//	    IOLimitBytesPerSec: 64 << 20,
//	})
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully; they become no-ops.
package resource
