package source

import (
	"context"
	"errors"
	"io/fs"
	"sync/atomic"

	"github.com/hupe1980/rawtext/strslice"
)

// ErrNotFound is returned when a name does not exist.
//
// The default maps to `fs.ErrNotExist`, so mapped-file and remote sources
// report missing content the same way.
var ErrNotFound = fs.ErrNotExist

// ErrTooLarge is returned when decoded content would exceed the configured size cap.
var ErrTooLarge = errors.New("source: decoded content too large")

// Source resolves names to loaded content.
type Source interface {
	// Open loads the named content.
	Open(ctx context.Context, name string) (*Region, error)
}

// Region owns a range of bytes and releases it on Close.
type Region struct {
	data    []byte
	release func() error
	closed  atomic.Bool
}

// NewRegion returns a Region over data. release, if not nil, is called once
// on Close.
func NewRegion(data []byte, release func() error) *Region {
	return &Region{data: data, release: release}
}

// Content returns a view spanning the region.
// The view is valid only until Close is called.
func (r *Region) Content() strslice.Slice {
	return strslice.FromBytes(r.Bytes())
}

// Bytes returns the owned bytes, or nil after Close.
func (r *Region) Bytes() []byte {
	if r.closed.Load() {
		return nil
	}
	return r.data
}

// Size returns the size of the region in bytes.
func (r *Region) Size() int {
	return len(r.data)
}

// Close releases the region. It is idempotent.
func (r *Region) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	if r.release != nil {
		return r.release()
	}
	return nil
}
