//go:build unix

package mmap

import (
	"fmt"
	"sync/atomic"

	"github.com/hupe1980/rawtext/internal/conv"
	"github.com/hupe1980/rawtext/rawio"
	"github.com/hupe1980/rawtext/strslice"
	"golang.org/x/sys/unix"
)

// sysOps holds the system calls Open is composed of.
type sysOps struct {
	open  func(path string, flags int) (int, error)
	stat  func(fd int) (int64, error)
	mmap  func(fd int, size int) ([]byte, error)
	close func(fd int) error
}

var sys = sysOps{
	open:  rawio.Open,
	stat:  rawio.Stat,
	mmap:  rawio.Map,
	close: rawio.Close,
}

// Mapping is a read-only, private mapping of a whole file.
// It owns the mapped bytes and is responsible for unmapping them.
type Mapping struct {
	data   []byte
	closed atomic.Bool
	unmap  func([]byte) error
}

// Open maps the file at path into memory.
func Open(path string) (*Mapping, error) {
	fd, err := sys.open(path, unix.O_RDONLY)
	if err != nil {
		return nil, err
	}
	// The mapping stays valid after the descriptor is closed.
	defer func() { _ = sys.close(fd) }()

	size, err := sys.stat(fd)
	if err != nil {
		return nil, err
	}
	n, err := conv.Int64ToInt(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}
	if n == 0 {
		// mmap(2) rejects zero-length mappings.
		return &Mapping{}, nil
	}

	data, err := sys.mmap(fd, n)
	if err != nil {
		return nil, err
	}

	return &Mapping{
		data:  data,
		unmap: rawio.Unmap,
	}, nil
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil
	}
	if m.unmap != nil && m.data != nil {
		return m.unmap(m.data)
	}
	return nil
}

// Content returns a view spanning the whole file.
// The view is valid only until Close is called.
func (m *Mapping) Content() strslice.Slice {
	return strslice.FromBytes(m.Bytes())
}

// Bytes returns the mapped bytes, or nil after Close.
// The bytes are read-only; writing to them faults.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return len(m.data)
}

// Advise provides hints to the kernel about how the memory will be accessed.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if len(m.data) == 0 {
		return nil
	}

	var advice int
	switch pattern {
	case AccessSequential:
		advice = unix.MADV_SEQUENTIAL
	case AccessRandom:
		advice = unix.MADV_RANDOM
	case AccessWillNeed:
		advice = unix.MADV_WILLNEED
	case AccessDontNeed:
		advice = unix.MADV_DONTNEED
	default:
		advice = unix.MADV_NORMAL
	}

	return unix.Madvise(m.data, advice)
}
