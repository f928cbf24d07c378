//go:build unix

package rawio

import (
	"unsafe"

	"github.com/hupe1980/rawtext/numconv"
	"github.com/hupe1980/rawtext/strslice"
	"golang.org/x/sys/unix"
)

// Writer writes to a file descriptor without buffering.
//
// A Writer holds no scratch state, so it may be shared between goroutines;
// the kernel decides how concurrent writes interleave.
type Writer struct {
	fd int
}

var (
	// Stdout writes to file descriptor 1.
	Stdout = NewWriter(1)
	// Stderr writes to file descriptor 2.
	Stderr = NewWriter(2)
)

var _ numconv.Sink = (*Writer)(nil)

// NewWriter returns a Writer for fd. The Writer does not own fd.
func NewWriter(fd int) *Writer {
	return &Writer{fd: fd}
}

// Fd returns the underlying file descriptor.
func (w *Writer) Fd() int { return w.fd }

// Write writes all of p, issuing as many write(2) calls as it takes.
func (w *Writer) Write(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, err := unix.Write(w.fd, p[written:])
		if err != nil {
			return written, &OpError{Op: "write", Path: fdName(w.fd), Err: err}
		}
		if n == 0 {
			return written, ErrShortWrite
		}
		written += n
	}
	return written, nil
}

// WriteByte writes c with a single write(2) call through a local one-byte buffer.
func (w *Writer) WriteByte(c byte) error {
	var buf [1]byte
	buf[0] = c
	n, err := unix.Write(w.fd, buf[:])
	if err != nil {
		return &OpError{Op: "write", Path: fdName(w.fd), Err: err}
	}
	if n != 1 {
		return ErrShortWrite
	}
	return nil
}

// PutCString writes the bytes at p up to, not including, the first NUL.
func (w *Writer) PutCString(p *byte) error {
	for ptr := unsafe.Pointer(p); *(*byte)(ptr) != 0; ptr = unsafe.Add(ptr, 1) {
		if err := w.WriteByte(*(*byte)(ptr)); err != nil {
			return err
		}
	}
	return nil
}

// PutSlice writes every byte of s in one bulk operation.
func (w *Writer) PutSlice(s strslice.Slice) error {
	_, err := w.Write(s.Bytes())
	return err
}

// Dump writes n in decimal followed by a newline.
func (w *Writer) Dump(n int64) error {
	if err := numconv.WriteInt(w, n); err != nil {
		return err
	}
	return w.WriteByte('\n')
}

// PutChar writes c to standard output.
func PutChar(c byte) error { return Stdout.WriteByte(c) }

// PutCString writes a NUL-terminated string to standard output.
func PutCString(p *byte) error { return Stdout.PutCString(p) }

// PutSlice writes s to standard output.
func PutSlice(s strslice.Slice) error { return Stdout.PutSlice(s) }

// Dump writes n and a newline to standard output.
func Dump(n int64) error { return Stdout.Dump(n) }
