// Package rawio talks to the operating system through raw file descriptors.
//
// Output goes straight to write(2): PutChar writes one byte, PutCString
// writes a NUL-terminated string one byte at a time, and PutSlice writes a
// strslice view in a single bulk call. Input files are opened, stat'd and
// mapped with Open, Stat and Map; composed, they give a read-only view of a
// whole file without copying it.
//
// Failures come back as *OpError values. Their Errno identifies the cause,
// and errors.Is(err, ErrNotExist) reports a missing path.
//
// The package is available on unix platforms only.
package rawio
