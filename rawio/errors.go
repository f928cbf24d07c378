//go:build unix

package rawio

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/unix"
)

var (
	// ErrNotExist matches errors for paths that do not exist.
	ErrNotExist = fs.ErrNotExist
	// ErrShortWrite is returned when write(2) makes no progress.
	ErrShortWrite = errors.New("rawio: short write")
)

// OpError describes a failed system call.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e.Path == "" {
		return "rawio: " + e.Op + ": " + e.Err.Error()
	}
	return "rawio: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error { return e.Err }

// Errno returns the system error number behind the failure, or 0 if the
// failure did not come from the kernel.
func (e *OpError) Errno() unix.Errno {
	var errno unix.Errno
	if errors.As(e.Err, &errno) {
		return errno
	}
	return 0
}
