//go:build unix

package rawio

import (
	"github.com/hupe1980/rawtext/numconv"
	"golang.org/x/sys/unix"
)

// Open opens path with flags and returns the file descriptor.
func Open(path string, flags int) (int, error) {
	fd, err := unix.Open(path, flags|unix.O_CLOEXEC, 0)
	if err != nil {
		return -1, &OpError{Op: "open", Path: path, Err: err}
	}
	return fd, nil
}

// Stat returns the size in bytes of the file behind fd.
func Stat(fd int) (int64, error) {
	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return -1, &OpError{Op: "fstat", Path: fdName(fd), Err: err}
	}
	return st.Size, nil
}

// StatPath returns the size in bytes of the file at path.
func StatPath(path string) (int64, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return -1, &OpError{Op: "stat", Path: path, Err: err}
	}
	return st.Size, nil
}

// Map maps size bytes of fd read-only and private.
func Map(fd int, size int) ([]byte, error) {
	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, &OpError{Op: "mmap", Path: fdName(fd), Err: err}
	}
	return data, nil
}

// Unmap releases a mapping returned by Map.
func Unmap(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := unix.Munmap(data); err != nil {
		return &OpError{Op: "munmap", Err: err}
	}
	return nil
}

// Close closes fd.
func Close(fd int) error {
	if err := unix.Close(fd); err != nil {
		return &OpError{Op: "close", Path: fdName(fd), Err: err}
	}
	return nil
}

func fdName(fd int) string {
	return string(numconv.AppendInt([]byte("fd "), int64(fd)))
}
