//go:build unix

package source

import (
	"context"
	"path/filepath"

	"github.com/hupe1980/rawtext/internal/mmap"
)

// File maps local files. Names are resolved relative to the root directory;
// an empty root leaves them untouched.
type File struct {
	root string
}

// NewFile creates a File source rooted at root.
func NewFile(root string) *File {
	return &File{root: root}
}

// Open maps the named file read-only.
func (s *File) Open(ctx context.Context, name string) (*Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := name
	if s.root != "" {
		path = filepath.Join(s.root, name)
	}

	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	// Line readers walk the content front to back. The hint is advisory.
	_ = m.Advise(mmap.AccessSequential)

	return NewRegion(m.Bytes(), m.Close), nil
}
