package lines

import (
	"iter"

	"github.com/hupe1980/rawtext/strslice"
)

// Delimiter separates lines.
const Delimiter = '\n'

// State is the reader state.
type State int

const (
	// HasInput means Content still holds bytes.
	HasInput State = iota
	// Exhausted means Content is empty. It is terminal.
	Exhausted
)

func (s State) String() string {
	switch s {
	case HasInput:
		return "has-input"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// ReadLine consumes content up to and including the next newline and returns
// the bytes in front of it. Without a newline it returns all remaining bytes.
// On empty content it returns an empty line and leaves content unchanged.
func ReadLine(content *strslice.Slice) strslice.Slice {
	var line strslice.Slice
	content.Split(Delimiter, &line)
	return line
}

// Reader drives ReadLine over one Content view.
type Reader struct {
	content strslice.Slice
	line    strslice.Slice
	number  int
	opts    options
}

// NewReader returns a Reader consuming content.
func NewReader(content strslice.Slice, optFns ...Option) *Reader {
	r := &Reader{content: content}
	for _, fn := range optFns {
		fn(&r.opts)
	}
	return r
}

// State reports whether input remains.
func (r *Reader) State() State {
	if r.content.IsEmpty() {
		return Exhausted
	}
	return HasInput
}

// Remaining returns the unread part of Content.
func (r *Reader) Remaining() strslice.Slice {
	return r.content
}

// ReadLine performs one raw transition: no trimming, no selection.
// After Exhausted it returns an empty line and does not advance Number.
func (r *Reader) ReadLine() strslice.Slice {
	if r.content.IsEmpty() {
		return strslice.Slice{}
	}
	r.number++
	return ReadLine(&r.content)
}

// Next advances to the next line that passes the selection, applies the
// configured trimming and reports whether a line is available.
func (r *Reader) Next() bool {
	sel := r.opts.selection
	for !r.content.IsEmpty() {
		if sel != nil && r.number >= sel.Max() {
			// Nothing selected lies ahead.
			r.content = r.content.Advance(r.content.Len())
			break
		}

		line := r.ReadLine()
		if sel != nil && !sel.Contains(r.number) {
			continue
		}

		for _, ch := range r.opts.trim {
			line.LTrim(ch)
		}
		if r.opts.trimSet != "" {
			line = line.TrimLeftAny(r.opts.trimSet)
		}

		r.line = line
		if r.opts.observer != nil {
			r.opts.observer.ObserveLine(r.number, line.Len())
		}
		return true
	}

	r.line = strslice.Slice{}
	return false
}

// Line returns the line produced by the last successful Next.
func (r *Reader) Line() strslice.Slice {
	return r.line
}

// Number returns the 1-based number of the last line read from Content.
func (r *Reader) Number() int {
	return r.number
}

// All returns an iterator over the remaining lines and their numbers.
func (r *Reader) All() iter.Seq2[int, strslice.Slice] {
	return func(yield func(int, strslice.Slice) bool) {
		for r.Next() {
			if !yield(r.number, r.line) {
				return
			}
		}
	}
}

// Each calls fn for every remaining line and stops at the first error.
func (r *Reader) Each(fn func(n int, line strslice.Slice) error) error {
	for r.Next() {
		if err := fn(r.number, r.line); err != nil {
			return err
		}
	}
	return nil
}
