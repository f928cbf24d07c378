// Package linesel parses line-number selections such as "1,4-9,12" into a
// compressed set.
package linesel

import (
	"errors"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/rawtext/internal/conv"
	"github.com/hupe1980/rawtext/numconv"
	"github.com/hupe1980/rawtext/strslice"
)

// ErrInvalid is returned for malformed selections.
var ErrInvalid = errors.New("linesel: invalid selection")

// Set is a set of 1-based line numbers.
type Set struct {
	bm *roaring.Bitmap
}

// New returns a set holding the given line numbers.
func New(lines ...uint32) *Set {
	return &Set{bm: roaring.BitmapOf(lines...)}
}

// Parse reads a comma-separated list of line numbers and inclusive ranges.
// Blanks around items are ignored. Line numbers start at 1.
func Parse(text string) (*Set, error) {
	set := &Set{bm: roaring.New()}

	rest := strslice.FromString(text)
	if rest.TrimLeft(' ').IsEmpty() {
		return nil, fmt.Errorf("%w: empty", ErrInvalid)
	}

	for {
		item, next, more := rest.Cut(',')

		lo, hi, err := parseItem(item.TrimLeft(' ').TrimRight(' '))
		if err != nil {
			return nil, err
		}
		set.bm.AddRange(lo, hi+1)

		if !more {
			break
		}
		rest = next
	}

	return set, nil
}

func parseItem(item strslice.Slice) (uint64, uint64, error) {
	first, second, isRange := item.Cut('-')

	lo, err := parseLine(first.TrimRight(' '))
	if err != nil {
		return 0, 0, err
	}
	if !isRange {
		return lo, lo, nil
	}

	hi, err := parseLine(second.TrimLeft(' '))
	if err != nil {
		return 0, 0, err
	}
	if hi < lo {
		return 0, 0, fmt.Errorf("%w: range %q runs backwards", ErrInvalid, item.String())
	}
	return lo, hi, nil
}

func parseLine(s strslice.Slice) (uint64, error) {
	n, err := numconv.ParseUintChecked(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := conv.Uint64ToUint32(n); err != nil || n == 0 {
		return 0, fmt.Errorf("%w: line %q out of range", ErrInvalid, s.String())
	}
	return n, nil
}

// Add inserts line n.
func (s *Set) Add(n uint32) {
	s.bm.Add(n)
}

// Contains reports whether line n is selected.
func (s *Set) Contains(n int) bool {
	if n <= 0 {
		return false
	}
	// int may be narrower or wider than uint32.
	line, err := conv.Uint64ToUint32(uint64(n))
	if err != nil {
		return false
	}
	return s.bm.Contains(line)
}

// Max returns the highest selected line, or 0 for an empty set.
func (s *Set) Max() int {
	if s.bm.IsEmpty() {
		return 0
	}
	m := s.bm.Maximum()
	if uint64(m) > uint64(math.MaxInt) {
		return math.MaxInt
	}
	return int(m)
}

// Len returns the number of selected lines.
func (s *Set) Len() uint64 {
	return s.bm.GetCardinality()
}

// Empty reports whether no line is selected.
func (s *Set) Empty() bool {
	return s.bm.IsEmpty()
}

// String renders the set in the form Parse accepts.
func (s *Set) String() string {
	var out []byte
	it := s.bm.Iterator()
	first := true
	var lo, hi uint32
	flush := func() {
		if !first {
			out = append(out, ',')
		}
		first = false
		out = numconv.AppendUint(out, uint64(lo))
		if hi > lo {
			out = append(out, '-')
			out = numconv.AppendUint(out, uint64(hi))
		}
	}

	started := false
	for it.HasNext() {
		v := it.Next()
		switch {
		case !started:
			lo, hi, started = v, v, true
		case v == hi+1:
			hi = v
		default:
			flush()
			lo, hi = v, v
		}
	}
	if started {
		flush()
	}
	return string(out)
}
