package strslice

import (
	"bytes"
	"strings"
	"unsafe"
)

// Slice is a read-only view of count bytes starting at base.
//
// The zero value is an empty slice.
type Slice struct {
	base  unsafe.Pointer
	count int
}

// FromBytes returns a view of b. The slice aliases b's backing array.
func FromBytes(b []byte) Slice {
	if len(b) == 0 {
		return Slice{}
	}
	return Slice{base: unsafe.Pointer(unsafe.SliceData(b)), count: len(b)}
}

// FromString returns a view of the bytes of str without copying.
func FromString(str string) Slice {
	if len(str) == 0 {
		return Slice{}
	}
	return Slice{base: unsafe.Pointer(unsafe.StringData(str)), count: len(str)}
}

// FromPointer returns a view of n bytes at p. The caller guarantees that
// p..p+n stays valid for the lifetime of the slice and everything derived from it.
func FromPointer(p unsafe.Pointer, n int) Slice {
	if checked && n < 0 {
		violate("FromPointer", n, 0)
	}
	return Slice{base: p, count: n}
}

// Base returns the address of the first byte. It is unspecified for an empty slice.
func (s Slice) Base() unsafe.Pointer { return s.base }

// Len returns the number of bytes in the view.
func (s Slice) Len() int { return s.count }

// IsEmpty reports whether the view has no bytes left.
func (s Slice) IsEmpty() bool { return s.count == 0 }

// Bytes returns a []byte aliasing the viewed memory. It must not be modified
// when the owner is read-only (mapped files, strings).
func (s Slice) Bytes() []byte {
	if s.count <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(s.base), s.count)
}

// String returns a copy of the viewed bytes.
func (s Slice) String() string {
	return string(s.Bytes())
}

// UnsafeString returns a string sharing the viewed memory. The string is only
// valid while the owner is alive and unchanged.
func (s Slice) UnsafeString() string {
	if s.count <= 0 {
		return ""
	}
	return unsafe.String((*byte)(s.base), s.count)
}

// At returns the byte at index i. The index is not checked unless the
// package is built with rawtextdebug.
func (s Slice) At(i int) byte {
	if checked && uint(i) >= uint(s.count) {
		violate("At", i, s.count)
	}
	return *(*byte)(unsafe.Add(s.base, i))
}

// TryAt is the checked form of At.
func (s Slice) TryAt(i int) (byte, bool) {
	if uint(i) >= uint(s.count) {
		return 0, false
	}
	return *(*byte)(unsafe.Add(s.base, i)), true
}

// Advance returns the view with its first n bytes removed.
func (s Slice) Advance(n int) Slice {
	if checked && uint(n) > uint(s.count) {
		violate("Advance", n, s.count)
	}
	if n == s.count {
		// Keep the base inside the owner instead of pointing one past its end.
		return Slice{base: s.base}
	}
	return Slice{base: unsafe.Add(s.base, n), count: s.count - n}
}

// ConsumeFront splits the view after n bytes.
func (s Slice) ConsumeFront(n int) (head, rest Slice) {
	if checked && uint(n) > uint(s.count) {
		violate("ConsumeFront", n, s.count)
	}
	return Slice{base: s.base, count: n}, s.Advance(n)
}

// IndexByte returns the index of the first c in the view, or -1.
func (s Slice) IndexByte(c byte) int {
	return bytes.IndexByte(s.Bytes(), c)
}

// Cut slices the view around the first delim. head excludes the delimiter
// and rest starts after it. Without a delimiter head is the whole view, rest
// is empty and found is false.
func (s Slice) Cut(delim byte) (head, rest Slice, found bool) {
	i := s.IndexByte(delim)
	if i < 0 {
		return s, s.Advance(s.count), false
	}
	return Slice{base: s.base, count: i}, s.Advance(i + 1), true
}

// TrimLeft returns the view without its leading run of ch.
func (s Slice) TrimLeft(ch byte) Slice {
	for s.count > 0 && s.At(0) == ch {
		s = s.Advance(1)
	}
	return s
}

// TrimLeftAny returns the view without any leading bytes contained in set.
func (s Slice) TrimLeftAny(set string) Slice {
	for s.count > 0 && strings.IndexByte(set, s.At(0)) >= 0 {
		s = s.Advance(1)
	}
	return s
}

// TrimRight returns the view without its trailing run of ch.
func (s Slice) TrimRight(ch byte) Slice {
	for s.count > 0 && s.At(s.count-1) == ch {
		s.ShrinkLast()
	}
	return s
}

// HasPrefix reports whether the view begins with p.
func (s Slice) HasPrefix(p Slice) bool {
	if p.count > s.count {
		return false
	}
	head, _ := s.ConsumeFront(p.count)
	return head.Equal(p)
}

// Equal reports whether both views hold the same bytes. Two empty slices are
// equal regardless of their base.
func (s Slice) Equal(o Slice) bool {
	if s.count != o.count {
		return false
	}
	for i := 0; i < s.count; i++ {
		if s.At(i) != o.At(i) {
			return false
		}
	}
	return true
}

// EqualString reports whether the view holds exactly the bytes of str.
func (s Slice) EqualString(str string) bool {
	return s.Equal(FromString(str))
}

// Equal reports whether a and b hold the same bytes.
func Equal(a, b Slice) bool {
	return a.Equal(b)
}
