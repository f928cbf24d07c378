package strslice

// ShrinkLast drops the last byte from the view. The view must not be empty.
func (s *Slice) ShrinkLast() {
	if checked && s.count <= 0 {
		violate("ShrinkLast", -1, s.count)
	}
	s.count--
}

// ShrinkFront drops the first byte from the view. The view must not be empty.
func (s *Slice) ShrinkFront() {
	if checked && s.count <= 0 {
		violate("ShrinkFront", 0, s.count)
	}
	*s = s.Advance(1)
}

// TryShrinkLast is the checked form of ShrinkLast. It reports whether a byte was dropped.
func (s *Slice) TryShrinkLast() bool {
	if s.count <= 0 {
		return false
	}
	s.count--
	return true
}

// TryShrinkFront is the checked form of ShrinkFront. It reports whether a byte was dropped.
func (s *Slice) TryShrinkFront() bool {
	if s.count <= 0 {
		return false
	}
	*s = s.Advance(1)
	return true
}

// LTrim drops leading bytes equal to ch until the view is empty or starts
// with a different byte.
func (s *Slice) LTrim(ch byte) {
	*s = s.TrimLeft(ch)
}

// Split moves the bytes in front of the first delim into out and drops them,
// together with the delimiter, from s. If no delimiter is found out receives
// everything and s becomes empty. An empty s yields an empty out.
func (s *Slice) Split(delim byte, out *Slice) {
	*out, *s, _ = s.Cut(delim)
}
