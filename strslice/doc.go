// Package strslice provides a zero-copy string slice: a (base, count) view over
// memory the slice does not own.
//
// # Ownership
//
// A Slice never owns its bytes. The region it points into (a memory-mapped
// file, a scratch buffer, a downloaded object) must outlive every Slice
// derived from it. Slices are plain values; copying one copies the view, not
// the bytes.
//
// # Two APIs
//
// The value-returning operations (Advance, ConsumeFront, Cut, TrimLeft) return
// new views and leave the receiver untouched:
//
//	head, rest, found := s.Cut('\n')
//
// The mutating operations (ShrinkFront, ShrinkLast, LTrim, Split) update the
// caller's view in place and are thin wrappers over the value-returning ones:
//
//	var line strslice.Slice
//	content.Split('\n', &line)
//
// # Contract checks
//
// Preconditions (index < Len, shrinking a non-empty slice) are not checked in
// default builds. Building with the rawtextdebug tag turns every violation
// into a panic carrying a *ContractError. The Try* methods are always checked.
package strslice
