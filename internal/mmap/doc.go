// Package mmap maps whole files read-only for zero-copy line processing.
//
// # Usage
//
//	m, err := mmap.Open("input.txt")
//	if err != nil { ... }
//	defer m.Close()
//
//	content := m.Content() // strslice view spanning the file
//	m.Advise(mmap.AccessSequential)
//
// Open composes rawio.Open, rawio.Stat and rawio.Map. A path that cannot be
// opened fails before any stat or map call is made. The descriptor is closed
// once the mapping exists; the mapping stays valid until Close.
//
// # Thread Safety
//
// Close is idempotent and guarded by an atomic flag. Callers must not use
// views obtained from Content or Bytes after Close returns.
package mmap
