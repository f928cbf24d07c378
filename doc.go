// Package rawtext is a small text-processing library built around zero-copy
// string slices over raw memory.
//
// Content is loaded once (memory-mapped for local files), exposed as a
// strslice.Slice view and consumed line by line by a lines.Reader. Nothing
// is copied on the way: every line is a view into the loaded content.
//
// # Quick Start
//
//	doc, err := rawtext.Open(ctx, "input.txt", rawtext.WithTrimSet(" \t"))
//	if err != nil { ... }
//	defer doc.Close()
//
//	r := doc.Lines()
//	for r.Next() {
//	    line := r.Line()
//	    if numconv.IsNumber(line) {
//	        total += numconv.ParseUint(line)
//	    }
//	}
//
// # Sources
//
// Local files are mapped by default. WithSource plugs in other stores
// (source.Memory, source/s3, source/minio); WithDecompression decodes gzip,
// zstd and LZ4 content; WithResourceLimits bounds memory, concurrency and
// throughput across all documents of a Loader.
//
// # Packages
//
//   - strslice: the (base, count) view and its shrink, trim and split operations
//   - numconv: decimal formatting and parsing over views
//   - rawio: write(2)-level output and open/stat/mmap input
//   - lines: the line reader state machine
//   - linesel: line-number selections
//
// # Error Handling
//
// Load failures are returned as *OpenError; errors.Is(err, ErrNotFound)
// reports missing content. Slice precondition violations are unchecked
// unless built with the rawtextdebug tag.
package rawtext
