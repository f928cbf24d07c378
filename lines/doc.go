// Package lines reads '\n'-terminated lines out of a content view.
//
// A Reader owns one persistent Content view and consumes it from the front.
// Each produced line aliases Content's backing memory and is only valid until
// the owner of that memory is released.
//
//	r := lines.NewReader(content, lines.WithTrim(' ', '\t'))
//	for r.Next() {
//	    process(r.Number(), r.Line())
//	}
//
// The reader has two states. HasInput lasts while Content holds bytes;
// Exhausted is terminal. A trailing newline does not produce an extra empty
// line, and reading past the end yields empty lines without side effects.
package lines
