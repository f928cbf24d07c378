package lines

import "github.com/hupe1980/rawtext/linesel"

// Observer is notified about every line Next produces.
type Observer interface {
	ObserveLine(number, size int)
}

type options struct {
	trim      []byte
	trimSet   string
	selection *linesel.Set
	observer  Observer
}

// Option configures a Reader.
type Option func(*options)

// WithTrim strips leading runs of each character from every produced line,
// one character after the other in the given order.
func WithTrim(chars ...byte) Option {
	return func(o *options) {
		o.trim = append(o.trim, chars...)
	}
}

// WithTrimSet strips every leading byte contained in set, in any order.
func WithTrimSet(set string) Option {
	return func(o *options) {
		o.trimSet = set
	}
}

// WithSelection restricts Next to the given 1-based line numbers.
// Reading stops once the highest selected line has been passed.
func WithSelection(set *linesel.Set) Option {
	return func(o *options) {
		o.selection = set
	}
}

// WithObserver registers o to be called for every produced line.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}
