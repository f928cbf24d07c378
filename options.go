package rawtext

import (
	"github.com/hupe1980/rawtext/internal/resource"
	"github.com/hupe1980/rawtext/lines"
	"github.com/hupe1980/rawtext/linesel"
	"github.com/hupe1980/rawtext/source"
)

// ResourceLimits bounds what a Loader may hold and fetch.
type ResourceLimits struct {
	// MemoryLimitBytes caps the total size of open documents. 0 means unlimited.
	MemoryLimitBytes int64
	// MaxConcurrentLoads caps simultaneous loads. 0 means 1.
	MaxConcurrentLoads int64
	// IOLimitBytesPerSec caps load throughput. 0 means unlimited.
	IOLimitBytesPerSec int64
}

type options struct {
	source           source.Source
	decompress       bool
	limits           *resource.Config
	metricsCollector MetricsCollector
	logger           *Logger
	readerOpts       []lines.Option
}

// Option configures a Loader.
type Option func(*options)

// WithSource sets where documents are loaded from.
// The default maps local files.
func WithSource(src source.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithDecompression transparently decodes gzip, zstd and LZ4 content.
// With a memory limit set, decoding stops once a document outgrows it.
func WithDecompression() Option {
	return func(o *options) {
		o.decompress = true
	}
}

// WithResourceLimits charges every load against shared limits.
func WithResourceLimits(limits ResourceLimits) Option {
	return func(o *options) {
		o.limits = &resource.Config{
			MemoryLimitBytes:   limits.MemoryLimitBytes,
			MaxConcurrentLoads: limits.MaxConcurrentLoads,
			IOLimitBytesPerSec: limits.IOLimitBytesPerSec,
		}
	}
}

// WithMetricsCollector configures metrics collection for loads and lines.
//
// Example:
//
//	metrics := &rawtext.BasicMetricsCollector{}
//	loader, _ := rawtext.New(rawtext.WithMetricsCollector(metrics))
//	// ... read documents ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTrim strips leading runs of each character, in order, from every line.
func WithTrim(chars ...byte) Option {
	return func(o *options) {
		o.readerOpts = append(o.readerOpts, lines.WithTrim(chars...))
	}
}

// WithTrimSet strips any leading bytes contained in set from every line.
func WithTrimSet(set string) Option {
	return func(o *options) {
		o.readerOpts = append(o.readerOpts, lines.WithTrimSet(set))
	}
}

// WithSelection restricts readers to the given line numbers.
func WithSelection(set *linesel.Set) Option {
	return func(o *options) {
		o.readerOpts = append(o.readerOpts, lines.WithSelection(set))
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	return o
}
