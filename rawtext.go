package rawtext

import (
	"context"
	"time"

	"github.com/hupe1980/rawtext/internal/resource"
	"github.com/hupe1980/rawtext/lines"
	"github.com/hupe1980/rawtext/source"
	"github.com/hupe1980/rawtext/strslice"
)

// Loader opens documents from a configured source.
// It is safe for concurrent use; documents are not.
type Loader struct {
	src        source.Source
	ctrl       *resource.Controller
	metrics    MetricsCollector
	logger     *Logger
	readerOpts []lines.Option
}

// New creates a Loader.
func New(optFns ...Option) (*Loader, error) {
	o := applyOptions(optFns)

	src := o.source
	if src == nil {
		src = defaultSource()
	}
	if src == nil {
		return nil, ErrNoSource
	}

	if o.decompress {
		var maxSize int64
		if o.limits != nil {
			maxSize = o.limits.MemoryLimitBytes
		}
		// A document larger than the whole budget is rejected while decoding.
		src = source.Decompress(src, func(do *source.DecompressOptions) {
			do.MaxSize = maxSize
		})
	}

	var ctrl *resource.Controller
	if o.limits != nil {
		ctrl = resource.NewController(*o.limits)
		src = source.Limit(src, ctrl)
	}

	return &Loader{
		src:        src,
		ctrl:       ctrl,
		metrics:    o.metricsCollector,
		logger:     o.logger,
		readerOpts: o.readerOpts,
	}, nil
}

// Open loads the named document.
func (l *Loader) Open(ctx context.Context, name string) (*Document, error) {
	start := time.Now()
	region, err := l.src.Open(ctx, name)

	size := 0
	if err == nil {
		size = region.Size()
	}
	l.metrics.RecordOpen(time.Since(start), size, err)
	l.logger.LogOpen(ctx, name, size, err)

	if err != nil {
		return nil, translateError(name, err)
	}

	return &Document{
		name:   name,
		region: region,
		loader: l,
	}, nil
}

// MemoryUsage returns the bytes currently charged against the resource limits.
func (l *Loader) MemoryUsage() int64 {
	return l.ctrl.MemoryUsage()
}

// Open is a shorthand for New followed by Loader.Open.
func Open(ctx context.Context, name string, optFns ...Option) (*Document, error) {
	l, err := New(optFns...)
	if err != nil {
		return nil, err
	}
	return l.Open(ctx, name)
}

// Document is loaded content together with the region that owns it.
type Document struct {
	name   string
	region *source.Region
	loader *Loader
}

// Name returns the name the document was opened with.
func (d *Document) Name() string { return d.name }

// Size returns the content size in bytes.
func (d *Document) Size() int { return d.region.Size() }

// Content returns a view of the whole document.
// The view is valid only until Close is called.
func (d *Document) Content() strslice.Slice {
	return d.region.Content()
}

// Lines returns a Reader over a fresh Content view. The loader's trim and
// selection options apply first, then optFns.
func (d *Document) Lines(optFns ...lines.Option) *lines.Reader {
	opts := make([]lines.Option, 0, len(d.loader.readerOpts)+len(optFns)+1)
	opts = append(opts, d.loader.readerOpts...)
	if _, noop := d.loader.metrics.(NoopMetricsCollector); !noop {
		opts = append(opts, lines.WithObserver(metricsObserver{mc: d.loader.metrics}))
	}
	opts = append(opts, optFns...)
	return lines.NewReader(d.Content(), opts...)
}

// Close releases the content. Views obtained from the document must not be
// used afterwards.
func (d *Document) Close() error {
	return d.region.Close()
}
