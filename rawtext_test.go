package rawtext

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/hupe1980/rawtext/linesel"
	"github.com/hupe1980/rawtext/numconv"
	"github.com/hupe1980/rawtext/source"
	"github.com/hupe1980/rawtext/strslice"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memorySource(blobs map[string]string) *source.Memory {
	m := source.NewMemory()
	for name, data := range blobs {
		m.Put(name, []byte(data))
	}
	return m
}

func TestLoader_OpenAndRead(t *testing.T) {
	ctx := context.Background()
	metrics := &BasicMetricsCollector{}

	loader, err := New(
		WithSource(memorySource(map[string]string{"nums.txt": "  1\n\t2\nx\n  40\n"})),
		WithTrimSet(" \t"),
		WithMetricsCollector(metrics),
	)
	require.NoError(t, err)

	doc, err := loader.Open(ctx, "nums.txt")
	require.NoError(t, err)
	defer doc.Close()

	assert.Equal(t, "nums.txt", doc.Name())
	assert.Equal(t, 14, doc.Size())

	var sum uint64
	r := doc.Lines()
	for r.Next() {
		if numconv.IsNumber(r.Line()) {
			sum += numconv.ParseUint(r.Line())
		}
	}
	assert.Equal(t, uint64(43), sum)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.OpenCount)
	assert.Zero(t, stats.OpenErrors)
	assert.Equal(t, int64(14), stats.BytesLoaded)
	assert.Equal(t, int64(4), stats.LineCount)
	assert.Equal(t, int64(5), stats.LineBytes)
}

func TestLoader_Selection(t *testing.T) {
	set, err := linesel.Parse("2-3")
	require.NoError(t, err)

	doc, err := Open(context.Background(), "f",
		WithSource(memorySource(map[string]string{"f": "a\nb\nc\nd\n"})),
		WithSelection(set),
	)
	require.NoError(t, err)
	defer doc.Close()

	var got []string
	for _, line := range doc.Lines().All() {
		got = append(got, line.String())
	}
	assert.Equal(t, []string{"b", "c"}, got)
}

func TestLoader_SequentialTrim(t *testing.T) {
	doc, err := Open(context.Background(), "f",
		WithSource(memorySource(map[string]string{"f": " \t\tx\n"})),
		WithTrim(' ', '\t'),
	)
	require.NoError(t, err)
	defer doc.Close()

	r := doc.Lines()
	require.True(t, r.Next())
	assert.Equal(t, "x", r.Line().String())
}

func TestLoader_NotFound(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	var logs bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	loader, err := New(
		WithSource(source.NewMemory()),
		WithMetricsCollector(metrics),
		WithLogger(logger),
	)
	require.NoError(t, err)

	_, err = loader.Open(context.Background(), "missing.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, source.ErrNotFound)

	var openErr *OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Equal(t, "missing.txt", openErr.Name)
	assert.Contains(t, openErr.Error(), "cannot open missing.txt")

	assert.Equal(t, int64(1), metrics.GetStats().OpenErrors)
	assert.Contains(t, logs.String(), "open failed")
	assert.Contains(t, logs.String(), "missing.txt")
}

type brokenSource struct{}

func (brokenSource) Open(context.Context, string) (*source.Region, error) {
	return nil, errors.New("disk on fire")
}

func TestLoader_OtherErrors(t *testing.T) {
	_, err := Open(context.Background(), "x", WithSource(brokenSource{}))

	var openErr *OpenError
	require.ErrorAs(t, err, &openErr)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, errors.Unwrap(err), "disk on fire")
}

func TestLoader_DecompressionAndLimits(t *testing.T) {
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := enc.EncodeAll([]byte("x\ny\nz\n"), nil)

	m := source.NewMemory()
	m.Put("f.zst", compressed)
	m.Put("big", bytes.Repeat([]byte("a\n"), 4096))

	loader, err := New(
		WithSource(m),
		WithDecompression(),
		WithResourceLimits(ResourceLimits{MemoryLimitBytes: 4096}),
	)
	require.NoError(t, err)

	doc, err := loader.Open(context.Background(), "f.zst")
	require.NoError(t, err)
	assert.Equal(t, "x\ny\nz\n", doc.Content().String())
	assert.Equal(t, int64(6), loader.MemoryUsage())

	_, err = loader.Open(context.Background(), "big")
	assert.Error(t, err)

	require.NoError(t, doc.Close())
	assert.Zero(t, loader.MemoryUsage())
}

func TestLoader_DecompressionRespectsMemoryLimit(t *testing.T) {
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)

	m := source.NewMemory()
	m.Put("huge.zst", enc.EncodeAll(make([]byte, 16<<20), nil))

	loader, err := New(
		WithSource(m),
		WithDecompression(),
		WithResourceLimits(ResourceLimits{MemoryLimitBytes: 1 << 20}),
	)
	require.NoError(t, err)

	_, err = loader.Open(context.Background(), "huge.zst")
	assert.ErrorIs(t, err, source.ErrTooLarge)

	var openErr *OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Zero(t, loader.MemoryUsage())
}

func TestLoader_NilOptions(t *testing.T) {
	loader, err := New(nil, WithLogger(nil), WithMetricsCollector(nil), WithSource(source.NewMemory()))
	require.NoError(t, err)
	assert.NotNil(t, loader.logger)
	assert.NotNil(t, loader.metrics)
	assert.Zero(t, loader.MemoryUsage())
}

func TestDocument_LinesAreIndependent(t *testing.T) {
	doc, err := Open(context.Background(), "f", WithSource(memorySource(map[string]string{"f": "a\nb\n"})))
	require.NoError(t, err)
	defer doc.Close()

	first := doc.Lines()
	for first.Next() {
	}

	second := doc.Lines()
	require.True(t, second.Next())
	assert.True(t, second.Line().Equal(strslice.FromString("a")))
}

func TestBasicMetricsCollector(t *testing.T) {
	var m BasicMetricsCollector
	assert.Zero(t, m.GetStats().OpenAvgNanos)

	m.RecordOpen(2*time.Millisecond, 10, nil)
	m.RecordOpen(4*time.Millisecond, 0, errors.New("x"))
	m.RecordLine(3)

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.OpenCount)
	assert.Equal(t, int64(1), stats.OpenErrors)
	assert.Equal(t, int64(3*time.Millisecond), stats.OpenAvgNanos)
	assert.Equal(t, int64(10), stats.BytesLoaded)
	assert.Equal(t, int64(1), stats.LineCount)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.WithComponent("cli").WithName("in.txt").LogDocument(context.Background(), "in.txt", 3, 12)
	out := buf.String()
	assert.Contains(t, out, `"component":"cli"`)
	assert.Contains(t, out, `"lines":3`)
	assert.Contains(t, out, `"bytes":12`)

	buf.Reset()
	l.LogOpen(context.Background(), "in.txt", 12, nil)
	assert.Contains(t, buf.String(), "document opened")

	// Loggers that never write must not panic.
	NoopLogger().LogOpen(context.Background(), "x", 0, errors.New("e"))
	assert.NotNil(t, NewTextLogger(slog.LevelWarn))
	assert.NotNil(t, NewJSONLogger(slog.LevelWarn))
	assert.NotNil(t, NewLogger(nil))
}
