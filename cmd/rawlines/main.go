//go:build unix

// Command rawlines prints, counts or sums the lines of one or more documents.
//
// Usage:
//
//	rawlines [flags] path...
//
// Documents are mapped from the local file system by default, or fetched from
// S3 or MinIO with -source. Output for each path is written in argument order.
// rawlines exits with status 1 when a path cannot be opened or a sum overflows,
// and 2 on usage errors.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"runtime"

	"github.com/hupe1980/rawtext"
	"github.com/hupe1980/rawtext/linesel"
	"github.com/hupe1980/rawtext/numconv"
	"github.com/hupe1980/rawtext/rawio"
	"github.com/hupe1980/rawtext/source"
	miniosrc "github.com/hupe1980/rawtext/source/minio"
	s3src "github.com/hupe1980/rawtext/source/s3"
	"golang.org/x/sync/errgroup"
)

var errSumOverflow = errors.New("sum overflows int64")

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], rawio.Stdout, rawio.Stderr))
}

type config struct {
	trim       string
	lines      string
	number     bool
	count      bool
	sum        bool
	decompress bool
	source     string
	bucket     string
	prefix     string
	endpoint   string
	insecure   bool
	memLimit   int64
	ioLimit    int64
	verbose    bool
	jsonLog    bool
}

func parseFlags(args []string, stderr io.Writer) (*config, []string, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("rawlines", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.trim, "trim", "", "strip leading runs of these characters, in order, from every line")
	fs.StringVar(&cfg.lines, "lines", "", "only process these line numbers, e.g. 1,4-9")
	fs.BoolVar(&cfg.number, "number", false, "prefix printed lines with their line number")
	fs.BoolVar(&cfg.count, "count", false, "print the number of lines instead of the lines")
	fs.BoolVar(&cfg.sum, "sum", false, "print the sum of all lines holding an integer; fails if it overflows int64")
	fs.BoolVar(&cfg.decompress, "decompress", false, "decode gzip, zstd and lz4 input")
	fs.StringVar(&cfg.source, "source", "file", "where to load documents from: file, s3 or minio")
	fs.StringVar(&cfg.bucket, "bucket", "", "bucket for the s3 and minio sources")
	fs.StringVar(&cfg.prefix, "prefix", "", "key prefix for the s3 and minio sources")
	fs.StringVar(&cfg.endpoint, "endpoint", "", "object store endpoint")
	fs.BoolVar(&cfg.insecure, "insecure", false, "connect to minio without TLS")
	fs.Int64Var(&cfg.memLimit, "mem-limit", 0, "maximum bytes of open documents (0 = unlimited)")
	fs.Int64Var(&cfg.ioLimit, "io-limit", 0, "maximum load throughput in bytes/sec (0 = unlimited)")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	fs.BoolVar(&cfg.jsonLog, "json-log", false, "log as JSON")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: rawlines [flags] path...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return nil, nil, errors.New("no paths given")
	}
	if cfg.count && cfg.sum {
		return nil, nil, errors.New("-count and -sum are mutually exclusive")
	}
	switch cfg.source {
	case "file":
	case "s3", "minio":
		if cfg.bucket == "" {
			return nil, nil, fmt.Errorf("-source %s requires -bucket", cfg.source)
		}
		if cfg.source == "minio" && cfg.endpoint == "" {
			return nil, nil, errors.New("-source minio requires -endpoint")
		}
	default:
		return nil, nil, fmt.Errorf("unknown source %q", cfg.source)
	}
	if cfg.memLimit < 0 || cfg.ioLimit < 0 {
		return nil, nil, errors.New("limits must not be negative")
	}

	return cfg, fs.Args(), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, paths, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "rawlines: %v\n", err)
		return exitUsage
	}

	logger := newLogger(cfg, stderr).WithComponent("rawlines")

	var sel *linesel.Set
	if cfg.lines != "" {
		if sel, err = linesel.Parse(cfg.lines); err != nil {
			fmt.Fprintf(stderr, "rawlines: %v\n", err)
			return exitUsage
		}
	}

	src, err := newSource(ctx, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "rawlines: %v\n", err)
		return exitFailure
	}

	metrics := &rawtext.BasicMetricsCollector{}
	optFns := []rawtext.Option{
		rawtext.WithMetricsCollector(metrics),
		rawtext.WithTrim([]byte(cfg.trim)...),
		rawtext.WithSelection(sel),
	}
	if src != nil {
		optFns = append(optFns, rawtext.WithSource(src))
	}
	if cfg.verbose {
		optFns = append(optFns, rawtext.WithLogger(logger))
	}
	if cfg.decompress {
		optFns = append(optFns, rawtext.WithDecompression())
	}
	if cfg.memLimit > 0 || cfg.ioLimit > 0 {
		optFns = append(optFns, rawtext.WithResourceLimits(rawtext.ResourceLimits{
			MemoryLimitBytes:   cfg.memLimit,
			MaxConcurrentLoads: int64(runtime.GOMAXPROCS(0)),
			IOLimitBytesPerSec: cfg.ioLimit,
		}))
	}

	loader, err := rawtext.New(optFns...)
	if err != nil {
		fmt.Fprintf(stderr, "rawlines: %v\n", err)
		return exitFailure
	}

	outs := make([]bytes.Buffer, len(paths))
	errs := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range paths {
		g.Go(func() error {
			errs[i] = process(ctx, loader, logger, cfg, name, &outs[i])
			return nil
		})
	}
	_ = g.Wait()

	code := exitOK
	for i := range paths {
		if errs[i] != nil {
			fmt.Fprintf(stderr, "rawlines: %v\n", errs[i])
			code = exitFailure
			break
		}
		if _, err := outs[i].WriteTo(stdout); err != nil {
			fmt.Fprintf(stderr, "rawlines: write: %v\n", err)
			code = exitFailure
			break
		}
	}

	stats := metrics.GetStats()
	logger.Info("done",
		"documents", stats.OpenCount-stats.OpenErrors,
		"failed", stats.OpenErrors,
		"bytes", stats.BytesLoaded,
		"lines", stats.LineCount,
		"avg_open", stats.OpenAvgNanos,
	)

	return code
}

func newLogger(cfg *config, stderr io.Writer) *rawtext.Logger {
	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.jsonLog {
		return rawtext.NewLogger(slog.NewJSONHandler(stderr, opts))
	}
	return rawtext.NewLogger(slog.NewTextHandler(stderr, opts))
}

// newSource returns nil for the local file system so the loader picks its default.
func newSource(ctx context.Context, cfg *config) (source.Source, error) {
	switch cfg.source {
	case "s3":
		client, err := s3src.NewClient(ctx, cfg.endpoint)
		if err != nil {
			return nil, fmt.Errorf("s3 client: %w", err)
		}
		return s3src.NewSource(client, cfg.bucket, cfg.prefix), nil
	case "minio":
		client, err := miniosrc.NewClient(cfg.endpoint, !cfg.insecure)
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		return miniosrc.NewSource(client, cfg.bucket, cfg.prefix), nil
	default:
		return nil, nil
	}
}

func process(ctx context.Context, loader *rawtext.Loader, logger *rawtext.Logger, cfg *config, name string, out *bytes.Buffer) error {
	doc, err := loader.Open(ctx, name)
	if err != nil {
		return err
	}
	defer doc.Close()

	var (
		lines int
		total int64
	)

	r := doc.Lines()
	for r.Next() {
		lines++
		line := r.Line()

		switch {
		case cfg.count:
		case cfg.sum:
			n, err := numconv.ParseInt(line)
			if err != nil {
				continue
			}
			if (n > 0 && total > math.MaxInt64-n) || (n < 0 && total < math.MinInt64-n) {
				return fmt.Errorf("%s: line %d: %w", name, r.Number(), errSumOverflow)
			}
			total += n
		default:
			if cfg.number {
				_ = numconv.WriteUint(out, uint64(r.Number()))
				out.WriteByte('\t')
			}
			out.Write(line.Bytes())
			out.WriteByte('\n')
		}
	}

	switch {
	case cfg.count:
		_ = numconv.WriteUint(out, uint64(lines))
		out.WriteByte('\n')
	case cfg.sum:
		_ = numconv.WriteInt(out, total)
		out.WriteByte('\n')
	}

	logger.LogDocument(ctx, name, lines, doc.Size())
	return nil
}
