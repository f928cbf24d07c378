package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the encoding of loaded content.
type Compression uint8

const (
	// CompressionNone indicates plain content.
	CompressionNone Compression = iota
	// CompressionGzip indicates a gzip stream.
	CompressionGzip
	// CompressionZstd indicates a zstd frame.
	CompressionZstd
	// CompressionLZ4 indicates an LZ4 frame.
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Detect sniffs the compression format from the leading magic bytes.
func Detect(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, magicZstd):
		return CompressionZstd
	case bytes.HasPrefix(data, magicLZ4):
		return CompressionLZ4
	case bytes.HasPrefix(data, magicGzip):
		return CompressionGzip
	default:
		return CompressionNone
	}
}

// zstd decoders are expensive to create; reuse them.
var zstdDecoderPool sync.Pool

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil)
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// decode expands data. A positive maxSize stops decoding as soon as the
// output would exceed it.
func decode(kind Compression, data []byte, maxSize int64) ([]byte, error) {
	switch kind {
	case CompressionZstd:
		if maxSize > 0 {
			dec, err := zstd.NewReader(bytes.NewReader(data),
				zstd.WithDecoderConcurrency(1),
				zstd.WithDecoderMaxMemory(uint64(maxSize)),
			)
			if err != nil {
				return nil, err
			}
			defer dec.Close()
			out, err := readCapped(dec, maxSize)
			if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
				return nil, fmt.Errorf("%w: %w", ErrTooLarge, err)
			}
			return out, err
		}
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer putZstdDecoder(dec)
		return dec.DecodeAll(data, nil)
	case CompressionGzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return readCapped(zr, maxSize)
	case CompressionLZ4:
		return readCapped(lz4.NewReader(bytes.NewReader(data)), maxSize)
	default:
		return data, nil
	}
}

func readCapped(r io.Reader, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		return io.ReadAll(r)
	}
	out, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(out)) > maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, maxSize)
	}
	return out, nil
}

// DecompressOptions tune decoding.
type DecompressOptions struct {
	// MaxSize caps the decoded size of a single document in bytes. 0 means unlimited.
	MaxSize int64
}

type decompressing struct {
	src  Source
	opts DecompressOptions
}

// Decompress wraps src so that compressed content is decoded into an owned
// region. Plain content is passed through untouched, keeping mapped files
// zero-copy.
func Decompress(src Source, optFns ...func(o *DecompressOptions)) Source {
	var opts DecompressOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return &decompressing{src: src, opts: opts}
}

func (d *decompressing) Open(ctx context.Context, name string) (*Region, error) {
	r, err := d.src.Open(ctx, name)
	if err != nil {
		return nil, err
	}

	kind := Detect(r.Bytes())
	if kind == CompressionNone {
		return r, nil
	}
	defer r.Close()

	out, err := decode(kind, r.Bytes(), d.opts.MaxSize)
	if err != nil {
		return nil, &OpenError{Name: name, Err: fmt.Errorf("decode %s: %w", kind, err)}
	}

	return NewRegion(out, nil), nil
}
