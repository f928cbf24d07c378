// Package s3 loads content from Amazon S3 (or an S3-compatible endpoint)
// into in-memory regions.
package s3

import (
	"context"
	"errors"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/rawtext/internal/conv"
	"github.com/hupe1980/rawtext/source"
)

// Client is the subset of *s3.Client the source needs.
type Client interface {
	manager.DownloadAPIClient
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// Options tune downloads.
type Options struct {
	// PartSize is the size of each ranged GET. Defaults to manager.DefaultDownloadPartSize.
	PartSize int64
	// Concurrency is the number of parallel part downloads. Defaults to manager.DefaultDownloadConcurrency.
	Concurrency int
}

// Source implements source.Source for S3.
type Source struct {
	client Client
	bucket string
	prefix string
	opts   Options
}

var _ source.Source = (*Source)(nil)

// NewSource creates a new S3 source.
// rootPrefix is prepended to all keys (e.g. "logs/").
func NewSource(client Client, bucket, rootPrefix string, optFns ...func(o *Options)) *Source {
	opts := Options{
		PartSize:    manager.DefaultDownloadPartSize,
		Concurrency: manager.DefaultDownloadConcurrency,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Source{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
		opts:   opts,
	}
}

// NewClient builds an S3 client from the default AWS configuration chain.
// A non-empty endpoint switches to path-style addressing for S3-compatible stores.
func NewClient(ctx context.Context, endpoint string) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func (s *Source) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open downloads the named object into memory.
func (s *Source) Open(ctx context.Context, name string) (*source.Region, error) {
	key := s.key(name)

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, &source.OpenError{Name: name, Err: translate(err)}
	}

	var size int64
	if head.ContentLength != nil {
		size = *head.ContentLength
	}
	n, err := conv.Int64ToInt(size)
	if err != nil {
		return nil, &source.OpenError{Name: name, Err: err}
	}
	if n == 0 {
		return source.NewRegion(nil, nil), nil
	}

	buf := manager.NewWriteAtBuffer(make([]byte, n))
	downloader := manager.NewDownloader(s.client, func(d *manager.Downloader) {
		d.PartSize = s.opts.PartSize
		d.Concurrency = s.opts.Concurrency
	})

	got, err := downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, &source.OpenError{Name: name, Err: translate(err)}
	}

	return source.NewRegion(buf.Bytes()[:got], nil), nil
}

func translate(err error) error {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return errors.Join(source.ErrNotFound, err)
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return errors.Join(source.ErrNotFound, err)
	}
	return err
}
