// Package minio loads content from MinIO and other S3-compatible stores
// into in-memory regions.
package minio

import (
	"context"
	"errors"
	"io"
	"path"

	"github.com/hupe1980/rawtext/internal/conv"
	"github.com/hupe1980/rawtext/source"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectGetter is the subset of *minio.Client the source needs.
type ObjectGetter interface {
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error)
}

// Source implements source.Source for MinIO.
type Source struct {
	client ObjectGetter
	bucket string
	prefix string
	// open reads an object body; replaced in tests.
	open func(ctx context.Context, key string, size int) ([]byte, error)
}

var _ source.Source = (*Source)(nil)

// NewSource creates a new MinIO source.
// rootPrefix is prepended to all keys (e.g. "logs/").
func NewSource(client ObjectGetter, bucket, rootPrefix string) *Source {
	s := &Source{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
	s.open = s.read
	return s
}

// NewClient connects to endpoint using credentials from the MINIO_ACCESS_KEY /
// MINIO_SECRET_KEY (or MINIO_ROOT_USER / MINIO_ROOT_PASSWORD) environment variables.
func NewClient(endpoint string, secure bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewEnvMinio(),
		Secure: secure,
	})
}

func (s *Source) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open downloads the named object into memory.
func (s *Source) Open(ctx context.Context, name string) (*source.Region, error) {
	key := s.key(name)

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, &source.OpenError{Name: name, Err: translate(err)}
	}
	size, err := conv.Int64ToInt(info.Size)
	if err != nil {
		return nil, &source.OpenError{Name: name, Err: err}
	}
	if size == 0 {
		return source.NewRegion(nil, nil), nil
	}

	data, err := s.open(ctx, key, size)
	if err != nil {
		return nil, &source.OpenError{Name: name, Err: translate(err)}
	}

	return source.NewRegion(data, nil), nil
}

func (s *Source) read(ctx context.Context, key string, size int) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	buf := make([]byte, size)
	if _, err := io.ReadFull(obj, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func translate(err error) error {
	errResp := minio.ToErrorResponse(err)
	if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
		return errors.Join(source.ErrNotFound, err)
	}
	return err
}
