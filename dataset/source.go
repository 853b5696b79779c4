package dataset

import (
	"context"
	"io"
	"os"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/minio/minio-go/v7"
	"github.com/pierrec/lz4/v4"
)

// ErrNotFound is returned when an input does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Source is an abstraction for reading input datasets.
type Source interface {
	// Open opens the named input for reading. Inputs ending in .gz,
	// .zst or .lz4 are decompressed transparently.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// LocalSource implements Source using the local file system.
type LocalSource struct{}

// Open opens a file for reading.
func (LocalSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return decompress(name, f)
}

// MinIOSource implements Source for MinIO and S3-compatible object storage.
type MinIOSource struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinIOSource creates a new MinIO-backed source.
// bucket is the bucket name; rootPrefix is prepended to all keys.
func NewMinIOSource(client *minio.Client, bucket, rootPrefix string) *MinIOSource {
	return &MinIOSource{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

// Open opens an object for reading.
func (s *MinIOSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := path.Join(s.prefix, name)

	// Stat up front so a missing object fails here, not on first Read.
	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, ErrNotFound
		}
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	return decompress(name, obj)
}

// decompress wraps rc according to the input's extension.
func decompress(name string, rc io.ReadCloser) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		zr, err := gzip.NewReader(rc)
		if err != nil {
			_ = rc.Close()
			return nil, &ErrMalformedInput{Name: name, cause: err}
		}
		return &decompressReader{
			Reader: zr,
			close: func() error {
				if err := zr.Close(); err != nil {
					_ = rc.Close()
					return err
				}
				return rc.Close()
			},
		}, nil
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(rc)
		if err != nil {
			_ = rc.Close()
			return nil, &ErrMalformedInput{Name: name, cause: err}
		}
		return &decompressReader{
			Reader: zr,
			close: func() error {
				zr.Close()
				return rc.Close()
			},
		}, nil
	case strings.HasSuffix(name, ".lz4"):
		return &decompressReader{
			Reader: lz4.NewReader(rc),
			close:  rc.Close,
		}, nil
	default:
		return rc, nil
	}
}

type decompressReader struct {
	io.Reader
	close func() error
}

func (r *decompressReader) Close() error { return r.close() }
