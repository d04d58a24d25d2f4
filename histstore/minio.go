package histstore

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
)

// MinIO is a Store over any S3-compatible endpoint reachable with the MinIO
// client (MinIO itself, Ceph, on-prem gateways).
type MinIO struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinIO creates a MinIO-backed store. prefix is prepended to all keys.
func NewMinIO(client *minio.Client, bucket, prefix string) *MinIO {
	return &MinIO{client: client, bucket: bucket, prefix: prefix}
}

// Open opens the named recording as a streaming reader.
func (m *MinIO) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := path.Join(m.prefix, name)

	// GetObject is lazy; stat first so missing keys surface as ErrNotFound
	// here rather than on the first read.
	if _, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{}); err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, fmt.Errorf("histstore: %q: %w", name, ErrNotFound)
		}
		return nil, err
	}

	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("histstore: opening %q: %w", name, err)
	}
	return obj, nil
}
