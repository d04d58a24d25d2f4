package histstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"golang.org/x/time/rate"
)

// S3 is a Store over an S3 bucket. Recordings are downloaded whole; an
// optional byte-rate limiter throttles downloads so bulk loads do not
// saturate shared links.
type S3 struct {
	client  *s3.Client
	bucket  string
	prefix  string
	limiter *rate.Limiter
}

// S3Option configures an S3 store.
type S3Option func(*S3)

// WithByteRateLimit throttles downloads to the given bytes per second.
func WithByteRateLimit(bytesPerSec float64) S3Option {
	return func(s *S3) {
		s.limiter = rate.NewLimiter(rate.Limit(bytesPerSec), int(bytesPerSec))
	}
}

// NewS3 creates an S3 store. prefix is prepended to all keys.
func NewS3(client *s3.Client, bucket, prefix string, opts ...S3Option) *S3 {
	s := &S3{client: client, bucket: bucket, prefix: prefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewS3FromConfig creates an S3 store using the default AWS configuration
// chain (environment, shared config, instance role).
func NewS3FromConfig(ctx context.Context, bucket, prefix string, opts ...S3Option) (*S3, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("histstore: loading aws config: %w", err)
	}
	return NewS3(s3.NewFromConfig(cfg), bucket, prefix, opts...), nil
}

func (s *S3) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open downloads the named recording and returns a reader over it.
func (s *S3) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := s.key(name)

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		var nsk *types.NoSuchKey
		if errors.As(err, &nf) || errors.As(err, &nsk) {
			return nil, fmt.Errorf("histstore: %q: %w", name, ErrNotFound)
		}
		return nil, err
	}
	size := aws.ToInt64(head.ContentLength)

	if s.limiter != nil {
		if err := waitBytes(ctx, s.limiter, size); err != nil {
			return nil, err
		}
	}

	buf := manager.NewWriteAtBuffer(make([]byte, 0, size))
	downloader := manager.NewDownloader(s.client)
	if _, err := downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return nil, fmt.Errorf("histstore: downloading %q: %w", name, err)
	}
	return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
}

// waitBytes reserves n bytes from the limiter in burst-sized steps, since a
// single WaitN larger than the burst would fail outright.
func waitBytes(ctx context.Context, l *rate.Limiter, n int64) error {
	burst := int64(l.Burst())
	for n > 0 {
		step := n
		if step > burst {
			step = burst
		}
		if err := l.WaitN(ctx, int(step)); err != nil {
			return err
		}
		n -= step
	}
	return nil
}
