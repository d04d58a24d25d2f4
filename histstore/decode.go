package histstore

import (
	"compress/gzip"
	"context"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// OpenDecoded opens the named recording and transparently decompresses it
// based on the file extension: ".zst", ".lz4" and ".gz" are supported; any
// other name is returned raw.
func OpenDecoded(ctx context.Context, s Store, name string) (io.ReadCloser, error) {
	rc, err := s.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, err
		}
		return &decodedReader{r: zr.IOReadCloser(), underlying: rc}, nil
	case strings.HasSuffix(name, ".lz4"):
		return &decodedReader{r: io.NopCloser(lz4.NewReader(rc)), underlying: rc}, nil
	case strings.HasSuffix(name, ".gz"):
		gr, err := gzip.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, err
		}
		return &decodedReader{r: gr, underlying: rc}, nil
	default:
		return rc, nil
	}
}

// decodedReader closes both the decompressor and the underlying blob.
type decodedReader struct {
	r          io.ReadCloser
	underlying io.ReadCloser
}

func (d *decodedReader) Read(p []byte) (int, error) { return d.r.Read(p) }

func (d *decodedReader) Close() error {
	err := d.r.Close()
	if uerr := d.underlying.Close(); err == nil {
		err = uerr
	}
	return err
}
