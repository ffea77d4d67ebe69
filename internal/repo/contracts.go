package repo

import (
	"context"
	"io"

	"github.com/andreyxaxa/Image-Hosting/internal/entity"
)

type (
	ImageRepo interface {
		// EnsureBucket creates the bucket if absent. Already-exists answers
		// are not errors.
		EnsureBucket(ctx context.Context) error
		Upload(ctx context.Context, key string, data io.Reader, contentType string, size int64) error
		UploadBytes(ctx context.Context, key string, data []byte, contentType string) error
		Download(ctx context.Context, key string) (io.ReadCloser, error)
		DownloadBytes(ctx context.Context, key string) ([]byte, error)
		// List enumerates every object in the bucket. A missing bucket is
		// reported as errs.ErrBucketNotFound.
		List(ctx context.Context) ([]entity.StoredObject, error)
		// Exists is a metadata-only lookup.
		Exists(ctx context.Context, key string) (bool, error)
		// ObjectURL builds the public path-style URL for a key.
		ObjectURL(key string) string
	}
)
