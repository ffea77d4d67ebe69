package usecase

import (
	"context"
	"io"

	"github.com/andreyxaxa/Image-Hosting/internal/entity"
)

type (
	ImageUseCase interface {
		UploadImage(
			ctx context.Context,
			data io.Reader,
			originalName string,
			size int64,
		) (*entity.Image, error)
		ListImages(ctx context.Context) ([]entity.ImageListItem, error)
		DownloadImage(ctx context.Context, key string) (io.ReadCloser, string, error)
	}

	// ThumbnailUseCase generates the derived thumbnail for one original.
	ThumbnailUseCase interface {
		Generate(ctx context.Context, key string) error
	}
)
