package infrastructure

import (
	"context"

	"github.com/andreyxaxa/Image-Hosting/internal/dto"
)

type (
	EventsSender interface {
		SendImageCreated(ctx context.Context, event dto.ImageCreated) error
		Close() error
	}

	ImageProcessor interface {
		Thumbnail(ctx context.Context, data []byte) ([]byte, error)
	}
)
