package thumbnail

import (
	"context"
	"fmt"
	"strings"

	"github.com/andreyxaxa/Image-Hosting/internal/entity"
	"github.com/andreyxaxa/Image-Hosting/internal/infrastructure"
	"github.com/andreyxaxa/Image-Hosting/internal/repo"
	"github.com/andreyxaxa/Image-Hosting/pkg/logger"
)

type ThumbnailUseCase struct {
	imageRepo repo.ImageRepo
	processor infrastructure.ImageProcessor

	logger logger.Interface
}

func New(imageRepo repo.ImageRepo, p infrastructure.ImageProcessor, l logger.Interface) *ThumbnailUseCase {
	return &ThumbnailUseCase{
		imageRepo: imageRepo,
		processor: p,
		logger:    l,
	}
}

// Generate builds and stores the thumbnail for one original. Keys already
// under thumbnails/ are a no-op: a thumbnail write must never trigger
// thumbnail generation on itself.
func (uc *ThumbnailUseCase) Generate(ctx context.Context, key string) error {
	if strings.HasPrefix(key, entity.ThumbnailPrefix) {
		uc.logger.Info("skipping key=%s: already a thumbnail", key)

		return nil
	}

	// 1. скачиваем оригинал
	data, err := uc.imageRepo.DownloadBytes(ctx, key)
	if err != nil {
		return fmt.Errorf("ThumbnailUseCase - Generate - uc.imageRepo.DownloadBytes: %w", err)
	}

	// 2. генерируем миниатюру
	thumb, err := uc.processor.Thumbnail(ctx, data)
	if err != nil {
		return fmt.Errorf("ThumbnailUseCase - Generate - uc.processor.Thumbnail: %w", err)
	}

	// 3. сохраняем под производным ключом, перезаписывая прошлую версию
	thumbnailKey := entity.ThumbnailPrefix + key
	err = uc.imageRepo.UploadBytes(ctx, thumbnailKey, thumb, "image/jpeg")
	if err != nil {
		return fmt.Errorf("ThumbnailUseCase - Generate - uc.imageRepo.UploadBytes: %w", err)
	}

	uc.logger.Info("thumbnail created: %s", thumbnailKey)

	return nil
}
