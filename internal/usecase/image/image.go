package image

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/andreyxaxa/Image-Hosting/internal/dto"
	"github.com/andreyxaxa/Image-Hosting/internal/entity"
	"github.com/andreyxaxa/Image-Hosting/internal/infrastructure"
	"github.com/andreyxaxa/Image-Hosting/internal/repo"
	"github.com/andreyxaxa/Image-Hosting/pkg/logger"
	"github.com/andreyxaxa/Image-Hosting/pkg/types/errs"
)

type ImageUseCase struct {
	imageRepo repo.ImageRepo
	events    infrastructure.EventsSender

	logger logger.Interface
}

func New(imageRepo repo.ImageRepo, events infrastructure.EventsSender, l logger.Interface) *ImageUseCase {
	return &ImageUseCase{
		imageRepo: imageRepo,
		events:    events,
		logger:    l,
	}
}

func (uc *ImageUseCase) UploadImage(
	ctx context.Context,
	data io.Reader,
	originalName string,
	size int64,
) (*entity.Image, error) {
	now := time.Now()
	key, timestamp := generateKey(originalName, now)
	contentType := ContentTypeByExtension(filepath.Ext(originalName))

	// 1. создаём бакет, если его ещё нет; неудача не фатальна -
	// рассчитываем, что он уже существует или создался конкурентно
	err := uc.imageRepo.EnsureBucket(ctx)
	if err != nil {
		uc.logger.Warn("failed to ensure bucket, continuing: %v", err)
	}

	// 2. загружаем в S3
	err = uc.imageRepo.Upload(ctx, key, data, contentType, size)
	if err != nil {
		return nil, fmt.Errorf("ImageUseCase - UploadImage - uc.imageRepo.Upload: %w", err)
	}

	// 3. публикуем событие для генератора миниатюр; неудача логируется -
	// оригинал уже сохранён, а листинг умеет жить без миниатюры
	err = uc.events.SendImageCreated(ctx, dto.ImageCreated{
		Key:         key,
		ContentType: contentType,
		Size:        size,
	})
	if err != nil {
		uc.logger.Error(err, "ImageUseCase - UploadImage - uc.events.SendImageCreated")
	}

	return &entity.Image{
		Key:          key,
		OriginalName: originalName,
		ContentType:  contentType,
		Size:         size,
		URL:          uc.imageRepo.ObjectURL(key),
		Timestamp:    timestamp,
		CreatedAt:    now,
	}, nil
}

func (uc *ImageUseCase) ListImages(ctx context.Context) ([]entity.ImageListItem, error) {
	objects, err := uc.imageRepo.List(ctx)
	if err != nil {
		// отсутствующий бакет - это пустой список, а не ошибка
		if errors.Is(err, errs.ErrBucketNotFound) {
			return []entity.ImageListItem{}, nil
		}

		return nil, fmt.Errorf("ImageUseCase - ListImages - uc.imageRepo.List: %w", err)
	}

	items := make([]entity.ImageListItem, 0, len(objects))

	for _, obj := range objects {
		// миниатюры присоединяются к оригиналам, сами по себе не отдаются
		if isThumbnailKey(obj.Key) {
			continue
		}

		originalURL := uc.imageRepo.ObjectURL(obj.Key)
		thumbnailURL := originalURL

		// миниатюра могла ещё не сгенерироваться - тогда отдаём оригинал
		thumbnailKey := entity.ThumbnailPrefix + obj.Key
		exists, err := uc.imageRepo.Exists(ctx, thumbnailKey)
		if err != nil {
			uc.logger.Warn("thumbnail lookup failed for key=%s, falling back to original: %v", obj.Key, err)
		} else if exists {
			thumbnailURL = uc.imageRepo.ObjectURL(thumbnailKey)
		}

		items = append(items, entity.ImageListItem{
			Name:         obj.Key,
			OriginalURL:  originalURL,
			ThumbnailURL: thumbnailURL,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}

	// новые сверху; записи без даты - в самом низу
	sort.SliceStable(items, func(i, j int) bool {
		return modTime(items[i]).After(modTime(items[j]))
	})

	return items, nil
}

func (uc *ImageUseCase) DownloadImage(ctx context.Context, key string) (io.ReadCloser, string, error) {
	body, err := uc.imageRepo.Download(ctx, key)
	if err != nil {
		return nil, "", fmt.Errorf("ImageUseCase - DownloadImage - uc.imageRepo.Download: %w", err)
	}

	return body, ContentTypeByExtension(filepath.Ext(key)), nil
}

func isThumbnailKey(key string) bool {
	return strings.HasPrefix(key, entity.ThumbnailPrefix)
}

func modTime(item entity.ImageListItem) time.Time {
	if item.LastModified == nil {
		return time.Time{}
	}

	return *item.LastModified
}
