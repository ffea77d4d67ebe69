package v1

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/andreyxaxa/Image-Hosting/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/Image-Hosting/internal/controller/restapi/v1/validate"
	"github.com/andreyxaxa/Image-Hosting/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
)

// @Summary  	Upload image
// @Description Uploads image to the object store and queues thumbnail generation
// @Tags 		images
// @Accept 		mpfd
// @Produce 	json
// @Param 		file formData file true "Image file(jpg, jpeg, png, gif, webp, bmp)"
// @Success 	200 {object} response.Upload
// @Failure 	400 {object} response.Error "Missing file, unsupported extension or file too large"
// @Failure 	500 {object} response.Error "Storage problems"
// @Router 		/upload [post]
func (r *V1) uploadImage(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "no file provided")
	}

	// 1. валидация расширения
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !validate.AllowedExtensions[ext] {
		return errorResponse(ctx, http.StatusBadRequest,
			"unsupported file type. Allowed formats: JPG, PNG, GIF, WEBP, BMP")
	}

	// 2. валидация размера; ровно 10MB ещё проходит
	if file.Size > validate.MaxFileSize {
		return errorResponse(ctx, http.StatusBadRequest, "file too large. Maximum size: 10MB")
	}

	// 3. открытие файла
	fileReader, err := file.Open()
	if err != nil {
		r.logger.Error(err, "restapi - v1 - uploadImage")

		return errorResponse(ctx, http.StatusInternalServerError, "problems with opening the file")
	}
	defer fileReader.Close()

	// 4. загружаем
	image, err := r.img.UploadImage(ctx.UserContext(), fileReader, file.Filename, file.Size)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - uploadImage")

		return errorResponse(ctx, http.StatusInternalServerError, fmt.Sprintf("upload failed: %s", err))
	}

	// 5. ответ
	resp := response.Upload{
		Success:          true,
		Message:          "file uploaded successfully",
		Filename:         image.Key,
		OriginalFilename: image.OriginalName,
		URL:              image.URL,
		Size:             image.Size,
		Timestamp:        image.Timestamp,
	}

	return ctx.Status(http.StatusOK).JSON(resp)
}

// @Summary 	List images
// @Description Lists stored originals with their thumbnail URLs, newest first
// @Tags 		images
// @Produce 	json
// @Success 	200 {object} response.List
// @Failure 	500 {object} response.Error "Storage problems"
// @Router 		/list-images [get]
func (r *V1) listImages(ctx *fiber.Ctx) error {
	items, err := r.img.ListImages(ctx.UserContext())
	if err != nil {
		r.logger.Error(err, "restapi - v1 - listImages")

		return errorResponse(ctx, http.StatusInternalServerError, fmt.Sprintf("failed to list images: %s", err))
	}

	images := make([]response.Image, 0, len(items))

	for _, item := range items {
		var lastModified *string
		if item.LastModified != nil {
			s := item.LastModified.UTC().Format(time.RFC3339)
			lastModified = &s
		}

		images = append(images, response.Image{
			Name:         item.Name,
			OriginalURL:  item.OriginalURL,
			ThumbnailURL: item.ThumbnailURL,
			Size:         item.Size,
			LastModified: lastModified,
		})
	}

	resp := response.List{
		Success: true,
		Images:  images,
		Count:   len(images),
	}

	return ctx.Status(http.StatusOK).JSON(resp)
}

// @Summary 	Download image
// @Description Streams an object's bytes with its extension-derived content type
// @Tags 		images
// @Produce 	image/jpeg,image/png,image/gif,image/webp,image/bmp
// @Param 		key path string true "Object key"
// @Success 	200 {file} 	binary
// @Failure 	404 {object} response.Error "Image not found"
// @Failure 	500 {object} response.Error "Storage problems"
// @Router 		/image/{key} [get]
func (r *V1) downloadImage(ctx *fiber.Ctx) error {
	key := ctx.Params("+")

	if key == "" {
		return errorResponse(ctx, http.StatusBadRequest, "invalid key")
	}

	body, contentType, err := r.img.DownloadImage(ctx.UserContext(), key)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "image not found")
		}
		r.logger.Error(err, "restapi - v1 - downloadImage")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	ctx.Set(fiber.HeaderContentType, contentType)

	return ctx.SendStream(body)
}
