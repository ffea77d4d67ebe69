package v1

import (
	"github.com/andreyxaxa/Image-Hosting/internal/usecase"
	"github.com/andreyxaxa/Image-Hosting/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

func NewImageRoutes(router fiber.Router, img usecase.ImageUseCase, l logger.Interface) {
	r := &V1{img: img, logger: l}

	{
		// API
		router.Post("/upload", r.uploadImage)
		router.Get("/list-images", r.listImages)
		router.Get("/image/+", r.downloadImage)

		// UI
		router.Get("/", r.showUI)
	}
}
