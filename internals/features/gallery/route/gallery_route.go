package route

import (
	"github.com/gofiber/fiber/v2"

	"globalhearts_backend/internals/features/gallery/controller"
	"globalhearts_backend/internals/features/gallery/service"
)

// GalleryPublicRoutes mounts under api; basePath is the public prefix used in listed URLs.
func GalleryPublicRoutes(api fiber.Router, g *service.Gallery, basePath string) {
	ctrl := controller.NewGalleryController(g, basePath)

	gallery := api.Group("/gallery")
	gallery.Get("/", ctrl.List)
	gallery.Get("/:name", ctrl.Original)
	gallery.Get("/:name/thumb", ctrl.Thumbnail)
}
