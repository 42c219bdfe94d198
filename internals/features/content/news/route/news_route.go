package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"globalhearts_backend/internals/features/content/news/controller"
)

func NewsPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNewsController(db)

	news := api.Group("/news")
	news.Get("/", ctrl.ListNews)
	news.Get("/:slug", ctrl.GetNewsBySlug)
}
