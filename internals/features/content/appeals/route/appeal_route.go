package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"globalhearts_backend/internals/features/content/appeals/controller"
)

func AppealPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAppealController(db)

	appeals := api.Group("/appeals")
	appeals.Get("/", ctrl.ListAppeals)          // 📄 grouped by category
	appeals.Get("/:slug", ctrl.GetAppealBySlug) // 🔍 detail + price options
}
