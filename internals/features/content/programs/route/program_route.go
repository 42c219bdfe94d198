package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"globalhearts_backend/internals/features/content/programs/controller"
)

func ProgramPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProgramController(db)

	programs := api.Group("/programs")
	programs.Get("/", ctrl.ListPrograms)
	programs.Get("/:slug", ctrl.GetProgramBySlug)
}
