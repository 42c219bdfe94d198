package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AppealRoutes "globalhearts_backend/internals/features/content/appeals/route"
	NewsRoutes "globalhearts_backend/internals/features/content/news/route"
	ProgramRoutes "globalhearts_backend/internals/features/content/programs/route"
	GalleryRoutes "globalhearts_backend/internals/features/gallery/route"
	galleryService "globalhearts_backend/internals/features/gallery/service"
)

// Read-only site content: /api/public/appeals, /programs, /news, /gallery
func ContentPublicRoutes(api fiber.Router, db *gorm.DB, gallery *galleryService.Gallery) {
	AppealRoutes.AppealPublicRoutes(api, db)
	ProgramRoutes.ProgramPublicRoutes(api, db)
	NewsRoutes.NewsPublicRoutes(api, db)
	GalleryRoutes.GalleryPublicRoutes(api, gallery, "/api/public/gallery")
}
