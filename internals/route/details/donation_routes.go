package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	appealService "globalhearts_backend/internals/features/content/appeals/service"
	DonationRoutes "globalhearts_backend/internals/features/donations/routes"
	"globalhearts_backend/internals/features/donations/service"
)

// e.g. /api/public/donations/sessions
func DonationPublicRoutes(api fiber.Router, db *gorm.DB, rt *service.Runtime) {
	DonationRoutes.AllDonationRoutes(api.Group("/donations"), rt, appealService.NewAppealLookup(db))
}
