// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationService "globalhearts_backend/internals/features/donations/service"
	engagementService "globalhearts_backend/internals/features/engagement/service"
	galleryService "globalhearts_backend/internals/features/gallery/service"
	routeDetails "globalhearts_backend/internals/route/details"
)

var startTime time.Time

// Deps is everything the public API is built from.
type Deps struct {
	DB         *gorm.DB
	Donations  *donationService.Runtime
	Gallery    *galleryService.Gallery
	Newsletter *engagementService.FormSimulator
	Contact    *engagementService.FormSimulator
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	BaseRoutes(app, d.DB)

	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	log.Println("[INFO] Setting up DonationRoutes...")
	routeDetails.DonationPublicRoutes(public, d.DB, d.Donations)

	log.Println("[INFO] Setting up ContentRoutes...")
	routeDetails.ContentPublicRoutes(public, d.DB, d.Gallery)

	log.Println("[INFO] Setting up EngagementRoutes...")
	routeDetails.EngagementPublicRoutes(public, d.Newsletter, d.Contact)
}
