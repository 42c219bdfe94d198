package details

import (
	"github.com/gofiber/fiber/v2"

	ContactRoutes "globalhearts_backend/internals/features/engagement/contact/route"
	NewsletterRoutes "globalhearts_backend/internals/features/engagement/newsletter/route"
	"globalhearts_backend/internals/features/engagement/service"
)

func EngagementPublicRoutes(api fiber.Router, newsletter, contact *service.FormSimulator) {
	NewsletterRoutes.NewsletterPublicRoutes(api, newsletter)
	ContactRoutes.ContactPublicRoutes(api, contact)
}
