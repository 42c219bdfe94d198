package route

import (
	"github.com/gofiber/fiber/v2"

	"globalhearts_backend/internals/features/engagement/newsletter/controller"
	"globalhearts_backend/internals/features/engagement/service"
	"globalhearts_backend/internals/middlewares"
)

func NewsletterPublicRoutes(api fiber.Router, sim *service.FormSimulator) {
	ctrl := controller.NewNewsletterController(sim)

	newsletter := api.Group("/newsletter")
	newsletter.Post("/subscribe", middlewares.FormRateLimiter(), ctrl.Subscribe)
}
