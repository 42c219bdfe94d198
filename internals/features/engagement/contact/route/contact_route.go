package route

import (
	"github.com/gofiber/fiber/v2"

	"globalhearts_backend/internals/features/engagement/contact/controller"
	"globalhearts_backend/internals/features/engagement/service"
	"globalhearts_backend/internals/middlewares"
)

func ContactPublicRoutes(api fiber.Router, sim *service.FormSimulator) {
	ctrl := controller.NewContactController(sim)

	api.Post("/contact", middlewares.FormRateLimiter(), ctrl.Send)
}
