package route

import (
	"github.com/gofiber/fiber/v2"

	donationController "globalhearts_backend/internals/features/donations/controller"
	"globalhearts_backend/internals/features/donations/service"
	"globalhearts_backend/internals/middlewares"
)

// AllDonationRoutes mounts the donation flow under api (normally /api/public/donations).
func AllDonationRoutes(api fiber.Router, rt *service.Runtime, appeals donationController.AppealLookup) {
	ctrl := donationController.NewDonationSessionController(rt, appeals, "/api/public/donations/receipts")

	api.Get("/options", ctrl.Options)

	sessions := api.Group("/sessions")
	sessions.Post("/", ctrl.CreateSession)
	sessions.Get("/:id", ctrl.GetSession)
	sessions.Delete("/:id", ctrl.DeleteSession)
	sessions.Post("/:id/open", ctrl.Open)
	sessions.Post("/:id/method", ctrl.ChooseMethod)
	sessions.Post("/:id/back", ctrl.Back)
	sessions.Patch("/:id/draft", ctrl.UpdateDraft)
	sessions.Post("/:id/submit", middlewares.SubmitRateLimiter(), ctrl.Submit)
	sessions.Post("/:id/close", ctrl.Close)

	api.Get("/receipts/:token", ctrl.DownloadReceipt)
}
