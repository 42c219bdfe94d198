package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"globalhearts_backend/internals/features/engagement/newsletter/dto"
	"globalhearts_backend/internals/features/engagement/service"
	helper "globalhearts_backend/internals/helpers"
	"globalhearts_backend/internals/helpers/toast"
)

type NewsletterController struct {
	Sim      *service.FormSimulator
	Validate *validator.Validate
}

func NewNewsletterController(sim *service.FormSimulator) *NewsletterController {
	return &NewsletterController{Sim: sim, Validate: helper.NewValidator()}
}

// POST /newsletter/subscribe
func (ctrl *NewsletterController) Subscribe(c *fiber.Ctx) error {
	buf := toast.NewBuffer(0)
	notify := toast.Multi{buf, toast.LogNotifier{Scope: "newsletter"}}

	var req dto.SubscribeRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}
	req.Normalize()

	if err := ctrl.Validate.Struct(req); err != nil {
		notify.Notify("Invalid Email", "Please enter a valid email address.", toast.SeverityDestructive)
		return helper.JsonErrorWithData(c, fiber.StatusUnprocessableEntity,
			"Please enter a valid email address.",
			dto.SubscribeResponse{Toasts: buf.Drain()})
	}

	ref, err := ctrl.Sim.Process(c.UserContext())
	if err != nil {
		log.Printf("[WARN] newsletter subscription not completed: %v", err)
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Subscription could not be completed. Please try again.")
	}

	log.Printf("[INFO] 📬 newsletter subscription ref=%s email=%s", ref, helper.EmailFingerprint(req.Email))
	notify.Notify("Successfully Subscribed!", "Thank you for joining our newsletter.", toast.SeverityDefault)
	helper.SetNoStore(c)
	return helper.JsonOK(c, "subscribed", dto.SubscribeResponse{Reference: ref, Toasts: buf.Drain()})
}
