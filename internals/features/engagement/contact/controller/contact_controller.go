package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"globalhearts_backend/internals/features/engagement/contact/dto"
	"globalhearts_backend/internals/features/engagement/service"
	helper "globalhearts_backend/internals/helpers"
	"globalhearts_backend/internals/helpers/toast"
)

type ContactController struct {
	Sim      *service.FormSimulator
	Validate *validator.Validate
}

func NewContactController(sim *service.FormSimulator) *ContactController {
	return &ContactController{Sim: sim, Validate: helper.NewValidator()}
}

// POST /contact
func (ctrl *ContactController) Send(c *fiber.Ctx) error {
	buf := toast.NewBuffer(0)
	notify := toast.Multi{buf, toast.LogNotifier{Scope: "contact"}}

	var req dto.ContactRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}
	req.Normalize()

	if err := ctrl.Validate.Struct(req); err != nil {
		fields := helper.FieldErrors(err)
		title, msg := "Missing Information", "Please fill in your name, email and message."
		if req.Name != "" && req.Email != "" && req.Message != "" {
			if _, bad := fields["email"]; bad {
				title, msg = "Invalid Email", "Please enter a valid email address."
			} else {
				title, msg = "Message Too Long", "Please shorten your message and try again."
			}
		}
		notify.Notify(title, msg, toast.SeverityDestructive)
		return helper.JsonErrorWithData(c, fiber.StatusUnprocessableEntity, msg,
			dto.ContactResponse{Toasts: buf.Drain(), Errors: fields})
	}

	ref, err := ctrl.Sim.Process(c.UserContext())
	if err != nil {
		log.Printf("[WARN] contact message not sent: %v", err)
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Your message could not be sent. Please try again.")
	}

	log.Printf("[INFO] ✉️ contact message ref=%s email=%s chars=%d", ref, helper.EmailFingerprint(req.Email), len([]rune(req.Message)))
	notify.Notify("Message Sent!", "Thank you for reaching out. We'll get back to you soon.", toast.SeverityDefault)
	helper.SetNoStore(c)
	return helper.JsonOK(c, "message sent", dto.ContactResponse{Reference: ref, Toasts: buf.Drain()})
}
