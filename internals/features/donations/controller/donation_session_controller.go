package controller

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"globalhearts_backend/internals/features/donations/dto"
	"globalhearts_backend/internals/features/donations/model"
	"globalhearts_backend/internals/features/donations/service"
	helper "globalhearts_backend/internals/helpers"
)

// AppealLookup resolves "slug" or "slug:option" to the amount a new session starts with.
type AppealLookup interface {
	SuggestedAmount(ctx context.Context, ref string) (amount *decimal.Decimal, found bool, err error)
}

/*
	========================================================
	  Controller
	========================================================
*/

type DonationSessionController struct {
	RT          *service.Runtime
	Appeals     AppealLookup
	ReceiptBase string // e.g. /api/public/donations/receipts
	Validate    *validator.Validate
}

func NewDonationSessionController(rt *service.Runtime, appeals AppealLookup, receiptBase string) *DonationSessionController {
	return &DonationSessionController{
		RT:          rt,
		Appeals:     appeals,
		ReceiptBase: strings.TrimRight(receiptBase, "/"),
		Validate:    helper.NewValidator(),
	}
}

/* ===================== Helpers ===================== */

func (ctrl *DonationSessionController) session(c *fiber.Ctx) (*service.Session, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, service.ErrSessionNotFound
	}
	return ctrl.RT.Store.Get(id)
}

func (ctrl *DonationSessionController) view(s *service.Session) dto.SessionView {
	snap := s.Snapshot()
	receiptURL := ""
	if snap.Phase == service.PhaseConfirmation && snap.Transaction != nil {
		tok, err := ctrl.RT.Tokens.Issue(snap.ID, snap.Transaction.TransactionID)
		if err != nil {
			log.Printf("[ERROR] receipt token for session %s: %v", snap.ID, err)
		} else {
			receiptURL = ctrl.ReceiptBase + "/" + tok
		}
	}
	return dto.NewSessionView(snap, receiptURL, s.DrainToasts())
}

// fail maps domain errors to HTTP statuses. s may be nil.
func (ctrl *DonationSessionController) fail(c *fiber.Ctx, s *service.Session, err error) error {
	if ve, ok := service.AsValidationError(err); ok {
		var data any
		if s != nil {
			data = fiber.Map{"kind": ve.Kind, "title": ve.Title, "session": ctrl.view(s)}
		}
		return helper.JsonErrorWithData(c, fiber.StatusUnprocessableEntity, ve.Message, data)
	}

	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		var data any
		if s != nil {
			data = ctrl.view(s)
		}
		return helper.JsonErrorWithData(c, fiber.StatusConflict, err.Error(), data)
	case errors.Is(err, service.ErrPaymentMethodMismatch),
		errors.Is(err, dto.ErrInputForOtherMethod),
		errors.Is(err, model.ErrInvalidPreset),
		errors.Is(err, model.ErrUnknownPaymentMethod):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrReceiptTokenInvalid),
		errors.Is(err, service.ErrNoTransaction):
		return helper.JsonError(c, fiber.StatusGone, "This receipt link is no longer valid.")
	case errors.Is(err, service.ErrProcessorUnavailable):
		return helper.JsonError(c, fiber.StatusServiceUnavailable, err.Error())
	default:
		log.Printf("[ERROR] donation request %s %s: %v", c.Method(), c.Path(), err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
}

func (ctrl *DonationSessionController) parse(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}

/* ===================== Handlers ===================== */

// GET /donations/options
func (ctrl *DonationSessionController) Options(c *fiber.Ctx) error {
	helper.SetPublicCache(c, 300)
	return helper.JsonOK(c, "ok", dto.NewOptionsView(ctrl.RT.Bank, ctrl.RT.Store.Config().Rules.RequirePolicy))
}

// POST /donations/sessions
func (ctrl *DonationSessionController) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := ctrl.parse(c, &req); err != nil {
		return err
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var seed *decimal.Decimal
	switch {
	case req.Amount != nil:
		v := decimal.NewFromFloat(*req.Amount).Round(2)
		seed = &v
	case req.AppealRef() != "":
		if ctrl.Appeals == nil {
			return helper.JsonError(c, fiber.StatusNotFound, "appeal not found")
		}
		amount, found, err := ctrl.Appeals.SuggestedAmount(c.UserContext(), req.AppealRef())
		if err != nil {
			return ctrl.fail(c, nil, err)
		}
		if !found {
			return helper.JsonError(c, fiber.StatusNotFound, "appeal not found")
		}
		seed = amount
	}

	s := ctrl.RT.Store.Create()
	if err := s.Open(seed); err != nil {
		_ = ctrl.RT.Store.Delete(s.ID())
		return ctrl.fail(c, nil, err)
	}
	log.Printf("[INFO] 💝 donation session %s opened", s.ID())
	helper.SetNoStore(c)
	return helper.JsonCreated(c, "donation session opened", ctrl.view(s))
}

// GET /donations/sessions/:id[?wait=true]
func (ctrl *DonationSessionController) GetSession(c *fiber.Ctx) error {
	s, err := ctrl.session(c)
	if err != nil {
		return ctrl.fail(c, nil, err)
	}
	if c.QueryBool("wait") {
		ctx, cancel := context.WithTimeout(c.UserContext(), ctrl.waitTimeout())
		defer cancel()
		// a timeout just returns the current (processing) view
		_ = s.Wait(ctx)
	}
	helper.SetNoStore(c)
	return helper.JsonOK(c, "ok", ctrl.view(s))
}

func (ctrl *DonationSessionController) waitTimeout() time.Duration {
	if ctrl.RT.WaitTimeout > 0 {
		return ctrl.RT.WaitTimeout
	}
	return 5 * time.Second
}

// POST /donations/sessions/:id/open
func (ctrl *DonationSessionController) Open(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := ctrl.parse(c, &req); err != nil {
		return err
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	s, err := ctrl.session(c)
	if err != nil {
		return ctrl.fail(c, nil, err)
	}
	var seed *decimal.Decimal
	if req.Amount != nil {
		v := decimal.NewFromFloat(*req.Amount).Round(2)
		seed = &v
	}
	if err := s.Open(seed); err != nil {
		return ctrl.fail(c, s, err)
	}
	return helper.JsonOK(c, "donation session opened", ctrl.view(s))
}

// POST /donations/sessions/:id/method
func (ctrl *DonationSessionController) ChooseMethod(c *fiber.Ctx) error {
	var req dto.ChooseMethodRequest
	if err := ctrl.parse(c, &req); err != nil {
		return err
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	s, err := ctrl.session(c)
	if err != nil {
		return ctrl.fail(c, nil, err)
	}
	if err := s.ChooseMethod(model.PaymentMethod(req.Method)); err != nil {
		return ctrl.fail(c, s, err)
	}
	return helper.JsonOK(c, "payment method chosen", ctrl.view(s))
}

// POST /donations/sessions/:id/back
func (ctrl *DonationSessionController) Back(c *fiber.Ctx) error {
	s, err := ctrl.session(c)
	if err != nil {
		return ctrl.fail(c, nil, err)
	}
	if err := s.Back(); err != nil {
		return ctrl.fail(c, s, err)
	}
	return helper.JsonOK(c, "ok", ctrl.view(s))
}

// PATCH /donations/sessions/:id/draft
func (ctrl *DonationSessionController) UpdateDraft(c *fiber.Ctx) error {
	var req dto.UpdateDraftRequest
	if err := ctrl.parse(c, &req); err != nil {
		return err
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	s, err := ctrl.session(c)
	if err != nil {
		return ctrl.fail(c, nil, err)
	}
	if err := s.UpdateDraft(req.Apply); err != nil {
		return ctrl.fail(c, s, err)
	}
	return helper.JsonUpdated(c, "draft updated", ctrl.view(s))
}

// POST /donations/sessions/:id/submit
func (ctrl *DonationSessionController) Submit(c *fiber.Ctx) error {
	s, err := ctrl.session(c)
	if err != nil {
		return ctrl.fail(c, nil, err)
	}
	if err := s.Submit(); err != nil {
		return ctrl.fail(c, s, err)
	}
	return helper.JsonAccepted(c, "processing donation", ctrl.view(s))
}

// POST /donations/sessions/:id/close
func (ctrl *DonationSessionController) Close(c *fiber.Ctx) error {
	s, err := ctrl.session(c)
	if err != nil {
		return ctrl.fail(c, nil, err)
	}
	s.Close()
	return helper.JsonOK(c, "donation session closed", ctrl.view(s))
}

// DELETE /donations/sessions/:id
func (ctrl *DonationSessionController) DeleteSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return ctrl.fail(c, nil, service.ErrSessionNotFound)
	}
	if err := ctrl.RT.Store.Delete(id); err != nil {
		return ctrl.fail(c, nil, err)
	}
	return helper.JsonDeleted(c, "donation session removed", fiber.Map{"id": id.String()})
}

// GET /donations/receipts/:token
func (ctrl *DonationSessionController) DownloadReceipt(c *fiber.Ctx) error {
	sid, txID, err := ctrl.RT.Tokens.Parse(c.Params("token"))
	if err != nil {
		return ctrl.fail(c, nil, err)
	}
	s, err := ctrl.RT.Store.Get(sid)
	if err != nil || !s.TransactionMatches(txID) {
		return ctrl.fail(c, nil, service.ErrNoTransaction)
	}
	filename, body, err := s.Receipt(ctrl.RT.Org)
	if err != nil {
		return ctrl.fail(c, nil, err)
	}
	helper.SetNoStore(c)
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(body)
}
