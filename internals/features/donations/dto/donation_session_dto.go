package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"globalhearts_backend/internals/features/donations/model"
)

/* ===================== Requests ===================== */

type CreateSessionRequest struct {
	Amount       *float64 `json:"amount" validate:"omitempty,gt=0"`
	AppealSlug   string   `json:"appeal_slug" validate:"omitempty,max=120"`
	AppealOption string   `json:"appeal_option" validate:"omitempty,max=40"`
}

// AppealRef is "slug" or "slug:option".
func (r CreateSessionRequest) AppealRef() string {
	slug := strings.TrimSpace(r.AppealSlug)
	if opt := strings.TrimSpace(r.AppealOption); opt != "" && slug != "" {
		return slug + ":" + opt
	}
	return slug
}

type ChooseMethodRequest struct {
	Method string `json:"method" validate:"required,oneof=card bank_transfer mobile_money"`
}

type CardInput struct {
	Number *string `json:"number" validate:"omitempty,max=32"`
	Expiry *string `json:"expiry" validate:"omitempty,max=7"`
	CVV    *string `json:"cvv" validate:"omitempty,max=8"`
}

type MobileMoneyInput struct {
	Network     *string `json:"network" validate:"omitempty,oneof=mtn airtel"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
}

// UpdateDraftRequest is a partial update; nil fields are left alone.
// PresetAmount and CustomAmount are mutually exclusive.
type UpdateDraftRequest struct {
	DonationType   *string           `json:"donation_type" validate:"omitempty,oneof=one-time recurring"`
	PresetAmount   *float64          `json:"preset_amount" validate:"omitempty,gt=0,excluded_with=CustomAmount"`
	CustomAmount   *string           `json:"custom_amount" validate:"omitempty,max=32"`
	ClearAmount    bool              `json:"clear_amount"`
	CoverFees      *bool             `json:"cover_fees"`
	FirstName      *string           `json:"first_name" validate:"omitempty,max=100"`
	LastName       *string           `json:"last_name" validate:"omitempty,max=100"`
	Email          *string           `json:"email" validate:"omitempty,max=254"`
	Comment        *string           `json:"comment" validate:"omitempty,max=500"`
	AcceptedPolicy *bool             `json:"accepted_policy"`
	ReceiveUpdates *bool             `json:"receive_updates"`
	Card           *CardInput        `json:"card"`
	MobileMoney    *MobileMoneyInput `json:"mobile_money"`
}

// Apply writes the request into d. Card and mobile money inputs are only
// accepted for the method the draft already has.
func (r UpdateDraftRequest) Apply(d *model.Draft) error {
	if r.DonationType != nil {
		d.DonationType = model.DonationType(*r.DonationType)
	}
	switch {
	case r.ClearAmount:
		d.Amount.Clear()
	case r.PresetAmount != nil:
		if err := d.Amount.SelectPreset(decimal.NewFromFloat(*r.PresetAmount)); err != nil {
			return err
		}
	case r.CustomAmount != nil:
		d.Amount.SetCustomAmount(*r.CustomAmount)
	}
	if r.CoverFees != nil {
		d.CoverFees = *r.CoverFees
	}
	if r.FirstName != nil {
		d.FirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		d.LastName = strings.TrimSpace(*r.LastName)
	}
	if r.Email != nil {
		d.Email = strings.TrimSpace(*r.Email)
	}
	if r.Comment != nil {
		d.SetComment(*r.Comment)
	}
	if r.AcceptedPolicy != nil {
		d.AcceptedPolicy = *r.AcceptedPolicy
	}
	if r.ReceiveUpdates != nil {
		d.ReceiveUpdates = *r.ReceiveUpdates
	}

	if r.Card != nil {
		card, ok := d.Payment.(model.CardDetails)
		if !ok {
			return ErrInputForOtherMethod
		}
		if r.Card.Number != nil {
			card.Number = model.FormatCardNumber(*r.Card.Number)
		}
		if r.Card.Expiry != nil {
			card.Expiry = model.FormatExpiryDate(*r.Card.Expiry)
		}
		if r.Card.CVV != nil {
			card.CVV = model.SanitizeCVV(*r.Card.CVV)
		}
		d.Payment = card
	}
	if r.MobileMoney != nil {
		mm, ok := d.Payment.(model.MobileMoneyDetails)
		if !ok {
			return ErrInputForOtherMethod
		}
		if r.MobileMoney.Network != nil {
			mm.Network = *r.MobileMoney.Network
		}
		if r.MobileMoney.PhoneNumber != nil {
			mm.PhoneNumber = model.SanitizePhoneNumber(*r.MobileMoney.PhoneNumber)
		}
		d.Payment = mm
	}
	return nil
}
