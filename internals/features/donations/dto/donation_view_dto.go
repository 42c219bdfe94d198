package dto

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"globalhearts_backend/internals/features/donations/model"
	"globalhearts_backend/internals/features/donations/service"
	"globalhearts_backend/internals/helpers/toast"
)

var ErrInputForOtherMethod = errors.New("payment inputs do not belong to the chosen method")

/* ===================== Session ===================== */

type PaymentView struct {
	Method        string   `json:"method"`
	Label         string   `json:"label"`
	CardLastFour  string   `json:"card_last_four,omitempty"`
	CardComplete  bool     `json:"card_complete,omitempty"`
	Network       string   `json:"network,omitempty"`
	PhoneNumber   string   `json:"phone_number,omitempty"`
	MissingFields []string `json:"missing_fields"`
}

type DraftView struct {
	DonationType   string       `json:"donation_type"`
	PresetAmount   *string      `json:"preset_amount"`
	CustomAmount   string       `json:"custom_amount"`
	CoverFees      bool         `json:"cover_fees"`
	BaseAmount     string       `json:"base_amount"`
	FeeAmount      string       `json:"fee_amount"`
	FinalAmount    string       `json:"final_amount"`
	FirstName      string       `json:"first_name"`
	LastName       string       `json:"last_name"`
	Email          string       `json:"email"`
	Comment        string       `json:"comment"`
	AcceptedPolicy bool         `json:"accepted_policy"`
	ReceiveUpdates bool         `json:"receive_updates"`
	Payment        *PaymentView `json:"payment"`
}

type TransactionView struct {
	TransactionID  string    `json:"transaction_id"`
	BaseAmount     string    `json:"base_amount"`
	FeeAmount      string    `json:"fee_amount"`
	FinalAmount    string    `json:"final_amount"`
	CoverFees      bool      `json:"cover_fees"`
	DonationType   string    `json:"donation_type"`
	PaymentMethod  string    `json:"payment_method"`
	PaymentLabel   string    `json:"payment_label"`
	Date           time.Time `json:"date"`
	DonorFirstName string    `json:"donor_first_name"`
	DonorLastName  string    `json:"donor_last_name"`
	DonorEmail     string    `json:"donor_email"`
	Comment        string    `json:"comment,omitempty"`
	RequiresReview bool      `json:"requires_review"`
}

type SessionView struct {
	ID          string           `json:"id"`
	Phase       string           `json:"phase"`
	Draft       *DraftView       `json:"draft"`
	Transaction *TransactionView `json:"transaction"`
	ReceiptURL  string           `json:"receipt_url,omitempty"`
	Toasts      []toast.Toast    `json:"toasts"`
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func NewPaymentView(p model.PaymentDetails) *PaymentView {
	if p == nil {
		return nil
	}
	v := &PaymentView{
		Method:        string(p.Method()),
		Label:         p.Method().Label(),
		MissingFields: p.MissingFields(),
	}
	if v.MissingFields == nil {
		v.MissingFields = []string{}
	}
	switch t := p.(type) {
	case model.CardDetails:
		v.CardLastFour = t.LastFour()
		v.CardComplete = len(v.MissingFields) == 0
	case model.MobileMoneyDetails:
		v.Network = t.Network
		v.PhoneNumber = t.PhoneNumber
	}
	return v
}

func NewDraftView(d *model.Draft) *DraftView {
	if d == nil {
		return nil
	}
	v := &DraftView{
		DonationType:   string(d.DonationType),
		CustomAmount:   d.Amount.CustomAmount(),
		CoverFees:      d.CoverFees,
		BaseAmount:     money(d.BaseAmount()),
		FeeAmount:      money(d.FeeAmount()),
		FinalAmount:    money(d.FinalAmount()),
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Email:          d.Email,
		Comment:        d.Comment,
		AcceptedPolicy: d.AcceptedPolicy,
		ReceiveUpdates: d.ReceiveUpdates,
		Payment:        NewPaymentView(d.Payment),
	}
	if p, ok := d.Amount.Preset(); ok {
		s := money(p)
		v.PresetAmount = &s
	}
	return v
}

func NewTransactionView(tx *model.TransactionRecord) *TransactionView {
	if tx == nil {
		return nil
	}
	return &TransactionView{
		TransactionID:  tx.TransactionID,
		BaseAmount:     money(tx.BaseAmount),
		FeeAmount:      money(tx.FeeAmount),
		FinalAmount:    money(tx.FinalAmount),
		CoverFees:      tx.CoverFees,
		DonationType:   string(tx.DonationType),
		PaymentMethod:  string(tx.PaymentMethod),
		PaymentLabel:   tx.PaymentMethod.Label(),
		Date:           tx.Date,
		DonorFirstName: tx.DonorFirstName,
		DonorLastName:  tx.DonorLastName,
		DonorEmail:     tx.DonorEmail,
		Comment:        tx.Comment,
		RequiresReview: tx.RequiresReview,
	}
}

// NewSessionView renders a snapshot; receiptURL is only set in confirmation.
func NewSessionView(snap service.Snapshot, receiptURL string, toasts []toast.Toast) SessionView {
	if toasts == nil {
		toasts = []toast.Toast{}
	}
	return SessionView{
		ID:          snap.ID.String(),
		Phase:       string(snap.Phase),
		Draft:       NewDraftView(snap.Draft),
		Transaction: NewTransactionView(snap.Transaction),
		ReceiptURL:  receiptURL,
		Toasts:      toasts,
	}
}

/* ===================== Options ===================== */

type MethodOption struct {
	Method string `json:"method"`
	Label  string `json:"label"`
}

type OptionsView struct {
	PresetAmounts    []string            `json:"preset_amounts"`
	FeeRate          string              `json:"fee_rate"`
	Currency         string              `json:"currency"`
	DonationTypes    []MethodOption      `json:"donation_types"`
	PaymentMethods   []MethodOption      `json:"payment_methods"`
	MobileNetworks   []string            `json:"mobile_networks"`
	BankDetails      service.BankDetails `json:"bank_details"`
	CommentMaxLength int                 `json:"comment_max_length"`
	RequirePolicy    bool                `json:"require_policy"`
}

func NewOptionsView(bank service.BankDetails, requirePolicy bool) OptionsView {
	v := OptionsView{
		FeeRate:          model.FeeCoverageRate.String(),
		Currency:         "USD",
		MobileNetworks:   []string{model.MobileNetworkMTN, model.MobileNetworkAirtel},
		BankDetails:      bank,
		CommentMaxLength: model.CommentMaxLength,
		RequirePolicy:    requirePolicy,
	}
	for _, p := range model.DonationPresetAmounts {
		v.PresetAmounts = append(v.PresetAmounts, money(p))
	}
	for _, t := range []model.DonationType{model.DonationTypeOneTime, model.DonationTypeRecurring} {
		v.DonationTypes = append(v.DonationTypes, MethodOption{Method: string(t), Label: t.Label()})
	}
	for _, m := range model.PaymentMethods {
		v.PaymentMethods = append(v.PaymentMethods, MethodOption{Method: string(m), Label: m.Label()})
	}
	return v
}
