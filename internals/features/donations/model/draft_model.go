package model

import (
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

type DonationType string

const (
	DonationTypeOneTime   DonationType = "one-time"
	DonationTypeRecurring DonationType = "recurring"
)

func (t DonationType) Valid() bool {
	return t == DonationTypeOneTime || t == DonationTypeRecurring
}

func (t DonationType) Label() string {
	if t == DonationTypeRecurring {
		return "Monthly (recurring)"
	}
	return "One-time"
}

// CommentMaxLength bounds the optional donor comment (in characters).
const CommentMaxLength = 500

// Draft is the in-progress donation form of one open session.
type Draft struct {
	DonationType DonationType
	Amount       AmountSelector
	CoverFees    bool

	// nil until a payment method is chosen
	Payment PaymentDetails

	FirstName string
	LastName  string
	Email     string
	Comment   string

	AcceptedPolicy bool
	ReceiveUpdates bool
}

// NewDraft returns the defaults the form opens with.
func NewDraft() *Draft {
	return &Draft{
		DonationType:   DonationTypeOneTime,
		ReceiveUpdates: true,
	}
}

// SetComment stores s cut to CommentMaxLength characters.
func (d *Draft) SetComment(s string) {
	if utf8.RuneCountInString(s) > CommentMaxLength {
		s = string([]rune(s)[:CommentMaxLength])
	}
	d.Comment = s
}

func (d *Draft) PaymentMethod() PaymentMethod {
	if d.Payment == nil {
		return ""
	}
	return d.Payment.Method()
}

func (d *Draft) BaseAmount() decimal.Decimal  { return d.Amount.BaseAmount() }
func (d *Draft) FinalAmount() decimal.Decimal { return FinalAmount(d.BaseAmount(), d.CoverFees) }
func (d *Draft) FeeAmount() decimal.Decimal   { return FeeAmount(d.BaseAmount(), d.CoverFees) }

// Clone returns an independent copy. Amount and payment variants hold values only.
func (d *Draft) Clone() *Draft {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}
