package model

import (
	"errors"
	"strings"
	"unicode"
)

/* ===================== Constants ===================== */

type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodMobileMoney  PaymentMethod = "mobile_money"
)

// PaymentMethods in the order the method-choice screen lists them.
var PaymentMethods = []PaymentMethod{
	PaymentMethodCard,
	PaymentMethodBankTransfer,
	PaymentMethodMobileMoney,
}

const (
	MobileNetworkMTN    = "mtn"
	MobileNetworkAirtel = "airtel"
)

var ErrUnknownPaymentMethod = errors.New("unknown payment method")

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodMobileMoney:
		return true
	}
	return false
}

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodCard:
		return "Debit or Credit Card"
	case PaymentMethodBankTransfer:
		return "Bank Transfer"
	case PaymentMethodMobileMoney:
		return "Mobile Money"
	default:
		return string(m)
	}
}

/* ===================== Variants ===================== */

// PaymentDetails is implemented by one struct per method; each carries only
// the inputs that method needs.
type PaymentDetails interface {
	Method() PaymentMethod
	// MissingFields lists the required inputs that are still blank.
	MissingFields() []string
}

// CardDetails are kept in the draft only; they never reach a transaction record.
type CardDetails struct {
	Number string
	Expiry string
	CVV    string
}

func (CardDetails) Method() PaymentMethod { return PaymentMethodCard }

func (c CardDetails) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(c.Number) == "" {
		missing = append(missing, "card_number")
	}
	if strings.TrimSpace(c.Expiry) == "" {
		missing = append(missing, "expiry_date")
	}
	if strings.TrimSpace(c.CVV) == "" {
		missing = append(missing, "cvv")
	}
	return missing
}

// LastFour is the only part of the card number ever shown back.
func (c CardDetails) LastFour() string {
	d := onlyDigits(c.Number)
	if len(d) <= 4 {
		return d
	}
	return d[len(d)-4:]
}

// BankTransferDetails has no donor inputs; the account details are static display data.
type BankTransferDetails struct{}

func (BankTransferDetails) Method() PaymentMethod   { return PaymentMethodBankTransfer }
func (BankTransferDetails) MissingFields() []string { return nil }

type MobileMoneyDetails struct {
	Network     string
	PhoneNumber string
}

func (MobileMoneyDetails) Method() PaymentMethod { return PaymentMethodMobileMoney }

func (m MobileMoneyDetails) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(m.Network) == "" {
		missing = append(missing, "network")
	}
	if strings.TrimSpace(m.PhoneNumber) == "" {
		missing = append(missing, "phone_number")
	}
	return missing
}

// NewPaymentDetails returns the empty variant for m.
func NewPaymentDetails(m PaymentMethod) (PaymentDetails, error) {
	switch m {
	case PaymentMethodCard:
		return CardDetails{}, nil
	case PaymentMethodBankTransfer:
		return BankTransferDetails{}, nil
	case PaymentMethodMobileMoney:
		return MobileMoneyDetails{}, nil
	default:
		return nil, ErrUnknownPaymentMethod
	}
}

/* ===================== Input formatting ===================== */

// FormatCardNumber keeps up to 16 digits and groups them by four ("1234 5678 ...").
func FormatCardNumber(v string) string {
	d := onlyDigits(v)
	if len(d) > 16 {
		d = d[:16]
	}
	if len(d) < 4 {
		return d
	}
	var parts []string
	for i := 0; i < len(d); i += 4 {
		end := i + 4
		if end > len(d) {
			end = len(d)
		}
		parts = append(parts, d[i:end])
	}
	return strings.Join(parts, " ")
}

// FormatExpiryDate turns "1227" into "12/27".
func FormatExpiryDate(v string) string {
	d := onlyDigits(v)
	if len(d) < 2 {
		return d
	}
	if len(d) > 4 {
		d = d[:4]
	}
	return d[:2] + "/" + d[2:]
}

// SanitizeCVV keeps at most four digits.
func SanitizeCVV(v string) string {
	d := onlyDigits(v)
	if len(d) > 4 {
		d = d[:4]
	}
	return d
}

// SanitizePhoneNumber keeps digits and a single leading '+'.
func SanitizePhoneNumber(v string) string {
	v = strings.TrimSpace(v)
	d := onlyDigits(v)
	if strings.HasPrefix(v, "+") && d != "" {
		return "+" + d
	}
	return d
}

func onlyDigits(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
