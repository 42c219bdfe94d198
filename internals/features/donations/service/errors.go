package service

import "errors"

var (
	ErrInvalidTransition     = errors.New("operation not allowed in the current phase")
	ErrSessionNotFound       = errors.New("donation session not found")
	ErrNoTransaction         = errors.New("no completed donation in this session")
	ErrPaymentMethodMismatch = errors.New("payment details do not match the chosen method")
	ErrReceiptTokenInvalid   = errors.New("receipt link is invalid or expired")
)

// Failures a real payment processor could report. The simulated dispatcher never returns them.
var (
	ErrPaymentDeclined      = errors.New("payment declined")
	ErrPaymentTimeout       = errors.New("payment timed out")
	ErrProcessorUnavailable = errors.New("payment processor unavailable")
)

/* ===================== Validation ===================== */

type ValidationKind string

const (
	KindInvalidAmount             ValidationKind = "invalid_amount"
	KindMissingPersonalInfo       ValidationKind = "missing_personal_info"
	KindInvalidEmail              ValidationKind = "invalid_email"
	KindMissingPaymentMethod      ValidationKind = "missing_payment_method"
	KindMissingCardDetails        ValidationKind = "missing_card_details"
	KindMissingMobileMoneyDetails ValidationKind = "missing_mobile_money_details"
	KindPolicyNotAccepted         ValidationKind = "policy_not_accepted"
)

// ValidationError carries the toast shown to the donor.
type ValidationError struct {
	Kind    ValidationKind
	Title   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Title + ": " + e.Message
}

var validationText = map[ValidationKind][2]string{
	KindInvalidAmount:             {"Please select an amount", "Choose a preset amount or enter a custom amount."},
	KindMissingPersonalInfo:       {"Missing Information", "Please fill in your personal details."},
	KindInvalidEmail:              {"Invalid Email", "Please enter a valid email address."},
	KindMissingPaymentMethod:      {"Choose a Payment Method", "Please choose how you would like to give."},
	KindMissingCardDetails:        {"Missing Card Details", "Please fill in all card information."},
	KindMissingMobileMoneyDetails: {"Missing Mobile Money Details", "Please choose your network and enter your phone number."},
	KindPolicyNotAccepted:         {"Please accept the policy", "You must agree to the donation policy to continue."},
}

func newValidationError(kind ValidationKind) *ValidationError {
	txt := validationText[kind]
	return &ValidationError{Kind: kind, Title: txt[0], Message: txt[1]}
}

// AsValidationError unwraps err into a *ValidationError when it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// processorFailureText is the toast for a dispatcher error.
func processorFailureText(err error) (string, string) {
	switch {
	case errors.Is(err, ErrPaymentDeclined):
		return "Payment Declined", "Your payment was declined. Please check your details or try another method."
	case errors.Is(err, ErrPaymentTimeout):
		return "Payment Timed Out", "The payment took too long to complete. Please try again."
	case errors.Is(err, ErrProcessorUnavailable):
		return "Payment Unavailable", "We could not reach the payment processor. Please try again shortly."
	default:
		return "Payment Failed", "Something went wrong while processing your donation. Please try again."
	}
}
