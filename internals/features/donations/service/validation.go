package service

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"globalhearts_backend/internals/features/donations/model"
)

var validate = validator.New()

// ValidationRules toggles the optional checks of the gate.
type ValidationRules struct {
	RequirePolicy bool
}

// Validate returns nil or the first *ValidationError in gate order:
// amount, personal info, email format, method inputs, policy.
func Validate(d *model.Draft, rules ValidationRules) error {
	if ve := validateDraft(d, rules); ve != nil {
		return ve
	}
	return nil
}

func validateDraft(d *model.Draft, rules ValidationRules) *ValidationError {
	if d == nil || !d.FinalAmount().IsPositive() {
		return newValidationError(KindInvalidAmount)
	}

	email := strings.TrimSpace(d.Email)
	if strings.TrimSpace(d.FirstName) == "" || strings.TrimSpace(d.LastName) == "" || email == "" {
		return newValidationError(KindMissingPersonalInfo)
	}
	if err := validate.Var(email, "email"); err != nil {
		return newValidationError(KindInvalidEmail)
	}

	switch p := d.Payment.(type) {
	case nil:
		return newValidationError(KindMissingPaymentMethod)
	case model.CardDetails:
		if len(p.MissingFields()) > 0 {
			return newValidationError(KindMissingCardDetails)
		}
	case model.MobileMoneyDetails:
		if len(p.MissingFields()) > 0 {
			return newValidationError(KindMissingMobileMoneyDetails)
		}
	}

	if rules.RequirePolicy && !d.AcceptedPolicy {
		return newValidationError(KindPolicyNotAccepted)
	}
	return nil
}
