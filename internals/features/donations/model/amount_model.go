package model

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

/* ===================== Presets ===================== */

// DonationPresetAmounts are the quick-pick buttons shown above the custom field.
var DonationPresetAmounts = []decimal.Decimal{
	decimal.NewFromInt(500),
	decimal.NewFromInt(100),
	decimal.NewFromInt(50),
	decimal.NewFromInt(25),
}

var ErrInvalidPreset = errors.New("preset amount must be greater than zero")

var (
	reNonAmountChars = regexp.MustCompile(`[^0-9.]`)
	reAmountPrefix   = regexp.MustCompile(`^[0-9]*(\.[0-9]*)?`)
)

/* ===================== Selector ===================== */

// AmountSelector holds either a preset amount or free-form custom text, never both.
type AmountSelector struct {
	preset *decimal.Decimal
	custom string
}

// SelectPreset picks a preset (or caller-seeded) amount and clears the custom text.
func (a *AmountSelector) SelectPreset(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidPreset
	}
	v := amount
	a.preset = &v
	a.custom = ""
	return nil
}

// SetCustomAmount keeps only digits and '.' from text and clears the preset.
func (a *AmountSelector) SetCustomAmount(text string) {
	a.custom = reNonAmountChars.ReplaceAllString(text, "")
	a.preset = nil
}

// Clear drops both sources; the base amount becomes zero.
func (a *AmountSelector) Clear() {
	a.preset = nil
	a.custom = ""
}

func (a AmountSelector) Preset() (decimal.Decimal, bool) {
	if a.preset == nil {
		return decimal.Zero, false
	}
	return *a.preset, true
}

func (a AmountSelector) CustomAmount() string { return a.custom }

// BaseAmount returns the preset when set, else the parsed custom text, else zero.
func (a AmountSelector) BaseAmount() decimal.Decimal {
	if a.preset != nil {
		return *a.preset
	}
	return ParseAmount(a.custom)
}

// ParseAmount reads the longest leading "digits[.digits]" prefix of s,
// the same way a browser parseFloat would. Anything unreadable is zero.
func ParseAmount(s string) decimal.Decimal {
	p := reAmountPrefix.FindString(strings.TrimSpace(s))
	p = strings.TrimSuffix(p, ".")
	if p == "" {
		return decimal.Zero
	}
	if strings.HasPrefix(p, ".") {
		p = "0" + p
	}
	d, err := decimal.NewFromString(p)
	if err != nil {
		return decimal.Zero
	}
	return d
}
