package model

import "github.com/shopspring/decimal"

// FeeCoverageRate is the surcharge a donor may add so the full gift reaches the programs.
var FeeCoverageRate = decimal.RequireFromString("0.03")

var feeMultiplier = decimal.NewFromInt(1).Add(FeeCoverageRate)

// FinalAmount is base unchanged, or base*1.03 rounded half-up to cents when fees are covered.
func FinalAmount(base decimal.Decimal, coverFees bool) decimal.Decimal {
	if !coverFees || !base.IsPositive() {
		return base
	}
	return base.Mul(feeMultiplier).Round(2)
}

// FeeAmount is the "Processing Fee (3%)" line of the summary.
func FeeAmount(base decimal.Decimal, coverFees bool) decimal.Decimal {
	return FinalAmount(base, coverFees).Sub(base)
}
