package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord is the result of one successful submission. It is built
// once by the dispatcher and only ever handed around by value.
type TransactionRecord struct {
	TransactionID string

	BaseAmount  decimal.Decimal
	FeeAmount   decimal.Decimal
	FinalAmount decimal.Decimal
	CoverFees   bool

	DonationType  DonationType
	PaymentMethod PaymentMethod
	Date          time.Time

	DonorFirstName string
	DonorLastName  string
	DonorEmail     string
	Comment        string

	// Advisory only; set when the amount or the submission rhythm looks unusual.
	RequiresReview bool
	ReviewReasons  []string
}

func (t TransactionRecord) DonorName() string {
	return strings.TrimSpace(t.DonorFirstName + " " + t.DonorLastName)
}

// Copy detaches the reasons slice so callers cannot reach the stored record.
func (t TransactionRecord) Copy() TransactionRecord {
	if t.ReviewReasons != nil {
		t.ReviewReasons = append([]string(nil), t.ReviewReasons...)
	}
	return t
}
