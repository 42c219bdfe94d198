package service

import (
	"fmt"
	"strings"
	"time"

	"globalhearts_backend/internals/features/donations/model"
)

// DataRetentionNotice closes every receipt.
const DataRetentionNotice = "This receipt is for your records. Global Hearts Community does not store your " +
	"payment card details. Personal information you provided is used only to process " +
	"your donation and to keep you informed if you opted in to updates."

const receiptDateLayout = "January 2, 2006 at 3:04 PM MST"

// Organization is the identity printed at the top of a receipt.
type Organization struct {
	Name           string
	Location       string
	Email          string
	Phone          string
	Website        string
	TimeZone       *time.Location
	CurrencySymbol string
}

func DefaultOrganization() Organization {
	return Organization{
		Name:           "Global Hearts Community",
		Location:       "Sironko, Uganda",
		Email:          "info@globalheartsug.org",
		Phone:          "+256 700 000 000",
		Website:        "https://globalheartsug.org",
		TimeZone:       time.UTC,
		CurrencySymbol: "$",
	}
}

// RenderReceipt formats tx as a plain-text receipt. Same input, same output.
func RenderReceipt(tx model.TransactionRecord, org Organization) string {
	loc := org.TimeZone
	if loc == nil {
		loc = time.UTC
	}
	cur := org.CurrencySymbol
	if cur == "" {
		cur = "$"
	}

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}
	rule := strings.Repeat("=", 48)

	line("%s", rule)
	line("%s", strings.ToUpper(org.Name))
	line("DONATION RECEIPT")
	line("%s", rule)
	if org.Location != "" {
		line("%s", org.Location)
	}
	if org.Email != "" {
		line("Email: %s", org.Email)
	}
	if org.Phone != "" {
		line("Phone: %s", org.Phone)
	}
	if org.Website != "" {
		line("Web: %s", org.Website)
	}
	line("")

	line("Transaction ID: %s", tx.TransactionID)
	line("Date: %s", tx.Date.In(loc).Format(receiptDateLayout))
	line("")
	line("Donor: %s", tx.DonorName())
	line("Email: %s", tx.DonorEmail)
	line("")
	line("Donation Type: %s", tx.DonationType.Label())
	if tx.CoverFees {
		line("Donation: %s%s", cur, tx.BaseAmount.StringFixed(2))
		line("Processing Fee (3%%): %s%s", cur, tx.FeeAmount.StringFixed(2))
	}
	line("Amount: %s%s", cur, tx.FinalAmount.StringFixed(2))
	line("Payment Method: %s", tx.PaymentMethod.Label())
	if c := strings.TrimSpace(tx.Comment); c != "" {
		line("Comment: %s", c)
	}
	line("")
	line("%s", strings.Repeat("-", 48))
	line("%s", DataRetentionNotice)
	line("")
	line("Thank you for supporting %s.", org.Name)
	return b.String()
}

func ReceiptFilename(tx model.TransactionRecord) string {
	return "donation-receipt-" + tx.TransactionID + ".txt"
}
