package service

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"globalhearts_backend/internals/features/donations/model"
)

func sampleTransaction() model.TransactionRecord {
	return model.TransactionRecord{
		TransactionID:  "GHC-1742034600000-a1b2c3d",
		BaseAmount:     decimal.NewFromInt(50),
		FeeAmount:      decimal.RequireFromString("1.50"),
		FinalAmount:    decimal.RequireFromString("51.50"),
		CoverFees:      true,
		DonationType:   model.DonationTypeRecurring,
		PaymentMethod:  model.PaymentMethodMobileMoney,
		Date:           time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
		DonorFirstName: "Amina",
		DonorLastName:  "Nakato",
		DonorEmail:     "amina@example.org",
		Comment:        "For the water project",
	}
}

func TestRenderReceiptContents(t *testing.T) {
	org := DefaultOrganization()
	org.TimeZone = time.FixedZone("EAT", 3*60*60)

	out := RenderReceipt(sampleTransaction(), org)
	for _, want := range []string{
		"GLOBAL HEARTS COMMUNITY",
		"Sironko, Uganda",
		"info@globalheartsug.org",
		"Transaction ID: GHC-1742034600000-a1b2c3d",
		"Date: March 15, 2025 at 1:30 PM EAT",
		"Donor: Amina Nakato",
		"Email: amina@example.org",
		"Donation Type: Monthly (recurring)",
		"Processing Fee (3%): $1.50",
		"Amount: $51.50",
		"Payment Method: Mobile Money",
		"Comment: For the water project",
		DataRetentionNotice,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("receipt missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReceiptDeterministic(t *testing.T) {
	tx := sampleTransaction()
	org := DefaultOrganization()
	if RenderReceipt(tx, org) != RenderReceipt(tx, org) {
		t.Fatalf("expected identical output")
	}
}

func TestRenderReceiptOptionalLines(t *testing.T) {
	tx := sampleTransaction()
	tx.Comment = "  "
	tx.CoverFees = false
	tx.FeeAmount = decimal.Zero
	tx.FinalAmount = decimal.NewFromInt(50)

	out := RenderReceipt(tx, DefaultOrganization())
	if strings.Contains(out, "Comment:") || strings.Contains(out, "Processing Fee") {
		t.Fatalf("unexpected optional lines:\n%s", out)
	}
	if !strings.Contains(out, "Amount: $50.00") {
		t.Fatalf("expected two-decimal amount:\n%s", out)
	}
}

func TestReceiptFilename(t *testing.T) {
	if got := ReceiptFilename(sampleTransaction()); got != "donation-receipt-GHC-1742034600000-a1b2c3d.txt" {
		t.Fatalf("unexpected filename %q", got)
	}
}
