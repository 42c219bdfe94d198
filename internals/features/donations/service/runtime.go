package service

import "time"

// BankDetails is the static display data of the bank-transfer method.
type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	SwiftCode     string `json:"swift_code"`
	Reference     string `json:"reference"`
}

func DefaultBankDetails() BankDetails {
	return BankDetails{
		BankName:      "Stanbic Bank Uganda",
		AccountName:   "Global Hearts Community",
		AccountNumber: "9030012345678",
		SwiftCode:     "SBICUGKX",
		Reference:     "Use your full name as the payment reference",
	}
}

// Runtime bundles what the donation routes need at request time.
type Runtime struct {
	Store       *SessionStore
	Tokens      *ReceiptTokens
	Org         Organization
	Bank        BankDetails
	WaitTimeout time.Duration
}
