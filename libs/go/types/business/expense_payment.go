package business

import (
	"time"

	"github.com/google/uuid"
)

// ExpensePaymentMode is how an expense payment was made
type ExpensePaymentMode string

const (
	ExpensePaymentModeCash         ExpensePaymentMode = "payment.payment_mode.cash"
	ExpensePaymentModeCreditCard   ExpensePaymentMode = "payment.payment_mode.credit_card"
	ExpensePaymentModeCheck        ExpensePaymentMode = "payment.payment_mode.check"
	ExpensePaymentModeBankTransfer ExpensePaymentMode = "payment.payment_mode.bank_transfer"
	ExpensePaymentModeWireTransfer ExpensePaymentMode = "payment.payment_mode.wire_transfer"
)

// ExpensePaymentInvoiceEntry allocates part of a payment to one invoice.
// Amount is always denominated in the payment currency.
type ExpensePaymentInvoiceEntry struct {
	ID               int64           `json:"id,omitempty"`
	ExpenseInvoiceID int64           `json:"expenseInvoiceId"`
	ExpenseInvoice   *ExpenseInvoice `json:"expenseInvoice,omitempty"`
	Amount           float64         `json:"amount"`
}

// ExpensePayment is a payment made to a firm and spread over its invoices
type ExpensePayment struct {
	ID             int64                        `json:"id,omitempty"`
	Amount         float64                      `json:"amount"`
	Fee            float64                      `json:"fee"`
	ConvertionRate float64                      `json:"convertionRate"`
	Date           *time.Time                   `json:"date,omitempty"`
	Mode           ExpensePaymentMode           `json:"mode,omitempty"`
	Notes          string                       `json:"notes,omitempty"`
	CurrencyID     *int64                       `json:"currencyId,omitempty"`
	Currency       *Currency                    `json:"currency,omitempty"`
	FirmID         *int64                       `json:"firmId,omitempty"`
	Invoices       []ExpensePaymentInvoiceEntry `json:"expenseInvoices"`
}

// AllocationEntry is a reconciler row: a local id plus the allocation it edits.
// The local id is independent of any backend allocation id.
type AllocationEntry struct {
	LocalID    uuid.UUID                  `json:"id"`
	Allocation ExpensePaymentInvoiceEntry `json:"expenseInvoice"`
}

// AllocationMode selects how SetInvoices interprets incoming allocations
type AllocationMode string

const (
	// AllocationModeNew loads allocations as-is
	AllocationModeNew AllocationMode = "NEW"
	// AllocationModeEdit loads allocations of an existing payment
	AllocationModeEdit AllocationMode = "EDIT"
)

// PaymentSummary is the available/used/remaining view of a payment
type PaymentSummary struct {
	Available float64 `json:"available"`
	Used      float64 `json:"used"`
	Remaining float64 `json:"remaining"`
}

// Balanced reports whether the payment is fully and exactly allocated
func (s PaymentSummary) Balanced() bool {
	return s.Available == s.Used
}

// AllocationBalance is the state of one invoice within a payment
type AllocationBalance struct {
	LocalID          uuid.UUID `json:"id"`
	ExpenseInvoiceID int64     `json:"expenseInvoiceId"`
	Sequential       string    `json:"sequential,omitempty"`
	Amount           float64   `json:"amount"`
	Remaining        float64   `json:"remaining"`
	CurrentRemaining float64   `json:"currentRemaining"`
}

// PaymentReconciliation is the full outcome of reconciling a payment
type PaymentReconciliation struct {
	Summary     PaymentSummary      `json:"summary"`
	Allocations []AllocationBalance `json:"allocations"`
	Validation  ToastValidation     `json:"validation"`
}
