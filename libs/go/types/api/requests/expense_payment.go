package requests

import "time"

// PaymentAllocationRequest allocates part of a payment to one invoice.
// Amount is in the payment currency.
type PaymentAllocationRequest struct {
	ID               int64   `json:"id,omitempty"`
	ExpenseInvoiceID int64   `json:"expenseInvoiceId" binding:"required"`
	Amount           float64 `json:"amount" binding:"gte=0"`
}

// ReconcileExpensePaymentRequest is the body of the payment reconcile endpoint.
// Mode is NEW for a payment being created and EDIT for a saved payment whose
// allocations are already counted in the invoices' amountPaid.
type ReconcileExpensePaymentRequest struct {
	Amount          float64                    `json:"amount"`
	Fee             float64                    `json:"fee"`
	ConvertionRate  float64                    `json:"convertionRate"`
	Date            *time.Time                 `json:"date"`
	Mode            string                     `json:"mode" binding:"omitempty,oneof=NEW EDIT"`
	CurrencyID      *int64                     `json:"currencyId" binding:"required"`
	FirmID          *int64                     `json:"firmId,omitempty"`
	Notes           string                     `json:"notes,omitempty"`
	ExpenseInvoices []PaymentAllocationRequest `json:"expenseInvoices" binding:"dive"`
}
