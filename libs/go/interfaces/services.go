package interfaces

import (
	"context"
	"time"

	"github.com/cyphera/cyphera-expense/libs/go/money"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
)

// CurrencyService resolves precisions and renders amounts
type CurrencyService interface {
	ResolvePrecision(currency *business.Currency, fallback int32) (int32, error)
	PrecisionOrDefault(currency *business.Currency, fallback int32) int32
	ParseAmount(input string, precision int32) (money.Amount, error)
	DisplayCeil(value float64, precision int32) float64
	FormatAmount(amount money.Amount, currency *business.Currency) string
}

// ExpenseDocumentService recomputes expense invoices and quotations
type ExpenseDocumentService interface {
	CalculateDocument(ctx context.Context, doc business.ExpenseDocument) (*business.DocumentCalculation, error)
	Apply(doc *business.ExpenseDocument, calc *business.DocumentCalculation)
}

// ExpensePaymentService reconciles expense payments against invoices
type ExpensePaymentService interface {
	CandidateInvoices(ctx context.Context, firmID int64) ([]business.ExpenseInvoice, error)
	InvoiceBalance(invoice *business.ExpenseInvoice) money.Amount
	Reconcile(ctx context.Context, payment business.ExpensePayment, mode business.AllocationMode) (*business.PaymentReconciliation, error)
	ReconcileLoaded(payment business.ExpensePayment, mode business.AllocationMode) *business.PaymentReconciliation
	CheckAmounts(payment business.ExpensePayment) error
}

// ValidationService runs pre-submission checks
type ValidationService interface {
	ValidatePayment(payment business.ExpensePayment, used, paid float64) business.ToastValidation
	ValidateExpenseInvoice(invoice business.ExpenseInvoice, dateRange *business.DateRange) business.ToastValidation
	ValidateExpenseQuotation(quotation business.ExpenseQuotation) business.ToastValidation
}

// SequentialService formats and parses document numbers
type SequentialService interface {
	Format(seq business.Sequential, at time.Time) (string, error)
	Parse(value string) (business.Sequential, error)
	GetConfig(ctx context.Context, key string) (business.Sequential, error)
	ApplyUpdate(ctx context.Context, key string, update business.SequenceUpdate) (business.Sequential, error)
}

// SequenceSource exposes the live numbering scheme of a document type
type SequenceSource interface {
	Current() business.Sequential
}

// SequenceSink receives pushed sequence updates
type SequenceSink interface {
	Apply(update business.SequenceUpdate)
}
