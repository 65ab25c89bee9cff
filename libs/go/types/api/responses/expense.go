package responses

import "github.com/cyphera/cyphera-expense/libs/go/types/business"

// HealthResponse is the health check payload
type HealthResponse struct {
	Status string `json:"status"`
}

// TaxSummaryEntryResponse is the cumulative amount of one tax over a document
type TaxSummaryEntryResponse struct {
	TaxID     int64   `json:"taxId"`
	Label     string  `json:"label"`
	Rate      float64 `json:"rate"`
	Amount    float64 `json:"amount"`
	Formatted string  `json:"formatted"`
}

// ExpenseDocumentCalculationResponse is the outcome of a document recompute
type ExpenseDocumentCalculationResponse struct {
	Precision            int32                     `json:"precision"`
	Entries              []business.ArticleEntry   `json:"articleExpenseEntries"`
	TaxSummary           []TaxSummaryEntryResponse `json:"taxSummary"`
	SubTotal             float64                   `json:"subTotal"`
	Total                float64                   `json:"total"`
	DiscountAmount       float64                   `json:"discountAmount"`
	TaxStampAmount       float64                   `json:"taxStampAmount"`
	TaxWithholdingAmount float64                   `json:"taxWithholdingAmount"`
	FormattedTotal       string                    `json:"formattedTotal"`
}

// ValidationResponse carries a pre-submission check result. An empty message
// means the payload may be submitted.
type ValidationResponse struct {
	Valid    bool   `json:"valid"`
	Message  string `json:"message"`
	Position string `json:"position,omitempty"`
}

// AllocationBalanceResponse is the state of one invoice within a payment
type AllocationBalanceResponse struct {
	ID               string  `json:"id"`
	ExpenseInvoiceID int64   `json:"expenseInvoiceId"`
	Sequential       string  `json:"sequential,omitempty"`
	Amount           float64 `json:"amount"`
	Remaining        float64 `json:"remaining"`
	CurrentRemaining float64 `json:"currentRemaining"`
}

// ExpensePaymentReconciliationResponse is the outcome of a payment reconcile
type ExpensePaymentReconciliationResponse struct {
	Available   float64                     `json:"available"`
	Used        float64                     `json:"used"`
	Remaining   float64                     `json:"remaining"`
	Balanced    bool                        `json:"balanced"`
	Allocations []AllocationBalanceResponse `json:"allocations"`
	Validation  ValidationResponse          `json:"validation"`
}

// CandidateInvoiceResponse is a payable invoice of a firm
type CandidateInvoiceResponse struct {
	ID               int64   `json:"id"`
	Sequential       string  `json:"sequential"`
	Status           string  `json:"status"`
	CurrencyID       *int64  `json:"currencyId,omitempty"`
	CurrencyCode     string  `json:"currencyCode,omitempty"`
	Total            float64 `json:"total"`
	AmountPaid       float64 `json:"amountPaid"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// SequentialResponse is a numbering scheme together with its rendered value
type SequentialResponse struct {
	Prefix          string `json:"prefix"`
	DynamicSequence string `json:"dynamicSequence"`
	Next            int    `json:"next"`
	Formatted       string `json:"formatted,omitempty"`
}

// QuotationLifecycleResponse lists the actions offered for a quotation status
type QuotationLifecycleResponse struct {
	Status  string   `json:"status"`
	Actions []string `json:"actions"`
}
