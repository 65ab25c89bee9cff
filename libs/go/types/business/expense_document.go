package business

import "time"

// ExpenseInvoiceStatus is the lifecycle state of an expense invoice
type ExpenseInvoiceStatus string

const (
	ExpenseInvoiceStatusNonexistent   ExpenseInvoiceStatus = "expense-invoice.status.non_existent"
	ExpenseInvoiceStatusDraft         ExpenseInvoiceStatus = "expense-invoice.status.draft"
	ExpenseInvoiceStatusValidated     ExpenseInvoiceStatus = "expense-invoice.status.validated"
	ExpenseInvoiceStatusSent          ExpenseInvoiceStatus = "expense-invoice.status.sent"
	ExpenseInvoiceStatusPaid          ExpenseInvoiceStatus = "expense-invoice.status.paid"
	ExpenseInvoiceStatusPartiallyPaid ExpenseInvoiceStatus = "expense-invoice.status.partially_paid"
	ExpenseInvoiceStatusUnpaid        ExpenseInvoiceStatus = "expense-invoice.status.unpaid"
	ExpenseInvoiceStatusExpired       ExpenseInvoiceStatus = "expense-invoice.status.expired"
)

// ExpenseQuotationStatus is the lifecycle state of an expense quotation
type ExpenseQuotationStatus string

const (
	ExpenseQuotationStatusNonexistent ExpenseQuotationStatus = "expense-quotation.status.non_existent"
	ExpenseQuotationStatusExpired     ExpenseQuotationStatus = "expense-quotation.status.expired"
	ExpenseQuotationStatusDraft       ExpenseQuotationStatus = "expense-quotation.status.draft"
	ExpenseQuotationStatusValidated   ExpenseQuotationStatus = "expense-quotation.status.validated"
	ExpenseQuotationStatusSent        ExpenseQuotationStatus = "expense-quotation.status.sent"
	ExpenseQuotationStatusAccepted    ExpenseQuotationStatus = "expense-quotation.status.accepted"
	ExpenseQuotationStatusRejected    ExpenseQuotationStatus = "expense-quotation.status.rejected"
	ExpenseQuotationStatusInvoiced    ExpenseQuotationStatus = "expense-quotation.status.expense-invoiced"
)

// ExpenseDocument holds the fields shared by expense invoices and quotations
type ExpenseDocument struct {
	ID                   int64          `json:"id,omitempty"`
	Sequential           string         `json:"sequential,omitempty"`
	Object               string         `json:"object,omitempty"`
	Date                 *time.Time     `json:"date,omitempty"`
	DueDate              *time.Time     `json:"dueDate,omitempty"`
	FirmID               *int64         `json:"firmId,omitempty"`
	InterlocutorID       *int64         `json:"interlocutorId,omitempty"`
	Entries              []ArticleEntry `json:"articleEntries"`
	Discount             float64        `json:"discount"`
	DiscountType         DiscountType   `json:"discount_type"`
	CurrencyID           *int64         `json:"currencyId,omitempty"`
	Currency             *Currency      `json:"currency,omitempty"`
	TaxStampID           *int64         `json:"taxStampId,omitempty"`
	TaxWithholdingID     *int64         `json:"taxWithholdingId,omitempty"`
	SubTotal             float64        `json:"subTotal"`
	Total                float64        `json:"total"`
	TaxWithholdingAmount float64        `json:"taxWithholdingAmount"`
	Notes                string         `json:"notes,omitempty"`
	GeneralConditions    string         `json:"generalConditions,omitempty"`
}

// DocumentDiscount returns the document-level discount
func (d ExpenseDocument) DocumentDiscount() Discount {
	return Discount{Value: d.Discount, Type: d.DiscountType}
}

// ExpenseInvoice is an expense invoice
type ExpenseInvoice struct {
	ExpenseDocument
	Status             ExpenseInvoiceStatus `json:"status,omitempty"`
	AmountPaid         float64              `json:"amountPaid"`
	ExpenseQuotationID *int64               `json:"expenseQuotationId,omitempty"`
}

// CurrencyKey returns the invoice currency id, from the embedded currency
// when loaded and from CurrencyID otherwise.
func (i ExpenseInvoice) CurrencyKey() (int64, bool) {
	if i.Currency != nil {
		return i.Currency.ID, true
	}
	if i.CurrencyID != nil {
		return *i.CurrencyID, true
	}
	return 0, false
}

// ExpenseQuotation is an expense quotation
type ExpenseQuotation struct {
	ExpenseDocument
	Status ExpenseQuotationStatus `json:"status,omitempty"`
}

// DocumentTotals is the outcome of a document total computation
type DocumentTotals struct {
	SubTotal             float64 `json:"subTotal"`
	Total                float64 `json:"total"`
	DiscountAmount       float64 `json:"discountAmount"`
	TaxStampAmount       float64 `json:"taxStampAmount"`
	TaxWithholdingAmount float64 `json:"taxWithholdingAmount"`
}

// DateRange bounds an invoice date between its neighbours in the sequence
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// DocumentCalculation is the full outcome of recomputing a document
type DocumentCalculation struct {
	Precision  int32                `json:"precision"`
	Currency   *Currency            `json:"currency,omitempty"`
	Entries    []ArticleEntry       `json:"articleEntries"`
	Lines      []ArticleEntryTotals `json:"-"`
	TaxSummary *TaxSummary          `json:"taxSummary"`
	Totals     DocumentTotals       `json:"totals"`
}
