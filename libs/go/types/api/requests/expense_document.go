package requests

import "time"

// ArticleEntryRequest is one line of an expense document as sent by the client
type ArticleEntryRequest struct {
	ID           int64   `json:"id,omitempty"`
	ArticleID    int64   `json:"articleId,omitempty"`
	Title        string  `json:"title,omitempty"`
	Description  string  `json:"description,omitempty"`
	Quantity     float64 `json:"quantity" binding:"gte=0"`
	UnitPrice    float64 `json:"unit_price" binding:"gte=0"`
	Discount     float64 `json:"discount" binding:"gte=0"`
	DiscountType string  `json:"discount_type" binding:"omitempty,oneof=PERCENTAGE AMOUNT"`
	TaxIDs       []int64 `json:"taxes"`
}

// CalculateExpenseDocumentRequest is the body of the invoice and quotation
// calculate endpoints
type CalculateExpenseDocumentRequest struct {
	ID               int64                 `json:"id,omitempty"`
	CurrencyID       *int64                `json:"currencyId" binding:"required"`
	Entries          []ArticleEntryRequest `json:"articleExpenseEntries" binding:"dive"`
	Discount         float64               `json:"discount" binding:"gte=0"`
	DiscountType     string                `json:"discount_type" binding:"omitempty,oneof=PERCENTAGE AMOUNT"`
	TaxStampID       *int64                `json:"taxStampId,omitempty"`
	TaxWithholdingID *int64                `json:"taxWithholdingId,omitempty"`
}

// DateRangeRequest bounds an invoice date between its neighbours
type DateRangeRequest struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// ValidateExpenseInvoiceRequest is the body of the invoice validation endpoint
type ValidateExpenseInvoiceRequest struct {
	Sequential     string            `json:"sequential,omitempty"`
	Object         string            `json:"object"`
	Date           *time.Time        `json:"date"`
	DueDate        *time.Time        `json:"dueDate"`
	FirmID         *int64            `json:"firmId"`
	InterlocutorID *int64            `json:"interlocutorId"`
	DateRange      *DateRangeRequest `json:"dateRange,omitempty"`
}

// ValidateExpenseQuotationRequest is the body of the quotation validation endpoint
type ValidateExpenseQuotationRequest struct {
	Sequential     string     `json:"sequential"`
	Object         string     `json:"object"`
	Date           *time.Time `json:"date"`
	DueDate        *time.Time `json:"dueDate"`
	FirmID         *int64     `json:"firmId"`
	InterlocutorID *int64     `json:"interlocutorId"`
}
