package constants

// Currency precision defaults
const (
	// DocumentDefaultPrecision applies to documents and payments whose
	// currency carries no digitAfterComma.
	DocumentDefaultPrecision int32 = 3

	// InvoiceDefaultPrecision applies to an invoice seen from a payment when
	// the invoice currency is unknown.
	InvoiceDefaultPrecision int32 = 2

	// SequentialCounterWidth is the zero-padded width of a sequential counter
	SequentialCounterWidth = 4

	// SequentialSeparator joins the parts of a sequential number
	SequentialSeparator = "-"
)

// Socket/queue event names for sequence updates
const (
	ExpenseInvoiceSequenceUpdatedEvent = "expense-invoice-sequence-updated"
	ExpenseInvoiceSequenceConfigKey    = "expense-invoice_sequence"
	ExpenseQuotationSequenceConfigKey  = "expense-quotation_sequence"
)
