package services

import "github.com/cyphera/cyphera-expense/libs/go/interfaces"

var (
	_ interfaces.CurrencyService        = (*CurrencyService)(nil)
	_ interfaces.ExpenseDocumentService = (*ExpenseDocumentService)(nil)
	_ interfaces.ExpensePaymentService  = (*ExpensePaymentService)(nil)
	_ interfaces.ValidationService      = (*ValidationService)(nil)
	_ interfaces.SequentialService      = (*SequentialService)(nil)
	_ interfaces.SequenceSource         = (*SequenceTracker)(nil)
	_ interfaces.SequenceSink           = (*SequenceTracker)(nil)
)
