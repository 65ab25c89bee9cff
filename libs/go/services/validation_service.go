package services

import (
	"fmt"

	"github.com/cyphera/cyphera-expense/libs/go/helpers"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
)

// Validation messages shown to the user before a document is submitted
const (
	MsgPaymentDateRequired   = "La date doit être définie"
	MsgPaymentAmountPositive = "Le montant doit être supérieur à 0"
	MsgPaymentFeeNonNegative = "Le frais doit être supérieur ou égal à 0"
	MsgPaymentFeeBelowAmount = "Le frais doit être inférieur au montant"
	MsgPaymentUnbalanced     = "Le montant total doit être égal à la somme des montants des factures"

	MsgDateRequired             = "La date est obligatoire"
	MsgDueDateRequired          = "L'échéance est obligatoire"
	MsgObjectRequired           = "L'objet est obligatoire"
	MsgSequentialRequired       = "Le numero sequentiel est obligatoire"
	MsgDueDateOnOrAfterDate     = "L'échéance doit être supérieure ou égale à la date"
	MsgDueDateAfterDate         = "L'échéance doit être supérieure à la date"
	MsgFirmInterlocutorRequired = "Entreprise et interlocuteur sont obligatoire"

	msgDateOnOrAfterFmt  = "La date doit être après ou égale à %s"
	msgDateOnOrBeforeFmt = "La date doit être avant ou égale à %s"
)

// ValidationService runs the pre-submission checks of expense documents.
// Checks stop at the first failure; the result never errors.
type ValidationService struct{}

// NewValidationService creates a new validation service
func NewValidationService() *ValidationService {
	return &ValidationService{}
}

func invalid(message string) business.ToastValidation {
	return business.ToastValidation{Message: message}
}

// ValidatePayment checks a payment against its allocations. paid is the
// payment amount plus fee and used the sum of allocations, both in payment
// currency.
func (s *ValidationService) ValidatePayment(payment business.ExpensePayment, used, paid float64) business.ToastValidation {
	if payment.Date == nil {
		return invalid(MsgPaymentDateRequired)
	}
	if payment.Amount <= 0 {
		return invalid(MsgPaymentAmountPositive)
	}
	if payment.Fee < 0 {
		return invalid(MsgPaymentFeeNonNegative)
	}
	if payment.Fee > payment.Amount {
		return invalid(MsgPaymentFeeBelowAmount)
	}
	if paid != used {
		return invalid(MsgPaymentUnbalanced)
	}
	return business.ToastValidation{Message: "", Position: business.ToastPositionBottomRight}
}

// ValidateExpenseInvoice checks an invoice. dateRange, when set, bounds the
// invoice date between its neighbours in the numbering sequence.
func (s *ValidationService) ValidateExpenseInvoice(invoice business.ExpenseInvoice, dateRange *business.DateRange) business.ToastValidation {
	if invoice.Date == nil {
		return invalid(MsgDateRequired)
	}
	date := *invoice.Date
	if dateRange != nil {
		if dateRange.From != nil && date.Before(*dateRange.From) {
			return invalid(fmt.Sprintf(msgDateOnOrAfterFmt, helpers.FormatDisplayDate(*dateRange.From)))
		}
		if dateRange.To != nil && date.After(*dateRange.To) {
			return invalid(fmt.Sprintf(msgDateOnOrBeforeFmt, helpers.FormatDisplayDate(*dateRange.To)))
		}
	}
	if invoice.DueDate == nil {
		return invalid(MsgDueDateRequired)
	}
	if invoice.Object == "" {
		return invalid(MsgObjectRequired)
	}
	if helpers.DifferenceInDays(date, *invoice.DueDate) > 0 {
		return invalid(MsgDueDateOnOrAfterDate)
	}
	if !hasParty(invoice.ExpenseDocument) {
		return invalid(MsgFirmInterlocutorRequired)
	}
	return business.ToastValidation{}
}

// ValidateExpenseQuotation checks a quotation. Unlike invoices the due date
// must fall strictly after the date.
func (s *ValidationService) ValidateExpenseQuotation(quotation business.ExpenseQuotation) business.ToastValidation {
	if quotation.Date == nil {
		return invalid(MsgDateRequired)
	}
	if quotation.DueDate == nil {
		return invalid(MsgDueDateRequired)
	}
	if quotation.Object == "" {
		return invalid(MsgObjectRequired)
	}
	if quotation.Sequential == "" {
		return invalid(MsgSequentialRequired)
	}
	if helpers.DifferenceInDays(*quotation.Date, *quotation.DueDate) >= 0 {
		return invalid(MsgDueDateAfterDate)
	}
	if !hasParty(quotation.ExpenseDocument) {
		return invalid(MsgFirmInterlocutorRequired)
	}
	return business.ToastValidation{}
}

func hasParty(doc business.ExpenseDocument) bool {
	return doc.FirmID != nil && *doc.FirmID != 0 && doc.InterlocutorID != nil && *doc.InterlocutorID != 0
}
