package handlers

import (
	"github.com/cyphera/cyphera-expense/libs/go/money"
	"github.com/cyphera/cyphera-expense/libs/go/types/api/requests"
	"github.com/cyphera/cyphera-expense/libs/go/types/api/responses"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
)

func articleEntriesFromRequest(entries []requests.ArticleEntryRequest) []business.ArticleEntry {
	out := make([]business.ArticleEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, business.ArticleEntry{
			ID: entry.ID,
			Article: business.Article{
				ID:          entry.ArticleID,
				Title:       entry.Title,
				Description: entry.Description,
			},
			Quantity:     entry.Quantity,
			UnitPrice:    entry.UnitPrice,
			Discount:     entry.Discount,
			DiscountType: business.DiscountType(entry.DiscountType),
			TaxIDs:       entry.TaxIDs,
		})
	}
	return out
}

func expenseDocumentFromRequest(req requests.CalculateExpenseDocumentRequest) business.ExpenseDocument {
	return business.ExpenseDocument{
		ID:               req.ID,
		CurrencyID:       req.CurrencyID,
		Entries:          articleEntriesFromRequest(req.Entries),
		Discount:         req.Discount,
		DiscountType:     business.DiscountType(req.DiscountType),
		TaxStampID:       req.TaxStampID,
		TaxWithholdingID: req.TaxWithholdingID,
	}
}

func dateRangeFromRequest(req *requests.DateRangeRequest) *business.DateRange {
	if req == nil {
		return nil
	}
	return &business.DateRange{From: req.From, To: req.To}
}

func expensePaymentFromRequest(req requests.ReconcileExpensePaymentRequest) business.ExpensePayment {
	allocations := make([]business.ExpensePaymentInvoiceEntry, 0, len(req.ExpenseInvoices))
	for _, allocation := range req.ExpenseInvoices {
		allocations = append(allocations, business.ExpensePaymentInvoiceEntry{
			ID:               allocation.ID,
			ExpenseInvoiceID: allocation.ExpenseInvoiceID,
			Amount:           allocation.Amount,
		})
	}
	return business.ExpensePayment{
		Amount:         req.Amount,
		Fee:            req.Fee,
		ConvertionRate: req.ConvertionRate,
		Date:           req.Date,
		CurrencyID:     req.CurrencyID,
		FirmID:         req.FirmID,
		Notes:          req.Notes,
		Invoices:       allocations,
	}
}

func allocationMode(mode string) business.AllocationMode {
	if mode == string(business.AllocationModeEdit) {
		return business.AllocationModeEdit
	}
	return business.AllocationModeNew
}

func validationResponse(v business.ToastValidation) responses.ValidationResponse {
	return responses.ValidationResponse{
		Valid:    v.Valid(),
		Message:  v.Message,
		Position: string(v.Position),
	}
}

type amountFormatter interface {
	FormatAmount(amount money.Amount, currency *business.Currency) string
}

func documentCalculationResponse(calc *business.DocumentCalculation, formatter amountFormatter) responses.ExpenseDocumentCalculationResponse {
	summary := make([]responses.TaxSummaryEntryResponse, 0, calc.TaxSummary.Len())
	for _, entry := range calc.TaxSummary.Entries {
		summary = append(summary, responses.TaxSummaryEntryResponse{
			TaxID:     entry.Tax.ID,
			Label:     entry.Tax.Label,
			Rate:      entry.Tax.Value,
			Amount:    entry.Value,
			Formatted: formatter.FormatAmount(entry.Amount, calc.Currency),
		})
	}

	return responses.ExpenseDocumentCalculationResponse{
		Precision:            calc.Precision,
		Entries:              calc.Entries,
		TaxSummary:           summary,
		SubTotal:             calc.Totals.SubTotal,
		Total:                calc.Totals.Total,
		DiscountAmount:       calc.Totals.DiscountAmount,
		TaxStampAmount:       calc.Totals.TaxStampAmount,
		TaxWithholdingAmount: calc.Totals.TaxWithholdingAmount,
		FormattedTotal:       formatter.FormatAmount(money.FromFloat(calc.Totals.Total, calc.Precision), calc.Currency),
	}
}

func reconciliationResponse(rec *business.PaymentReconciliation) responses.ExpensePaymentReconciliationResponse {
	allocations := make([]responses.AllocationBalanceResponse, 0, len(rec.Allocations))
	for _, balance := range rec.Allocations {
		allocations = append(allocations, responses.AllocationBalanceResponse{
			ID:               balance.LocalID.String(),
			ExpenseInvoiceID: balance.ExpenseInvoiceID,
			Sequential:       balance.Sequential,
			Amount:           balance.Amount,
			Remaining:        balance.Remaining,
			CurrentRemaining: balance.CurrentRemaining,
		})
	}
	return responses.ExpensePaymentReconciliationResponse{
		Available:   rec.Summary.Available,
		Used:        rec.Summary.Used,
		Remaining:   rec.Summary.Remaining,
		Balanced:    rec.Summary.Balanced(),
		Allocations: allocations,
		Validation:  validationResponse(rec.Validation),
	}
}

func sequentialResponse(seq business.Sequential, formatted string) responses.SequentialResponse {
	return responses.SequentialResponse{
		Prefix:          seq.Prefix,
		DynamicSequence: string(seq.DynamicSequence),
		Next:            seq.Next,
		Formatted:       formatted,
	}
}
