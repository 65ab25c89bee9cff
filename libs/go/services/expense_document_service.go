package services

import (
	"context"
	"fmt"

	"github.com/cyphera/cyphera-expense/libs/go/constants"
	"github.com/cyphera/cyphera-expense/libs/go/db"
	"github.com/cyphera/cyphera-expense/libs/go/helpers"
	"github.com/cyphera/cyphera-expense/libs/go/money"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var hundred = decimal.NewFromInt(100)

// ReferenceData is what a document computation needs from the reference store
type ReferenceData struct {
	Currency       *business.Currency
	Taxes          []business.Tax
	TaxWithholding *business.TaxWithholding
}

// ExpenseDocumentService recomputes expense invoices and quotations
type ExpenseDocumentService struct {
	queries         db.Querier
	logger          *zap.Logger
	currencyService *CurrencyService
	taxService      *TaxService
	entryCalculator *ArticleEntryCalculator
	totalCalculator *DocumentTotalCalculator
}

// NewExpenseDocumentService creates a new expense document service
func NewExpenseDocumentService(
	queries db.Querier,
	logger *zap.Logger,
	currencyService *CurrencyService,
	taxService *TaxService,
	entryCalculator *ArticleEntryCalculator,
	totalCalculator *DocumentTotalCalculator,
) *ExpenseDocumentService {
	return &ExpenseDocumentService{
		queries:         queries,
		logger:          logger,
		currencyService: currencyService,
		taxService:      taxService,
		entryCalculator: entryCalculator,
		totalCalculator: totalCalculator,
	}
}

// Calculate recomputes every line, the tax summary and the document totals.
// It fails when the document has no currency, or with money.ErrOutOfRange when
// a figure or a total it adds up to cannot be held at the document precision.
func (s *ExpenseDocumentService) Calculate(doc business.ExpenseDocument, ref ReferenceData) (*business.DocumentCalculation, error) {
	currency := doc.Currency
	if currency == nil {
		currency = ref.Currency
	}
	precision, err := s.currencyService.ResolvePrecision(currency, constants.DocumentDefaultPrecision)
	if err != nil {
		return nil, err
	}

	catalog := business.NewTaxCatalog(ref.Taxes)
	if err := s.checkAmounts(doc, catalog, ref.TaxWithholding, precision); err != nil {
		return nil, err
	}
	entries, lines := s.entryCalculator.CalculateAll(doc.Entries, catalog, precision)
	summary := s.taxService.Summarize(s.entryCalculator.TaxableLines(entries, lines), catalog)

	var stamp *business.Tax
	if doc.TaxStampID != nil {
		if tax, ok := catalog.Lookup(*doc.TaxStampID); ok {
			stamp = &tax
		} else {
			s.logger.Warn("Selected tax stamp not found", zap.Int64("tax_id", *doc.TaxStampID))
		}
	}

	var withholding *business.TaxWithholding
	if doc.TaxWithholdingID != nil && ref.TaxWithholding != nil && ref.TaxWithholding.ID == *doc.TaxWithholdingID {
		withholding = ref.TaxWithholding
	}

	totals := s.totalCalculator.Calculate(DocumentTotalParams{
		Entries:        entries,
		Discount:       doc.DocumentDiscount(),
		Precision:      precision,
		TaxStamp:       stamp,
		TaxWithholding: withholding,
	})

	return &business.DocumentCalculation{
		Precision:  precision,
		Currency:   currency,
		Entries:    entries,
		Lines:      lines,
		TaxSummary: summary,
		Totals:     totals,
	}, nil
}

// checkAmounts bounds the magnitude every line and document total can reach,
// assuming discounts and taxes all push the same way.
func (s *ExpenseDocumentService) checkAmounts(doc business.ExpenseDocument, catalog business.TaxCatalog, withholding *business.TaxWithholding, precision int32) error {
	bound := decimal.Zero
	for i, entry := range doc.Entries {
		base := entry.Quantity * entry.UnitPrice
		if err := checkFigures([]float64{entry.Quantity, entry.UnitPrice, entry.Discount, base}, precision); err != nil {
			return fmt.Errorf("article entry %d: %w", i, err)
		}

		rates := hundred
		for _, tax := range s.taxService.RateTaxes(entry.TaxIDs, catalog) {
			if err := checkFigures([]float64{tax.Value}, precision); err != nil {
				return fmt.Errorf("tax %d: %w", tax.ID, err)
			}
			rates = rates.Add(decimal.NewFromFloat(tax.Value).Abs())
		}
		line := discountBound(decimal.NewFromFloat(base).Abs(), entry.LineDiscount())
		bound = bound.Add(line.Mul(rates).Div(hundred))
	}

	var extra []float64
	discount := doc.DocumentDiscount()
	extra = append(extra, discount.Value)
	if doc.TaxStampID != nil {
		if stamp, ok := catalog.Lookup(*doc.TaxStampID); ok {
			extra = append(extra, stamp.Value)
		}
	}
	if withholding != nil {
		extra = append(extra, withholding.Rate)
	}
	if err := checkFigures(extra, precision); err != nil {
		return fmt.Errorf("document: %w", err)
	}

	bound = discountBound(bound, discount)
	if withholding != nil {
		rate := decimal.NewFromFloat(withholding.Rate).Abs()
		bound = bound.Add(bound.Mul(rate).Div(hundred))
	}
	for _, value := range extra {
		bound = bound.Add(decimal.NewFromFloat(value).Abs())
	}
	if _, err := money.FromDecimal(bound, precision); err != nil {
		return fmt.Errorf("document totals: %w", err)
	}
	return nil
}

func discountBound(base decimal.Decimal, discount business.Discount) decimal.Decimal {
	value := decimal.NewFromFloat(discount.Value).Abs()
	if discount.Type == business.DiscountTypePercentage {
		return base.Mul(hundred.Add(value)).Div(hundred)
	}
	return base.Add(value)
}

func checkFigures(figures []float64, precision int32) error {
	for _, figure := range figures {
		if err := money.Check(figure, precision); err != nil {
			return err
		}
	}
	return nil
}

// Apply writes a computation back onto the document
func (s *ExpenseDocumentService) Apply(doc *business.ExpenseDocument, calc *business.DocumentCalculation) {
	doc.Entries = calc.Entries
	doc.SubTotal = calc.Totals.SubTotal
	doc.Total = calc.Totals.Total
	doc.TaxWithholdingAmount = calc.Totals.TaxWithholdingAmount
}

// LoadReferenceData fetches the currency, taxes and withholding a document refers to
func (s *ExpenseDocumentService) LoadReferenceData(ctx context.Context, doc business.ExpenseDocument) (ReferenceData, error) {
	var ref ReferenceData

	taxes, err := s.queries.ListTaxes(ctx)
	if err != nil {
		return ref, fmt.Errorf("failed to list taxes: %w", err)
	}
	ref.Taxes = helpers.TaxesFromDB(taxes)

	if doc.Currency == nil && doc.CurrencyID != nil {
		row, err := s.queries.GetCurrency(ctx, *doc.CurrencyID)
		if err != nil {
			return ref, fmt.Errorf("failed to get currency %d: %w", *doc.CurrencyID, err)
		}
		currency := helpers.CurrencyFromDB(row)
		ref.Currency = &currency
	}

	if doc.TaxWithholdingID != nil {
		row, err := s.queries.GetTaxWithholding(ctx, *doc.TaxWithholdingID)
		if err != nil {
			return ref, fmt.Errorf("failed to get tax withholding %d: %w", *doc.TaxWithholdingID, err)
		}
		withholding := helpers.TaxWithholdingFromDB(row)
		ref.TaxWithholding = &withholding
	}

	return ref, nil
}

// CalculateDocument loads reference data and recomputes the document
func (s *ExpenseDocumentService) CalculateDocument(ctx context.Context, doc business.ExpenseDocument) (*business.DocumentCalculation, error) {
	ref, err := s.LoadReferenceData(ctx, doc)
	if err != nil {
		return nil, err
	}

	calc, err := s.Calculate(doc, ref)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Expense document calculated",
		zap.Int64("document_id", doc.ID),
		zap.Int("entries", len(calc.Entries)),
		zap.Float64("total", calc.Totals.Total))
	return calc, nil
}
