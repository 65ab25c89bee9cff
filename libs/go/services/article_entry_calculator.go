package services

import (
	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/cyphera/cyphera-expense/libs/go/money"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
	"go.uber.org/zap"
)

// ArticleEntryCalculator computes the subtotal and total of document lines
type ArticleEntryCalculator struct {
	discountService *DiscountService
	taxService      *TaxService
	logger          *zap.Logger
}

// NewArticleEntryCalculator creates a new line calculator
func NewArticleEntryCalculator(discountService *DiscountService, taxService *TaxService) *ArticleEntryCalculator {
	return &ArticleEntryCalculator{
		discountService: discountService,
		taxService:      taxService,
		logger:          logger.L(),
	}
}

// Calculate computes one line at the document precision:
//
//	base          = quantity * unit_price
//	afterDiscount = base - line discount
//	subTotal      = afterDiscount
//	total         = afterDiscount + sum of rate tax contributions
func (c *ArticleEntryCalculator) Calculate(entry business.ArticleEntry, catalog business.TaxCatalog, precision int32) business.ArticleEntryTotals {
	base := money.FromFloat(entry.Quantity*entry.UnitPrice, precision)
	afterDiscount, _ := c.discountService.Apply(base, entry.LineDiscount())
	taxAmount := c.taxService.LineTaxAmount(afterDiscount, c.taxService.RateTaxes(entry.TaxIDs, catalog))
	total := afterDiscount.Add(taxAmount)

	return business.ArticleEntryTotals{
		Base:          base,
		AfterDiscount: afterDiscount,
		TaxAmount:     taxAmount,
		SubTotal:      afterDiscount.Float(),
		Total:         total.Float(),
	}
}

// CalculateAll recomputes every line and returns the entries with their
// SubTotal and Total rewritten, alongside the intermediate figures.
// The input slice is not modified.
func (c *ArticleEntryCalculator) CalculateAll(entries []business.ArticleEntry, catalog business.TaxCatalog, precision int32) ([]business.ArticleEntry, []business.ArticleEntryTotals) {
	updated := make([]business.ArticleEntry, len(entries))
	totals := make([]business.ArticleEntryTotals, len(entries))

	for i, entry := range entries {
		lineTotals := c.Calculate(entry, catalog, precision)
		entry.SubTotal = lineTotals.SubTotal
		entry.Total = lineTotals.Total
		updated[i] = entry
		totals[i] = lineTotals
	}

	c.logger.Debug("Computed article entries",
		zap.Int("entries", len(entries)),
		zap.Int32("precision", precision))

	return updated, totals
}

// TaxableLines pairs each entry's taxes with its discounted base
func (c *ArticleEntryCalculator) TaxableLines(entries []business.ArticleEntry, totals []business.ArticleEntryTotals) []business.TaxableLine {
	lines := make([]business.TaxableLine, 0, len(totals))
	for i := range totals {
		if i >= len(entries) {
			break
		}
		lines = append(lines, business.TaxableLine{
			TaxIDs:        entries[i].TaxIDs,
			AfterDiscount: totals[i].AfterDiscount,
		})
	}
	return lines
}
