package services

import (
	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/cyphera/cyphera-expense/libs/go/money"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
	"go.uber.org/zap"
)

// TaxService computes line taxes and aggregates them per document
type TaxService struct {
	logger *zap.Logger
}

// NewTaxService creates a new tax service
func NewTaxService() *TaxService {
	return &TaxService{
		logger: logger.L(),
	}
}

// RateTaxes resolves tax ids against the catalog and keeps percentage taxes.
// Unknown ids and fixed taxes are dropped.
func (s *TaxService) RateTaxes(taxIDs []int64, catalog business.TaxCatalog) []business.Tax {
	taxes := make([]business.Tax, 0, len(taxIDs))
	for _, id := range taxIDs {
		tax, ok := catalog.Lookup(id)
		if !ok {
			s.logger.Debug("Skipping unknown tax", zap.Int64("tax_id", id))
			continue
		}
		if !tax.IsRate {
			continue
		}
		taxes = append(taxes, tax)
	}
	return taxes
}

// TaxContribution is the amount one rate tax adds on base
func (s *TaxService) TaxContribution(base money.Amount, tax business.Tax) money.Amount {
	return base.Multiply(tax.Value / 100)
}

// LineTaxAmount sums the contributions of rate taxes on base
func (s *TaxService) LineTaxAmount(base money.Amount, taxes []business.Tax) money.Amount {
	total := money.Zero(base.Precision())
	for _, tax := range taxes {
		if !tax.IsRate {
			continue
		}
		total = total.Add(s.TaxContribution(base, tax))
	}
	return total
}

// Summarize accumulates, per rate tax, the contribution of every line.
// A referenced tax appears even when its lines contribute nothing.
func (s *TaxService) Summarize(lines []business.TaxableLine, catalog business.TaxCatalog) *business.TaxSummary {
	summary := business.NewTaxSummary()
	for _, line := range lines {
		for _, tax := range s.RateTaxes(line.TaxIDs, catalog) {
			summary.Accumulate(tax, s.TaxContribution(line.AfterDiscount, tax))
		}
	}
	return summary
}
