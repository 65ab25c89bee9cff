package services

import (
	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/cyphera/cyphera-expense/libs/go/money"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
	"go.uber.org/zap"
)

// DocumentTotalParams is the input of a document total computation.
// Entries must already carry their computed SubTotal and Total.
type DocumentTotalParams struct {
	Entries        []business.ArticleEntry
	Discount       business.Discount
	Precision      int32
	TaxStamp       *business.Tax
	TaxWithholding *business.TaxWithholding
}

// DocumentTotalCalculator rolls line totals up into document totals
type DocumentTotalCalculator struct {
	discountService *DiscountService
	logger          *zap.Logger
}

// NewDocumentTotalCalculator creates a new document total calculator
func NewDocumentTotalCalculator(discountService *DiscountService) *DocumentTotalCalculator {
	return &DocumentTotalCalculator{
		discountService: discountService,
		logger:          logger.L(),
	}
}

// Calculate computes the document subtotal and total.
//
// The document discount applies to the taxed total, after line taxes, and the
// tax stamp is added last. The withholding amount is derived from the
// discounted total and reported separately; it never reduces Total.
func (c *DocumentTotalCalculator) Calculate(params DocumentTotalParams) business.DocumentTotals {
	subTotal := money.Zero(params.Precision)
	total := money.Zero(params.Precision)
	for _, entry := range params.Entries {
		subTotal = subTotal.Add(money.FromFloat(entry.SubTotal, params.Precision))
		total = total.Add(money.FromFloat(entry.Total, params.Precision))
	}

	discounted, discountAmount := c.discountService.Apply(total, params.Discount)

	withholding := money.Zero(params.Precision)
	if params.TaxWithholding != nil {
		withholding = discounted.Multiply(params.TaxWithholding.Rate / 100)
	}

	stamp := money.Zero(params.Precision)
	if params.TaxStamp != nil {
		stamp = money.FromFloat(params.TaxStamp.Value, params.Precision)
	}
	finalTotal := discounted.Add(stamp)

	c.logger.Debug("Computed document totals",
		zap.String("sub_total", subTotal.String()),
		zap.String("total", finalTotal.String()),
		zap.String("discount", discountAmount.String()),
		zap.String("tax_stamp", stamp.String()))

	return business.DocumentTotals{
		SubTotal:             subTotal.Float(),
		Total:                finalTotal.Float(),
		DiscountAmount:       discountAmount.Float(),
		TaxStampAmount:       stamp.Float(),
		TaxWithholdingAmount: withholding.Float(),
	}
}
