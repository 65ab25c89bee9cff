package main

import (
	"fmt"

	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/cyphera/cyphera-expense/libs/go/money"
	"github.com/cyphera/cyphera-expense/libs/go/services"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// documentInput is an expense invoice or quotation with the reference data it points to
type documentInput struct {
	Document       business.ExpenseDocument `json:"document"`
	Currency       *business.Currency       `json:"currency,omitempty"`
	Taxes          []business.Tax           `json:"taxes"`
	TaxWithholding *business.TaxWithholding `json:"taxWithholding,omitempty"`
}

type documentReport struct {
	*business.DocumentCalculation
	FormattedTotal string `json:"formattedTotal"`
}

func newDocumentCmd() *cobra.Command {
	documentCmd := &cobra.Command{
		Use:   "document",
		Short: "Expense invoice and quotation calculations",
	}

	calculateCmd := &cobra.Command{
		Use:   "calculate",
		Short: "Recompute line totals, tax summary and document totals",
		Example: `  # Calculate an invoice described in a file
  expense-cli document calculate --file invoice.json

  # Read the document from stdin
  cat invoice.json | expense-cli document calculate --file -`,
		RunE: runDocumentCalculate,
	}
	calculateCmd.Flags().StringP("file", "f", "", "JSON file holding the document and its reference data (- for stdin)")
	_ = calculateCmd.MarkFlagRequired("file")

	documentCmd.AddCommand(calculateCmd)
	return documentCmd
}

func runDocumentCalculate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent(logger.ComponentCLI)
	path, _ := cmd.Flags().GetString("file")

	var input documentInput
	if err := readInput(cmd, path, &input); err != nil {
		return err
	}

	currencyService := services.NewCurrencyService()
	documentService := newOfflineDocumentService(currencyService, log)

	calc, err := documentService.Calculate(input.Document, services.ReferenceData{
		Currency:       input.Currency,
		Taxes:          input.Taxes,
		TaxWithholding: input.TaxWithholding,
	})
	if err != nil {
		return fmt.Errorf("failed to calculate document: %w", err)
	}

	log.Debug("Document calculated",
		zap.Int("entries", len(calc.Entries)),
		zap.Float64("total", calc.Totals.Total))

	return writeJSON(cmd, documentReport{
		DocumentCalculation: calc,
		FormattedTotal:      currencyService.FormatAmount(money.FromFloat(calc.Totals.Total, calc.Precision), calc.Currency),
	})
}

// newOfflineDocumentService wires the document calculators without a store
func newOfflineDocumentService(currencyService *services.CurrencyService, log *zap.Logger) *services.ExpenseDocumentService {
	discountService := services.NewDiscountService()
	taxService := services.NewTaxService()
	return services.NewExpenseDocumentService(
		nil,
		log,
		currencyService,
		taxService,
		services.NewArticleEntryCalculator(discountService, taxService),
		services.NewDocumentTotalCalculator(discountService),
	)
}
