package services

import (
	"context"
	"fmt"
	"math"

	"github.com/cyphera/cyphera-expense/libs/go/constants"
	"github.com/cyphera/cyphera-expense/libs/go/db"
	"github.com/cyphera/cyphera-expense/libs/go/helpers"
	"github.com/cyphera/cyphera-expense/libs/go/money"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
	"go.uber.org/zap"
)

// ExpensePaymentService reconciles expense payments against stored invoices
type ExpensePaymentService struct {
	queries           db.Querier
	logger            *zap.Logger
	currencyService   *CurrencyService
	validationService *ValidationService
}

// NewExpensePaymentService creates a new expense payment service
func NewExpensePaymentService(
	queries db.Querier,
	logger *zap.Logger,
	currencyService *CurrencyService,
	validationService *ValidationService,
) *ExpensePaymentService {
	return &ExpensePaymentService{
		queries:           queries,
		logger:            logger,
		currencyService:   currencyService,
		validationService: validationService,
	}
}

// NewReconciler starts an allocation session
func (s *ExpensePaymentService) NewReconciler() *PaymentAllocationReconciler {
	return NewPaymentAllocationReconciler(s.currencyService)
}

// InvoiceBalance is what is still owed on an invoice, in the invoice currency
func (s *ExpensePaymentService) InvoiceBalance(invoice *business.ExpenseInvoice) money.Amount {
	return s.NewReconciler().RemainingBalance(invoice)
}

// CandidateInvoices lists the invoices of a firm that can receive a payment,
// each with its currency loaded.
func (s *ExpensePaymentService) CandidateInvoices(ctx context.Context, firmID int64) ([]business.ExpenseInvoice, error) {
	rows, err := s.queries.ListFirmExpenseInvoices(ctx, db.ListFirmExpenseInvoicesParams{
		FirmID:   firmID,
		Statuses: PayableStatusStrings(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expense invoices for firm %d: %w", firmID, err)
	}

	currencies := map[int64]*business.Currency{}
	invoices := make([]business.ExpenseInvoice, 0, len(rows))
	for _, row := range rows {
		invoice := helpers.ExpenseInvoiceFromDB(row)
		if err := s.attachCurrency(ctx, &invoice, currencies); err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	return invoices, nil
}

// Reconcile rebuilds the allocations of a payment from the store, computes
// the balances and validates the payment. The payment is not modified.
func (s *ExpensePaymentService) Reconcile(ctx context.Context, payment business.ExpensePayment, mode business.AllocationMode) (*business.PaymentReconciliation, error) {
	currencies := map[int64]*business.Currency{}

	currency := payment.Currency
	if currency == nil && payment.CurrencyID != nil {
		loaded, err := s.loadCurrency(ctx, *payment.CurrencyID, currencies)
		if err != nil {
			return nil, err
		}
		currency = loaded
	}

	allocations := make([]business.ExpensePaymentInvoiceEntry, 0, len(payment.Invoices))
	for _, allocation := range payment.Invoices {
		if allocation.ExpenseInvoice == nil {
			row, err := s.queries.GetExpenseInvoice(ctx, allocation.ExpenseInvoiceID)
			if err != nil {
				return nil, fmt.Errorf("failed to get expense invoice %d: %w", allocation.ExpenseInvoiceID, err)
			}
			invoice := helpers.ExpenseInvoiceFromDB(row)
			allocation.ExpenseInvoice = &invoice
		}
		if err := s.attachCurrency(ctx, allocation.ExpenseInvoice, currencies); err != nil {
			return nil, err
		}
		allocations = append(allocations, allocation)
	}

	payment.Currency = currency
	payment.Invoices = allocations
	if err := s.CheckAmounts(payment); err != nil {
		return nil, err
	}
	return s.ReconcileLoaded(payment, mode), nil
}

// ReconcileLoaded computes the balances and validation of a payment whose
// currency and allocated invoices are already loaded. It never reads the store.
func (s *ExpensePaymentService) ReconcileLoaded(payment business.ExpensePayment, mode business.AllocationMode) *business.PaymentReconciliation {
	payment.Currency = paymentCurrency(payment)
	reconciler := s.NewReconciler()
	reconciler.SetInvoices(payment.Invoices, payment.Currency, payment.ConvertionRate, mode)

	summary := reconciler.Summary(payment)
	balances := make([]business.AllocationBalance, 0, len(payment.Invoices))
	for _, entry := range reconciler.Entries() {
		balance := business.AllocationBalance{
			LocalID:          entry.LocalID,
			ExpenseInvoiceID: entry.Allocation.ExpenseInvoiceID,
			Amount:           entry.Allocation.Amount,
			Remaining:        reconciler.RemainingBalance(entry.Allocation.ExpenseInvoice).Float(),
			CurrentRemaining: reconciler.CurrentRemaining(entry.Allocation).Float(),
		}
		if entry.Allocation.ExpenseInvoice != nil {
			balance.Sequential = entry.Allocation.ExpenseInvoice.Sequential
		}
		balances = append(balances, balance)
	}

	validation := s.validationService.ValidatePayment(payment, summary.Used, summary.Available)

	s.logger.Info("Expense payment reconciled",
		zap.Int("allocations", len(balances)),
		zap.Float64("available", summary.Available),
		zap.Float64("used", summary.Used),
		zap.Bool("balanced", summary.Balanced()))

	return &business.PaymentReconciliation{
		Summary:     summary,
		Allocations: balances,
		Validation:  validation,
	}
}

// CheckAmounts rejects a payment whose figures, or the balances derived from
// them, do not fit the payment or invoice precision.
func (s *ExpensePaymentService) CheckAmounts(payment business.ExpensePayment) error {
	currency := paymentCurrency(payment)
	precision := s.currencyService.PrecisionOrDefault(currency, constants.DocumentDefaultPrecision)

	used := 0.0
	figures := []float64{payment.Amount, payment.Fee, payment.ConvertionRate, math.Abs(payment.Amount) + math.Abs(payment.Fee)}
	for _, allocation := range payment.Invoices {
		figures = append(figures, allocation.Amount)
		used += math.Abs(allocation.Amount)
	}
	figures = append(figures, used)
	if err := checkFigures(figures, precision); err != nil {
		return fmt.Errorf("expense payment: %w", err)
	}

	for _, allocation := range payment.Invoices {
		invoice := allocation.ExpenseInvoice
		if invoice == nil {
			continue
		}
		invoicePrecision := s.currencyService.PrecisionOrDefault(invoice.Currency, constants.InvoiceDefaultPrecision)
		factor := s.currencyService.ConversionFactor(invoice, currency, payment.ConvertionRate)
		balance := math.Abs(invoice.Total) + math.Abs(invoice.AmountPaid) + math.Abs(invoice.TaxWithholdingAmount)
		figures := []float64{
			invoice.Total,
			invoice.AmountPaid,
			invoice.TaxWithholdingAmount,
			balance + math.Abs(allocation.Amount*factor),
			math.Abs(allocation.Amount / factor),
		}
		if err := checkFigures(figures, invoicePrecision); err != nil {
			return fmt.Errorf("expense invoice %d: %w", allocation.ExpenseInvoiceID, err)
		}
	}
	return nil
}

// paymentCurrency is the payment currency, or a stand-in carrying only the id
// when the payment names its currency by currencyId.
func paymentCurrency(payment business.ExpensePayment) *business.Currency {
	if payment.Currency != nil || payment.CurrencyID == nil {
		return payment.Currency
	}
	return &business.Currency{ID: *payment.CurrencyID}
}

func (s *ExpensePaymentService) attachCurrency(ctx context.Context, invoice *business.ExpenseInvoice, cache map[int64]*business.Currency) error {
	if invoice.Currency != nil || invoice.CurrencyID == nil {
		return nil
	}
	currency, err := s.loadCurrency(ctx, *invoice.CurrencyID, cache)
	if err != nil {
		return err
	}
	invoice.Currency = currency
	return nil
}

func (s *ExpensePaymentService) loadCurrency(ctx context.Context, id int64, cache map[int64]*business.Currency) (*business.Currency, error) {
	if currency, ok := cache[id]; ok {
		return currency, nil
	}
	row, err := s.queries.GetCurrency(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %d: %w", id, err)
	}
	currency := helpers.CurrencyFromDB(row)
	cache[id] = &currency
	return &currency, nil
}
