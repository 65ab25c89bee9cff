package services

import (
	"errors"

	"github.com/cyphera/cyphera-expense/libs/go/constants"
	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/cyphera/cyphera-expense/libs/go/money"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrAllocationNotFound is returned when a local allocation id is unknown
	ErrAllocationNotFound = errors.New("allocation not found")
	// ErrIndexOutOfRange is returned when a reorder index is outside the list
	ErrIndexOutOfRange = errors.New("allocation index out of range")
)

// PayableInvoiceStatuses are the invoice states a payment can be allocated to
var PayableInvoiceStatuses = []business.ExpenseInvoiceStatus{
	business.ExpenseInvoiceStatusUnpaid,
	business.ExpenseInvoiceStatusSent,
	business.ExpenseInvoiceStatusPartiallyPaid,
}

// PaymentAllocationReconciler tracks how one expense payment is split across
// invoices. It belongs to a single editing session and is not safe for
// concurrent use.
type PaymentAllocationReconciler struct {
	currencyService *CurrencyService
	logger          *zap.Logger

	entries        []business.AllocationEntry
	currency       *business.Currency
	convertionRate float64
	newID          func() uuid.UUID
}

// NewPaymentAllocationReconciler creates an empty reconciler
func NewPaymentAllocationReconciler(currencyService *CurrencyService) *PaymentAllocationReconciler {
	return &PaymentAllocationReconciler{
		currencyService: currencyService,
		logger:          logger.WithComponent(logger.ComponentReconciliation),
		entries:         []business.AllocationEntry{},
		newID:           uuid.New,
	}
}

// Entries returns a copy of the current allocation rows
func (r *PaymentAllocationReconciler) Entries() []business.AllocationEntry {
	out := make([]business.AllocationEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Allocations returns the allocations without their local ids, in row order
func (r *PaymentAllocationReconciler) Allocations() []business.ExpensePaymentInvoiceEntry {
	out := make([]business.ExpensePaymentInvoiceEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, entry.Allocation)
	}
	return out
}

// Currency returns the payment currency the reconciler works in
func (r *PaymentAllocationReconciler) Currency() *business.Currency {
	return r.currency
}

// Precision is the payment precision, defaulting when no currency is set
func (r *PaymentAllocationReconciler) Precision() int32 {
	return r.currencyService.PrecisionOrDefault(r.currency, constants.DocumentDefaultPrecision)
}

// SetConvertionRate records the rate from payment currency to invoice currency
func (r *PaymentAllocationReconciler) SetConvertionRate(rate float64) {
	r.convertionRate = rate
}

// SwitchCurrency changes the payment currency. Amounts entered in the old
// currency are meaningless in the new one, so a real change zeroes them.
func (r *PaymentAllocationReconciler) SwitchCurrency(currency *business.Currency) {
	changed := !r.currency.SameAs(currency) && !(r.currency == nil && currency == nil)
	r.currency = currency
	if changed {
		r.Reinitialize()
	}
}

// Add appends an allocation under a fresh local id
func (r *PaymentAllocationReconciler) Add(allocation business.ExpensePaymentInvoiceEntry) uuid.UUID {
	id := r.newID()
	r.entries = append(r.entries, business.AllocationEntry{LocalID: id, Allocation: allocation})
	return id
}

// LoadFirmInvoices adds a zero allocation for every payable invoice of a firm
func (r *PaymentAllocationReconciler) LoadFirmInvoices(invoices []business.ExpenseInvoice) int {
	added := 0
	for i := range invoices {
		if !IsPayableStatus(invoices[i].Status) {
			continue
		}
		invoice := invoices[i]
		r.Add(business.ExpensePaymentInvoiceEntry{
			ExpenseInvoiceID: invoice.ID,
			ExpenseInvoice:   &invoice,
			Amount:           0,
		})
		added++
	}
	r.logger.Debug("Loaded firm invoices",
		zap.Int("candidates", len(invoices)),
		zap.Int("added", added))
	return added
}

// Update replaces the allocation stored under localID
func (r *PaymentAllocationReconciler) Update(localID uuid.UUID, allocation business.ExpensePaymentInvoiceEntry) error {
	for i := range r.entries {
		if r.entries[i].LocalID == localID {
			r.entries[i].Allocation = allocation
			return nil
		}
	}
	return ErrAllocationNotFound
}

// UpdateAmount changes only the amount of one allocation
func (r *PaymentAllocationReconciler) UpdateAmount(localID uuid.UUID, amount float64) error {
	for i := range r.entries {
		if r.entries[i].LocalID == localID {
			r.entries[i].Allocation.Amount = amount
			return nil
		}
	}
	return ErrAllocationNotFound
}

// Delete removes the allocation stored under localID
func (r *PaymentAllocationReconciler) Delete(localID uuid.UUID) error {
	for i := range r.entries {
		if r.entries[i].LocalID == localID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return ErrAllocationNotFound
}

// Reset drops every allocation
func (r *PaymentAllocationReconciler) Reset() {
	r.entries = []business.AllocationEntry{}
}

// Reinitialize zeroes every allocation amount and keeps the rows
func (r *PaymentAllocationReconciler) Reinitialize() {
	for i := range r.entries {
		r.entries[i].Allocation.Amount = 0
	}
	r.logger.Debug("Reinitialized allocations", zap.Int("entries", len(r.entries)))
}

// SetInvoices replaces the rows with the given allocations.
//
// In NEW mode allocations are taken as-is. In EDIT mode they come from a saved
// payment: the allocated amount is taken back out of each invoice's amountPaid,
// and when the invoice is in another currency the amount is converted back into
// the payment currency with the conversion rate.
func (r *PaymentAllocationReconciler) SetInvoices(allocations []business.ExpensePaymentInvoiceEntry, currency *business.Currency, convertionRate float64, mode business.AllocationMode) {
	r.currency = currency
	r.convertionRate = convertionRate
	precision := r.Precision()

	r.entries = make([]business.AllocationEntry, 0, len(allocations))
	for _, allocation := range allocations {
		if mode == business.AllocationModeEdit {
			allocation = r.restoreSavedAllocation(allocation, currency, convertionRate, precision)
		}
		r.entries = append(r.entries, business.AllocationEntry{LocalID: r.newID(), Allocation: allocation})
	}
}

func (r *PaymentAllocationReconciler) restoreSavedAllocation(allocation business.ExpensePaymentInvoiceEntry, currency *business.Currency, convertionRate float64, precision int32) business.ExpensePaymentInvoiceEntry {
	entryAmount := allocation.Amount

	var invoice *business.ExpenseInvoice
	if allocation.ExpenseInvoice != nil {
		restored := *allocation.ExpenseInvoice
		restored.AmountPaid = restored.AmountPaid - entryAmount
		invoice = &restored
		allocation.ExpenseInvoice = invoice
	}

	amount := entryAmount
	if !sameCurrency(invoice, currency) && convertionRate > 0 {
		amount = entryAmount / convertionRate
	}
	allocation.Amount = money.FromFloat(amount, precision).Float()
	return allocation
}

// Reorder moves the row at from to position to. The list is re-derived in NEW
// mode so amounts are unchanged.
func (r *PaymentAllocationReconciler) Reorder(from, to int) error {
	if from < 0 || from >= len(r.entries) || to < 0 || to >= len(r.entries) {
		return ErrIndexOutOfRange
	}

	allocations := r.Allocations()
	moved := allocations[from]
	allocations = append(allocations[:from], allocations[from+1:]...)
	allocations = append(allocations[:to], append([]business.ExpensePaymentInvoiceEntry{moved}, allocations[to:]...)...)

	r.SetInvoices(allocations, r.currency, r.convertionRate, business.AllocationModeNew)
	return nil
}

// CalculateUsedAmount sums every allocation, in payment currency
func (r *PaymentAllocationReconciler) CalculateUsedAmount() float64 {
	precision := r.Precision()
	used := money.Zero(precision)
	for _, entry := range r.entries {
		used = used.Add(money.FromFloat(entry.Allocation.Amount, precision))
	}
	return used.Float()
}

// Summary computes available, used and remaining for the payment.
// Available is amount plus fee; the payment is ready when used equals it.
func (r *PaymentAllocationReconciler) Summary(payment business.ExpensePayment) business.PaymentSummary {
	precision := r.Precision()
	available := money.FromFloat(payment.Amount+payment.Fee, precision)
	used := money.FromFloat(r.CalculateUsedAmount(), precision)

	return business.PaymentSummary{
		Available: available.Float(),
		Used:      used.Float(),
		Remaining: available.Subtract(used).Float(),
	}
}

// RemainingBalance is what is still owed on an invoice before this payment
func (r *PaymentAllocationReconciler) RemainingBalance(invoice *business.ExpenseInvoice) money.Amount {
	if invoice == nil {
		return money.Zero(constants.InvoiceDefaultPrecision)
	}
	precision := r.currencyService.PrecisionOrDefault(invoice.Currency, constants.InvoiceDefaultPrecision)
	total := money.FromFloat(invoice.Total, precision)
	settled := money.FromFloat(invoice.AmountPaid+invoice.TaxWithholdingAmount, precision)
	return total.Subtract(settled)
}

// CurrentRemaining is what would still be owed on the allocation's invoice
// once this allocation, converted into the invoice currency, is applied.
func (r *PaymentAllocationReconciler) CurrentRemaining(allocation business.ExpensePaymentInvoiceEntry) money.Amount {
	remaining := r.RemainingBalance(allocation.ExpenseInvoice)
	factor := r.currencyService.ConversionFactor(allocation.ExpenseInvoice, r.currency, r.convertionRate)
	applied := money.FromFloat(allocation.Amount, remaining.Precision()).Multiply(factor)
	return remaining.Subtract(applied)
}
