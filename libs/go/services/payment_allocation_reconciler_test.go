package services_test

import (
	"testing"
	"time"

	"github.com/cyphera/cyphera-expense/libs/go/services"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testTND = &business.Currency{ID: 1, Code: "TND", Symbol: "DT", DigitAfterComma: business.Digits(3)}
	testEUR = &business.Currency{ID: 2, Code: "EUR", Symbol: "€", DigitAfterComma: business.Digits(2)}
)

func testInvoice(id int64, currency *business.Currency, total, amountPaid float64, status business.ExpenseInvoiceStatus) *business.ExpenseInvoice {
	return &business.ExpenseInvoice{
		ExpenseDocument: business.ExpenseDocument{
			ID:         id,
			Sequential: "DEP-25-0001",
			Currency:   currency,
			Total:      total,
		},
		AmountPaid: amountPaid,
		Status:     status,
	}
}

func newReconciler() *services.PaymentAllocationReconciler {
	return services.NewPaymentAllocationReconciler(services.NewCurrencyService())
}

func TestPaymentAllocationReconciler_BalancedPayment(t *testing.T) {
	reconciler := newReconciler()
	validation := services.NewValidationService()
	now := time.Now()

	payment := business.ExpensePayment{Amount: 100, Fee: 5, ConvertionRate: 1, Date: &now, Currency: testTND}
	reconciler.SwitchCurrency(testTND)
	first := reconciler.Add(business.ExpensePaymentInvoiceEntry{ExpenseInvoiceID: 1, ExpenseInvoice: testInvoice(1, testTND, 60, 0, business.ExpenseInvoiceStatusUnpaid), Amount: 60})
	reconciler.Add(business.ExpensePaymentInvoiceEntry{ExpenseInvoiceID: 2, ExpenseInvoice: testInvoice(2, testTND, 45, 0, business.ExpenseInvoiceStatusSent), Amount: 45})

	summary := reconciler.Summary(payment)
	assert.Equal(t, 105.0, summary.Available)
	assert.Equal(t, 105.0, summary.Used)
	assert.Equal(t, 0.0, summary.Remaining)
	assert.True(t, summary.Balanced())
	assert.Equal(t, 105.0, reconciler.CalculateUsedAmount())

	result := validation.ValidatePayment(payment, summary.Used, summary.Available)
	assert.True(t, result.Valid())
	assert.Equal(t, business.ToastPositionBottomRight, result.Position)

	require.NoError(t, reconciler.UpdateAmount(first, 50))

	summary = reconciler.Summary(payment)
	assert.Equal(t, 95.0, summary.Used)
	assert.Equal(t, 10.0, summary.Remaining)
	assert.False(t, summary.Balanced())

	result = validation.ValidatePayment(payment, summary.Used, summary.Available)
	assert.Equal(t, services.MsgPaymentUnbalanced, result.Message)
}

func TestPaymentAllocationReconciler_UpdateDelete(t *testing.T) {
	reconciler := newReconciler()

	id := reconciler.Add(business.ExpensePaymentInvoiceEntry{ExpenseInvoiceID: 7, Amount: 10})
	require.NoError(t, reconciler.Update(id, business.ExpensePaymentInvoiceEntry{ExpenseInvoiceID: 7, Amount: 12.5}))
	assert.Equal(t, 12.5, reconciler.Entries()[0].Allocation.Amount)

	missing := uuid.New()
	assert.ErrorIs(t, reconciler.Update(missing, business.ExpensePaymentInvoiceEntry{}), services.ErrAllocationNotFound)
	assert.ErrorIs(t, reconciler.UpdateAmount(missing, 1), services.ErrAllocationNotFound)
	assert.ErrorIs(t, reconciler.Delete(missing), services.ErrAllocationNotFound)

	require.NoError(t, reconciler.Delete(id))
	assert.Empty(t, reconciler.Entries())

	reconciler.Add(business.ExpensePaymentInvoiceEntry{Amount: 1})
	reconciler.Add(business.ExpensePaymentInvoiceEntry{Amount: 2})
	reconciler.Reset()
	assert.Empty(t, reconciler.Entries())
}

func TestPaymentAllocationReconciler_LocalIDsAreUnique(t *testing.T) {
	reconciler := newReconciler()

	a := reconciler.Add(business.ExpensePaymentInvoiceEntry{ExpenseInvoiceID: 1})
	b := reconciler.Add(business.ExpensePaymentInvoiceEntry{ExpenseInvoiceID: 1})

	assert.NotEqual(t, a, b)
}

func TestPaymentAllocationReconciler_LoadFirmInvoices(t *testing.T) {
	reconciler := newReconciler()

	invoices := []business.ExpenseInvoice{
		*testInvoice(1, testTND, 100, 0, business.ExpenseInvoiceStatusUnpaid),
		*testInvoice(2, testTND, 100, 0, business.ExpenseInvoiceStatusPaid),
		*testInvoice(3, testTND, 100, 0, business.ExpenseInvoiceStatusSent),
		*testInvoice(4, testTND, 100, 40, business.ExpenseInvoiceStatusPartiallyPaid),
		*testInvoice(5, testTND, 100, 0, business.ExpenseInvoiceStatusDraft),
		*testInvoice(6, testTND, 100, 0, business.ExpenseInvoiceStatusExpired),
	}

	added := reconciler.LoadFirmInvoices(invoices)

	assert.Equal(t, 3, added)
	var ids []int64
	for _, allocation := range reconciler.Allocations() {
		ids = append(ids, allocation.ExpenseInvoiceID)
		assert.Zero(t, allocation.Amount)
	}
	assert.Equal(t, []int64{1, 3, 4}, ids)
}

func TestPaymentAllocationReconciler_CurrencySwitchResets(t *testing.T) {
	reconciler := newReconciler()
	reconciler.SwitchCurrency(testTND)
	reconciler.Add(business.ExpensePaymentInvoiceEntry{ExpenseInvoiceID: 1, Amount: 60})
	reconciler.Add(business.ExpensePaymentInvoiceEntry{ExpenseInvoiceID: 2, Amount: 45})

	reconciler.SwitchCurrency(testTND)
	assert.Equal(t, 105.0, reconciler.CalculateUsedAmount(), "same currency keeps amounts")

	reconciler.SwitchCurrency(testEUR)
	assert.Len(t, reconciler.Entries(), 2)
	for _, entry := range reconciler.Entries() {
		assert.Zero(t, entry.Allocation.Amount)
	}
	assert.Equal(t, 0.0, reconciler.CalculateUsedAmount())
}

func TestPaymentAllocationReconciler_Reinitialize(t *testing.T) {
	reconciler := newReconciler()
	reconciler.Add(business.ExpensePaymentInvoiceEntry{Amount: 60})
	reconciler.Add(business.ExpensePaymentInvoiceEntry{Amount: -3})

	reconciler.Reinitialize()

	for _, entry := range reconciler.Entries() {
		assert.Zero(t, entry.Allocation.Amount)
	}
}

func TestPaymentAllocationReconciler_SetInvoices(t *testing.T) {
	tests := []struct {
		name           string
		mode           business.AllocationMode
		currency       *business.Currency
		rate           float64
		invoice        *business.ExpenseInvoice
		amount         float64
		wantAmount     float64
		wantAmountPaid float64
	}{
		{
			name:           "new mode keeps allocations",
			mode:           business.AllocationModeNew,
			currency:       testTND,
			rate:           3.3,
			invoice:        testInvoice(1, testEUR, 100, 20, business.ExpenseInvoiceStatusPartiallyPaid),
			amount:         33,
			wantAmount:     33,
			wantAmountPaid: 20,
		},
		{
			name:           "edit mode same currency",
			mode:           business.AllocationModeEdit,
			currency:       testTND,
			rate:           1,
			invoice:        testInvoice(1, testTND, 100, 60, business.ExpenseInvoiceStatusPartiallyPaid),
			amount:         60,
			wantAmount:     60,
			wantAmountPaid: 0,
		},
		{
			name:           "edit mode other currency converts back",
			mode:           business.AllocationModeEdit,
			currency:       testTND,
			rate:           3.2,
			invoice:        testInvoice(1, testEUR, 100, 50, business.ExpenseInvoiceStatusPartiallyPaid),
			amount:         32,
			wantAmount:     10,
			wantAmountPaid: 18,
		},
		{
			name:           "edit mode rounds to payment precision",
			mode:           business.AllocationModeEdit,
			currency:       testTND,
			rate:           3,
			invoice:        testInvoice(1, testEUR, 100, 10, business.ExpenseInvoiceStatusPartiallyPaid),
			amount:         10,
			wantAmount:     3.333,
			wantAmountPaid: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reconciler := newReconciler()
			original := *tt.invoice

			reconciler.SetInvoices([]business.ExpensePaymentInvoiceEntry{
				{ExpenseInvoiceID: tt.invoice.ID, ExpenseInvoice: tt.invoice, Amount: tt.amount},
			}, tt.currency, tt.rate, tt.mode)

			entries := reconciler.Entries()
			require.Len(t, entries, 1)
			assert.NotEqual(t, uuid.Nil, entries[0].LocalID)
			assert.Equal(t, tt.wantAmount, entries[0].Allocation.Amount)
			assert.Equal(t, tt.wantAmountPaid, entries[0].Allocation.ExpenseInvoice.AmountPaid)
			assert.Equal(t, original, *tt.invoice, "caller invoice is not mutated")
		})
	}
}

func TestPaymentAllocationReconciler_Reorder(t *testing.T) {
	reconciler := newReconciler()
	reconciler.Add(business.ExpensePaymentInvoiceEntry{ExpenseInvoiceID: 1, Amount: 10})
	reconciler.Add(business.ExpensePaymentInvoiceEntry{ExpenseInvoiceID: 2, Amount: 20})
	reconciler.Add(business.ExpensePaymentInvoiceEntry{ExpenseInvoiceID: 3, Amount: 30})

	require.NoError(t, reconciler.Reorder(0, 2))

	var ids []int64
	var amounts []float64
	for _, allocation := range reconciler.Allocations() {
		ids = append(ids, allocation.ExpenseInvoiceID)
		amounts = append(amounts, allocation.Amount)
	}
	assert.Equal(t, []int64{2, 3, 1}, ids)
	assert.Equal(t, []float64{20, 30, 10}, amounts)
	assert.Equal(t, 60.0, reconciler.CalculateUsedAmount())

	assert.ErrorIs(t, reconciler.Reorder(-1, 0), services.ErrIndexOutOfRange)
	assert.ErrorIs(t, reconciler.Reorder(0, 3), services.ErrIndexOutOfRange)
}

func TestPaymentAllocationReconciler_RemainingBalances(t *testing.T) {
	reconciler := newReconciler()
	reconciler.SwitchCurrency(testTND)
	reconciler.SetConvertionRate(3.2)

	sameCurrency := testInvoice(1, testTND, 200, 50, business.ExpenseInvoiceStatusPartiallyPaid)
	sameCurrency.TaxWithholdingAmount = 10
	assert.Equal(t, 140.0, reconciler.RemainingBalance(sameCurrency).Float())
	assert.Equal(t, 100.0, reconciler.CurrentRemaining(business.ExpensePaymentInvoiceEntry{ExpenseInvoice: sameCurrency, Amount: 40}).Float())

	otherCurrency := testInvoice(2, testEUR, 100, 0, business.ExpenseInvoiceStatusUnpaid)
	assert.Equal(t, 100.0, reconciler.RemainingBalance(otherCurrency).Float())
	assert.Equal(t, int32(2), reconciler.RemainingBalance(otherCurrency).Precision())
	assert.Equal(t, 68.0, reconciler.CurrentRemaining(business.ExpensePaymentInvoiceEntry{ExpenseInvoice: otherCurrency, Amount: 10}).Float())

	unknownCurrency := testInvoice(3, nil, 10, 0, business.ExpenseInvoiceStatusUnpaid)
	assert.Equal(t, int32(2), reconciler.RemainingBalance(unknownCurrency).Precision())
}

func TestPaymentAllocationReconciler_DefaultPrecision(t *testing.T) {
	reconciler := newReconciler()

	reconciler.Add(business.ExpensePaymentInvoiceEntry{Amount: 0.0005})
	reconciler.Add(business.ExpensePaymentInvoiceEntry{Amount: 0.0005})

	assert.Equal(t, int32(3), reconciler.Precision())
	assert.Equal(t, 0.002, reconciler.CalculateUsedAmount())
}
