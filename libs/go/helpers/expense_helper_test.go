package helpers

import (
	"testing"
	"time"

	"github.com/cyphera/cyphera-expense/libs/go/db"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyFromDB(t *testing.T) {
	t.Run("with precision", func(t *testing.T) {
		currency := CurrencyFromDB(db.Currency{
			ID:              1,
			Code:            "TND",
			Symbol:          "DT",
			DigitAfterComma: pgtype.Int4{Int32: 3, Valid: true},
		})
		require.NotNil(t, currency.DigitAfterComma)
		assert.Equal(t, int32(3), *currency.DigitAfterComma)
		assert.Equal(t, "DT", currency.Symbol)
	})

	t.Run("precision unknown", func(t *testing.T) {
		currency := CurrencyFromDB(db.Currency{ID: 2, Code: "EUR", Symbol: "€"})
		assert.Nil(t, currency.DigitAfterComma)
	})
}

func TestTaxesFromDB(t *testing.T) {
	taxes := TaxesFromDB([]db.Tax{
		{ID: 1, Label: "TVA", Value: 19, IsRate: true},
		{ID: 2, Label: "Timbre", Value: 1, IsRate: false},
	})

	assert.Equal(t, []business.Tax{
		{ID: 1, Label: "TVA", Value: 19, IsRate: true},
		{ID: 2, Label: "Timbre", Value: 1, IsRate: false},
	}, taxes)
	assert.NotNil(t, TaxesFromDB(nil))
}

func TestExpenseInvoiceFromDB(t *testing.T) {
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	invoice := ExpenseInvoiceFromDB(db.ExpenseInvoice{
		ID:                   5,
		Sequential:           "DEP-25-0005",
		Object:               pgtype.Text{String: "Fournitures", Valid: true},
		Date:                 pgtype.Timestamptz{Time: date, Valid: true},
		Status:               string(business.ExpenseInvoiceStatusPartiallyPaid),
		FirmID:               pgtype.Int8{Int64: 7, Valid: true},
		CurrencyID:           pgtype.Int8{Int64: 1, Valid: true},
		Total:                120,
		AmountPaid:           20,
		TaxWithholdingAmount: 1.8,
	})

	assert.Equal(t, int64(5), invoice.ID)
	assert.Equal(t, "Fournitures", invoice.Object)
	require.NotNil(t, invoice.Date)
	assert.True(t, date.Equal(*invoice.Date))
	assert.Nil(t, invoice.DueDate)
	assert.Nil(t, invoice.InterlocutorID)
	require.NotNil(t, invoice.CurrencyID)
	assert.Equal(t, int64(1), *invoice.CurrencyID)
	assert.Equal(t, business.ExpenseInvoiceStatusPartiallyPaid, invoice.Status)
	assert.Equal(t, 20.0, invoice.AmountPaid)
	assert.Equal(t, 1.8, invoice.TaxWithholdingAmount)
	assert.Empty(t, invoice.Entries)
}
