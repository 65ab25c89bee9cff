package testutil

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyphera/cyphera-expense/libs/go/db"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
)

func TestMockDatabase_Expectations(t *testing.T) {
	mockDB := NewMockDatabase(t)
	ctx := context.Background()

	tnd := CreateTestCurrency(1, "TND", 3)
	mockDB.ExpectCurrency(1, &tnd)
	mockDB.ExpectCurrency(2, nil)
	mockDB.ExpectFirmExpenseInvoices(7, []db.ExpenseInvoice{CreateTestExpenseInvoice(10, 7, 1, 100)})
	mockDB.ExpectSequentialConfig("expense-invoice_sequence", business.Sequential{Prefix: "DEP", DynamicSequence: business.DateFormatYYYY, Next: 3})

	currency, err := mockDB.Querier.GetCurrency(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(3), currency.DigitAfterComma.Int32)

	_, err = mockDB.Querier.GetCurrency(ctx, 2)
	assert.True(t, errors.Is(err, pgx.ErrNoRows))

	invoices, err := mockDB.Querier.ListFirmExpenseInvoices(ctx, db.ListFirmExpenseInvoicesParams{FirmID: 7})
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, string(business.ExpenseInvoiceStatusUnpaid), invoices[0].Status)

	config, err := mockDB.Querier.GetSequentialConfig(ctx, "expense-invoice_sequence")
	require.NoError(t, err)
	assert.JSONEq(t, `{"prefix":"DEP","dynamicSequence":"yyyy","next":3}`, string(config.Value))
}

func TestPerformJSONRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/echo", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, body)
	})

	recorder := PerformJSONRequest(t, router, http.MethodPost, "/echo", map[string]any{"amount": 105})
	AssertStatusCode(t, recorder, http.StatusOK)

	var out map[string]any
	DecodeJSON(t, recorder, &out)
	assert.Equal(t, float64(105), out["amount"])
}

func TestMockSequenceSink(t *testing.T) {
	sink := &MockSequenceSink{}
	sink.On("Apply", business.SequenceUpdate{Value: 12}).Once()

	sink.Apply(business.SequenceUpdate{Value: 12})

	sink.AssertExpectations(t)
}
