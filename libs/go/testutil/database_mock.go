package testutil

import (
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/mock/gomock"

	"github.com/cyphera/cyphera-expense/libs/go/db"
	"github.com/cyphera/cyphera-expense/libs/go/mocks"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
)

// MockDatabase wraps a mock Querier with expectations for the expense reference data
type MockDatabase struct {
	ctrl    *gomock.Controller
	Querier *mocks.MockQuerier
	t       *testing.T
}

// NewMockDatabase creates a new mock database for unit testing
func NewMockDatabase(t *testing.T) *MockDatabase {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return &MockDatabase{
		ctrl:    ctrl,
		Querier: mocks.NewMockQuerier(ctrl),
		t:       t,
	}
}

// ExpectListTaxes expects the tax catalog to be loaded once
func (m *MockDatabase) ExpectListTaxes(taxes []db.Tax) {
	m.Querier.EXPECT().
		ListTaxes(gomock.Any()).
		Return(taxes, nil).
		Times(1)
}

// ExpectCurrency expects a currency lookup. A nil currency answers pgx.ErrNoRows.
func (m *MockDatabase) ExpectCurrency(id int64, currency *db.Currency) {
	if currency == nil {
		m.Querier.EXPECT().
			GetCurrency(gomock.Any(), id).
			Return(db.Currency{}, pgx.ErrNoRows).
			Times(1)
		return
	}
	m.Querier.EXPECT().
		GetCurrency(gomock.Any(), id).
		Return(*currency, nil).
		Times(1)
}

// ExpectTaxWithholding expects a withholding lookup
func (m *MockDatabase) ExpectTaxWithholding(withholding db.TaxWithholding) {
	m.Querier.EXPECT().
		GetTaxWithholding(gomock.Any(), withholding.ID).
		Return(withholding, nil).
		Times(1)
}

// ExpectExpenseInvoice expects an invoice lookup
func (m *MockDatabase) ExpectExpenseInvoice(invoice db.ExpenseInvoice) {
	m.Querier.EXPECT().
		GetExpenseInvoice(gomock.Any(), invoice.ID).
		Return(invoice, nil).
		Times(1)
}

// ExpectFirmExpenseInvoices expects the payable invoices of a firm to be listed
func (m *MockDatabase) ExpectFirmExpenseInvoices(firmID int64, invoices []db.ExpenseInvoice) {
	m.Querier.EXPECT().
		ListFirmExpenseInvoices(gomock.Any(), gomock.Cond(func(x any) bool {
			arg, ok := x.(db.ListFirmExpenseInvoicesParams)
			return ok && arg.FirmID == firmID
		})).
		Return(invoices, nil).
		Times(1)
}

// ExpectSequentialConfig expects a numbering scheme to be read from the config store
func (m *MockDatabase) ExpectSequentialConfig(key string, seq business.Sequential) {
	value, err := json.Marshal(seq)
	if err != nil {
		m.t.Fatalf("failed to encode sequential config: %v", err)
	}
	m.Querier.EXPECT().
		GetSequentialConfig(gomock.Any(), key).
		Return(db.AppConfig{Key: key, Value: value}, nil).
		Times(1)
}

// CreateTestCurrency creates a currency row
func CreateTestCurrency(id int64, code string, digits int32) db.Currency {
	return db.Currency{
		ID:              id,
		Code:            code,
		Label:           code,
		Symbol:          code,
		DigitAfterComma: pgtype.Int4{Int32: digits, Valid: true},
	}
}

// CreateTestExpenseInvoice creates an unpaid invoice row of a firm
func CreateTestExpenseInvoice(id, firmID, currencyID int64, total float64) db.ExpenseInvoice {
	return db.ExpenseInvoice{
		ID:         id,
		Sequential: "",
		Status:     string(business.ExpenseInvoiceStatusUnpaid),
		FirmID:     pgtype.Int8{Int64: firmID, Valid: true},
		CurrencyID: pgtype.Int8{Int64: currencyID, Valid: true},
		SubTotal:   total,
		Total:      total,
	}
}
