package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/cyphera/cyphera-expense/libs/go/money"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrNoCurrencySelected is returned when a computation needs a currency
// precision and the document has no currency yet.
var ErrNoCurrencySelected = errors.New("no currency selected")

// CurrencyService handles currency precision, conversion and display
type CurrencyService struct {
	logger *zap.Logger
}

// NewCurrencyService creates a new currency service
func NewCurrencyService() *CurrencyService {
	return &CurrencyService{
		logger: logger.L(),
	}
}

// ResolvePrecision returns the precision of the selected currency.
// A currency without digitAfterComma falls back to the given default; a
// missing currency is an error.
func (s *CurrencyService) ResolvePrecision(currency *business.Currency, fallback int32) (int32, error) {
	if currency == nil {
		return 0, ErrNoCurrencySelected
	}
	if currency.DigitAfterComma == nil {
		return fallback, nil
	}
	return *currency.DigitAfterComma, nil
}

// PrecisionOrDefault is ResolvePrecision for sub-entities, where an unknown
// currency is acceptable and simply uses the default.
func (s *CurrencyService) PrecisionOrDefault(currency *business.Currency, fallback int32) int32 {
	precision, err := s.ResolvePrecision(currency, fallback)
	if err != nil {
		return fallback
	}
	return precision
}

// ConversionFactor returns the multiplier applied to a payment-currency
// amount when it is booked against an invoice. Same currency means 1; an unset
// rate is treated as 1.
func (s *CurrencyService) ConversionFactor(invoice *business.ExpenseInvoice, paymentCurrency *business.Currency, convertionRate float64) float64 {
	if sameCurrency(invoice, paymentCurrency) {
		return 1
	}
	if convertionRate <= 0 {
		return 1
	}
	return convertionRate
}

// sameCurrency compares the invoice currency with the payment currency.
// Two unknown currencies compare equal.
func sameCurrency(invoice *business.ExpenseInvoice, paymentCurrency *business.Currency) bool {
	var invoiceKey int64
	var known bool
	if invoice != nil {
		invoiceKey, known = invoice.CurrencyKey()
	}
	if !known && paymentCurrency == nil {
		return true
	}
	if !known || paymentCurrency == nil {
		return false
	}
	return invoiceKey == paymentCurrency.ID
}

// ParseAmount parses a user-entered amount and scales it to the precision
func (s *CurrencyService) ParseAmount(input string, precision int32) (money.Amount, error) {
	cleaned := strings.TrimSpace(input)
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return money.Amount{}, fmt.Errorf("invalid amount format: %w", err)
	}

	return money.FromDecimal(value, precision)
}

// DisplayCeil rounds a figure up at one digit beyond the currency precision,
// the way available and remaining balances are displayed.
func (s *CurrencyService) DisplayCeil(value float64, precision int32) float64 {
	digits := precision + 1
	return decimal.NewFromFloat(value).Shift(digits).Ceil().Shift(-digits).InexactFloat64()
}

// FormatAmount renders an amount followed by the currency symbol
func (s *CurrencyService) FormatAmount(amount money.Amount, currency *business.Currency) string {
	if currency == nil || currency.Symbol == "" {
		return amount.String()
	}
	return fmt.Sprintf("%s %s", amount.String(), currency.Symbol)
}
