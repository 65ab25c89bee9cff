package helpers

import (
	"github.com/cyphera/cyphera-expense/libs/go/db"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
)

// CurrencyFromDB converts a currency row to the domain type
func CurrencyFromDB(row db.Currency) business.Currency {
	return business.Currency{
		ID:              row.ID,
		Code:            row.Code,
		Label:           row.Label,
		Symbol:          row.Symbol,
		DigitAfterComma: NullableInt4ToInt32(row.DigitAfterComma),
	}
}

// TaxFromDB converts a tax row to the domain type
func TaxFromDB(row db.Tax) business.Tax {
	return business.Tax{
		ID:     row.ID,
		Label:  row.Label,
		Value:  row.Value,
		IsRate: row.IsRate,
	}
}

// TaxesFromDB converts tax rows to domain taxes
func TaxesFromDB(rows []db.Tax) []business.Tax {
	taxes := make([]business.Tax, 0, len(rows))
	for _, row := range rows {
		taxes = append(taxes, TaxFromDB(row))
	}
	return taxes
}

// TaxWithholdingFromDB converts a withholding row to the domain type
func TaxWithholdingFromDB(row db.TaxWithholding) business.TaxWithholding {
	return business.TaxWithholding{
		ID:    row.ID,
		Label: row.Label,
		Rate:  row.Rate,
	}
}

// ExpenseInvoiceFromDB converts an invoice row to the domain type. Entries are
// not loaded; the payment side only needs the invoice header.
func ExpenseInvoiceFromDB(row db.ExpenseInvoice) business.ExpenseInvoice {
	invoice := business.ExpenseInvoice{
		ExpenseDocument: business.ExpenseDocument{
			ID:                   row.ID,
			Sequential:           row.Sequential,
			Object:               row.Object.String,
			Date:                 NullableTimestamptzToTime(row.Date),
			DueDate:              NullableTimestamptzToTime(row.DueDate),
			FirmID:               NullableInt8ToInt64(row.FirmID),
			InterlocutorID:       NullableInt8ToInt64(row.InterlocutorID),
			CurrencyID:           NullableInt8ToInt64(row.CurrencyID),
			Entries:              []business.ArticleEntry{},
			SubTotal:             row.SubTotal,
			Total:                row.Total,
			TaxWithholdingAmount: row.TaxWithholdingAmount,
		},
		Status:     business.ExpenseInvoiceStatus(row.Status),
		AmountPaid: row.AmountPaid,
	}
	return invoice
}
